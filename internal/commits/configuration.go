package commits

import (
	"strings"

	"github.com/temirov/brancher/internal/repos/shared"
)

// CommandConfiguration captures the commits section of the configuration.
type CommandConfiguration struct {
	Types   []string `mapstructure:"types"`
	CIToken string   `mapstructure:"ci_token"`
}

// DefaultCommandConfiguration provides the default commit types and CI token.
func DefaultCommandConfiguration() CommandConfiguration {
	return CommandConfiguration{
		Types:   DefaultCommitTypes(),
		CIToken: DefaultCIToken,
	}
}

// Sanitize trims values and restores defaults for empty entries.
func (configuration CommandConfiguration) Sanitize() CommandConfiguration {
	sanitized := CommandConfiguration{
		Types:   sanitizeCommitTypes(configuration.Types),
		CIToken: strings.TrimSpace(configuration.CIToken),
	}
	if len(sanitized.CIToken) == 0 {
		sanitized.CIToken = DefaultCIToken
	}
	return sanitized
}

// PushConfiguration captures the push section of the configuration.
type PushConfiguration struct {
	RemoteName string `mapstructure:"remote"`
}

// DefaultPushConfiguration pushes to origin.
func DefaultPushConfiguration() PushConfiguration {
	return PushConfiguration{RemoteName: shared.OriginRemoteNameConstant}
}

// Sanitize trims the remote name, falling back to origin.
func (configuration PushConfiguration) Sanitize() PushConfiguration {
	remoteName := strings.TrimSpace(configuration.RemoteName)
	if len(remoteName) == 0 {
		remoteName = shared.OriginRemoteNameConstant
	}
	return PushConfiguration{RemoteName: remoteName}
}
