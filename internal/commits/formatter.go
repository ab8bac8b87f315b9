package commits

import (
	"strings"

	"github.com/temirov/brancher/internal/naming"
)

const (
	// DefaultCIToken marks commits that should trigger continuous integration.
	DefaultCIToken = "(run_ci)"

	unprefixedScopeMarkerConstant = "#"
	scopeOpenConstant             = "("
	scopeCloseConstant            = ")"
	subjectSeparatorConstant      = ": "
	tokenSeparatorConstant        = " "
)

// Formatter renders commit messages for a branch.
type Formatter struct {
	CIToken    string
	CodePrefix string
}

// Format produces "type(scope): message" for typed branches and
// "type: message" for special branches. The scope is "#code" without a code
// prefix and "prefix+code" with one. runCI appends the CI token, which takes
// the message position when the message is blank.
func (formatter Formatter) Format(branch naming.Branch, commitType string, message string, runCI bool) string {
	body := strings.TrimSpace(message)
	if runCI {
		token := formatter.ciToken()
		if len(body) == 0 {
			body = token
		} else {
			body = body + tokenSeparatorConstant + token
		}
	}

	if branch.IsSpecial() {
		return commitType + subjectSeparatorConstant + body
	}
	return commitType + scopeOpenConstant + formatter.scope(branch) + scopeCloseConstant + subjectSeparatorConstant + body
}

func (formatter Formatter) scope(branch naming.Branch) string {
	if len(formatter.CodePrefix) == 0 {
		return unprefixedScopeMarkerConstant + branch.Code()
	}
	return formatter.CodePrefix + branch.Code()
}

func (formatter Formatter) ciToken() string {
	trimmed := strings.TrimSpace(formatter.CIToken)
	if len(trimmed) == 0 {
		return DefaultCIToken
	}
	return trimmed
}
