package commits

import (
	"github.com/spf13/cobra"

	"github.com/temirov/brancher/internal/repos/shared"
	flagutils "github.com/temirov/brancher/internal/utils/flags"
)

const (
	runCICommandUseConstant              = "run-ci"
	runCICommandShortDescriptionConstant = "Push an empty commit that triggers continuous integration"
	runCICommandLongDescriptionConstant  = "run-ci stages the work tree, commits a chore whose message is the CI token, and pushes HEAD upstream."
	runCICommandExampleConstant          = "brancher run-ci\nbrancher run-ci --remote upstream"
)

// RunCICommandBuilder assembles the run-ci command.
type RunCICommandBuilder struct {
	CommandBuilder
	PushConfigurationProvider func() PushConfiguration
}

// Build constructs the run-ci command.
func (builder *RunCICommandBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:     runCICommandUseConstant,
		Short:   runCICommandShortDescriptionConstant,
		Long:    runCICommandLongDescriptionConstant,
		Example: runCICommandExampleConstant,
		Args:    cobra.NoArgs,
		RunE:    builder.run,
	}

	flagutils.EnsureRemoteFlag(command, shared.OriginRemoteNameConstant, flagutils.RemoteFlagUsage)

	return command, nil
}

func (builder *RunCICommandBuilder) run(command *cobra.Command, _ []string) error {
	remoteName := flagutils.RemoteName(command, builder.resolvePushConfiguration().RemoteName)

	service, repositoryPath, serviceError := builder.buildService(command)
	if serviceError != nil {
		return serviceError
	}

	_, triggerError := service.TriggerCI(command.Context(), TriggerOptions{
		RepositoryPath: repositoryPath,
		RemoteName:     remoteName,
	})
	return triggerError
}

func (builder *RunCICommandBuilder) resolvePushConfiguration() PushConfiguration {
	if builder.PushConfigurationProvider == nil {
		return DefaultPushConfiguration()
	}
	return builder.PushConfigurationProvider().Sanitize()
}
