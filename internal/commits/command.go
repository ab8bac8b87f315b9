package commits

import (
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/temirov/brancher/internal/naming"
	"github.com/temirov/brancher/internal/repos/dependencies"
	"github.com/temirov/brancher/internal/repos/shared"
	"github.com/temirov/brancher/internal/utils"
	flagutils "github.com/temirov/brancher/internal/utils/flags"
)

const (
	commitCommandUseConstant               = "commit <type> <message>"
	commitCommandShortDescriptionConstant  = "Commit with a message derived from the current branch"
	commitCommandLongDescriptionConstant   = "commit stages the work tree and commits with a \"type(#code): message\" subject built from the current branch name. Special branches produce \"type: message\"."
	commitCommandExampleConstant           = "brancher commit feat \"add login form\"\nbrancher commit fix \"handle empty input\" --run-ci"
	commitTypeArgumentDescriptionConstant  = "Commit types:"
	runCIFlagNameConstant                  = "run-ci"
	runCIFlagShorthandConstant             = "r"
	runCIFlagUsageConstant                 = "Append the CI token to the commit message"
	noAddFlagNameConstant                  = "no-add"
	noAddFlagShorthandConstant             = "n"
	noAddFlagUsageConstant                 = "Commit only what is already staged"
	emptyFlagNameConstant                  = "empty"
	emptyFlagShorthandConstant             = "e"
	emptyFlagUsageConstant                 = "Allow a commit without changes"
	messageWordSeparatorConstant           = " "
	helpConfigurationFailedMessageConstant = "unable to load configuration for help"
)

// LoggerProvider yields a zap logger instance.
type LoggerProvider func() *zap.Logger

// CommandBuilder assembles the commit command.
type CommandBuilder struct {
	LoggerProvider               LoggerProvider
	GitExecutor                  shared.GitExecutor
	GitRepositoryManager         shared.GitRepositoryManager
	RepositoryDetector           shared.RepositoryDetector
	WorkingDirectory             string
	HumanReadableLoggingProvider func() bool
	ConfigurationProvider        func() CommandConfiguration
	ConventionProvider           func() naming.Convention
	// ConfigurationInitializer loads configuration before help is rendered.
	ConfigurationInitializer     func(*cobra.Command) error
}

// Build constructs the commit command.
func (builder *CommandBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:               commitCommandUseConstant,
		Short:             commitCommandShortDescriptionConstant,
		Long:              builder.longDescription(),
		Example:           commitCommandExampleConstant,
		Args:              cobra.MinimumNArgs(2),
		RunE:              builder.run,
		ValidArgsFunction: builder.completeCommitType,
	}

	command.Flags().BoolP(runCIFlagNameConstant, runCIFlagShorthandConstant, false, runCIFlagUsageConstant)
	command.Flags().BoolP(noAddFlagNameConstant, noAddFlagShorthandConstant, false, noAddFlagUsageConstant)
	command.Flags().BoolP(emptyFlagNameConstant, emptyFlagShorthandConstant, false, emptyFlagUsageConstant)

	defaultHelp := command.HelpFunc()
	command.SetHelpFunc(func(helpCommand *cobra.Command, arguments []string) {
		if builder.ConfigurationInitializer != nil {
			if initializationError := builder.ConfigurationInitializer(helpCommand); initializationError != nil {
				builder.resolveLogger().Debug(helpConfigurationFailedMessageConstant, zap.Error(initializationError))
			}
		}
		helpCommand.Long = builder.longDescription()
		defaultHelp(helpCommand, arguments)
	})

	return command, nil
}

func (builder *CommandBuilder) longDescription() string {
	return commitCommandLongDescriptionConstant + "\n\n" + commitTypeArgumentDescriptionConstant + " " + flagutils.FormatChoiceUsage("", builder.resolveConfiguration().Types, "")
}

func (builder *CommandBuilder) run(command *cobra.Command, arguments []string) error {
	runCI, _ := command.Flags().GetBool(runCIFlagNameConstant)
	skipStaging, _ := command.Flags().GetBool(noAddFlagNameConstant)
	allowEmpty, _ := command.Flags().GetBool(emptyFlagNameConstant)

	service, repositoryPath, serviceError := builder.buildService(command)
	if serviceError != nil {
		return serviceError
	}

	_, commitError := service.Commit(command.Context(), CommitOptions{
		RepositoryPath: repositoryPath,
		CommitType:     arguments[0],
		Message:        strings.Join(arguments[1:], messageWordSeparatorConstant),
		RunCI:          runCI,
		SkipStaging:    skipStaging,
		AllowEmpty:     allowEmpty,
	})
	return commitError
}

func (builder *CommandBuilder) buildService(command *cobra.Command) (*Service, string, error) {
	logger := builder.resolveLogger()
	runtime, runtimeError := dependencies.ResolveRuntime(dependencies.RuntimeOptions{
		Logger:               logger,
		GitExecutor:          builder.GitExecutor,
		RepositoryManager:    builder.GitRepositoryManager,
		RepositoryDetector:   builder.RepositoryDetector,
		WorkingDirectory:     builder.resolveWorkingDirectory(command),
		HumanReadableLogging: builder.resolveHumanReadableLogging(),
	})
	if runtimeError != nil {
		return nil, "", runtimeError
	}

	configuration := builder.resolveConfiguration()
	convention := builder.resolveConvention()
	service, serviceError := NewService(ServiceDependencies{
		RepositoryManager: runtime.RepositoryManager,
		Convention:        convention,
		CommitTypes:       configuration.Types,
		Formatter:         Formatter{CIToken: configuration.CIToken, CodePrefix: convention.CodePrefix},
		Logger:            logger,
	})
	if serviceError != nil {
		return nil, "", serviceError
	}
	return service, runtime.RepositoryPath, nil
}

func (builder *CommandBuilder) completeCommitType(_ *cobra.Command, arguments []string, _ string) ([]string, cobra.ShellCompDirective) {
	if len(arguments) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return builder.resolveConfiguration().Types, cobra.ShellCompDirectiveNoFileComp
}

func (builder *CommandBuilder) resolveConfiguration() CommandConfiguration {
	if builder.ConfigurationProvider == nil {
		return DefaultCommandConfiguration()
	}
	return builder.ConfigurationProvider().Sanitize()
}

func (builder *CommandBuilder) resolveConvention() naming.Convention {
	if builder.ConventionProvider == nil {
		return naming.DefaultConvention()
	}
	return builder.ConventionProvider().Sanitize()
}

func (builder *CommandBuilder) resolveLogger() *zap.Logger {
	if builder.LoggerProvider == nil {
		return zap.NewNop()
	}
	logger := builder.LoggerProvider()
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}

func (builder *CommandBuilder) resolveHumanReadableLogging() bool {
	if builder.HumanReadableLoggingProvider == nil {
		return false
	}
	return builder.HumanReadableLoggingProvider()
}

func (builder *CommandBuilder) resolveWorkingDirectory(command *cobra.Command) string {
	if len(strings.TrimSpace(builder.WorkingDirectory)) > 0 {
		return builder.WorkingDirectory
	}
	if command == nil {
		return ""
	}
	repositoryPath, available := utils.NewCommandContextAccessor().RepositoryPath(command.Context())
	if !available {
		return ""
	}
	return repositoryPath
}
