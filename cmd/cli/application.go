package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime/debug"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/temirov/brancher/internal/branches"
	"github.com/temirov/brancher/internal/branches/checkout"
	"github.com/temirov/brancher/internal/branches/create"
	"github.com/temirov/brancher/internal/branches/list"
	"github.com/temirov/brancher/internal/commits"
	"github.com/temirov/brancher/internal/flowerror"
	"github.com/temirov/brancher/internal/naming"
	"github.com/temirov/brancher/internal/utils"
	flagutils "github.com/temirov/brancher/internal/utils/flags"
)

const (
	applicationNameConstant                  = "brancher"
	applicationShortDescriptionConstant      = "Git workflow helper built around feature/<code>_<title> branch names"
	applicationLongDescriptionConstant       = "brancher enforces the feature|hotfix/<code>_<title> branch naming convention and wraps committing, branch creation, checkout by code, listing and CI triggering around it."
	configFileFlagNameConstant               = "config"
	configFileFlagUsageConstant              = "Optional path to a configuration file (YAML or JSON)."
	logLevelFlagNameConstant                 = "log-level"
	logLevelFlagDescriptionConstant          = "Override the configured log level."
	logFormatFlagNameConstant                = "log-format"
	logFormatFlagDescriptionConstant         = "Override the configured log format."
	directoryFlagNameConstant                = "directory"
	directoryFlagShorthandConstant           = "C"
	directoryFlagUsageConstant               = "Run as if brancher was started in this directory."
	environmentPrefixConstant                = "BRANCHER"
	configurationSearchPathEnvironmentName   = "BRANCHER_CONFIG_SEARCH_PATH"
	configurationNameConstant                = "config"
	configurationTypeConstant                = "yaml"
	defaultConfigurationSearchPathConstant   = "."
	configurationInitializedMessageConstant  = "configuration initialized"
	configurationLogLevelFieldConstant       = "log_level"
	configurationLogFormatFieldConstant      = "log_format"
	configurationFileFieldConstant           = "config_file"
	configurationLoadErrorTemplateConstant   = "unable to load configuration: %w"
	loggerCreationErrorTemplateConstant      = "unable to create logger: %w"
	loggerSyncErrorTemplateConstant          = "unable to flush logger: %w"
	commandFailedMessageConstant             = "command failed"
	logFieldErrorKindConstant                = "error_kind"
	developmentVersionConstant               = "dev"
	commonLogLevelConfigurationKeyConstant   = "common.log_level"
	commonLogFormatConfigurationKeyConstant  = "common.log_format"
	pushRemoteConfigurationKeyConstant       = "push.remote"
	commitsCITokenConfigurationKeyConstant   = "commits.ci_token"
	namingCodePrefixConfigurationKeyConstant = "naming.code_prefix"
	commonLogFileConfigurationKeyConstant    = "common.log_file"
	loggerNotInitializedMessageConstant      = "logger not initialized"
)

// ApplicationConfiguration describes the persisted configuration for the CLI entrypoint.
type ApplicationConfiguration struct {
	Common  ApplicationCommonConfiguration `mapstructure:"common"`
	Naming  naming.Convention              `mapstructure:"naming"`
	Commits commits.CommandConfiguration   `mapstructure:"commits"`
	Push    commits.PushConfiguration      `mapstructure:"push"`
}

// ApplicationCommonConfiguration stores logging configuration shared across commands.
type ApplicationCommonConfiguration struct {
	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"`
	LogFile   string `mapstructure:"log_file"`
}

// Application wires the Cobra root command, configuration loader, and structured logger.
type Application struct {
	rootCommand            *cobra.Command
	configurationLoader    *utils.ConfigurationLoader
	loggerFactory          *utils.LoggerFactory
	logger                 *zap.Logger
	configuration          ApplicationConfiguration
	configurationMetadata  utils.LoadedConfiguration
	configurationFilePath  string
	logLevelFlagValue      string
	logFormatFlagValue     string
	directoryFlagValue     string
	commandContextAccessor utils.CommandContextAccessor
}

// NewApplication assembles a fully wired CLI application instance.
func NewApplication() *Application {
	configurationLoader := utils.NewConfigurationLoader(
		configurationNameConstant,
		configurationTypeConstant,
		environmentPrefixConstant,
		resolveConfigurationSearchPaths(),
	)
	embeddedConfiguration, embeddedConfigurationType := EmbeddedDefaultConfiguration()
	configurationLoader.SetEmbeddedConfiguration(embeddedConfiguration, embeddedConfigurationType)

	application := &Application{
		configurationLoader:    configurationLoader,
		loggerFactory:          utils.NewLoggerFactory(),
		logger:                 zap.NewNop(),
		commandContextAccessor: utils.NewCommandContextAccessor(),
	}

	cobraCommand := &cobra.Command{
		Use:           applicationNameConstant,
		Short:         applicationShortDescriptionConstant,
		Long:          applicationLongDescriptionConstant,
		Version:       resolveVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(command *cobra.Command, arguments []string) error {
			return application.initializeConfiguration(command)
		},
		RunE: func(command *cobra.Command, arguments []string) error {
			return command.Help()
		},
	}

	cobraCommand.SetContext(context.Background())
	persistentFlags := cobraCommand.PersistentFlags()
	persistentFlags.StringVar(&application.configurationFilePath, configFileFlagNameConstant, "", configFileFlagUsageConstant)
	persistentFlags.StringVar(&application.logLevelFlagValue, logLevelFlagNameConstant, "", flagutils.FormatChoiceUsage(
		string(utils.LogLevelWarn),
		[]string{string(utils.LogLevelDebug), string(utils.LogLevelInfo), string(utils.LogLevelWarn), string(utils.LogLevelError)},
		logLevelFlagDescriptionConstant,
	))
	persistentFlags.StringVar(&application.logFormatFlagValue, logFormatFlagNameConstant, "", flagutils.FormatChoiceUsage(
		string(utils.LogFormatConsole),
		[]string{string(utils.LogFormatConsole), string(utils.LogFormatStructured)},
		logFormatFlagDescriptionConstant,
	))
	persistentFlags.StringVarP(&application.directoryFlagValue, directoryFlagNameConstant, directoryFlagShorthandConstant, "", directoryFlagUsageConstant)

	loggerProvider := func() *zap.Logger {
		return application.logger
	}
	conventionProvider := func() naming.Convention {
		return application.configuration.Naming
	}
	commitsConfigurationProvider := func() commits.CommandConfiguration {
		return application.configuration.Commits
	}
	branchDependencies := branches.CommandDependencies{
		LoggerProvider:               loggerProvider,
		HumanReadableLoggingProvider: application.humanReadableLoggingEnabled,
		ConventionProvider:           conventionProvider,
	}

	commitBuilder := commits.CommandBuilder{
		LoggerProvider:               loggerProvider,
		HumanReadableLoggingProvider: application.humanReadableLoggingEnabled,
		ConfigurationProvider:        commitsConfigurationProvider,
		ConventionProvider:           conventionProvider,
		ConfigurationInitializer:     application.initializeConfiguration,
	}
	commitCommand, commitBuildError := commitBuilder.Build()
	if commitBuildError == nil {
		cobraCommand.AddCommand(commitCommand)
	}

	runCIBuilder := commits.RunCICommandBuilder{
		CommandBuilder: commitBuilder,
		PushConfigurationProvider: func() commits.PushConfiguration {
			return application.configuration.Push
		},
	}
	runCICommand, runCIBuildError := runCIBuilder.Build()
	if runCIBuildError == nil {
		cobraCommand.AddCommand(runCICommand)
	}

	createBuilder := create.CommandBuilder{CommandDependencies: branchDependencies}
	createCommand, createBuildError := createBuilder.Build()
	if createBuildError == nil {
		cobraCommand.AddCommand(createCommand)
	}

	checkoutBuilder := checkout.CommandBuilder{CommandDependencies: branchDependencies}
	checkoutCommand, checkoutBuildError := checkoutBuilder.Build()
	if checkoutBuildError == nil {
		cobraCommand.AddCommand(checkoutCommand)
	}

	listBuilder := list.CommandBuilder{CommandDependencies: branchDependencies}
	listCommand, listBuildError := listBuilder.Build()
	if listBuildError == nil {
		cobraCommand.AddCommand(listCommand)
	}

	application.rootCommand = cobraCommand

	return application
}

// Execute runs the configured Cobra command hierarchy and ensures logger flushing.
func (application *Application) Execute() error {
	executionError := application.rootCommand.Execute()
	if executionError != nil {
		application.logFailure(executionError)
	}
	if syncError := application.flushLogger(); syncError != nil && executionError == nil {
		return fmt.Errorf(loggerSyncErrorTemplateConstant, syncError)
	}
	return executionError
}

// Execute builds a fresh application instance and executes the root command hierarchy.
func Execute() error {
	return NewApplication().Execute()
}

// SetArguments overrides the command-line arguments used by Execute.
func (application *Application) SetArguments(arguments []string) {
	application.rootCommand.SetArgs(arguments)
}

// RootCommand exposes the Cobra root command.
func (application *Application) RootCommand() *cobra.Command {
	return application.rootCommand
}

// Configuration returns the configuration resolved by the last initialization.
func (application *Application) Configuration() ApplicationConfiguration {
	return application.configuration
}

// Logger returns the logger created by the last initialization.
func (application *Application) Logger() *zap.Logger {
	return application.logger
}

// InitializeForCommand loads configuration and logging as if the named subcommand were executed.
func (application *Application) InitializeForCommand(commandName string) error {
	targetCommand, _, findError := application.rootCommand.Find([]string{commandName})
	if findError != nil || targetCommand == nil {
		targetCommand = application.rootCommand
	}
	if targetCommand.Context() == nil {
		targetCommand.SetContext(context.Background())
	}
	return application.initializeConfiguration(targetCommand)
}

func (application *Application) initializeConfiguration(command *cobra.Command) error {
	defaultValues := map[string]any{
		commonLogLevelConfigurationKeyConstant:   string(utils.LogLevelWarn),
		commonLogFormatConfigurationKeyConstant:  string(utils.LogFormatConsole),
		commonLogFileConfigurationKeyConstant:    "",
		namingCodePrefixConfigurationKeyConstant: "",
		commitsCITokenConfigurationKeyConstant:   commits.DefaultCIToken,
		pushRemoteConfigurationKeyConstant:       commits.DefaultPushConfiguration().RemoteName,
	}

	application.configuration = ApplicationConfiguration{}
	loadedConfiguration, loadError := application.configurationLoader.LoadConfiguration(application.configurationFilePath, defaultValues, &application.configuration)
	if loadError != nil {
		return fmt.Errorf(configurationLoadErrorTemplateConstant, loadError)
	}

	application.configurationMetadata = loadedConfiguration
	application.configuration.Naming = application.configuration.Naming.Sanitize()
	application.configuration.Commits = application.configuration.Commits.Sanitize()
	application.configuration.Push = application.configuration.Push.Sanitize()

	if application.persistentFlagChanged(command, logLevelFlagNameConstant) {
		application.configuration.Common.LogLevel = application.logLevelFlagValue
	}

	if application.persistentFlagChanged(command, logFormatFlagNameConstant) {
		application.configuration.Common.LogFormat = application.logFormatFlagValue
	}

	logger, loggerCreationError := application.loggerFactory.CreateLoggerWithOptions(utils.LoggerOptions{
		Level:    utils.LogLevel(application.configuration.Common.LogLevel),
		Format:   utils.LogFormat(application.configuration.Common.LogFormat),
		FilePath: application.configuration.Common.LogFile,
	})
	if loggerCreationError != nil {
		return fmt.Errorf(loggerCreationErrorTemplateConstant, loggerCreationError)
	}

	application.logger = logger

	application.logger.Debug(
		configurationInitializedMessageConstant,
		zap.String(configurationLogLevelFieldConstant, application.configuration.Common.LogLevel),
		zap.String(configurationLogFormatFieldConstant, application.configuration.Common.LogFormat),
		zap.String(configurationFileFieldConstant, application.configurationMetadata.ConfigFileUsed),
	)

	if command != nil {
		updatedContext := application.commandContextAccessor.WithConfigurationFilePath(
			command.Context(),
			application.configurationMetadata.ConfigFileUsed,
		)
		if directory := strings.TrimSpace(application.directoryFlagValue); len(directory) > 0 {
			updatedContext = application.commandContextAccessor.WithRepositoryPath(updatedContext, directory)
		}
		command.SetContext(updatedContext)
	}

	return nil
}

func (application *Application) humanReadableLoggingEnabled() bool {
	logFormatValue := strings.TrimSpace(application.configuration.Common.LogFormat)
	return strings.EqualFold(logFormatValue, string(utils.LogFormatConsole))
}

func (application *Application) logFailure(executionError error) {
	if application.logger == nil {
		return
	}
	var domainError flowerror.Error
	if !errors.As(executionError, &domainError) || domainError.Cause == nil {
		return
	}
	fields := []zap.Field{
		zap.String(logFieldErrorKindConstant, string(domainError.Kind)),
		zap.Error(domainError.Cause),
	}
	application.logger.Debug(commandFailedMessageConstant, fields...)
}

func (application *Application) flushLogger() error {
	if application.logger == nil {
		return errors.New(loggerNotInitializedMessageConstant)
	}

	syncError := application.logger.Sync()
	switch {
	case syncError == nil:
		return nil
	case errors.Is(syncError, syscall.ENOTSUP):
		return nil
	case errors.Is(syncError, syscall.EINVAL):
		return nil
	default:
		return syncError
	}
}

func (application *Application) persistentFlagChanged(command *cobra.Command, flagName string) bool {
	if command == nil {
		return false
	}

	flagSetsToInspect := []*pflag.FlagSet{
		command.PersistentFlags(),
		command.InheritedFlags(),
	}

	rootCommand := command.Root()
	if rootCommand != nil {
		flagSetsToInspect = append(flagSetsToInspect, rootCommand.PersistentFlags())
	}

	for _, flagSet := range flagSetsToInspect {
		if flagSet == nil {
			continue
		}

		if flagSet.Changed(flagName) {
			return true
		}
	}

	return false
}

func resolveConfigurationSearchPaths() []string {
	if overridden := strings.TrimSpace(os.Getenv(configurationSearchPathEnvironmentName)); len(overridden) > 0 {
		return filepath.SplitList(overridden)
	}

	searchPaths := []string{defaultConfigurationSearchPathConstant}
	if userConfigurationDirectory, directoryError := os.UserConfigDir(); directoryError == nil {
		searchPaths = append(searchPaths, filepath.Join(userConfigurationDirectory, applicationNameConstant))
	}
	return searchPaths
}

func resolveVersion() string {
	buildInformation, available := debug.ReadBuildInfo()
	if !available {
		return developmentVersionConstant
	}
	version := strings.TrimSpace(buildInformation.Main.Version)
	if len(version) == 0 || version == "(devel)" {
		return developmentVersionConstant
	}
	return version
}
