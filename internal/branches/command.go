package branches

import (
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/temirov/brancher/internal/naming"
	"github.com/temirov/brancher/internal/repos/dependencies"
	"github.com/temirov/brancher/internal/repos/shared"
	"github.com/temirov/brancher/internal/utils"
)

// LoggerProvider supplies a zap logger instance.
type LoggerProvider func() *zap.Logger

// CommandDependencies enumerates the injectable collaborators of a branch command.
type CommandDependencies struct {
	LoggerProvider               LoggerProvider
	GitExecutor                  shared.GitExecutor
	GitRepositoryManager         shared.GitRepositoryManager
	RepositoryDetector           shared.RepositoryDetector
	WorkingDirectory             string
	HumanReadableLoggingProvider func() bool
	ConventionProvider           func() naming.Convention
}

// ResolveLogger returns the configured logger or a no-op logger.
func (commandDependencies CommandDependencies) ResolveLogger() *zap.Logger {
	if commandDependencies.LoggerProvider == nil {
		return zap.NewNop()
	}
	logger := commandDependencies.LoggerProvider()
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}

// ResolveConvention returns the configured naming convention or the default one.
func (commandDependencies CommandDependencies) ResolveConvention() naming.Convention {
	if commandDependencies.ConventionProvider == nil {
		return naming.DefaultConvention()
	}
	return commandDependencies.ConventionProvider().Sanitize()
}

// ResolveRuntime confirms the command runs inside a repository and wires its repository manager.
func (commandDependencies CommandDependencies) ResolveRuntime(command *cobra.Command) (dependencies.Runtime, error) {
	humanReadableLogging := false
	if commandDependencies.HumanReadableLoggingProvider != nil {
		humanReadableLogging = commandDependencies.HumanReadableLoggingProvider()
	}
	return dependencies.ResolveRuntime(dependencies.RuntimeOptions{
		Logger:               commandDependencies.ResolveLogger(),
		GitExecutor:          commandDependencies.GitExecutor,
		RepositoryManager:    commandDependencies.GitRepositoryManager,
		RepositoryDetector:   commandDependencies.RepositoryDetector,
		WorkingDirectory:     commandDependencies.resolveWorkingDirectory(command),
		HumanReadableLogging: humanReadableLogging,
	})
}

func (commandDependencies CommandDependencies) resolveWorkingDirectory(command *cobra.Command) string {
	if len(strings.TrimSpace(commandDependencies.WorkingDirectory)) > 0 {
		return commandDependencies.WorkingDirectory
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
