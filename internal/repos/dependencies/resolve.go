package dependencies

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/temirov/brancher/internal/execshell"
	"github.com/temirov/brancher/internal/flowerror"
	"github.com/temirov/brancher/internal/gitrepo"
	"github.com/temirov/brancher/internal/repos/discovery"
	"github.com/temirov/brancher/internal/repos/shared"
	"github.com/temirov/brancher/internal/ui"
)

const (
	workingDirectoryResolveTemplateConstant = "unable to determine working directory: %w"
	repositoryDetectedMessageConstant       = "repository detected"
	logFieldWorkingDirectoryConstant        = "working_directory"
	logFieldRepositoryRootConstant          = "repository_root"
)

// ResolveGitExecutor returns the provided executor or constructs a shell-backed default.
// Human-readable logging attaches a console observer that reports each git command.
func ResolveGitExecutor(existing shared.GitExecutor, logger *zap.Logger, humanReadable bool) (shared.GitExecutor, error) {
	if existing != nil {
		return existing, nil
	}

	var observers []execshell.CommandEventObserver
	if humanReadable {
		observers = append(observers, ui.NewConsoleCommandEventLogger(logger))
	}

	commandRunner := execshell.NewOSCommandRunner()
	shellExecutor, creationError := execshell.NewShellExecutor(logger, commandRunner, observers...)
	if creationError != nil {
		return nil, creationError
	}
	return shellExecutor, nil
}

// ResolveGitRepositoryManager returns the provided repository manager or constructs one from the executor.
func ResolveGitRepositoryManager(existing shared.GitRepositoryManager, executor shared.GitExecutor) (shared.GitRepositoryManager, error) {
	if existing != nil {
		return existing, nil
	}
	return gitrepo.NewRepositoryManager(executor)
}

// ResolveRepositoryDetector returns the provided detector or a go-git backed default.
func ResolveRepositoryDetector(existing shared.RepositoryDetector) shared.RepositoryDetector {
	if existing != nil {
		return existing
	}
	return discovery.NewGoGitRepositoryDetector()
}

// ResolveWorkingDirectory returns the directory git commands run in, defaulting
// to the process working directory, after confirming it belongs to a git
// repository. A directory outside any repository is reported as a Git error.
func ResolveWorkingDirectory(requested string, detector shared.RepositoryDetector, logger *zap.Logger) (string, error) {
	workingDirectory := strings.TrimSpace(requested)
	if len(workingDirectory) == 0 {
		currentDirectory, directoryError := os.Getwd()
		if directoryError != nil {
			return "", fmt.Errorf(workingDirectoryResolveTemplateConstant, directoryError)
		}
		workingDirectory = currentDirectory
	}

	repositoryRoot, detectionError := ResolveRepositoryDetector(detector).DetectRepository(workingDirectory)
	if detectionError != nil {
		return "", flowerror.Wrap(flowerror.KindGit, detectionError)
	}

	if logger != nil {
		logger.Debug(repositoryDetectedMessageConstant,
			zap.String(logFieldWorkingDirectoryConstant, workingDirectory),
			zap.String(logFieldRepositoryRootConstant, repositoryRoot),
		)
	}
	return workingDirectory, nil
}

// RuntimeOptions collects the injectable collaborators of a repository command.
// Nil collaborators are replaced with the shell-backed defaults.
type RuntimeOptions struct {
	Logger               *zap.Logger
	GitExecutor          shared.GitExecutor
	RepositoryManager    shared.GitRepositoryManager
	RepositoryDetector   shared.RepositoryDetector
	WorkingDirectory     string
	HumanReadableLogging bool
}

// Runtime is the resolved repository manager together with the directory it operates in.
type Runtime struct {
	RepositoryManager shared.GitRepositoryManager
	RepositoryPath    string
}

// ResolveRuntime confirms the working directory is a git repository and wires the repository manager for it.
func ResolveRuntime(options RuntimeOptions) (Runtime, error) {
	logger := options.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	repositoryPath, directoryError := ResolveWorkingDirectory(options.WorkingDirectory, options.RepositoryDetector, logger)
	if directoryError != nil {
		return Runtime{}, directoryError
	}

	repositoryManager := options.RepositoryManager
	if repositoryManager == nil {
		gitExecutor, executorError := ResolveGitExecutor(options.GitExecutor, logger, options.HumanReadableLogging)
		if executorError != nil {
			return Runtime{}, executorError
		}
		resolvedManager, managerError := ResolveGitRepositoryManager(nil, gitExecutor)
		if managerError != nil {
			return Runtime{}, managerError
		}
		repositoryManager = resolvedManager
	}

	return Runtime{RepositoryManager: repositoryManager, RepositoryPath: repositoryPath}, nil
}
