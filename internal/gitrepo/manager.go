package gitrepo

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/temirov/brancher/internal/execshell"
	"github.com/temirov/brancher/internal/flowerror"
	"github.com/temirov/brancher/internal/repos/shared"
)

const (
	gitExecutorMissingMessageConstant  = "git executor not configured"
	gitBranchSubcommandConstant        = "branch"
	gitShowCurrentFlagConstant         = "--show-current"
	gitAllBranchesFlagConstant         = "-a"
	gitAddSubcommandConstant           = "add"
	gitAddAllPathspecConstant          = "."
	gitCommitSubcommandConstant        = "commit"
	gitAllowEmptyFlagConstant          = "--allow-empty"
	gitMessageFlagConstant             = "-m"
	gitCheckoutSubcommandConstant      = "checkout"
	gitCreateBranchFlagConstant        = "-b"
	gitPushSubcommandConstant          = "push"
	gitSetUpstreamFlagConstant         = "-u"
	gitHeadReferenceConstant           = "HEAD"
	currentBranchMarkerConstant        = "* "
	linkedWorktreeBranchMarkerConstant = "+ "
	symbolicReferenceSeparatorConstant = " -> "
	branchListLineSeparatorConstant    = "\n"
)

// ErrGitExecutorNotConfigured indicates the manager was built without an executor.
var ErrGitExecutorNotConfigured = errors.New(gitExecutorMissingMessageConstant)

// RepositoryManager performs git operations for a single working directory.
type RepositoryManager struct {
	executor shared.GitExecutor
}

// NewRepositoryManager constructs a RepositoryManager.
func NewRepositoryManager(executor shared.GitExecutor) (*RepositoryManager, error) {
	if executor == nil {
		return nil, ErrGitExecutorNotConfigured
	}
	return &RepositoryManager{executor: executor}, nil
}

// CurrentBranch returns the checked-out branch name, empty when HEAD is detached.
func (manager *RepositoryManager) CurrentBranch(executionContext context.Context, repositoryPath string) (string, error) {
	output, executionError := manager.readOutput(executionContext, repositoryPath, gitBranchSubcommandConstant, gitShowCurrentFlagConstant)
	if executionError != nil {
		return "", executionError
	}
	return strings.TrimSpace(output), nil
}

// ListBranches returns local and remote-tracking branch names in git's order.
func (manager *RepositoryManager) ListBranches(executionContext context.Context, repositoryPath string) ([]string, error) {
	output, executionError := manager.readOutput(executionContext, repositoryPath, gitBranchSubcommandConstant, gitAllBranchesFlagConstant)
	if executionError != nil {
		return nil, executionError
	}
	return ParseBranchList(output), nil
}

// StageAll runs `git add .`.
func (manager *RepositoryManager) StageAll(executionContext context.Context, repositoryPath string) error {
	return manager.run(executionContext, flowerror.KindAdd, repositoryPath, gitAddSubcommandConstant, gitAddAllPathspecConstant)
}

// Commit records a commit with the provided message.
func (manager *RepositoryManager) Commit(executionContext context.Context, repositoryPath string, options shared.CommitOptions) error {
	arguments := []string{gitCommitSubcommandConstant}
	if options.AllowEmpty {
		arguments = append(arguments, gitAllowEmptyFlagConstant)
	}
	arguments = append(arguments, gitMessageFlagConstant, options.Message)
	return manager.run(executionContext, flowerror.KindCommit, repositoryPath, arguments...)
}

// Checkout switches to an existing branch.
func (manager *RepositoryManager) Checkout(executionContext context.Context, repositoryPath string, branchName string) error {
	return manager.run(executionContext, flowerror.KindGit, repositoryPath, gitCheckoutSubcommandConstant, branchName)
}

// CreateBranch creates and switches to a branch. An empty start point branches from HEAD.
func (manager *RepositoryManager) CreateBranch(executionContext context.Context, repositoryPath string, branchName string, startPoint string) error {
	arguments := []string{gitCheckoutSubcommandConstant, gitCreateBranchFlagConstant, branchName}
	if len(startPoint) > 0 {
		arguments = append(arguments, startPoint)
	}
	return manager.run(executionContext, flowerror.KindGit, repositoryPath, arguments...)
}

// PushUpstream pushes HEAD to the remote and records it as the upstream.
func (manager *RepositoryManager) PushUpstream(executionContext context.Context, repositoryPath string, remoteName string) error {
	trimmedRemote := strings.TrimSpace(remoteName)
	if len(trimmedRemote) == 0 {
		trimmedRemote = shared.OriginRemoteNameConstant
	}
	return manager.run(executionContext, flowerror.KindGit, repositoryPath, gitPushSubcommandConstant, gitSetUpstreamFlagConstant, trimmedRemote, gitHeadReferenceConstant)
}

func (manager *RepositoryManager) run(executionContext context.Context, failureKind flowerror.Kind, repositoryPath string, arguments ...string) error {
	_, executionError := manager.executor.ExecuteGit(executionContext, execshell.CommandDetails{
		Arguments:        arguments,
		WorkingDirectory: repositoryPath,
	})
	if executionError != nil {
		return flowerror.Wrap(failureKind, executionError)
	}
	return nil
}

func (manager *RepositoryManager) readOutput(executionContext context.Context, repositoryPath string, arguments ...string) (string, error) {
	executionResult, executionError := manager.executor.ExecuteGit(executionContext, execshell.CommandDetails{
		Arguments:        arguments,
		WorkingDirectory: repositoryPath,
	})
	if executionError != nil {
		return "", flowerror.Wrap(flowerror.KindGit, executionError)
	}
	if !utf8.ValidString(executionResult.StandardOutput) {
		return "", flowerror.New(flowerror.KindStringFormat)
	}
	return executionResult.StandardOutput, nil
}

// ParseBranchList converts `git branch -a` output into branch names. The
// current-branch and linked-worktree markers are stripped, symbolic references are cut at their
// arrow, and blank lines are skipped.
func ParseBranchList(output string) []string {
	var branches []string
	for _, line := range strings.Split(output, branchListLineSeparatorConstant) {
		trimmedLine := strings.TrimSpace(line)
		if len(trimmedLine) == 0 {
			continue
		}
		trimmedLine = strings.TrimPrefix(trimmedLine, currentBranchMarkerConstant)
		trimmedLine = strings.TrimPrefix(trimmedLine, linkedWorktreeBranchMarkerConstant)
		if separatorIndex := strings.Index(trimmedLine, symbolicReferenceSeparatorConstant); separatorIndex >= 0 {
			trimmedLine = trimmedLine[:separatorIndex]
		}
		trimmedLine = strings.TrimSpace(trimmedLine)
		if len(trimmedLine) == 0 {
			continue
		}
		branches = append(branches, trimmedLine)
	}
	return branches
}
