package shared

import (
	"context"

	"github.com/temirov/brancher/internal/execshell"
)

// OriginRemoteNameConstant identifies the default remote that branches are pushed to.
const OriginRemoteNameConstant = "origin"

// GitExecutor exposes the subset of shell execution used by repository services.
type GitExecutor interface {
	ExecuteGit(executionContext context.Context, details execshell.CommandDetails) (execshell.ExecutionResult, error)
}

// CommitOptions describe a single commit.
type CommitOptions struct {
	Message    string
	AllowEmpty bool
}

// GitRepositoryManager exposes the repository-level git operations brancher performs.
type GitRepositoryManager interface {
	CurrentBranch(executionContext context.Context, repositoryPath string) (string, error)
	ListBranches(executionContext context.Context, repositoryPath string) ([]string, error)
	StageAll(executionContext context.Context, repositoryPath string) error
	Commit(executionContext context.Context, repositoryPath string, options CommitOptions) error
	Checkout(executionContext context.Context, repositoryPath string, branchName string) error
	CreateBranch(executionContext context.Context, repositoryPath string, branchName string, startPoint string) error
	PushUpstream(executionContext context.Context, repositoryPath string, remoteName string) error
}

// RepositoryDetector confirms that a directory belongs to a git work tree
// and reports the work tree root.
type RepositoryDetector interface {
	DetectRepository(path string) (string, error)
}
