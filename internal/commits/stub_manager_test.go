package commits

import (
	"context"

	"github.com/temirov/brancher/internal/repos/shared"
)

type stubRepositoryManager struct {
	currentBranch      string
	currentBranchError error
	stageError         error
	commitError        error
	pushError          error
	operations         []string
	commits            []shared.CommitOptions
	pushedRemotes      []string
	repositoryPaths    []string
}

func (manager *stubRepositoryManager) CurrentBranch(_ context.Context, repositoryPath string) (string, error) {
	manager.record("current", repositoryPath)
	return manager.currentBranch, manager.currentBranchError
}

func (manager *stubRepositoryManager) ListBranches(_ context.Context, repositoryPath string) ([]string, error) {
	manager.record("list", repositoryPath)
	return nil, nil
}

func (manager *stubRepositoryManager) StageAll(_ context.Context, repositoryPath string) error {
	manager.record("add", repositoryPath)
	return manager.stageError
}

func (manager *stubRepositoryManager) Commit(_ context.Context, repositoryPath string, options shared.CommitOptions) error {
	manager.record("commit", repositoryPath)
	manager.commits = append(manager.commits, options)
	return manager.commitError
}

func (manager *stubRepositoryManager) Checkout(_ context.Context, repositoryPath string, _ string) error {
	manager.record("checkout", repositoryPath)
	return nil
}

func (manager *stubRepositoryManager) CreateBranch(_ context.Context, repositoryPath string, _ string, _ string) error {
	manager.record("create", repositoryPath)
	return nil
}

func (manager *stubRepositoryManager) PushUpstream(_ context.Context, repositoryPath string, remoteName string) error {
	manager.record("push", repositoryPath)
	manager.pushedRemotes = append(manager.pushedRemotes, remoteName)
	return manager.pushError
}

func (manager *stubRepositoryManager) record(operation string, repositoryPath string) {
	manager.operations = append(manager.operations, operation)
	manager.repositoryPaths = append(manager.repositoryPaths, repositoryPath)
}

type stubRepositoryDetector struct {
	err error
}

func (detector stubRepositoryDetector) DetectRepository(path string) (string, error) {
	return path, detector.err
}
