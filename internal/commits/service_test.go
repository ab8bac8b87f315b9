package commits

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/temirov/brancher/internal/flowerror"
	"github.com/temirov/brancher/internal/naming"
	"github.com/temirov/brancher/internal/repos/shared"
)

const testRepositoryPathConstant = "/workspace/repo"

func newTestService(t *testing.T, manager *stubRepositoryManager) *Service {
	t.Helper()
	service, serviceError := NewService(ServiceDependencies{RepositoryManager: manager, Convention: naming.DefaultConvention()})
	require.NoError(t, serviceError)
	return service
}

func TestNewServiceRequiresRepositoryManager(t *testing.T) {
	_, serviceError := NewService(ServiceDependencies{})
	require.ErrorIs(t, serviceError, ErrRepositoryManagerNotConfigured)
}

func TestCommitStagesAndCommits(t *testing.T) {
	testCases := []struct {
		name               string
		options            CommitOptions
		expectedOperations []string
		expectedCommit     shared.CommitOptions
	}{
		{
			name:               "default",
			options:            CommitOptions{CommitType: "feat", Message: "add form"},
			expectedOperations: []string{"current", "add", "commit"},
			expectedCommit:     shared.CommitOptions{Message: "feat(#1234): add form"},
		},
		{
			name:               "no_add",
			options:            CommitOptions{CommitType: "fix", Message: "typo", SkipStaging: true},
			expectedOperations: []string{"current", "commit"},
			expectedCommit:     shared.CommitOptions{Message: "fix(#1234): typo"},
		},
		{
			name:               "empty_with_ci",
			options:            CommitOptions{CommitType: "chore", Message: "retrigger", RunCI: true, AllowEmpty: true},
			expectedOperations: []string{"current", "add", "commit"},
			expectedCommit:     shared.CommitOptions{Message: "chore(#1234): retrigger (run_ci)", AllowEmpty: true},
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			manager := &stubRepositoryManager{currentBranch: "feature/1234_login"}
			service := newTestService(t, manager)

			options := testCase.options
			options.RepositoryPath = testRepositoryPathConstant
			result, commitError := service.Commit(context.Background(), options)
			require.NoError(t, commitError)

			require.Equal(t, testCase.expectedOperations, manager.operations)
			require.Equal(t, []shared.CommitOptions{testCase.expectedCommit}, manager.commits)
			require.Equal(t, Result{BranchName: "feature/1234_login", Message: testCase.expectedCommit.Message}, result)
			for _, repositoryPath := range manager.repositoryPaths {
				require.Equal(t, testRepositoryPathConstant, repositoryPath)
			}
		})
	}
}

func TestCommitValidatesBranchBeforeCommitType(t *testing.T) {
	manager := &stubRepositoryManager{currentBranch: "bugfix/12_x"}
	service := newTestService(t, manager)

	_, commitError := service.Commit(context.Background(), CommitOptions{RepositoryPath: testRepositoryPathConstant, CommitType: "unknown", Message: "x"})
	require.ErrorIs(t, commitError, flowerror.KindNameFormat)
	require.Equal(t, []string{"current"}, manager.operations)
}

func TestCommitRejectsUnknownCommitType(t *testing.T) {
	manager := &stubRepositoryManager{currentBranch: "develop"}
	service := newTestService(t, manager)

	_, commitError := service.Commit(context.Background(), CommitOptions{RepositoryPath: testRepositoryPathConstant, CommitType: "feature", Message: "x"})
	require.ErrorIs(t, commitError, flowerror.KindCommitType)
	require.Empty(t, manager.commits)
}

func TestCommitPropagatesGitFailures(t *testing.T) {
	testCases := []struct {
		name         string
		manager      *stubRepositoryManager
		expectedKind flowerror.Kind
		commitCount  int
	}{
		{
			name:         "current_branch",
			manager:      &stubRepositoryManager{currentBranchError: flowerror.New(flowerror.KindGit)},
			expectedKind: flowerror.KindGit,
		},
		{
			name:         "stage",
			manager:      &stubRepositoryManager{currentBranch: "main", stageError: flowerror.New(flowerror.KindAdd)},
			expectedKind: flowerror.KindAdd,
		},
		{
			name:         "commit",
			manager:      &stubRepositoryManager{currentBranch: "main", commitError: flowerror.New(flowerror.KindCommit)},
			expectedKind: flowerror.KindCommit,
			commitCount:  1,
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			service := newTestService(t, testCase.manager)
			_, commitError := service.Commit(context.Background(), CommitOptions{RepositoryPath: testRepositoryPathConstant, CommitType: "feat", Message: "x"})
			require.ErrorIs(t, commitError, testCase.expectedKind)
			require.Len(t, testCase.manager.commits, testCase.commitCount)
		})
	}
}

func TestCommitUsesConventionCodePrefix(t *testing.T) {
	convention := naming.DefaultConvention()
	convention.CodePrefix = "RCT-"
	manager := &stubRepositoryManager{currentBranch: "hotfix/RCT-88_crash"}
	service, serviceError := NewService(ServiceDependencies{RepositoryManager: manager, Convention: convention})
	require.NoError(t, serviceError)

	result, commitError := service.Commit(context.Background(), CommitOptions{RepositoryPath: testRepositoryPathConstant, CommitType: "fix", Message: "guard nil"})
	require.NoError(t, commitError)
	require.Equal(t, "fix(RCT-88): guard nil", result.Message)
}

func TestTriggerCICommitsAndPushes(t *testing.T) {
	observerCore, observedLogs := observer.New(zap.InfoLevel)
	manager := &stubRepositoryManager{currentBranch: "feature/12_x"}
	service, serviceError := NewService(ServiceDependencies{RepositoryManager: manager, Convention: naming.DefaultConvention(), Logger: zap.New(observerCore)})
	require.NoError(t, serviceError)

	result, triggerError := service.TriggerCI(context.Background(), TriggerOptions{RepositoryPath: testRepositoryPathConstant})
	require.NoError(t, triggerError)

	require.Equal(t, "chore(#12): (run_ci)", result.Message)
	require.Equal(t, []string{"current", "add", "commit", "push"}, manager.operations)
	require.Equal(t, []shared.CommitOptions{{Message: "chore(#12): (run_ci)", AllowEmpty: true}}, manager.commits)
	require.Equal(t, []string{"origin"}, manager.pushedRemotes)
	require.Equal(t, 1, observedLogs.FilterMessage(continuousIntegrationPushedConstant).Len())
}

func TestTriggerCIOnSpecialBranchUsesCustomRemote(t *testing.T) {
	manager := &stubRepositoryManager{currentBranch: "master"}
	service := newTestService(t, manager)

	result, triggerError := service.TriggerCI(context.Background(), TriggerOptions{RepositoryPath: testRepositoryPathConstant, RemoteName: "upstream"})
	require.NoError(t, triggerError)
	require.Equal(t, "chore: (run_ci)", result.Message)
	require.Equal(t, []string{"upstream"}, manager.pushedRemotes)
}

func TestTriggerCIStopsWhenPushFails(t *testing.T) {
	pushFailure := flowerror.Wrap(flowerror.KindGit, errors.New("rejected"))
	manager := &stubRepositoryManager{currentBranch: "feature/12_x", pushError: pushFailure}
	service := newTestService(t, manager)

	_, triggerError := service.TriggerCI(context.Background(), TriggerOptions{RepositoryPath: testRepositoryPathConstant})
	require.ErrorIs(t, triggerError, flowerror.KindGit)
	require.Len(t, manager.commits, 1)
}
