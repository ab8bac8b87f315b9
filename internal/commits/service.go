package commits

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/temirov/brancher/internal/naming"
	"github.com/temirov/brancher/internal/repos/shared"
)

const (
	repositoryManagerMissingMessageConstant = "repository manager not configured"
	commitCreatedMessageConstant            = "commit created"
	continuousIntegrationPushedConstant     = "continuous integration triggered"
	logFieldBranchConstant                  = "branch"
	logFieldMessageConstant                 = "message"
	logFieldRemoteConstant                  = "remote"
)

// ErrRepositoryManagerNotConfigured indicates the repository manager dependency was missing.
var ErrRepositoryManagerNotConfigured = errors.New(repositoryManagerMissingMessageConstant)

// ServiceDependencies enumerates collaborators required by the service.
type ServiceDependencies struct {
	RepositoryManager shared.GitRepositoryManager
	Convention        naming.Convention
	CommitTypes       []string
	Formatter         Formatter
	Logger            *zap.Logger
}

// CommitOptions configure a single commit.
type CommitOptions struct {
	RepositoryPath string
	CommitType     string
	Message        string
	RunCI          bool
	SkipStaging    bool
	AllowEmpty     bool
}

// TriggerOptions configure a continuous integration trigger.
type TriggerOptions struct {
	RepositoryPath string
	RemoteName     string
}

// Result reports the commit that was created.
type Result struct {
	BranchName string
	Message    string
}

// Service creates formatted commits on the current branch.
type Service struct {
	repositoryManager shared.GitRepositoryManager
	convention        naming.Convention
	commitTypes       []string
	formatter         Formatter
	logger            *zap.Logger
}

// NewService constructs a Service from the provided dependencies.
func NewService(dependencies ServiceDependencies) (*Service, error) {
	if dependencies.RepositoryManager == nil {
		return nil, ErrRepositoryManagerNotConfigured
	}
	logger := dependencies.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	formatter := dependencies.Formatter
	convention := dependencies.Convention.Sanitize()
	if len(formatter.CodePrefix) == 0 {
		formatter.CodePrefix = convention.CodePrefix
	}
	return &Service{
		repositoryManager: dependencies.RepositoryManager,
		convention:        convention,
		commitTypes:       sanitizeCommitTypes(dependencies.CommitTypes),
		formatter:         formatter,
		logger:            logger,
	}, nil
}

// Commit formats a message from the current branch, stages the work tree
// unless SkipStaging is set, and commits.
func (service *Service) Commit(executionContext context.Context, options CommitOptions) (Result, error) {
	branch, branchName, branchError := service.currentBranch(executionContext, options.RepositoryPath)
	if branchError != nil {
		return Result{}, branchError
	}

	commitType, commitTypeError := ParseCommitType(options.CommitType, service.commitTypes)
	if commitTypeError != nil {
		return Result{}, commitTypeError
	}

	message := service.formatter.Format(branch, commitType, options.Message, options.RunCI)
	if commitError := service.commit(executionContext, options.RepositoryPath, message, !options.SkipStaging, options.AllowEmpty); commitError != nil {
		return Result{}, commitError
	}

	service.logger.Info(commitCreatedMessageConstant, zap.String(logFieldBranchConstant, branchName), zap.String(logFieldMessageConstant, message))
	return Result{BranchName: branchName, Message: message}, nil
}

// TriggerCI records an empty chore commit carrying only the CI token and
// pushes HEAD upstream.
func (service *Service) TriggerCI(executionContext context.Context, options TriggerOptions) (Result, error) {
	branch, branchName, branchError := service.currentBranch(executionContext, options.RepositoryPath)
	if branchError != nil {
		return Result{}, branchError
	}

	message := service.formatter.Format(branch, commitTypeChoreConstant, "", true)
	if commitError := service.commit(executionContext, options.RepositoryPath, message, true, true); commitError != nil {
		return Result{}, commitError
	}

	remoteName := PushConfiguration{RemoteName: options.RemoteName}.Sanitize().RemoteName
	if pushError := service.repositoryManager.PushUpstream(executionContext, options.RepositoryPath, remoteName); pushError != nil {
		return Result{}, pushError
	}

	service.logger.Info(continuousIntegrationPushedConstant,
		zap.String(logFieldBranchConstant, branchName),
		zap.String(logFieldMessageConstant, message),
		zap.String(logFieldRemoteConstant, remoteName),
	)
	return Result{BranchName: branchName, Message: message}, nil
}

func (service *Service) currentBranch(executionContext context.Context, repositoryPath string) (naming.Branch, string, error) {
	branchName, readError := service.repositoryManager.CurrentBranch(executionContext, repositoryPath)
	if readError != nil {
		return naming.Branch{}, "", readError
	}
	branch, parseError := service.convention.Parse(branchName)
	if parseError != nil {
		return naming.Branch{}, "", parseError
	}
	return branch, branchName, nil
}

func (service *Service) commit(executionContext context.Context, repositoryPath string, message string, stage bool, allowEmpty bool) error {
	if stage {
		if stageError := service.repositoryManager.StageAll(executionContext, repositoryPath); stageError != nil {
			return stageError
		}
	}
	return service.repositoryManager.Commit(executionContext, repositoryPath, shared.CommitOptions{Message: message, AllowEmpty: allowEmpty})
}
