package create

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/temirov/brancher/internal/flowerror"
	"github.com/temirov/brancher/internal/naming"
	"github.com/temirov/brancher/internal/repos/shared"
)

const (
	repositoryManagerMissingMessageConstant = "repository manager not configured"
	sourceArgumentNameConstant              = "--source"
	fromCurrentArgumentNameConstant         = "--from-current"
	branchCreatedMessageConstant            = "branch created"
	logFieldBranchConstant                  = "branch"
	logFieldStartPointConstant              = "start_point"
)

// ErrRepositoryManagerNotConfigured indicates the repository manager dependency was missing.
var ErrRepositoryManagerNotConfigured = errors.New(repositoryManagerMissingMessageConstant)

// ServiceDependencies enumerates collaborators required by the service.
type ServiceDependencies struct {
	RepositoryManager shared.GitRepositoryManager
	Convention        naming.Convention
	Logger            *zap.Logger
}

// Options configure a branch creation.
type Options struct {
	RepositoryPath string
	BranchType     string
	Code           string
	Title          string
	Source         string
	LiteralSource  bool
	FromCurrent    bool
}

// Result captures the created branch and the start point it was created from.
// An empty StartPoint means the branch was created from HEAD.
type Result struct {
	BranchName string
	StartPoint string
}

// Service creates convention-compliant branches.
type Service struct {
	repositoryManager shared.GitRepositoryManager
	convention        naming.Convention
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
	return &Service{
		repositoryManager: dependencies.RepositoryManager,
		convention:        dependencies.Convention.Sanitize(),
		logger:            logger,
	}, nil
}

// Create builds the branch name, resolves the start point and checks the new branch out.
//
// The start point is the explicit source when given (literally with
// LiteralSource or for special names, otherwise the first branch carrying
// that code), HEAD with FromCurrent, or the default source of the branch type.
func (service *Service) Create(executionContext context.Context, options Options) (Result, error) {
	source := strings.TrimSpace(options.Source)
	if len(source) > 0 && options.FromCurrent {
		return Result{}, flowerror.IncompatibleArguments(sourceArgumentNameConstant, fromCurrentArgumentNameConstant)
	}

	branchName, nameError := service.convention.MakeRawName(options.BranchType, options.Code, options.Title)
	if nameError != nil {
		return Result{}, nameError
	}

	startPoint, sourceError := service.resolveStartPoint(executionContext, options, source)
	if sourceError != nil {
		return Result{}, sourceError
	}

	if createError := service.repositoryManager.CreateBranch(executionContext, options.RepositoryPath, branchName, startPoint); createError != nil {
		return Result{}, createError
	}

	service.logger.Info(branchCreatedMessageConstant, zap.String(logFieldBranchConstant, branchName), zap.String(logFieldStartPointConstant, startPoint))
	return Result{BranchName: branchName, StartPoint: startPoint}, nil
}

func (service *Service) resolveStartPoint(executionContext context.Context, options Options, source string) (string, error) {
	switch {
	case len(source) > 0:
		if options.LiteralSource || service.convention.IsSpecial(source) {
			return source, nil
		}
		return service.lookupByCode(executionContext, options.RepositoryPath, source)
	case options.FromCurrent:
		return "", nil
	default:
		return service.convention.DefaultSource(strings.TrimSpace(options.BranchType))
	}
}

func (service *Service) lookupByCode(executionContext context.Context, repositoryPath string, code string) (string, error) {
	branchNames, listError := service.repositoryManager.ListBranches(executionContext, repositoryPath)
	if listError != nil {
		return "", listError
	}
	matches := service.convention.FilterByCode(branchNames, code)
	if len(matches) == 0 {
		return "", flowerror.BranchNotFoundOnCheckout(code)
	}
	return matches[0], nil
}
