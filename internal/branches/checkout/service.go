package checkout

import (
	"context"
	"errors"
	"strings"

	"github.com/temirov/brancher/internal/flowerror"
	"github.com/temirov/brancher/internal/naming"
	"github.com/temirov/brancher/internal/repos/shared"
)

const repositoryManagerMissingMessageConstant = "repository manager not configured"

// ErrRepositoryManagerNotConfigured indicates the repository manager dependency was missing.
var ErrRepositoryManagerNotConfigured = errors.New(repositoryManagerMissingMessageConstant)

// BranchSelector chooses one branch among several candidates.
type BranchSelector interface {
	SelectBranch(candidates []string) (string, error)
}

// ServiceDependencies enumerates collaborators required by the service.
type ServiceDependencies struct {
	RepositoryManager shared.GitRepositoryManager
	Convention        naming.Convention
	Selector          BranchSelector
}

// Options configure a checkout.
type Options struct {
	RepositoryPath string
	Target         string
	Pick           bool
}

// Result captures the branch that was checked out.
type Result struct {
	BranchName string
	Candidates []string
}

// Service switches to branches addressed by code or by special name.
type Service struct {
	repositoryManager shared.GitRepositoryManager
	convention        naming.Convention
	selector          BranchSelector
}

// NewService constructs a Service from the provided dependencies.
func NewService(dependencies ServiceDependencies) (*Service, error) {
	if dependencies.RepositoryManager == nil {
		return nil, ErrRepositoryManagerNotConfigured
	}
	return &Service{
		repositoryManager: dependencies.RepositoryManager,
		convention:        dependencies.Convention.Sanitize(),
		selector:          dependencies.Selector,
	}, nil
}

// Checkout switches to the special branch named by Target, or to the first
// branch whose code equals Target. With Pick and several matches the selector
// decides.
func (service *Service) Checkout(executionContext context.Context, options Options) (Result, error) {
	target := strings.TrimSpace(options.Target)
	if service.convention.IsSpecial(target) {
		if checkoutError := service.repositoryManager.Checkout(executionContext, options.RepositoryPath, target); checkoutError != nil {
			return Result{}, checkoutError
		}
		return Result{BranchName: target}, nil
	}

	if !naming.IsBranchCode(target) {
		return Result{}, flowerror.New(flowerror.KindBranchCode)
	}

	branchNames, listError := service.repositoryManager.ListBranches(executionContext, options.RepositoryPath)
	if listError != nil {
		return Result{}, listError
	}

	candidates := service.convention.FilterByCode(branchNames, target)
	if len(candidates) == 0 {
		return Result{}, flowerror.BranchNotFoundOnCheckout(target)
	}

	selected := candidates[0]
	if options.Pick && len(candidates) > 1 && service.selector != nil {
		chosen, selectionError := service.selector.SelectBranch(candidates)
		if selectionError != nil {
			return Result{}, selectionError
		}
		selected = chosen
	}

	if checkoutError := service.repositoryManager.Checkout(executionContext, options.RepositoryPath, selected); checkoutError != nil {
		return Result{}, checkoutError
	}
	return Result{BranchName: selected, Candidates: candidates}, nil
}
