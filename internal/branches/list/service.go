package list

import (
	"context"
	"errors"
	"slices"
	"strings"

	"github.com/temirov/brancher/internal/repos/shared"
)

const repositoryManagerMissingMessageConstant = "repository manager not configured"

// ErrRepositoryManagerNotConfigured indicates the repository manager dependency was missing.
var ErrRepositoryManagerNotConfigured = errors.New(repositoryManagerMissingMessageConstant)

// Options configure a listing.
type Options struct {
	RepositoryPath string
	IncludeCurrent bool
}

// Result holds the sorted branch names and, when requested, the current branch.
type Result struct {
	Branches      []string
	CurrentBranch string
}

// Service lists repository branches.
type Service struct {
	repositoryManager shared.GitRepositoryManager
}

// NewService constructs a Service.
func NewService(repositoryManager shared.GitRepositoryManager) (*Service, error) {
	if repositoryManager == nil {
		return nil, ErrRepositoryManagerNotConfigured
	}
	return &Service{repositoryManager: repositoryManager}, nil
}

// List returns all branches ordered by their lower-cased names. Names equal
// under case folding keep their listing order.
func (service *Service) List(executionContext context.Context, options Options) (Result, error) {
	branchNames, listError := service.repositoryManager.ListBranches(executionContext, options.RepositoryPath)
	if listError != nil {
		return Result{}, listError
	}

	sorted := slices.Clone(branchNames)
	SortCaseInsensitive(sorted)

	result := Result{Branches: sorted}
	if options.IncludeCurrent {
		currentBranch, currentError := service.repositoryManager.CurrentBranch(executionContext, options.RepositoryPath)
		if currentError != nil {
			return Result{}, currentError
		}
		result.CurrentBranch = currentBranch
	}
	return result, nil
}

// SortCaseInsensitive orders names by their lower-cased form, keeping ties stable.
func SortCaseInsensitive(names []string) {
	slices.SortStableFunc(names, func(left string, right string) int {
		return strings.Compare(strings.ToLower(left), strings.ToLower(right))
	})
}
