package discovery

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	gogit "github.com/go-git/go-git/v5"
)

const (
	repositoryPathRequiredMessageConstant = "repository path must be provided"
	repositoryNotFoundTemplateConstant    = "%s is not inside a git repository: %w"
	repositoryPathResolveTemplateConstant = "unable to resolve %s: %w"
	worktreeResolveTemplateConstant       = "unable to resolve work tree for %s: %w"
)

// ErrRepositoryPathRequired indicates an empty path was supplied.
var ErrRepositoryPathRequired = errors.New(repositoryPathRequiredMessageConstant)

// GoGitRepositoryDetector locates the git work tree enclosing a directory
// by walking up to the nearest .git entry.
type GoGitRepositoryDetector struct{}

// NewGoGitRepositoryDetector constructs a detector backed by go-git.
func NewGoGitRepositoryDetector() *GoGitRepositoryDetector {
	return &GoGitRepositoryDetector{}
}

// DetectRepository returns the work tree root containing path.
func (detector *GoGitRepositoryDetector) DetectRepository(path string) (string, error) {
	trimmedPath := strings.TrimSpace(path)
	if len(trimmedPath) == 0 {
		return "", ErrRepositoryPathRequired
	}

	absolutePath, absoluteError := filepath.Abs(trimmedPath)
	if absoluteError != nil {
		return "", fmt.Errorf(repositoryPathResolveTemplateConstant, trimmedPath, absoluteError)
	}

	repository, openError := gogit.PlainOpenWithOptions(absolutePath, &gogit.PlainOpenOptions{
		DetectDotGit:          true,
		EnableDotGitCommonDir: true,
	})
	if openError != nil {
		return "", fmt.Errorf(repositoryNotFoundTemplateConstant, absolutePath, openError)
	}

	worktree, worktreeError := repository.Worktree()
	if worktreeError != nil {
		return "", fmt.Errorf(worktreeResolveTemplateConstant, absolutePath, worktreeError)
	}

	return worktree.Filesystem.Root(), nil
}
