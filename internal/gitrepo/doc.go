// Package gitrepo wraps the git commands brancher issues.
//
// RepositoryManager runs them through a GitExecutor and turns process
// failures into flowerror kinds: a failed `git add` is an Add error, a
// failed `git commit` a Commit error, and everything else a Git error.
// Branch listings are parsed from `git branch -a` output.
package gitrepo
