// Package commits formats conventional commit messages from the current
// branch and drives the commit and run-ci subcommands.
//
// Formatter derives the "type(scope): message" line from a parsed
// naming.Branch, Service stages, commits and pushes through a
// shared.GitRepositoryManager, and the command builders expose both flows as
// Cobra commands.
package commits
