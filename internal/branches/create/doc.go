// Package create implements the new subcommand, which derives a branch name
// from a type, code and title and creates it from the resolved source branch.
package create
