// Package list implements the ls subcommand: every branch of the repository,
// sorted case-insensitively, one per line.
package list
