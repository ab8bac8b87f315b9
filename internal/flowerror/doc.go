// Package flowerror defines the single error type returned by brancher
// workflows. Every failure carries a Kind so callers can branch on the
// category with errors.Is while the CLI prints the human-readable message.
package flowerror
