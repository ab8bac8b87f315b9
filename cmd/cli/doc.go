// Package cli constructs the brancher command-line interface. Application
// wires the Cobra command hierarchy to the Viper configuration loader and the
// zap logger, and registers the commit, run-ci, new, checkout and ls
// subcommands.
package cli
