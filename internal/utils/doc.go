// Package utils hosts the ambient plumbing shared by brancher commands.
//
// ConfigurationLoader layers the embedded defaults, an optional user file and
// BRANCHER_ prefixed environment variables through Viper. LoggerFactory builds
// the zap logger that writes diagnostics to standard error and, when asked, to
// a rotated log file.
package utils
