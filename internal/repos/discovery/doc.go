// Package discovery locates the git repository a command runs in.
package discovery
