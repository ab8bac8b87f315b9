// Package dependencies supplies production defaults for the collaborators
// that command builders accept as optional injections.
package dependencies
