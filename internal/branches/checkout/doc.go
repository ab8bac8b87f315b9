// Package checkout implements the checkout subcommand, which switches to a
// branch addressed by its numeric code or by a special branch name.
package checkout
