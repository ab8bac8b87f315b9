// Package naming implements the branch naming convention: recognizing
// `<type>/<code>_<title>` names and the special integration branches,
// decomposing them into Branch values, and building raw names back from
// their parts.
package naming
