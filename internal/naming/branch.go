package naming

// Branch is an immutable decomposition of a branch name. Special branches
// carry only their title, which equals the full name.
type Branch struct {
	branchType string
	code       string
	title      string
	special    bool
}

// Type returns the branch type, empty for special branches.
func (branch Branch) Type() string {
	return branch.branchType
}

// Code returns the digit-only work item code, empty for special branches.
func (branch Branch) Code() string {
	return branch.code
}

// Title returns the slug following the code, or the full name for special branches.
func (branch Branch) Title() string {
	return branch.title
}

// IsSpecial reports whether the branch is one of the special names.
func (branch Branch) IsSpecial() bool {
	return branch.special
}
