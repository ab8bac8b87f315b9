package flowerror

import (
	"fmt"
	"strings"
)

const (
	nameFormatMessageConstant              = "Branch name is in an invalid format."
	stringFormatMessageConstant            = "Branch name has unsupported character or is corrupted."
	gitMessageConstant                     = "Some error happened with git. Make sure git is installed correctly."
	addMessageConstant                     = "Some error occurred while running git add."
	commitTypeMessageConstant              = "Invalid commit type."
	commitTypeSubjectTemplateConstant      = "Invalid commit type %q."
	commitMessageConstant                  = "Some error happened while committing."
	branchCodeMessageConstant              = "Invalid branch code."
	branchNotFoundTemplateConstant         = "Branch with the code %s does not exists"
	invalidBranchTypeTemplateConstant      = "Branch type %s is invalid"
	incompatibleArgumentsTemplateConstant  = "Arguments %s cannot be used together"
	incompatibleArgumentsSeparatorConstant = ", "
	unknownKindMessageConstant             = "Unexpected failure."
)

// Kind enumerates the failure categories. A Kind is itself an error so it
// can be used as the target of errors.Is.
type Kind string

// Supported failure categories.
const (
	KindNameFormat               Kind = "name_format"
	KindStringFormat             Kind = "string_format"
	KindBranchCode               Kind = "branch_code"
	KindInvalidBranchType        Kind = "invalid_branch_type"
	KindCommitType               Kind = "commit_type"
	KindAdd                      Kind = "add"
	KindCommit                   Kind = "commit"
	KindGit                      Kind = "git"
	KindBranchNotFoundOnCheckout Kind = "branch_not_found_on_checkout"
	KindIncompatibleArguments    Kind = "incompatible_arguments"
)

// Error returns the generic message for the kind.
func (kind Kind) Error() string {
	return Error{Kind: kind}.Error()
}

// Error is the tagged failure produced by brancher workflows.
type Error struct {
	Kind      Kind
	Subject   string
	Arguments []string
	Cause     error
}

// New builds an Error of the provided kind without additional context.
func New(kind Kind) Error {
	return Error{Kind: kind}
}

// Wrap builds an Error of the provided kind that retains the underlying cause.
func Wrap(kind Kind, cause error) Error {
	return Error{Kind: kind, Cause: cause}
}

// InvalidBranchType reports a branch type outside the configured set.
func InvalidBranchType(branchType string) Error {
	return Error{Kind: KindInvalidBranchType, Subject: branchType}
}

// CommitType reports an unrecognized commit type.
func CommitType(commitType string) Error {
	return Error{Kind: KindCommitType, Subject: commitType}
}

// BranchNotFoundOnCheckout reports a code that matched no branch.
func BranchNotFoundOnCheckout(branchCode string) Error {
	return Error{Kind: KindBranchNotFoundOnCheckout, Subject: branchCode}
}

// IncompatibleArguments reports flags that cannot be combined.
func IncompatibleArguments(arguments ...string) Error {
	return Error{Kind: KindIncompatibleArguments, Arguments: append([]string(nil), arguments...)}
}

// Error renders the user-facing message. Causes are not included; they are
// reachable through Unwrap for diagnostics.
func (failure Error) Error() string {
	switch failure.Kind {
	case KindNameFormat:
		return nameFormatMessageConstant
	case KindStringFormat:
		return stringFormatMessageConstant
	case KindGit:
		return gitMessageConstant
	case KindAdd:
		return addMessageConstant
	case KindCommitType:
		if len(failure.Subject) == 0 {
			return commitTypeMessageConstant
		}
		return fmt.Sprintf(commitTypeSubjectTemplateConstant, failure.Subject)
	case KindCommit:
		return commitMessageConstant
	case KindBranchCode:
		return branchCodeMessageConstant
	case KindBranchNotFoundOnCheckout:
		return fmt.Sprintf(branchNotFoundTemplateConstant, failure.Subject)
	case KindInvalidBranchType:
		return fmt.Sprintf(invalidBranchTypeTemplateConstant, failure.Subject)
	case KindIncompatibleArguments:
		return fmt.Sprintf(incompatibleArgumentsTemplateConstant, strings.Join(failure.Arguments, incompatibleArgumentsSeparatorConstant))
	default:
		return unknownKindMessageConstant
	}
}

// Unwrap exposes the underlying cause.
func (failure Error) Unwrap() error {
	return failure.Cause
}

// Is matches another Error or a bare Kind by kind.
func (failure Error) Is(target error) bool {
	switch typedTarget := target.(type) {
	case Kind:
		return failure.Kind == typedTarget
	case Error:
		return failure.Kind == typedTarget.Kind
	case *Error:
		return typedTarget != nil && failure.Kind == typedTarget.Kind
	default:
		return false
	}
}
