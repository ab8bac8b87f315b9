package commits

import (
	"strings"

	"github.com/temirov/brancher/internal/flowerror"
)

const (
	commitTypeFeatureConstant       = "feat"
	commitTypeFixConstant           = "fix"
	commitTypeStyleConstant         = "style"
	commitTypeChoreConstant         = "chore"
	commitTypeDocumentationConstant = "docs"
	commitTypeRefactorConstant      = "refactor"
	commitTypeTestConstant          = "test"
)

// DefaultCommitTypes lists the commit types accepted when configuration names none.
func DefaultCommitTypes() []string {
	return []string{
		commitTypeFeatureConstant,
		commitTypeFixConstant,
		commitTypeStyleConstant,
		commitTypeChoreConstant,
		commitTypeDocumentationConstant,
		commitTypeRefactorConstant,
		commitTypeTestConstant,
	}
}

// ParseCommitType returns value when it exactly matches one of the allowed types.
func ParseCommitType(value string, allowed []string) (string, error) {
	for _, candidate := range allowed {
		if candidate == value {
			return candidate, nil
		}
	}
	return "", flowerror.CommitType(value)
}

func sanitizeCommitTypes(raw []string) []string {
	sanitized := make([]string, 0, len(raw))
	seen := make(map[string]struct{}, len(raw))
	for _, candidate := range raw {
		trimmed := strings.TrimSpace(candidate)
		if len(trimmed) == 0 {
			continue
		}
		if _, exists := seen[trimmed]; exists {
			continue
		}
		seen[trimmed] = struct{}{}
		sanitized = append(sanitized, trimmed)
	}
	if len(sanitized) == 0 {
		return DefaultCommitTypes()
	}
	return sanitized
}
