package naming

import (
	"strings"

	"github.com/temirov/brancher/internal/flowerror"
)

const (
	featureBranchTypeConstant = "feature"
	hotfixBranchTypeConstant  = "hotfix"
	developBranchNameConstant = "develop"
	mainBranchNameConstant    = "main"
	masterBranchNameConstant  = "master"
	typeSeparatorConstant     = "/"
	codeSeparatorConstant     = "_"
)

// BranchType describes one branch category and the branch new work of that
// category starts from.
type BranchType struct {
	Name          string `mapstructure:"name"`
	DefaultSource string `mapstructure:"default_source"`
}

// Convention holds the parameters of the naming grammar. A single
// Convention is applied to parsing, raw name construction, and commit scopes.
type Convention struct {
	BranchTypes  []BranchType `mapstructure:"branch_types"`
	SpecialNames []string     `mapstructure:"special_names"`
	CodePrefix   string       `mapstructure:"code_prefix"`
}

// DefaultConvention returns the unprefixed feature/hotfix convention.
func DefaultConvention() Convention {
	return Convention{
		BranchTypes: []BranchType{
			{Name: featureBranchTypeConstant, DefaultSource: developBranchNameConstant},
			{Name: hotfixBranchTypeConstant, DefaultSource: masterBranchNameConstant},
		},
		SpecialNames: []string{developBranchNameConstant, mainBranchNameConstant, masterBranchNameConstant},
	}
}

// Sanitize trims values, drops empty entries, and falls back to the default
// branch types and special names when none remain.
func (convention Convention) Sanitize() Convention {
	defaults := DefaultConvention()
	sanitized := Convention{CodePrefix: strings.TrimSpace(convention.CodePrefix)}

	for _, branchType := range convention.BranchTypes {
		trimmedName := strings.TrimSpace(branchType.Name)
		if len(trimmedName) == 0 || strings.Contains(trimmedName, typeSeparatorConstant) {
			continue
		}
		sanitized.BranchTypes = append(sanitized.BranchTypes, BranchType{
			Name:          trimmedName,
			DefaultSource: strings.TrimSpace(branchType.DefaultSource),
		})
	}
	if len(sanitized.BranchTypes) == 0 {
		sanitized.BranchTypes = defaults.BranchTypes
	}

	for _, specialName := range convention.SpecialNames {
		trimmedName := strings.TrimSpace(specialName)
		if len(trimmedName) == 0 {
			continue
		}
		sanitized.SpecialNames = append(sanitized.SpecialNames, trimmedName)
	}
	if len(sanitized.SpecialNames) == 0 {
		sanitized.SpecialNames = defaults.SpecialNames
	}

	return sanitized
}

// IsSpecial reports whether the name is exactly one of the special names.
func (convention Convention) IsSpecial(name string) bool {
	for _, specialName := range convention.SpecialNames {
		if name == specialName {
			return true
		}
	}
	return false
}

// LookupBranchType returns the configured branch type with the given name.
func (convention Convention) LookupBranchType(name string) (BranchType, bool) {
	for _, branchType := range convention.BranchTypes {
		if branchType.Name == name {
			return branchType, true
		}
	}
	return BranchType{}, false
}

// DefaultSource returns the branch that new branches of the given type start from.
func (convention Convention) DefaultSource(branchTypeName string) (string, error) {
	branchType, found := convention.LookupBranchType(branchTypeName)
	if !found || len(branchType.DefaultSource) == 0 {
		return "", flowerror.InvalidBranchType(branchTypeName)
	}
	return branchType.DefaultSource, nil
}

// Validate reports whether the name satisfies the grammar.
func (convention Convention) Validate(name string) bool {
	trimmedName := strings.TrimSpace(name)
	if len(trimmedName) == 0 {
		return false
	}
	if convention.IsSpecial(trimmedName) {
		return true
	}
	_, matched := convention.scan(trimmedName)
	return matched
}

// Parse decomposes a branch name. Names rejected by Validate yield a
// NameFormat error.
func (convention Convention) Parse(name string) (Branch, error) {
	trimmedName := strings.TrimSpace(name)
	if len(trimmedName) == 0 {
		return Branch{}, flowerror.New(flowerror.KindNameFormat)
	}
	if convention.IsSpecial(trimmedName) {
		return Branch{title: trimmedName, special: true}, nil
	}
	components, matched := convention.scan(trimmedName)
	if !matched {
		return Branch{}, flowerror.New(flowerror.KindNameFormat)
	}
	return Branch{
		branchType: components.branchType,
		code:       components.code,
		title:      components.title,
	}, nil
}

// MakeRawName builds the full branch name from its parts. A special name
// with empty type and code is returned unchanged.
func (convention Convention) MakeRawName(branchType string, code string, title string) (string, error) {
	trimmedType := strings.TrimSpace(branchType)
	trimmedCode := strings.TrimSpace(code)
	trimmedTitle := strings.TrimSpace(title)

	if len(trimmedType) == 0 && len(trimmedCode) == 0 && convention.IsSpecial(trimmedTitle) {
		return trimmedTitle, nil
	}
	if !IsBranchCode(trimmedCode) {
		return "", flowerror.New(flowerror.KindBranchCode)
	}
	if _, found := convention.LookupBranchType(trimmedType); !found {
		return "", flowerror.InvalidBranchType(trimmedType)
	}
	if len(trimmedTitle) == 0 {
		return "", flowerror.New(flowerror.KindNameFormat)
	}

	return trimmedType + typeSeparatorConstant + convention.CodePrefix + trimmedCode + codeSeparatorConstant + trimmedTitle, nil
}

// FilterByCode keeps the names that parse and carry the given code,
// preserving their order.
func (convention Convention) FilterByCode(names []string, code string) []string {
	var matches []string
	for _, name := range names {
		branch, parseError := convention.Parse(name)
		if parseError != nil || branch.IsSpecial() {
			continue
		}
		if branch.Code() == code {
			matches = append(matches, name)
		}
	}
	return matches
}

// IsBranchCode reports whether the value is a non-empty run of ASCII digits.
func IsBranchCode(value string) bool {
	if len(value) == 0 {
		return false
	}
	for index := 0; index < len(value); index++ {
		if !isASCIIDigit(value[index]) {
			return false
		}
	}
	return true
}
