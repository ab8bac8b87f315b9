package naming

import "strings"

type scannerState int

const (
	scannerStateExpectType scannerState = iota
	scannerStateExpectDigits
	scannerStateExpectTitle
)

const codeSeparatorByteConstant = '_'

type nameComponents struct {
	branchType string
	code       string
	title      string
}

// scan tries every branch type in order and returns the components of the
// first one whose shape the name satisfies.
func (convention Convention) scan(name string) (nameComponents, bool) {
	for _, branchType := range convention.BranchTypes {
		if components, matched := scanTypedName(name, branchType.Name, convention.CodePrefix); matched {
			return components, true
		}
	}
	return nameComponents{}, false
}

// scanTypedName recognizes `<branchType>/<codePrefix><digits>_<title>` with
// a non-empty digit run and a non-empty title.
func scanTypedName(name string, branchType string, codePrefix string) (nameComponents, bool) {
	state := scannerStateExpectType
	position := 0
	codeStart := 0
	components := nameComponents{}

	for {
		switch state {
		case scannerStateExpectType:
			typeMarker := branchType + typeSeparatorConstant + codePrefix
			if len(branchType) == 0 || !strings.HasPrefix(name, typeMarker) {
				return nameComponents{}, false
			}
			components.branchType = branchType
			position = len(typeMarker)
			codeStart = position
			state = scannerStateExpectDigits
		case scannerStateExpectDigits:
			for position < len(name) && isASCIIDigit(name[position]) {
				position++
			}
			if position == codeStart || position >= len(name) || name[position] != codeSeparatorByteConstant {
				return nameComponents{}, false
			}
			components.code = name[codeStart:position]
			position++
			state = scannerStateExpectTitle
		case scannerStateExpectTitle:
			if position >= len(name) {
				return nameComponents{}, false
			}
			components.title = name[position:]
			return components, true
		}
	}
}

func isASCIIDigit(character byte) bool {
	return character >= '0' && character <= '9'
}
