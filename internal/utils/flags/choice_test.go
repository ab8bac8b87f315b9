package flags

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormatChoiceUsage(t *testing.T) {
	testCases := []struct {
		name           string
		defaultChoice  string
		choices        []string
		description    string
		expectedOutput string
	}{
		{
			name:           "DefaultFirstChoice",
			defaultChoice:  "console",
			choices:        []string{"console", "structured"},
			description:    "Diagnostic log encoding.",
			expectedOutput: "`<CONSOLE|structured>` Diagnostic log encoding.",
		},
		{
			name:           "DefaultSecondChoice",
			defaultChoice:  "warn",
			choices:        []string{"debug", "info", "warn", "error"},
			description:    "Minimum diagnostic level.",
			expectedOutput: "`<debug|info|WARN|error>` Minimum diagnostic level.",
		},
		{
			name:           "EmptyDescription",
			defaultChoice:  "feature",
			choices:        []string{"feature", "hotfix"},
			description:    "",
			expectedOutput: "`<FEATURE|hotfix>`",
		},
		{
			name:           "DuplicateChoicesIgnored",
			defaultChoice:  "",
			choices:        []string{"feat", "feat", "fix", "FIX"},
			description:    "Commit type.",
			expectedOutput: "`<feat|fix>` Commit type.",
		},
		{
			name:           "WhitespaceTrimmed",
			defaultChoice:  "chore",
			choices:        []string{" chore ", " docs "},
			description:    "Commit type.",
			expectedOutput: "`<CHORE|docs>` Commit type.",
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			actual := FormatChoiceUsage(testCase.defaultChoice, testCase.choices, testCase.description)
			require.Equal(t, testCase.expectedOutput, actual)
		})
	}
}
