package commits

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/brancher/internal/flowerror"
)

func TestParseCommitType(t *testing.T) {
	testCases := []struct {
		name          string
		value         string
		allowed       []string
		expectedType  string
		expectFailure bool
	}{
		{name: "feature", value: "feat", allowed: DefaultCommitTypes(), expectedType: "feat"},
		{name: "documentation", value: "docs", allowed: DefaultCommitTypes(), expectedType: "docs"},
		{name: "case_sensitive", value: "FEAT", allowed: DefaultCommitTypes(), expectFailure: true},
		{name: "long_form_rejected", value: "feature", allowed: DefaultCommitTypes(), expectFailure: true},
		{name: "empty", value: "", allowed: DefaultCommitTypes(), expectFailure: true},
		{name: "custom_list", value: "perf", allowed: []string{"perf", "build"}, expectedType: "perf"},
		{name: "custom_list_excludes_defaults", value: "feat", allowed: []string{"perf"}, expectFailure: true},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			commitType, parseError := ParseCommitType(testCase.value, testCase.allowed)
			if testCase.expectFailure {
				require.ErrorIs(t, parseError, flowerror.KindCommitType)
				return
			}
			require.NoError(t, parseError)
			require.Equal(t, testCase.expectedType, commitType)
		})
	}
}

func TestSanitizeCommitTypes(t *testing.T) {
	require.Equal(t, DefaultCommitTypes(), sanitizeCommitTypes(nil))
	require.Equal(t, DefaultCommitTypes(), sanitizeCommitTypes([]string{" ", ""}))
	require.Equal(t, []string{"feat", "perf"}, sanitizeCommitTypes([]string{" feat ", "perf", "feat"}))
}

func TestCommandConfigurationSanitize(t *testing.T) {
	sanitized := CommandConfiguration{CIToken: "  "}.Sanitize()
	require.Equal(t, DefaultCommandConfiguration(), sanitized)

	custom := CommandConfiguration{Types: []string{"perf"}, CIToken: " [ci] "}.Sanitize()
	require.Equal(t, CommandConfiguration{Types: []string{"perf"}, CIToken: "[ci]"}, custom)

	require.Equal(t, "origin", PushConfiguration{RemoteName: " "}.Sanitize().RemoteName)
	require.Equal(t, "upstream", PushConfiguration{RemoteName: " upstream "}.Sanitize().RemoteName)
}
