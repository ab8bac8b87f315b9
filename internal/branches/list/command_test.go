package list

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/brancher/internal/branches"
)

type echoRepositoryDetector struct{}

func (echoRepositoryDetector) DetectRepository(path string) (string, error) {
	return path, nil
}

func TestCommandPrintsSortedBranches(t *testing.T) {
	testCases := []struct {
		name                 string
		terminal             bool
		expectedCurrentReads int
	}{
		{name: "piped", terminal: false, expectedCurrentReads: 0},
		{name: "terminal", terminal: true, expectedCurrentReads: 1},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			manager := &stubRepositoryManager{branches: []string{"master", "Develop", "feature/1_alpha"}, current: "master"}
			builder := CommandBuilder{
				CommandDependencies: branches.CommandDependencies{
					GitRepositoryManager: manager,
					RepositoryDetector:   echoRepositoryDetector{},
					WorkingDirectory:     "/workspace/repo",
				},
				TerminalDetector: func(io.Writer) bool { return testCase.terminal },
			}
			command, buildError := builder.Build()
			require.NoError(t, buildError)

			output := &bytes.Buffer{}
			command.SetOut(output)
			command.SetContext(context.Background())

			require.NoError(t, command.RunE(command, nil))
			require.Equal(t, testCase.expectedCurrentReads, manager.currentReads)
			if !testCase.terminal {
				require.Equal(t, "Develop\nfeature/1_alpha\nmaster\n", output.String())
				return
			}
			require.Contains(t, output.String(), "Develop\nfeature/1_alpha\n")
		})
	}
}

func TestWriterIsTerminalRejectsBuffers(t *testing.T) {
	require.False(t, writerIsTerminal(&bytes.Buffer{}))
}
