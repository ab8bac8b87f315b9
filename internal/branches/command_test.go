package branches

import (
	"context"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/temirov/brancher/internal/naming"
	"github.com/temirov/brancher/internal/utils"
)

type echoRepositoryDetector struct{}

func (echoRepositoryDetector) DetectRepository(path string) (string, error) {
	return path, nil
}

func TestCommandDependenciesDefaults(t *testing.T) {
	commandDependencies := CommandDependencies{}
	require.NotNil(t, commandDependencies.ResolveLogger())
	require.Equal(t, naming.DefaultConvention(), commandDependencies.ResolveConvention())

	commandDependencies.LoggerProvider = func() *zap.Logger { return nil }
	require.NotNil(t, commandDependencies.ResolveLogger())
}

func TestCommandDependenciesSanitizesConvention(t *testing.T) {
	commandDependencies := CommandDependencies{
		ConventionProvider: func() naming.Convention {
			return naming.Convention{CodePrefix: " RCT- "}
		},
	}
	convention := commandDependencies.ResolveConvention()
	require.Equal(t, "RCT-", convention.CodePrefix)
	require.Equal(t, naming.DefaultConvention().BranchTypes, convention.BranchTypes)
}

func TestCommandDependenciesWorkingDirectory(t *testing.T) {
	testCases := []struct {
		name             string
		workingDirectory string
		contextPath      string
		expectedPath     string
	}{
		{name: "explicit", workingDirectory: "/workspace/explicit", contextPath: "/workspace/context", expectedPath: "/workspace/explicit"},
		{name: "context", contextPath: "/workspace/context", expectedPath: "/workspace/context"},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			command := &cobra.Command{}
			command.SetContext(utils.NewCommandContextAccessor().WithRepositoryPath(context.Background(), testCase.contextPath))

			commandDependencies := CommandDependencies{
				RepositoryDetector: echoRepositoryDetector{},
				WorkingDirectory:   testCase.workingDirectory,
			}
			runtime, runtimeError := commandDependencies.ResolveRuntime(command)
			require.NoError(t, runtimeError)
			require.Equal(t, testCase.expectedPath, runtime.RepositoryPath)
			require.NotNil(t, runtime.RepositoryManager)
		})
	}
}
