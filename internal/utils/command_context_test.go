package utils_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/brancher/internal/utils"
)

func TestCommandContextAccessorRoundTrip(testInstance *testing.T) {
	accessor := utils.NewCommandContextAccessor()

	executionContext := accessor.WithConfigurationFilePath(context.Background(), "/etc/brancher/config.yaml")
	executionContext = accessor.WithRepositoryPath(executionContext, "/workspace/repo")

	configurationFilePath, configurationAvailable := accessor.ConfigurationFilePath(executionContext)
	require.True(testInstance, configurationAvailable)
	require.Equal(testInstance, "/etc/brancher/config.yaml", configurationFilePath)

	repositoryPath, repositoryAvailable := accessor.RepositoryPath(executionContext)
	require.True(testInstance, repositoryAvailable)
	require.Equal(testInstance, "/workspace/repo", repositoryPath)
}

func TestCommandContextAccessorMissingValues(testInstance *testing.T) {
	accessor := utils.NewCommandContextAccessor()

	_, configurationAvailable := accessor.ConfigurationFilePath(context.Background())
	require.False(testInstance, configurationAvailable)

	_, repositoryAvailable := accessor.RepositoryPath(context.Background())
	require.False(testInstance, repositoryAvailable)
}
