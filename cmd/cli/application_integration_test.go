package cli_test

import (
	"bytes"
	"os/exec"
	"strings"
	"testing"

	gogit "github.com/go-git/go-git/v5"
	"github.com/stretchr/testify/require"

	"github.com/temirov/brancher/cmd/cli"
	"github.com/temirov/brancher/internal/flowerror"
)

func configureGitIdentity(t *testing.T) {
	t.Helper()
	for _, variableName := range []string{"GIT_AUTHOR_NAME", "GIT_COMMITTER_NAME"} {
		t.Setenv(variableName, "Brancher Test")
	}
	for _, variableName := range []string{"GIT_AUTHOR_EMAIL", "GIT_COMMITTER_EMAIL"} {
		t.Setenv(variableName, "brancher@example.com")
	}
	t.Setenv("GIT_CONFIG_GLOBAL", "/dev/null")
	t.Setenv("GIT_CONFIG_NOSYSTEM", "1")
}

func runApplication(t *testing.T, arguments ...string) (string, error) {
	t.Helper()
	application := cli.NewApplication()
	output := &bytes.Buffer{}
	application.RootCommand().SetOut(output)
	application.SetArguments(arguments)
	executionError := application.Execute()
	return output.String(), executionError
}

func TestApplicationWorkflowAgainstRepository(t *testing.T) {
	if _, lookupError := exec.LookPath("git"); lookupError != nil {
		t.Skip("git is not available")
	}
	isolateConfigurationSearch(t)
	configureGitIdentity(t)

	repositoryPath := t.TempDir()
	repository, initError := gogit.PlainInit(repositoryPath, false)
	require.NoError(t, initError)

	_, createError := runApplication(t, "-C", repositoryPath, "new", "feature", "12", "login", "--from-current")
	require.NoError(t, createError)

	_, commitError := runApplication(t, "-C", repositoryPath, "commit", "feat", "initial", "form", "--empty")
	require.NoError(t, commitError)

	headReference, headError := repository.Head()
	require.NoError(t, headError)
	require.Equal(t, "refs/heads/feature/12_login", headReference.Name().String())

	headCommit, commitLookupError := repository.CommitObject(headReference.Hash())
	require.NoError(t, commitLookupError)
	require.Equal(t, "feat(#12): initial form", strings.TrimSpace(headCommit.Message))

	_, secondBranchError := runApplication(t, "-C", repositoryPath, "new", "hotfix", "7", "Crash", "--source", "12")
	require.NoError(t, secondBranchError)

	listing, listError := runApplication(t, "-C", repositoryPath, "ls")
	require.NoError(t, listError)
	require.Equal(t, "feature/12_login\nhotfix/7_Crash\n", listing)

	_, checkoutError := runApplication(t, "-C", repositoryPath, "checkout", "12")
	require.NoError(t, checkoutError)
	headReference, headError = repository.Head()
	require.NoError(t, headError)
	require.Equal(t, "refs/heads/feature/12_login", headReference.Name().String())

	_, missingError := runApplication(t, "-C", repositoryPath, "checkout", "99")
	require.ErrorIs(t, missingError, flowerror.KindBranchNotFoundOnCheckout)
}

func TestApplicationRejectsDirectoryOutsideRepository(t *testing.T) {
	isolateConfigurationSearch(t)

	_, executionError := runApplication(t, "-C", t.TempDir(), "ls")
	require.ErrorIs(t, executionError, flowerror.KindGit)
}
