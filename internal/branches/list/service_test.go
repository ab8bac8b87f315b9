package list

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/brancher/internal/flowerror"
	"github.com/temirov/brancher/internal/repos/shared"
)

type stubRepositoryManager struct {
	branches     []string
	current      string
	listError    error
	currentError error
	currentReads int
}

func (manager *stubRepositoryManager) CurrentBranch(context.Context, string) (string, error) {
	manager.currentReads++
	return manager.current, manager.currentError
}

func (manager *stubRepositoryManager) ListBranches(context.Context, string) ([]string, error) {
	return manager.branches, manager.listError
}

func (manager *stubRepositoryManager) StageAll(context.Context, string) error {
	return nil
}

func (manager *stubRepositoryManager) Commit(context.Context, string, shared.CommitOptions) error {
	return nil
}

func (manager *stubRepositoryManager) Checkout(context.Context, string, string) error {
	return nil
}

func (manager *stubRepositoryManager) CreateBranch(context.Context, string, string, string) error {
	return nil
}

func (manager *stubRepositoryManager) PushUpstream(context.Context, string, string) error {
	return nil
}

var unsortedBranches = []string{"master", "feature/2_Beta", "Develop", "feature/1_alpha", "remotes/origin/HEAD", "feature/2_beta"}

func TestSortCaseInsensitive(t *testing.T) {
	testCases := []struct {
		name     string
		input    []string
		expected []string
	}{
		{
			name:     "mixed_case",
			input:    []string{"b", "A", "c", "a"},
			expected: []string{"A", "a", "b", "c"},
		},
		{
			name:     "branches",
			input:    []string{"master", "feature/2_Beta", "Develop", "feature/1_alpha", "remotes/origin/HEAD", "feature/2_beta"},
			expected: []string{"Develop", "feature/1_alpha", "feature/2_Beta", "feature/2_beta", "master", "remotes/origin/HEAD"},
		},
		{
			name:     "empty",
			input:    []string{},
			expected: []string{},
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			names := append([]string{}, testCase.input...)
			SortCaseInsensitive(names)
			require.Equal(t, testCase.expected, names)
		})
	}
}

func TestListSortsWithoutMutatingInput(t *testing.T) {
	manager := &stubRepositoryManager{branches: append([]string{}, unsortedBranches...)}
	service, serviceError := NewService(manager)
	require.NoError(t, serviceError)

	result, listError := service.List(context.Background(), Options{RepositoryPath: "/workspace/repo"})
	require.NoError(t, listError)
	require.Equal(t, []string{"Develop", "feature/1_alpha", "feature/2_Beta", "feature/2_beta", "master", "remotes/origin/HEAD"}, result.Branches)
	require.Equal(t, unsortedBranches, manager.branches)
	require.Zero(t, manager.currentReads)
	require.Empty(t, result.CurrentBranch)
}

func TestListIncludesCurrentBranchOnRequest(t *testing.T) {
	manager := &stubRepositoryManager{branches: unsortedBranches, current: "master"}
	service, serviceError := NewService(manager)
	require.NoError(t, serviceError)

	result, listError := service.List(context.Background(), Options{IncludeCurrent: true})
	require.NoError(t, listError)
	require.Equal(t, "master", result.CurrentBranch)
	require.Equal(t, 1, manager.currentReads)
}

func TestListPropagatesErrors(t *testing.T) {
	service, serviceError := NewService(&stubRepositoryManager{listError: flowerror.New(flowerror.KindStringFormat)})
	require.NoError(t, serviceError)
	_, listError := service.List(context.Background(), Options{})
	require.ErrorIs(t, listError, flowerror.KindStringFormat)

	service, serviceError = NewService(&stubRepositoryManager{currentError: flowerror.New(flowerror.KindGit)})
	require.NoError(t, serviceError)
	_, listError = service.List(context.Background(), Options{IncludeCurrent: true})
	require.ErrorIs(t, listError, flowerror.KindGit)
}

func TestNewServiceRequiresRepositoryManager(t *testing.T) {
	_, serviceError := NewService(nil)
	require.ErrorIs(t, serviceError, ErrRepositoryManagerNotConfigured)
}

func TestRendererPlainOutput(t *testing.T) {
	output := &bytes.Buffer{}
	renderError := NewRenderer(output, false).Render(Result{Branches: []string{"develop", "feature/1_a"}, CurrentBranch: "develop"})
	require.NoError(t, renderError)
	require.Equal(t, "develop\nfeature/1_a\n", output.String())
}

func TestRendererHighlightKeepsBranchText(t *testing.T) {
	output := &bytes.Buffer{}
	renderError := NewRenderer(output, true).Render(Result{Branches: []string{"develop", "feature/1_a"}, CurrentBranch: "feature/1_a"})
	require.NoError(t, renderError)

	lines := bytes.Split(bytes.TrimSuffix(output.Bytes(), []byte("\n")), []byte("\n"))
	require.Len(t, lines, 2)
	require.Equal(t, "develop", string(lines[0]))
	require.Contains(t, string(lines[1]), "feature/1_a")
}
