package gitinfo_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yeager/rpm-policy-checker/internal/adapters/outbound/gitinfo"
)

func initRepoWithCommit(t *testing.T) (specPath, commit string) {
	t.Helper()
	dir := t.TempDir()

	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)

	specPath = filepath.Join(dir, "foo.spec")
	require.NoError(t, os.WriteFile(specPath, []byte("Name: foo\n"), 0o644))

	wt, err := repo.Worktree()
	require.NoError(t, err)
	_, err = wt.Add("foo.spec")
	require.NoError(t, err)

	hash, err := wt.Commit("import foo", &git.CommitOptions{
		Author: &object.Signature{Name: "Test", Email: "test@example.com", When: time.Now()},
	})
	require.NoError(t, err)

	return specPath, hash.String()
}

func TestInRepo(t *testing.T) {
	specPath, _ := initRepoWithCommit(t)

	a := gitinfo.New()
	assert.True(t, a.InRepo(specPath))

	outside := filepath.Join(t.TempDir(), "foo.spec")
	assert.False(t, a.InRepo(outside))
}

func TestHeadCommit(t *testing.T) {
	specPath, commit := initRepoWithCommit(t)

	got, err := gitinfo.New().HeadCommit(specPath)
	require.NoError(t, err)
	assert.Equal(t, commit, got)
}

func TestHeadCommit_OutsideRepo(t *testing.T) {
	_, err := gitinfo.New().HeadCommit(filepath.Join(t.TempDir(), "foo.spec"))
	require.Error(t, err)
}
