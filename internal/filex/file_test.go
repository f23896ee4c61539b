package filex

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
)

func chdir(t *testing.T, dir string) func() {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	return func() { _ = os.Chdir(old) }
}

func TestEnsureDir_ResolvesRelativeToCWD(t *testing.T) {
	tmp := t.TempDir()
	defer chdir(t, tmp)()

	got, err := EnsureDir("profiles")
	require.NoError(t, err)

	// macOS temp dirs live behind a symlink.
	wantInfo, err := os.Stat(filepath.Join(tmp, "profiles"))
	require.NoError(t, err)
	gotInfo, err := os.Stat(got)
	require.NoError(t, err)
	require.True(t, os.SameFile(wantInfo, gotInfo))
	require.True(t, gotInfo.IsDir(), "should create a directory")

	if runtime.GOOS != "windows" {
		require.Equal(t, os.FileMode(0o700), gotInfo.Mode().Perm()&0o700)
	}
}

func TestEnsureDir_Idempotent(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")

	first, err := EnsureDir(dir)
	require.NoError(t, err)
	second, err := EnsureDir(dir)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestEnsureDir_FailsIfFileWithSameNameExists(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "taken")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o600))

	_, err := EnsureDir(path)
	require.Error(t, err, "should fail when a file exists with the same name")
}

func TestEnsureParentDir(t *testing.T) {
	tmp := t.TempDir()

	require.NoError(t, EnsureParentDir(filepath.Join(tmp, "nested", "client.db")))
	fi, err := os.Stat(filepath.Join(tmp, "nested"))
	require.NoError(t, err)
	require.True(t, fi.IsDir())

	require.NoError(t, EnsureParentDir("client.db"), "current directory needs nothing")
}
