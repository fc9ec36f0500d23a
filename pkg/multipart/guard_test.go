package multipart

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFileGuard_ReleaseRemovesFile(t *testing.T) {
	f, err := os.CreateTemp("", "guard-test-*")
	require.NoError(t, err)
	path := f.Name()
	require.NoError(t, f.Close())

	g := newFileGuard(path)
	g.release()

	_, err = os.Stat(path)
	require.True(t, os.IsNotExist(err))
}

func TestFileGuard_DisarmKeepsFile(t *testing.T) {
	f, err := os.CreateTemp("", "guard-test-*")
	require.NoError(t, err)
	path := f.Name()
	require.NoError(t, f.Close())
	defer os.Remove(path)

	g := newFileGuard(path)
	g.disarm()
	g.release() // no-op after disarm

	_, err = os.Stat(path)
	require.NoError(t, err)
}

func TestPart_KeepDisarmsGuard(t *testing.T) {
	f, err := os.CreateTemp("", "guard-test-*")
	require.NoError(t, err)
	path := f.Name()
	require.NoError(t, f.Close())
	defer os.Remove(path)

	p := &Part{Pathname: path, guard: newFileGuard(path)}
	p.Keep()
	require.NoError(t, p.Close())

	_, err = os.Stat(path)
	require.NoError(t, err, "Keep should disarm the guard so Close doesn't remove the file")
}
