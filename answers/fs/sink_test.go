package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/gaussjordan/answers"
	"github.com/katalvlaran/gaussjordan/answers/fs"
	"github.com/katalvlaran/gaussjordan/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSink_PutAndClear(t *testing.T) {
	ctx := context.Background()
	root := filepath.Join(t.TempDir(), "out")
	s, err := fs.New(root)
	require.NoError(t, err)
	assert.Equal(t, answers.DriverFilesystem, s.Driver())
	assert.Equal(t, root, s.Root())

	require.NoError(t, answers.WriteMatrix(ctx, s, answers.Key("naive", "ans", 3, 12, ".txt"), matrix.Column(1), 1))
	require.NoError(t, s.Put(ctx, "sor/ans1.txt", []byte("x")))

	b, err := os.ReadFile(filepath.Join(root, "naive", "ans03.txt"))
	require.NoError(t, err)
	assert.Equal(t, "-------\n| 1.0 |\n-------\n", string(b))

	// overwrite
	require.NoError(t, s.Put(ctx, "sor/ans1.txt", []byte("y")))
	b, err = os.ReadFile(filepath.Join(root, "sor", "ans1.txt"))
	require.NoError(t, err)
	assert.Equal(t, "y", string(b))

	require.NoError(t, s.Clear(ctx, "naive"))
	_, err = os.Stat(filepath.Join(root, "naive"))
	assert.True(t, os.IsNotExist(err))

	require.NoError(t, s.Clear(ctx, ""))
	entries, err := os.ReadDir(root)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestSink_RejectsBadKeys(t *testing.T) {
	s, err := fs.New(t.TempDir())
	require.NoError(t, err)
	for _, k := range []string{"", "../escape", "/etc/passwd"} {
		require.ErrorIs(t, s.Put(context.Background(), k, nil), answers.ErrInvalidKey, k)
	}
	require.ErrorIs(t, s.Clear(context.Background(), "../"), answers.ErrInvalidKey)
}

func TestSink_CanceledContext(t *testing.T) {
	s, err := fs.New(t.TempDir())
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.ErrorIs(t, s.Put(ctx, "a.txt", nil), context.Canceled)
}
