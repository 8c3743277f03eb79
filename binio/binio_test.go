package binio_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/snapcsr/binio"
)

func TestRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "arr.bin")
	want := []int64{0, 1, 3, 4, -9, 1 << 40}

	require.NoError(t, binio.WriteInt64s(path, want))

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Equal(t, int64(len(want)*binio.WordSize), info.Size())

	got, err := binio.ReadInt64s(path)
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestWriteEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.bin")
	require.NoError(t, binio.WriteInt64s(path, nil))

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Zero(t, info.Size())

	got, err := binio.ReadInt64s(path)
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestErrors(t *testing.T) {
	dir := t.TempDir()

	if err := binio.WriteInt64s(filepath.Join(dir, "no", "such", "dir.bin"), []int64{1}); !errors.Is(err, binio.ErrCreate) {
		t.Errorf("missing parent: want ErrCreate, got %v", err)
	}
	if _, err := binio.ReadInt64s(filepath.Join(dir, "absent.bin")); !errors.Is(err, binio.ErrOpen) {
		t.Errorf("missing file: want ErrOpen, got %v", err)
	}

	ragged := filepath.Join(dir, "ragged.bin")
	require.NoError(t, os.WriteFile(ragged, []byte("12345"), 0o644))
	if _, err := binio.ReadInt64s(ragged); !errors.Is(err, binio.ErrRead) {
		t.Errorf("ragged size: want ErrRead, got %v", err)
	}
}

func TestPeek(t *testing.T) {
	path := filepath.Join(t.TempDir(), "arr.bin")
	require.NoError(t, binio.WriteInt64s(path, []int64{7, 8, 9}))

	var sb strings.Builder
	require.NoError(t, binio.Peek(&sb, path, 2))
	require.Equal(t, "[0] = 7\n[1] = 8\n", sb.String())

	// Asking for more words than the file holds dumps the whole file.
	sb.Reset()
	require.NoError(t, binio.Peek(&sb, path, 100))
	require.Equal(t, "[0] = 7\n[1] = 8\n[2] = 9\n", sb.String())
}
