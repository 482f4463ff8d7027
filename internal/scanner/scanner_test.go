package scanner

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
}

func TestMatch(t *testing.T) {
	f := NewFilter([]string{".mp4", "MOV", ""})

	tests := []struct {
		name string
		want bool
	}{
		{"talk.mp4", true},
		{"TALK.MP4", true},
		{"clip.mov", true},
		{"/videos/nested/talk.mp4", true},
		{"notes.txt", false},
		{"talk.mp3", false},
		{"talk.srt", false},
		{"talk.mp4.part", false},
		{"._talk.mp4", false},
		{"mp4", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, f.Match(tt.name))
		})
	}
}

func TestScanFiltersAndSorts(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.mp4", "notes.txt", "a.mp4", "c.MP4", "a.srt", ".hidden.mp4"} {
		touch(t, filepath.Join(dir, name))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "folder.mp4"), 0o755))
	touch(t, filepath.Join(dir, "folder.mp4", "inner.mp4"))

	files, err := NewFilter([]string{".mp4"}).Scan(dir)
	require.NoError(t, err)

	assert.Equal(t, []string{
		filepath.Join(dir, "a.mp4"),
		filepath.Join(dir, "b.mp4"),
		filepath.Join(dir, "c.MP4"),
	}, files)
}

func TestScanCountsOnlyMatches(t *testing.T) {
	dir := t.TempDir()
	const n, m = 4, 3
	for i := 0; i < n; i++ {
		touch(t, filepath.Join(dir, string(rune('a'+i))+".mp4"))
	}
	for i := 0; i < m; i++ {
		touch(t, filepath.Join(dir, string(rune('a'+i))+".txt"))
	}

	files, err := NewFilter([]string{".mp4"}).Scan(dir)
	require.NoError(t, err)
	assert.Len(t, files, n)
}

func TestScanEmptyDirectory(t *testing.T) {
	files, err := NewFilter([]string{".mp4"}).Scan(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestScanMissingDirectory(t *testing.T) {
	_, err := NewFilter([]string{".mp4"}).Scan(filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestScanFileInsteadOfDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "talk.mp4")
	touch(t, path)

	_, err := NewFilter([]string{".mp4"}).Scan(path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotDirectory))
}
