package indentex_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eolymp/go-indentex"
)

func TestSplitLines(t *testing.T) {
	tt := []struct {
		name   string
		input  string
		output []string
	}{
		{name: "empty", input: "", output: nil},
		{name: "final newline", input: "a\nb\n", output: []string{"a", "b"}},
		{name: "no final newline", input: "a\nb", output: []string{"a", "b"}},
		{name: "windows line endings", input: "a\r\n  b\r\n", output: []string{"a", "  b"}},
		{name: "trailing whitespace", input: "# itemize:  \n  * a \t\n", output: []string{"# itemize:", "  * a"}},
		{name: "empty lines are kept", input: "a\n\n\nb\n", output: []string{"a", "", "", "b"}},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.output, indentex.SplitLines(tc.input))
		})
	}
}

func TestOutputPath(t *testing.T) {
	tt := []struct {
		input  string
		output string
		err    bool
	}{
		{input: "foo.inden.tex", output: "foo.tex"},
		{input: filepath.Join("dir", "sub", "chapter.inden.tex"), output: filepath.Join("dir", "sub", "chapter.tex")},
		{input: "foo.tex", err: true},
		{input: "foo.inden", err: true},
		{input: ".inden.tex", err: true},
		{input: filepath.Join("dir.inden.tex", "foo"), err: true},
	}

	for _, tc := range tt {
		t.Run(tc.input, func(t *testing.T) {
			got, err := indentex.OutputPath(tc.input)
			if tc.err {
				require.ErrorIs(t, err, indentex.ErrPath)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.output, got)
		})
	}
}

func TestReadLines(t *testing.T) {
	dir := t.TempDir()

	t.Run("byte order mark is removed", func(t *testing.T) {
		path := filepath.Join(dir, "bom.inden.tex")
		require.NoError(t, os.WriteFile(path, []byte("\xef\xbb\xbf# itemize:\r\n  * a\r\n"), 0o644))

		lines, err := indentex.ReadLines(path)
		require.NoError(t, err)
		assert.Equal(t, []string{"# itemize:", "  * a"}, lines)
	})

	t.Run("invalid encoding", func(t *testing.T) {
		path := filepath.Join(dir, "latin1.inden.tex")
		require.NoError(t, os.WriteFile(path, []byte("caf\xe9\n"), 0o644))

		_, err := indentex.ReadLines(path)
		require.ErrorIs(t, err, indentex.ErrEncoding)

		var ferr *indentex.FileError
		require.True(t, errors.As(err, &ferr))
		assert.Equal(t, indentex.EncodingError, ferr.Kind)
		assert.Equal(t, path, ferr.Path)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := indentex.ReadLines(filepath.Join(dir, "missing.inden.tex"))
		require.ErrorIs(t, err, indentex.ErrRead)
		require.ErrorIs(t, err, os.ErrNotExist)
		assert.NotErrorIs(t, err, indentex.ErrWrite)
	})
}

func TestTranspileFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "list.inden.tex")

	require.NoError(t, os.WriteFile(path, []byte("# itemize:\n  * a\n  * b\n"), 0o644))

	out, err := indentex.TranspileFile(path, indentex.Options{})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "list.tex"), out)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "\\begin{itemize}\n  \\item a\n  \\item b\n\\end{itemize}\n", string(data))

	t.Run("wrong suffix", func(t *testing.T) {
		path := filepath.Join(dir, "plain.tex")
		require.NoError(t, os.WriteFile(path, []byte("x\n"), 0o644))

		_, err := indentex.TranspileFile(path, indentex.Options{})
		require.ErrorIs(t, err, indentex.ErrPath)
	})

	t.Run("output is not writable", func(t *testing.T) {
		path := filepath.Join(dir, "blocked.inden.tex")
		require.NoError(t, os.WriteFile(path, []byte("x\n"), 0o644))
		require.NoError(t, os.Mkdir(filepath.Join(dir, "blocked.tex"), 0o755))

		_, err := indentex.TranspileFile(path, indentex.Options{})
		require.ErrorIs(t, err, indentex.ErrWrite)
	})
}

func TestFindSources(t *testing.T) {
	dir := t.TempDir()

	for _, name := range []string{"b.inden.tex", "a.inden.tex", "notes.tex", "sub/c.inden.tex", "sub/deep/d.inden.tex"} {
		path := filepath.Join(dir, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte("x\n"), 0o644))
	}

	t.Run("directory", func(t *testing.T) {
		found, err := indentex.FindSources(dir, "")
		require.NoError(t, err)
		assert.Equal(t, []string{
			filepath.Join(dir, "a.inden.tex"),
			filepath.Join(dir, "b.inden.tex"),
			filepath.Join(dir, "sub", "c.inden.tex"),
			filepath.Join(dir, "sub", "deep", "d.inden.tex"),
		}, found)
	})

	t.Run("custom pattern", func(t *testing.T) {
		found, err := indentex.FindSources(dir, "*.inden.tex")
		require.NoError(t, err)
		assert.Equal(t, []string{filepath.Join(dir, "a.inden.tex"), filepath.Join(dir, "b.inden.tex")}, found)
	})

	t.Run("file is returned as is", func(t *testing.T) {
		path := filepath.Join(dir, "notes.tex")

		found, err := indentex.FindSources(path, "")
		require.NoError(t, err)
		assert.Equal(t, []string{path}, found)
	})

	t.Run("bad pattern", func(t *testing.T) {
		_, err := indentex.FindSources(dir, "[")
		require.ErrorIs(t, err, indentex.ErrPath)
	})

	t.Run("missing", func(t *testing.T) {
		_, err := indentex.FindSources(filepath.Join(dir, "missing"), "")
		require.ErrorIs(t, err, indentex.ErrRead)
	})
}
