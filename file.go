package indentex

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/bmatcuk/doublestar/v4"
	textunicode "golang.org/x/text/encoding/unicode"
)

// Suffix of indentex source files, foo.inden.tex is transpiled into foo.tex
const Suffix = ".inden.tex"

// DefaultPattern selects source files when a directory is given
const DefaultPattern = "**/*" + Suffix

// ReadLines reads a source file and splits it into lines without line terminators and trailing whitespace.
func ReadLines(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &FileError{Kind: ReadError, Path: path, Err: err}
	}

	if !utf8.Valid(data) {
		return nil, &FileError{Kind: EncodingError, Path: path}
	}

	// drop byte order mark, the rest is already known to be valid
	data, err = textunicode.UTF8BOM.NewDecoder().Bytes(data)
	if err != nil {
		return nil, &FileError{Kind: EncodingError, Path: path, Err: err}
	}

	return SplitLines(string(data)), nil
}

// SplitLines splits text into lines and trims trailing whitespace of each line. Final line terminator does not start
// a new line.
func SplitLines(text string) []string {
	if text == "" {
		return nil
	}

	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRightFunc(line, unicode.IsSpace)
	}

	return lines
}

// OutputPath derives output file name: foo.inden.tex becomes foo.tex
func OutputPath(path string) (string, error) {
	dir, file := filepath.Split(path)

	if !strings.HasSuffix(file, Suffix) || len(file) == len(Suffix) {
		return "", &FileError{Kind: PathError, Path: path}
	}

	return filepath.Join(dir, strings.TrimSuffix(file, Suffix)+".tex"), nil
}

// WriteFile writes transpiled text into a file.
func WriteFile(path, text string) error {
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return &FileError{Kind: WriteError, Path: path, Err: err}
	}

	return nil
}

// TranspileFile transpiles source file and writes result next to it, it returns path of the written file.
func TranspileFile(path string, opts Options) (string, error) {
	lines, err := ReadLines(path)
	if err != nil {
		return "", err
	}

	out, err := OutputPath(path)
	if err != nil {
		return "", err
	}

	if err := WriteFile(out, Transpile(lines, opts)); err != nil {
		return "", err
	}

	return out, nil
}

// FindSources resolves root into a list of source files. A file is returned as is, a directory is searched for files
// matching pattern (doublestar syntax, relative to root).
func FindSources(root, pattern string) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, &FileError{Kind: ReadError, Path: root, Err: err}
	}

	if !info.IsDir() {
		return []string{root}, nil
	}

	if pattern == "" {
		pattern = DefaultPattern
	}

	if !doublestar.ValidatePattern(pattern) {
		return nil, &FileError{Kind: PathError, Path: pattern, Err: doublestar.ErrBadPattern}
	}

	var found []string

	err = doublestar.GlobWalk(os.DirFS(root), pattern, func(path string, d fs.DirEntry) error {
		if d.IsDir() {
			return nil
		}

		found = append(found, filepath.Join(root, filepath.FromSlash(path)))
		return nil
	})

	if err != nil {
		return nil, &FileError{Kind: ReadError, Path: root, Err: err}
	}

	sort.Strings(found)

	return found, nil
}
