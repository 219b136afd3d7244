package indentex

import (
	"errors"
	"fmt"
)

// Kind of file error. Transpilation itself never fails, only reading and writing files do.
type Kind int

const (
	ReadError Kind = iota
	EncodingError
	WriteError
	PathError
)

var (
	ErrRead     = errors.New("unable to read file")
	ErrEncoding = errors.New("file is not valid UTF-8")
	ErrWrite    = errors.New("unable to write file")
	ErrPath     = errors.New("unable to derive output path")
)

func (k Kind) String() string {
	switch k {
	case ReadError:
		return "read"
	case EncodingError:
		return "encoding"
	case WriteError:
		return "write"
	case PathError:
		return "path"
	default:
		return "unknown"
	}
}

// sentinel returns error value matching this kind with errors.Is
func (k Kind) sentinel() error {
	switch k {
	case ReadError:
		return ErrRead
	case EncodingError:
		return ErrEncoding
	case WriteError:
		return ErrWrite
	default:
		return ErrPath
	}
}

type FileError struct {
	Kind Kind
	Path string
	Err  error
}

func (e *FileError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%v: %s", e.Kind.sentinel(), e.Path)
	}

	return fmt.Sprintf("%v: %s: %v", e.Kind.sentinel(), e.Path, e.Err)
}

func (e *FileError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrRead) and friends work for file errors of the corresponding kind
func (e *FileError) Is(target error) bool {
	return target == e.Kind.sentinel()
}
