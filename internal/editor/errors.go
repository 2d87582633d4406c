package editor

import (
	"errors"
	"fmt"
)

var (
	// ErrLoadIO matches load failures caused by opening or reading the file.
	ErrLoadIO = errors.New("load: io")
	// ErrLoadParse matches load failures caused by malformed content.
	ErrLoadParse = errors.New("load: parse")
	// ErrSerialize matches serialize failures.
	ErrSerialize = errors.New("serialize")
)

// LoadErrorKind classifies a LoadError.
type LoadErrorKind int

const (
	LoadErrorIO LoadErrorKind = iota
	LoadErrorParse
)

func (k LoadErrorKind) String() string {
	if k == LoadErrorParse {
		return "parse"
	}
	return "io"
}

// LoadError reports a failed LoadFromFile. The editor state is unchanged
// whenever one is returned.
type LoadError struct {
	Kind LoadErrorKind
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	switch e.Kind {
	case LoadErrorParse:
		return fmt.Sprintf("parse %s: %v", e.Path, e.Err)
	default:
		return fmt.Sprintf("read %s: %v", e.Path, e.Err)
	}
}

func (e *LoadError) Unwrap() error { return e.Err }

func (e *LoadError) Is(target error) bool {
	switch target {
	case ErrLoadIO:
		return e.Kind == LoadErrorIO
	case ErrLoadParse:
		return e.Kind == LoadErrorParse
	}
	return false
}

// SerializeError reports a failure to encode the pairs.
type SerializeError struct {
	Err error
}

func (e *SerializeError) Error() string { return fmt.Sprintf("serialize pairs: %v", e.Err) }

func (e *SerializeError) Unwrap() error { return e.Err }

func (e *SerializeError) Is(target error) bool { return target == ErrSerialize }
