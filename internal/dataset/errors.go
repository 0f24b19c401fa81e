package dataset

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrFileNotFound = errors.New("file not found")
	ErrDecode       = errors.New("json decode error")
	ErrEncoding     = errors.New("file must be UTF-8 encoded")
	ErrFetch        = errors.New("remote fetch failed")
)

// LoadError ties a loading failure to the source it came from.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("%s: %s", e.Path, e.Err.Error())
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Diagnostic is the message shown to the user for this failure.
func (e *LoadError) Diagnostic() string {
	switch {
	case errors.Is(e.Err, ErrFileNotFound):
		return fmt.Sprintf("No se pudo encontrar el archivo: %s", e.Path)
	case errors.Is(e.Err, ErrEncoding):
		return "El archivo debe estar codificado en UTF-8"
	case errors.Is(e.Err, ErrDecode):
		return "Error al decodificar el archivo JSON"
	case errors.Is(e.Err, ErrFetch):
		return fmt.Sprintf("No se pudo descargar el archivo: %s", e.Path)
	}
	return e.Error()
}

func newLoadError(path string, kind error, cause string) *LoadError {
	return &LoadError{Path: path, Err: errors.WithMessage(kind, cause)}
}
