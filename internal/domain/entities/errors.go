package entities

import (
	"fmt"

	"go.trai.ch/zerr"
)

var (
	// ErrInvalidSpecification is returned when a user supplied "name:x.y.z" cannot be parsed.
	ErrInvalidSpecification = zerr.New("invalid package specification")

	// ErrResolutionFailed is returned when `cargo metadata` fails or returns malformed data.
	ErrResolutionFailed = zerr.New("cargo metadata failed")

	// ErrUpdateFailed is returned when `cargo update` exits with a non-zero status.
	ErrUpdateFailed = zerr.New("running cargo update failed")

	// ErrPackageNotFound is returned when cargo resolved something other than the requested package.
	ErrPackageNotFound = zerr.New("unexpected error: can't find package")

	// ErrMissingDiffTool is returned when no usable diff command is installed.
	ErrMissingDiffTool = zerr.New("looks like you don't have a suitable diff command installed")

	// ErrDiffFailed is returned when the diff command ran but reported trouble.
	ErrDiffFailed = zerr.New("diff command failed")

	// ErrIO is returned for any filesystem failure.
	ErrIO = zerr.New("filesystem operation failed")
)

// NewIOError wraps a filesystem failure so that both ErrIO and the cause match errors.Is.
func NewIOError(op, path string, cause error) error {
	return fmt.Errorf("%w: %s %s: %w", ErrIO, op, path, cause)
}
