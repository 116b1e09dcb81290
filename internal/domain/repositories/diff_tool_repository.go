package repositories

import "context"

// DiffToolRepository abstracts the external line-oriented diff utility.
//
//go:generate go run go.uber.org/mock/mockgen -source=diff_tool_repository.go -destination=../../../test/infrastructure/repositorymocks/mock_diff_tool_repository.go -package=repositorymocks
type DiffToolRepository interface {
	// Diff compares two directory trees recursively, streaming the output to the user.
	// Finding differences is not an error.
	Diff(ctx context.Context, first, second string) error

	// Available reports whether the tool answers a `--version` probe.
	Available(ctx context.Context) bool
}
