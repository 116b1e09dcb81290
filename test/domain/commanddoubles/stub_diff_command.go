//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/cargo-review-deps/internal/domain/commands"
)

// StubDiffCommand is a stub implementation of commands.Diff.
type StubDiffCommand struct {
	ExecuteCallCount int
	ExecuteErr       error
	LastOpts         commands.DiffOptions
}

var _ commands.Diff = (*StubDiffCommand)(nil)

func (s *StubDiffCommand) Execute(
	_ context.Context,
	opts commands.DiffOptions,
) error {
	s.ExecuteCallCount++
	s.LastOpts = opts
	return s.ExecuteErr
}
