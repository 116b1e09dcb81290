//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/cargo-review-deps/internal/domain/commands"
)

// StubUpdateDiffCommand is a stub implementation of commands.UpdateDiff.
type StubUpdateDiffCommand struct {
	ExecuteCallCount int
	ExecuteErr       error
	LastOpts         commands.UpdateDiffOptions
}

var _ commands.UpdateDiff = (*StubUpdateDiffCommand)(nil)

func (s *StubUpdateDiffCommand) Execute(
	_ context.Context,
	opts commands.UpdateDiffOptions,
) error {
	s.ExecuteCallCount++
	s.LastOpts = opts
	return s.ExecuteErr
}
