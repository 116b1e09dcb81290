package entities

import "os"

const (
	defaultCargoBinary = "cargo"
	defaultDiffBinary  = "diff"
)

// Settings holds the external tools the commands shell out to.
type Settings struct {
	CargoBinary string
	DiffBinary  string
	DiffArgs    []string
}

// NewSettings returns the default settings. When running as a cargo subcommand, cargo exports
// the path of its own binary in $CARGO and that binary is preferred.
func NewSettings() *Settings {
	cargo := os.Getenv("CARGO")
	if cargo == "" {
		cargo = defaultCargoBinary
	}
	return &Settings{
		CargoBinary: cargo,
		DiffBinary:  defaultDiffBinary,
		DiffArgs:    []string{"--color=auto", "-r"},
	}
}
