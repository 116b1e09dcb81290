package repositories

// FileSystemRepository copies package source trees around.
type FileSystemRepository interface {
	// CopyTree recursively copies src into dst. Existing directories are merged; an existing
	// file is accepted only when its content is identical.
	CopyTree(src, dst string) error
}
