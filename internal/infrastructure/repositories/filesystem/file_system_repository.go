package filesystem

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rios0rios0/cargo-review-deps/internal/domain/entities"
	"github.com/rios0rios0/cargo-review-deps/internal/domain/repositories"
)

const ownerWritable = 0o700

// FileSystemRepository implements repositories.FileSystemRepository on the local disk.
type FileSystemRepository struct{}

// NewFileSystemRepository creates a local tree copier.
func NewFileSystemRepository() repositories.FileSystemRepository {
	return &FileSystemRepository{}
}

// CopyTree copies src into dst, creating dst as needed. Directories that already exist are
// merged; a file that already exists is accepted only when it is byte-identical.
// Symlinks are recreated as symlinks.
func (it *FileSystemRepository) CopyTree(src, dst string) error {
	info, err := os.Stat(src)
	if err != nil {
		return entities.NewIOError("stat", src, err)
	}
	if !info.IsDir() {
		return entities.NewIOError("copy", src, fmt.Errorf("not a directory"))
	}

	return filepath.WalkDir(src, func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return entities.NewIOError("walk", path, walkErr)
		}

		rel, err := filepath.Rel(src, path)
		if err != nil {
			return entities.NewIOError("resolve", path, err)
		}
		target := filepath.Join(dst, rel)

		switch {
		case entry.IsDir():
			return copyDir(path, target)
		case entry.Type()&fs.ModeSymlink != 0:
			return copySymlink(path, target)
		case entry.Type().IsRegular():
			return copyFile(path, target)
		default:
			return nil // sockets, devices and pipes have no place in a source tree
		}
	})
}

func copyDir(src, dst string) error {
	info, err := os.Stat(src)
	if err != nil {
		return entities.NewIOError("stat", src, err)
	}
	if err = os.MkdirAll(dst, info.Mode().Perm()|ownerWritable); err != nil {
		return entities.NewIOError("create directory", dst, err)
	}
	return nil
}

func copySymlink(src, dst string) error {
	link, err := os.Readlink(src)
	if err != nil {
		return entities.NewIOError("read symlink", src, err)
	}

	existing, err := os.Readlink(dst)
	if err == nil {
		if existing == link {
			return nil
		}
		return entities.NewIOError("copy", dst, fs.ErrExist)
	}

	if err = os.Symlink(link, dst); err != nil {
		return entities.NewIOError("create symlink", dst, err)
	}
	return nil
}

func copyFile(src, dst string) error {
	info, err := os.Stat(src)
	if err != nil {
		return entities.NewIOError("stat", src, err)
	}

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, info.Mode().Perm())
	if errors.Is(err, fs.ErrExist) {
		return compareExisting(src, dst)
	}
	if err != nil {
		return entities.NewIOError("create file", dst, err)
	}

	in, err := os.Open(src)
	if err != nil {
		_ = out.Close()
		return entities.NewIOError("open", src, err)
	}
	defer in.Close()

	if _, err = io.Copy(out, in); err != nil {
		_ = out.Close()
		return entities.NewIOError("copy", dst, err)
	}
	if err = out.Close(); err != nil {
		return entities.NewIOError("close", dst, err)
	}
	return nil
}

func compareExisting(src, dst string) error {
	want, err := os.ReadFile(src)
	if err != nil {
		return entities.NewIOError("read", src, err)
	}
	have, err := os.ReadFile(dst)
	if err != nil {
		return entities.NewIOError("read", dst, err)
	}
	if !bytes.Equal(want, have) {
		return entities.NewIOError("copy", dst, fmt.Errorf("conflicting file already exists"))
	}
	return nil
}
