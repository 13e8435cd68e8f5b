// Package ioutils provides file system utilities for the gallery exporter.
//
// This package contains functions for:
//   - File copying
//   - File writing
//   - Directory creation
//
// Functions that accept a context.Context check it before starting work;
// a single file operation is not interrupted once started.
package ioutils

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"syscall"

	"github.com/spf13/afero"
)

// ErrSameFile is returned by CopyFile when source and destination are the
// same file.
var ErrSameFile = errors.New("source and destination are the same file")

// CopyFile copies a file from source to destination.
//
// The destination file is created if it doesn't exist, or truncated if it
// does. The source file must exist, be readable and must not be a
// directory. The number of bytes copied is returned.
//
// Returns an error if:
//   - ctx is already done
//   - Source file cannot be opened or is a directory
//   - Source and destination are the same file
//   - Destination file cannot be created
//   - Copy operation fails
//
// Example:
//
//	n, err := CopyFile(ctx, fs, "/path/to/source.jpg", "/path/to/dest.jpg")
func CopyFile(ctx context.Context, fs afero.Fs, src, dst string) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	srcInfo, err := fs.Stat(src)
	if err != nil {
		return 0, err
	}
	if srcInfo.IsDir() {
		return 0, fmt.Errorf("%s is a directory", src)
	}

	if filepath.Clean(src) == filepath.Clean(dst) {
		return 0, ErrSameFile
	}
	if dstInfo, err := fs.Stat(dst); err == nil && os.SameFile(srcInfo, dstInfo) {
		return 0, ErrSameFile
	}

	sourceFile, err := fs.Open(src)
	if err != nil {
		return 0, err
	}
	defer sourceFile.Close()

	destFile, err := fs.Create(dst)
	if err != nil {
		return 0, err
	}

	n, err := io.Copy(destFile, sourceFile)
	if err != nil {
		_ = destFile.Close()
		return n, err
	}
	return n, destFile.Close()
}

// WriteFile writes data to a file, creating it if necessary.
//
// The file is created with mode 0644. If the file already exists,
// it is truncated before writing.
//
// Example:
//
//	err := WriteFile(ctx, fs, "/srv/public/gallery.html", []byte(page))
func WriteFile(ctx context.Context, fs afero.Fs, path string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return afero.WriteFile(fs, path, data, 0644)
}

// DirExists reports whether path exists and is a directory.
func DirExists(fs afero.Fs, path string) (bool, error) {
	return afero.DirExists(fs, path)
}

// EnsureDir creates a directory and all parent directories if they don't exist.
//
// Directories are created with mode 0755 (rwxr-xr-x). An existing directory
// is left untouched: it is neither an error nor cleared.
//
// Example:
//
//	err := EnsureDir(fs, "/srv/public/imgs")
func EnsureDir(fs afero.Fs, path string) error {
	exists, err := DirExists(fs, path)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	occupied, err := afero.Exists(fs, path)
	if err != nil {
		return err
	}
	if occupied {
		return &os.PathError{Op: "mkdir", Path: path, Err: syscall.ENOTDIR}
	}
	return fs.MkdirAll(path, 0755)
}
