package gallery

import "fmt"

// DirectoryCreationError is returned when the export directory or its image
// directory cannot be created.
type DirectoryCreationError struct {
	Path string
	Err  error
}

func (e *DirectoryCreationError) Error() string {
	return fmt.Sprintf("failed to create directory %s: %v", e.Path, e.Err)
}

func (e *DirectoryCreationError) Unwrap() error { return e.Err }

// FileCopyError is returned when a photo cannot be copied into the image
// directory.
type FileCopyError struct {
	Src string
	Dst string
	Err error
}

func (e *FileCopyError) Error() string {
	return fmt.Sprintf("failed to copy %s to %s: %v", e.Src, e.Dst, e.Err)
}

func (e *FileCopyError) Unwrap() error { return e.Err }

// FileWriteError is returned when the gallery page cannot be written.
type FileWriteError struct {
	Path string
	Err  error
}

func (e *FileWriteError) Error() string {
	return fmt.Sprintf("failed to write %s: %v", e.Path, e.Err)
}

func (e *FileWriteError) Unwrap() error { return e.Err }
