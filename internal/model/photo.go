package model

import (
	"fmt"
	"path/filepath"
)

// Photo represents one image handled by a gallery export.
type Photo struct {
	// SourcePath is the absolute path of the original file.
	SourcePath string

	// Name is the base name of the original file, kept for the copy.
	Name string

	// Path is where the copy lives inside the image directory.
	Path string
}

// NewPhoto creates a Photo whose copy keeps the source file name and lives
// directly inside imgDir.
func NewPhoto(sourcePath, imgDir string) *Photo {
	name := filepath.Base(sourcePath)
	return &Photo{
		SourcePath: sourcePath,
		Name:       name,
		Path:       filepath.Join(imgDir, name),
	}
}

// PhotoInfo holds what is known about a photo after probing its header.
type PhotoInfo struct {
	Path   string
	Name   string
	Size   int64
	Format string
	Width  int
	Height int

	// Err is set when the header could not be decoded.
	Err error
}

// Dimensions returns "WxH", or "unknown" when the probe failed.
func (p PhotoInfo) Dimensions() string {
	if p.Err != nil || p.Width == 0 || p.Height == 0 {
		return "unknown"
	}
	return fmt.Sprintf("%dx%d", p.Width, p.Height)
}

// TotalSize sums the file sizes of all photos.
func TotalSize(infos []PhotoInfo) int64 {
	var total int64
	for _, info := range infos {
		total += info.Size
	}
	return total
}
