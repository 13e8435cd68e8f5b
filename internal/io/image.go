package ioutils

import (
	"context"
	"image"
	_ "image/gif"  // GIF decoder registration
	_ "image/jpeg" // JPEG decoder registration
	_ "image/png"  // PNG decoder registration
	"path/filepath"

	"github.com/handiism/gallery-exporter/internal/model"
	"github.com/spf13/afero"
	_ "golang.org/x/image/bmp"  // BMP decoder registration
	_ "golang.org/x/image/tiff" // TIFF decoder registration
	_ "golang.org/x/image/webp" // WebP decoder registration
)

// ImageService reads image metadata for gallery photos.
//
// Only the image header is decoded, so probing is cheap even for large
// files. Nothing is resized or re-encoded.
//
// Example usage:
//
//	svc := NewImageService()
//	info, err := svc.Probe(ctx, fs, "/srv/public/imgs/cat.jpg")
//	// info.Format == "jpeg", info.Width == 640, info.Height == 480
type ImageService struct{}

// NewImageService creates a new ImageService.
func NewImageService() *ImageService {
	return &ImageService{}
}

// Probe returns size, format and dimensions of the image at path.
//
// The returned PhotoInfo always carries Path, Name and, when the file could
// be stat'ed, Size. If the header cannot be decoded the error is returned and
// also stored in PhotoInfo.Err.
//
// Supported formats: JPEG, PNG, GIF, BMP, TIFF and WebP.
func (s *ImageService) Probe(ctx context.Context, fs afero.Fs, path string) (model.PhotoInfo, error) {
	info := model.PhotoInfo{
		Path: path,
		Name: filepath.Base(path),
	}

	if err := ctx.Err(); err != nil {
		info.Err = err
		return info, err
	}

	fi, err := fs.Stat(path)
	if err != nil {
		info.Err = err
		return info, err
	}
	info.Size = fi.Size()

	f, err := fs.Open(path)
	if err != nil {
		info.Err = err
		return info, err
	}
	defer f.Close()

	cfg, format, err := image.DecodeConfig(f)
	if err != nil {
		info.Err = err
		return info, err
	}

	info.Format = format
	info.Width = cfg.Width
	info.Height = cfg.Height
	return info, nil
}
