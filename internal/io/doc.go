// Package ioutils provides file system and image utilities.
//
// This package contains functions for:
//   - File copying and writing
//   - Directory creation
//   - Reading image headers (format and dimensions)
//
// All file operations go through an afero.Fs so callers can run them
// against the real disk or an in-memory filesystem.
//
// # File Operations
//
//	fs := afero.NewOsFs()
//
//	// Copy a file
//	n, err := ioutils.CopyFile(ctx, fs, "/src/cat.jpg", "/out/imgs/cat.jpg")
//
//	// Write data to file
//	err := ioutils.WriteFile(ctx, fs, "/out/gallery.html", []byte(page))
//
//	// Ensure directory exists
//	err := ioutils.EnsureDir(fs, "/out/imgs")
//
// # Image Probing
//
// The ImageService reads only the header of an image:
//
//	svc := ioutils.NewImageService()
//	info, err := svc.Probe(ctx, fs, "/out/imgs/cat.jpg")
//	fmt.Println(info.Format, info.Dimensions()) // jpeg 640x480
package ioutils
