package ioutils

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/spf13/afero"
	"golang.org/x/image/bmp"
)

func testImage(w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 8), G: uint8(y * 8), A: 255})
		}
	}
	return img
}

func TestImageService_Probe(t *testing.T) {
	fs := afero.NewMemMapFs()
	ctx := context.Background()

	var pngBuf bytes.Buffer
	if err := png.Encode(&pngBuf, testImage(32, 16)); err != nil {
		t.Fatal(err)
	}
	var bmpBuf bytes.Buffer
	if err := bmp.Encode(&bmpBuf, testImage(8, 4)); err != nil {
		t.Fatal(err)
	}
	_ = afero.WriteFile(fs, "/imgs/a.png", pngBuf.Bytes(), 0644)
	_ = afero.WriteFile(fs, "/imgs/b.bmp", bmpBuf.Bytes(), 0644)

	tests := []struct {
		path       string
		wantFormat string
		wantWidth  int
		wantHeight int
		wantSize   int64
	}{
		{"/imgs/a.png", "png", 32, 16, int64(pngBuf.Len())},
		{"/imgs/b.bmp", "bmp", 8, 4, int64(bmpBuf.Len())},
	}

	svc := NewImageService()
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			info, err := svc.Probe(ctx, fs, tt.path)
			if err != nil {
				t.Fatalf("Probe() error = %v", err)
			}
			if info.Format != tt.wantFormat {
				t.Errorf("Format = %q, want %q", info.Format, tt.wantFormat)
			}
			if info.Width != tt.wantWidth || info.Height != tt.wantHeight {
				t.Errorf("size = %dx%d, want %dx%d", info.Width, info.Height, tt.wantWidth, tt.wantHeight)
			}
			if info.Size != tt.wantSize {
				t.Errorf("Size = %d, want %d", info.Size, tt.wantSize)
			}
			if info.Err != nil {
				t.Errorf("Err = %v, want nil", info.Err)
			}
		})
	}
}

func TestImageService_ProbeUnknownFormat(t *testing.T) {
	fs := afero.NewMemMapFs()
	_ = afero.WriteFile(fs, "/imgs/notes.txt", []byte("just text"), 0644)

	info, err := NewImageService().Probe(context.Background(), fs, "/imgs/notes.txt")
	if err == nil {
		t.Fatal("Probe() should fail for non-image content")
	}
	if info.Err == nil {
		t.Error("PhotoInfo.Err should record the failure")
	}
	if info.Size != int64(len("just text")) {
		t.Errorf("Size = %d, want %d", info.Size, len("just text"))
	}
	if info.Name != "notes.txt" {
		t.Errorf("Name = %q, want %q", info.Name, "notes.txt")
	}
}

func TestImageService_ProbeMissing(t *testing.T) {
	fs := afero.NewMemMapFs()

	info, err := NewImageService().Probe(context.Background(), fs, "/imgs/missing.jpg")
	if err == nil {
		t.Fatal("Probe() should fail for a missing file")
	}
	if info.Path != "/imgs/missing.jpg" {
		t.Errorf("Path = %q, want %q", info.Path, "/imgs/missing.jpg")
	}
}
