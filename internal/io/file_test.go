package ioutils

import (
	"context"
	"errors"
	"testing"

	"github.com/spf13/afero"
)

func TestCopyFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	ctx := context.Background()

	if err := afero.WriteFile(fs, "/src/a.jpg", []byte("jpeg-bytes"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := fs.MkdirAll("/dst", 0755); err != nil {
		t.Fatal(err)
	}

	n, err := CopyFile(ctx, fs, "/src/a.jpg", "/dst/a.jpg")
	if err != nil {
		t.Fatalf("CopyFile() error = %v", err)
	}
	if n != int64(len("jpeg-bytes")) {
		t.Errorf("CopyFile() copied %d bytes, want %d", n, len("jpeg-bytes"))
	}

	got, err := afero.ReadFile(fs, "/dst/a.jpg")
	if err != nil {
		t.Fatalf("reading copy: %v", err)
	}
	if string(got) != "jpeg-bytes" {
		t.Errorf("copy content = %q, want %q", got, "jpeg-bytes")
	}

	// Source must be left untouched
	src, _ := afero.ReadFile(fs, "/src/a.jpg")
	if string(src) != "jpeg-bytes" {
		t.Error("source file should not change")
	}
}

func TestCopyFile_Overwrites(t *testing.T) {
	fs := afero.NewMemMapFs()
	ctx := context.Background()

	_ = afero.WriteFile(fs, "/src/a.jpg", []byte("new"), 0644)
	_ = afero.WriteFile(fs, "/dst/a.jpg", []byte("old and longer"), 0644)

	if _, err := CopyFile(ctx, fs, "/src/a.jpg", "/dst/a.jpg"); err != nil {
		t.Fatalf("CopyFile() error = %v", err)
	}

	got, _ := afero.ReadFile(fs, "/dst/a.jpg")
	if string(got) != "new" {
		t.Errorf("copy content = %q, want %q", got, "new")
	}
}

func TestCopyFile_Errors(t *testing.T) {
	fs := afero.NewMemMapFs()
	_ = afero.WriteFile(fs, "/src/a.jpg", []byte("x"), 0644)
	_ = fs.MkdirAll("/src/dir.jpg", 0755)

	cancelled, cancel := context.WithCancel(context.Background())
	cancel()

	tests := []struct {
		name string
		ctx  context.Context
		src  string
		dst  string
	}{
		{"missing source", context.Background(), "/src/missing.jpg", "/dst/missing.jpg"},
		{"directory source", context.Background(), "/src/dir.jpg", "/dst/dir.jpg"},
		{"same file", context.Background(), "/src/a.jpg", "/src/a.jpg"},
		{"cancelled", cancelled, "/src/a.jpg", "/dst/a.jpg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := CopyFile(tt.ctx, fs, tt.src, tt.dst); err == nil {
				t.Error("CopyFile() should fail")
			}
		})
	}
}

func TestCopyFile_SameFileError(t *testing.T) {
	fs := afero.NewMemMapFs()
	_ = afero.WriteFile(fs, "/imgs/a.jpg", []byte("keep me"), 0644)

	_, err := CopyFile(context.Background(), fs, "/imgs/a.jpg", "/imgs/./a.jpg")
	if !errors.Is(err, ErrSameFile) {
		t.Fatalf("CopyFile() error = %v, want ErrSameFile", err)
	}

	got, _ := afero.ReadFile(fs, "/imgs/a.jpg")
	if string(got) != "keep me" {
		t.Error("copying a file onto itself must not truncate it")
	}
}

func TestCopyFile_ReadOnlyDestination(t *testing.T) {
	base := afero.NewMemMapFs()
	_ = afero.WriteFile(base, "/src/a.jpg", []byte("x"), 0644)
	_ = base.MkdirAll("/dst", 0755)
	fs := afero.NewReadOnlyFs(base)

	if _, err := CopyFile(context.Background(), fs, "/src/a.jpg", "/dst/a.jpg"); err == nil {
		t.Error("CopyFile() should fail when the destination cannot be written")
	}
}

func TestWriteFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	ctx := context.Background()

	if err := WriteFile(ctx, fs, "/out/gallery.html", []byte("first version")); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	if err := WriteFile(ctx, fs, "/out/gallery.html", []byte("second")); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	got, _ := afero.ReadFile(fs, "/out/gallery.html")
	if string(got) != "second" {
		t.Errorf("content = %q, want %q", got, "second")
	}
}

func TestEnsureDir(t *testing.T) {
	fs := afero.NewMemMapFs()

	if err := EnsureDir(fs, "/out/imgs"); err != nil {
		t.Fatalf("EnsureDir() error = %v", err)
	}
	exists, err := DirExists(fs, "/out/imgs")
	if err != nil || !exists {
		t.Fatalf("DirExists() = %v, %v, want true", exists, err)
	}

	// Existing content survives a second call
	_ = afero.WriteFile(fs, "/out/imgs/old.jpg", []byte("old"), 0644)
	if err := EnsureDir(fs, "/out/imgs"); err != nil {
		t.Fatalf("EnsureDir() on existing directory error = %v", err)
	}
	if ok, _ := afero.Exists(fs, "/out/imgs/old.jpg"); !ok {
		t.Error("EnsureDir() should not clear an existing directory")
	}
}

func TestEnsureDir_FileInTheWay(t *testing.T) {
	fs := afero.NewMemMapFs()
	_ = afero.WriteFile(fs, "/out", []byte("not a dir"), 0644)

	if err := EnsureDir(fs, "/out"); err == nil {
		t.Error("EnsureDir() should fail when a file occupies the path")
	}
}
