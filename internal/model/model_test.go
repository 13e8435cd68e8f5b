package model

import (
	"errors"
	"testing"
)

func TestNewPhoto(t *testing.T) {
	tests := []struct {
		source   string
		imgDir   string
		wantName string
		wantPath string
	}{
		{"/tmp/a.jpg", "/tmp/out/imgs", "a.jpg", "/tmp/out/imgs/a.jpg"},
		{"/home/me/My Pictures/cat photo.png", "/srv/imgs", "cat photo.png", "/srv/imgs/cat photo.png"},
		{"/x/y/z/no-ext", "/out/imgs", "no-ext", "/out/imgs/no-ext"},
	}

	for _, tt := range tests {
		t.Run(tt.source, func(t *testing.T) {
			photo := NewPhoto(tt.source, tt.imgDir)
			if photo.SourcePath != tt.source {
				t.Errorf("SourcePath = %q, want %q", photo.SourcePath, tt.source)
			}
			if photo.Name != tt.wantName {
				t.Errorf("Name = %q, want %q", photo.Name, tt.wantName)
			}
			if photo.Path != tt.wantPath {
				t.Errorf("Path = %q, want %q", photo.Path, tt.wantPath)
			}
		})
	}
}

func TestPhotoInfo_Dimensions(t *testing.T) {
	tests := []struct {
		name string
		info PhotoInfo
		want string
	}{
		{"known", PhotoInfo{Width: 640, Height: 480}, "640x480"},
		{"zero", PhotoInfo{}, "unknown"},
		{"failed", PhotoInfo{Width: 1, Height: 1, Err: errors.New("bad header")}, "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.info.Dimensions(); got != tt.want {
				t.Errorf("Dimensions() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTotalSize(t *testing.T) {
	infos := []PhotoInfo{{Size: 100}, {Size: 250}, {Size: 0}}
	if got := TotalSize(infos); got != 350 {
		t.Errorf("TotalSize() = %d, want 350", got)
	}
	if got := TotalSize(nil); got != 0 {
		t.Errorf("TotalSize(nil) = %d, want 0", got)
	}
}
