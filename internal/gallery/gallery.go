package gallery

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"

	"github.com/handiism/gallery-exporter/internal/config"
	ioutils "github.com/handiism/gallery-exporter/internal/io"
	"github.com/handiism/gallery-exporter/internal/model"
	"github.com/handiism/gallery-exporter/internal/render"
	"github.com/spf13/afero"
)

const (
	// Title is the page title and heading of every gallery.
	Title = "My Gallery"

	// ImagesDirName is the subdirectory of the export directory holding
	// the copied photos.
	ImagesDirName = "imgs"

	// ExportFileName is the name of the generated page.
	ExportFileName = "gallery.html"
)

// CSS is the style block embedded verbatim in every gallery page.
const CSS = `    img {
      width: 200px;
      height: 200px;
      padding: 0px;
      margin: 0px 24px 24px 0px;
      border: 3px solid #ccc;
      border-radius: 2px;
      box-shadow: 3px 3px 5px #ccc;
    }
`

// Option configures a Gallery.
type Option func(*Gallery)

// WithFs sets the filesystem photos are copied on. Defaults to the OS filesystem.
func WithFs(fs afero.Fs) Option {
	return func(g *Gallery) {
		g.fs = fs
	}
}

// WithRenderer replaces the page renderer.
func WithRenderer(r render.Renderer) Option {
	return func(g *Gallery) {
		g.renderer = r
	}
}

// WithProgress registers a callback for progress events.
func WithProgress(onProgress func(ProgressEvent)) Option {
	return func(g *Gallery) {
		g.onProgress = onProgress
	}
}

// WithImageService sets the service used by Inventory.
func WithImageService(svc *ioutils.ImageService) Option {
	return func(g *Gallery) {
		g.imageService = svc
	}
}

// WithProbeLimit caps how many photos Inventory probes at once.
func WithProbeLimit(n int) Option {
	return func(g *Gallery) {
		if n > 0 {
			g.probeLimit = n
		}
	}
}

// Gallery exports a set of photos as a static HTML page.
//
// A Gallery is not safe for concurrent use, with the exception of
// GetProgress, which may be polled from any goroutine while Export runs.
type Gallery struct {
	fs           afero.Fs
	renderer     render.Renderer
	imageService *ioutils.ImageService
	probeLimit   int

	originalPhotoFiles []string
	exportDirectory    string
	imgDirectory       string

	// copiedPhotos caches the listing of imgDirectory for one export.
	copiedPhotos []string
	copiedListed bool

	totalFiles  int32
	copiedFiles int32
	copiedBytes int64

	onProgress func(ProgressEvent)
	mu         sync.Mutex
}

// New creates a Gallery for the given photo paths.
//
// The paths are stored as given, in order. The filesystem is not touched
// until Export is called.
func New(photoPaths []string, opts ...Option) *Gallery {
	g := &Gallery{
		fs:                 afero.NewOsFs(),
		renderer:           render.Default,
		imageService:       ioutils.NewImageService(),
		probeLimit:         4,
		originalPhotoFiles: append([]string(nil), photoPaths...),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// DefaultDirectory returns the export directory used when Export is given
// an empty target: <application-root>/public.
func DefaultDirectory() string {
	return config.DefaultExportDirectory()
}

// OriginalPhotoFiles returns the photo paths the gallery was created with.
func (g *Gallery) OriginalPhotoFiles() []string {
	return append([]string(nil), g.originalPhotoFiles...)
}

// ExportDirectory returns the directory of the current or last export, or
// an empty string before the export directory has been created.
func (g *Gallery) ExportDirectory() string {
	return g.exportDirectory
}

// ImagesDirectory returns the image directory of the current or last
// export, or an empty string before it has been created.
func (g *Gallery) ImagesDirectory() string {
	return g.imgDirectory
}

// ExportPath returns the path of the generated page, or an empty string
// before the export directory has been created.
func (g *Gallery) ExportPath() string {
	if g.exportDirectory == "" {
		return ""
	}
	return filepath.Join(g.exportDirectory, ExportFileName)
}

// Export writes the gallery into targetDirectory.
//
// An empty targetDirectory means DefaultDirectory(). The export runs these
// steps in order, stopping at the first failure:
//  1. Create targetDirectory and targetDirectory/imgs unless they exist.
//  2. Copy every photo into imgs/, keeping its file name.
//  3. List imgs/ to get the copied photo paths.
//  4. Render one <img> tag per photo into the page.
//  5. Write the page to targetDirectory/gallery.html, replacing any old one.
//
// Files copied before a failure are left in place. The context is checked
// before each copy and before writing the page.
func (g *Gallery) Export(ctx context.Context, targetDirectory string) error {
	if targetDirectory == "" {
		targetDirectory = DefaultDirectory()
	}
	if abs, err := filepath.Abs(targetDirectory); err == nil {
		targetDirectory = abs
	}

	g.reset()

	if err := g.buildDirectoryStructure(targetDirectory); err != nil {
		g.progress(ProgressEvent{Message: err.Error(), Level: LevelError})
		return err
	}

	if err := g.copyPhotos(ctx); err != nil {
		g.progress(ProgressEvent{Message: err.Error(), Level: LevelError})
		return err
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	exportPath := g.ExportPath()
	if err := ioutils.WriteFile(ctx, g.fs, exportPath, []byte(g.ToHTML())); err != nil {
		writeErr := &FileWriteError{Path: exportPath, Err: err}
		g.progress(ProgressEvent{Message: writeErr.Error(), Level: LevelError, Path: exportPath})
		return writeErr
	}

	g.progress(ProgressEvent{
		Message: fmt.Sprintf("Exported gallery with %d photo(s) to %s", len(g.Photos()), exportPath),
		Level:   LevelSuccess,
		Path:    exportPath,
	})
	return nil
}

// Photos returns the photos the page is rendered from.
//
// Once an export has created the image directory, this is the listing of
// that directory, computed on first access and reused for the rest of the
// export. Before that, or when the directory cannot be read, the original
// photo paths are returned.
func (g *Gallery) Photos() []string {
	if copied, ok := g.copiedPhotoFiles(); ok {
		return append([]string(nil), copied...)
	}
	return g.OriginalPhotoFiles()
}

// ToHTML renders the gallery page without writing it.
func (g *Gallery) ToHTML() string {
	photos := g.Photos()

	images := make([]string, len(photos))
	for i, photo := range photos {
		images[i] = render.ImgTag(photo)
	}

	return g.renderer.Render(Title, CSS, images)
}

// GetProgress returns the copy progress of the running or last export.
func (g *Gallery) GetProgress() (copied, total int32, bytes int64) {
	return atomic.LoadInt32(&g.copiedFiles), atomic.LoadInt32(&g.totalFiles),
		atomic.LoadInt64(&g.copiedBytes)
}

func (g *Gallery) reset() {
	g.exportDirectory = ""
	g.imgDirectory = ""
	g.copiedPhotos = nil
	g.copiedListed = false

	atomic.StoreInt32(&g.totalFiles, int32(len(g.originalPhotoFiles)))
	atomic.StoreInt32(&g.copiedFiles, 0)
	atomic.StoreInt64(&g.copiedBytes, 0)
}

func (g *Gallery) buildDirectoryStructure(targetDirectory string) error {
	if err := g.ensureDirectory(targetDirectory); err != nil {
		return err
	}
	g.exportDirectory = targetDirectory

	imgDirectory := filepath.Join(targetDirectory, ImagesDirName)
	if err := g.ensureDirectory(imgDirectory); err != nil {
		return err
	}
	g.imgDirectory = imgDirectory

	return nil
}

func (g *Gallery) ensureDirectory(path string) error {
	if err := ioutils.EnsureDir(g.fs, path); err != nil {
		return &DirectoryCreationError{Path: path, Err: err}
	}
	return nil
}

func (g *Gallery) copyPhotos(ctx context.Context) error {
	for _, photoFile := range g.originalPhotoFiles {
		if err := ctx.Err(); err != nil {
			return err
		}

		photo := model.NewPhoto(photoFile, g.imgDirectory)
		n, err := ioutils.CopyFile(ctx, g.fs, photo.SourcePath, photo.Path)
		if err != nil {
			return &FileCopyError{Src: photo.SourcePath, Dst: photo.Path, Err: err}
		}

		atomic.AddInt32(&g.copiedFiles, 1)
		atomic.AddInt64(&g.copiedBytes, n)
		g.progress(ProgressEvent{Message: fmt.Sprintf("Copied: %s", photo.Name), Level: LevelVerbose, Path: photo.Path})
	}
	return nil
}

func (g *Gallery) copiedPhotoFiles() ([]string, bool) {
	if g.copiedListed {
		return g.copiedPhotos, true
	}
	if g.imgDirectory == "" {
		return nil, false
	}

	entries, err := afero.ReadDir(g.fs, g.imgDirectory)
	if err != nil {
		return nil, false
	}

	g.copiedPhotos = g.orderListing(entries)
	g.copiedListed = true
	return g.copiedPhotos, true
}

// orderListing puts copies of the current photos first, in input order,
// followed by any other files in the image directory sorted by name.
// entries must be sorted by name.
func (g *Gallery) orderListing(entries []os.FileInfo) []string {
	remaining := make(map[string]bool, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() {
			remaining[entry.Name()] = true
		}
	}

	listing := make([]string, 0, len(remaining))
	for _, photoFile := range g.originalPhotoFiles {
		name := filepath.Base(photoFile)
		if remaining[name] {
			listing = append(listing, filepath.Join(g.imgDirectory, name))
			delete(remaining, name)
		}
	}

	for _, entry := range entries {
		if remaining[entry.Name()] {
			listing = append(listing, filepath.Join(g.imgDirectory, entry.Name()))
		}
	}

	return listing
}

func (g *Gallery) progress(event ProgressEvent) {
	if g.onProgress == nil {
		return
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.onProgress(event)
}
