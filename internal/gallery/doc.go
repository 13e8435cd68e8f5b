// Package gallery exports a static HTML photo gallery.
//
// A Gallery is built from a list of photo paths. Exporting it creates the
// target directory and an imgs/ subdirectory, copies every photo into imgs/
// and writes gallery.html with one <img> tag per copied photo:
//
//	<target>/
//	  imgs/
//	    cat.jpg
//	    dog.png
//	  gallery.html
//
// # Basic Usage
//
//	g := gallery.New([]string{"/home/me/cat.jpg", "/home/me/dog.png"})
//	if err := g.Export(ctx, "/srv/www/public"); err != nil {
//	    var copyErr *gallery.FileCopyError
//	    if errors.As(err, &copyErr) {
//	        // copyErr.Src could not be copied
//	    }
//	}
//
// # Progress Reporting
//
// Pass WithProgress to receive events while exporting, or poll GetProgress
// from another goroutine:
//
//	g := gallery.New(paths, gallery.WithProgress(func(e gallery.ProgressEvent) {
//	    fmt.Println(e.Message)
//	}))
//
// # Errors
//
// Export fails with one of three error types, all of which unwrap to the
// underlying filesystem error:
//   - DirectoryCreationError: the target or imgs/ directory could not be created
//   - FileCopyError: a photo could not be copied; earlier copies stay on disk
//   - FileWriteError: gallery.html could not be written
//
// Existing directories are reused as they are and never cleared, so files
// left in imgs/ by earlier exports remain part of the gallery.
package gallery
