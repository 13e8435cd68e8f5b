// Package model defines the core data structures used throughout
// the gallery exporter.
//
// # Photo
//
// Photo pairs a source image with the location it is copied to inside the
// gallery's image directory:
//
//	photo := model.NewPhoto("/home/me/pics/cat.jpg", "/srv/public/imgs")
//	fmt.Println(photo.Path) // /srv/public/imgs/cat.jpg
//
// The original file name is always preserved.
//
// # PhotoInfo
//
// PhotoInfo describes a gallery photo after it has been probed: file size,
// image format and pixel dimensions. A probe failure is stored in Err rather
// than aborting, so one unreadable header does not hide the rest of the
// inventory.
package model
