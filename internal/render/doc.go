// Package render builds the HTML document for a photo gallery.
//
// The renderer is a pure function: it takes a title, a CSS block and a list
// of markup fragments and returns a complete HTML page. Nothing is escaped;
// fragments are inserted exactly as given.
//
// # Rendering a Page
//
//	tags := []string{render.ImgTag("imgs/a.jpg"), render.ImgTag("imgs/b.png")}
//	page := render.HTML("My Gallery", "img { width: 200px; }", tags)
//
// # Composition
//
// Callers that want to swap the page layout accept a Renderer. Plain
// functions satisfy it through RenderFunc:
//
//	var r render.Renderer = render.RenderFunc(func(title, css string, content []string) string {
//	    return strings.Join(content, "")
//	})
package render
