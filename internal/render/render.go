package render

import (
	"fmt"
	"strings"
)

// Renderer produces an HTML document from a title, a CSS block and an
// ordered list of content fragments.
type Renderer interface {
	Render(title, customCSS string, content []string) string
}

// RenderFunc adapts an ordinary function to the Renderer interface.
type RenderFunc func(title, customCSS string, content []string) string

// Render calls f(title, customCSS, content).
func (f RenderFunc) Render(title, customCSS string, content []string) string {
	return f(title, customCSS, content)
}

// Default is the page layout used by the gallery exporter.
var Default Renderer = RenderFunc(HTML)

// HTML returns a complete HTML document.
//
// The title is used both for the <title> element and the page heading.
// customCSS is placed verbatim inside a <style> block, and every content
// fragment is written into the body in order, with nothing added between
// fragments. Identical input always yields identical output.
//
// Example:
//
//	page := HTML("My Gallery", css, []string{`<img src="a.jpg">`})
//
//	// <!DOCTYPE html>
//	// <html>
//	//   <head>
//	//     <meta charset="utf-8">
//	//     <title>My Gallery</title>
//	//     <style>
//	// ...css...
//	//     </style>
//	//   </head>
//	//   <body>
//	//     <h1>My Gallery</h1>
//	// <img src="a.jpg">
//	//   </body>
//	// </html>
func HTML(title, customCSS string, content []string) string {
	var sb strings.Builder

	sb.WriteString("<!DOCTYPE html>\n")
	sb.WriteString("<html>\n")
	sb.WriteString("  <head>\n")
	sb.WriteString("    <meta charset=\"utf-8\">\n")
	sb.WriteString(fmt.Sprintf("    <title>%s</title>\n", title))
	sb.WriteString("    <style>\n")
	sb.WriteString(customCSS)
	sb.WriteString("\n    </style>\n")
	sb.WriteString("  </head>\n")
	sb.WriteString("  <body>\n")
	sb.WriteString(fmt.Sprintf("    <h1>%s</h1>\n", title))

	for _, fragment := range content {
		sb.WriteString(fragment)
	}

	sb.WriteString("\n  </body>\n")
	sb.WriteString("</html>\n")

	return sb.String()
}

// ImgTag wraps src in an <img> element. The source is not modified.
func ImgTag(src string) string {
	return fmt.Sprintf("<img src=\"%s\">", src)
}
