package pptx

import (
	"archive/zip"
	"bytes"
	"embed"
	"encoding/xml"
	"fmt"
	"io"
	"math"
	"strings"
	"text/template"
	"time"
)

//go:embed parts/*.xml parts/*.rels
var partsFS embed.FS

var partTemplates = template.Must(template.New("pptx").Funcs(template.FuncMap{
	"x":           escape,
	"shapeID":     func(i int) int { return i + 2 },
	"angle":       func(deg float64) int64 { return int64(math.Round(deg * 60000)) },
	"percent":     func(v float64) int64 { return int64(math.Round(v * 100000)) },
	"centipoints": func(pt float64) int64 { return int64(math.Round(pt * 100)) },
	"lang":        func() string { return "" },
	"segments":    segments,
}).ParseFS(partsFS, "parts/*.xml", "parts/*.rels"))

// package part name -> template name, in archive order
var parts = [][2]string{
	{"[Content_Types].xml", "content_types.xml"},
	{"_rels/.rels", "root.rels"},
	{"docProps/core.xml", "core.xml"},
	{"docProps/app.xml", "app.xml"},
	{"ppt/presentation.xml", "presentation.xml"},
	{"ppt/_rels/presentation.xml.rels", "presentation.xml.rels"},
	{"ppt/presProps.xml", "presProps.xml"},
	{"ppt/viewProps.xml", "viewProps.xml"},
	{"ppt/tableStyles.xml", "tableStyles.xml"},
	{"ppt/theme/theme1.xml", "theme1.xml"},
	{"ppt/slideMasters/slideMaster1.xml", "slideMaster1.xml"},
	{"ppt/slideMasters/_rels/slideMaster1.xml.rels", "slideMaster1.xml.rels"},
	{"ppt/slideLayouts/slideLayout1.xml", "slideLayout1.xml"},
	{"ppt/slideLayouts/_rels/slideLayout1.xml.rels", "slideLayout1.xml.rels"},
	{"ppt/slides/slide1.xml", "slide1.xml"},
	{"ppt/slides/_rels/slide1.xml.rels", "slide1.xml.rels"},
}

// SlidePart is the archive path of the only slide.
const SlidePart = "ppt/slides/slide1.xml"

// every entry carries the same timestamp so equal input gives equal bytes
var entryTime = time.Date(1980, time.January, 1, 0, 0, 0, 0, time.UTC)

// WriteTo writes the complete .pptx package to w.
func (p *Presentation) WriteTo(w io.Writer) (int64, error) {
	pres := p.withDefaults()

	tmpl, err := partTemplates.Clone()
	if err != nil {
		return 0, err
	}
	tmpl.Funcs(template.FuncMap{"lang": func() string { return pres.Lang }})

	cw := &countWriter{w: w}
	zw := zip.NewWriter(cw)
	for _, part := range parts {
		fw, err := zw.CreateHeader(&zip.FileHeader{
			Name:     part[0],
			Method:   zip.Deflate,
			Modified: entryTime,
		})
		if err != nil {
			return cw.n, fmt.Errorf("create %s: %w", part[0], err)
		}
		if err := tmpl.ExecuteTemplate(fw, part[1], pres); err != nil {
			return cw.n, fmt.Errorf("write %s: %w", part[0], err)
		}
	}
	if err := zw.Close(); err != nil {
		return cw.n, fmt.Errorf("finish package: %w", err)
	}
	return cw.n, nil
}

// Bytes renders the package into memory.
func (p *Presentation) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if _, err := p.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (p *Presentation) withDefaults() Presentation {
	out := *p
	if out.Creator == "" {
		out.Creator = "pptx"
	}
	if out.Lang == "" {
		out.Lang = "en-US"
	}
	if out.Typeface == "" {
		out.Typeface = "Calibri"
	}
	return out
}

var lineBreaks = strings.NewReplacer("\r\n", "\n", "\r", "\n", "\v", "\n")

// segments splits paragraph text at soft line breaks; each break becomes an
// <a:br/> between runs.
func segments(s string) []string {
	return strings.Split(lineBreaks.Replace(s), "\n")
}

func escape(s string) string {
	var b strings.Builder
	_ = xml.EscapeText(&b, []byte(s))
	return b.String()
}

type countWriter struct {
	w io.Writer
	n int64
}

func (cw *countWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	return n, err
}
