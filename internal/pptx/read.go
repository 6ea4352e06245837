package pptx

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"strings"
)

// ShapeInfo is what ReadSlide recovers about one shape: its name, frame and
// the text of each paragraph, with <a:br/> read back as "\n".
type ShapeInfo struct {
	Name       string
	Rect       Rect
	Paragraphs []string
}

// Text joins all paragraphs with newlines.
func (s ShapeInfo) Text() string {
	return strings.Join(s.Paragraphs, "\n")
}

type xmlSlide struct {
	Shapes []struct {
		CNvPr struct {
			Name string `xml:"name,attr"`
		} `xml:"nvSpPr>cNvPr"`
		Off struct {
			X int64 `xml:"x,attr"`
			Y int64 `xml:"y,attr"`
		} `xml:"spPr>xfrm>off"`
		Ext struct {
			Cx int64 `xml:"cx,attr"`
			Cy int64 `xml:"cy,attr"`
		} `xml:"spPr>xfrm>ext"`
		Paragraphs []struct {
			Items []struct {
				XMLName xml.Name
				Text    string `xml:"t"`
			} `xml:",any"`
		} `xml:"txBody>p"`
	} `xml:"cSld>spTree>sp"`
}

// ReadSlide opens a package produced by WriteTo and lists the shapes of its slide.
func ReadSlide(pkg []byte) ([]ShapeInfo, error) {
	zr, err := zip.NewReader(bytes.NewReader(pkg), int64(len(pkg)))
	if err != nil {
		return nil, fmt.Errorf("open package: %w", err)
	}
	f, err := zr.Open(SlidePart)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", SlidePart, err)
	}
	defer f.Close()

	var sld xmlSlide
	if err := xml.NewDecoder(f).Decode(&sld); err != nil {
		return nil, fmt.Errorf("decode %s: %w", SlidePart, err)
	}

	out := make([]ShapeInfo, 0, len(sld.Shapes))
	for _, s := range sld.Shapes {
		info := ShapeInfo{
			Name: s.CNvPr.Name,
			Rect: Rect{X: EMU(s.Off.X), Y: EMU(s.Off.Y), W: EMU(s.Ext.Cx), H: EMU(s.Ext.Cy)},
		}
		for _, p := range s.Paragraphs {
			var b strings.Builder
			for _, item := range p.Items {
				switch item.XMLName.Local {
				case "r":
					b.WriteString(item.Text)
				case "br":
					b.WriteByte('\n')
				}
			}
			info.Paragraphs = append(info.Paragraphs, b.String())
		}
		out = append(out, info)
	}
	return out, nil
}
