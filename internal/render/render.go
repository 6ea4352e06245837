// Package render lays a notice record out on a single A4 slide.
package render

import (
	"fmt"

	"noticegen/internal/notice"
	"noticegen/internal/pptx"
	"noticegen/internal/sink"
)

const creator = "noticegen"

// Renderer turns notice records into documents. It holds no mutable state
// and can be shared between goroutines.
type Renderer struct {
	style Style
	geo   Geometry
}

func New(style Style) *Renderer {
	return &Renderer{style: style, geo: style.Layout()}
}

func (r *Renderer) Style() Style       { return r.style }
func (r *Renderer) Geometry() Geometry { return r.geo }

// Render writes the notice for d into s, committing s on success and
// discarding it on failure.
func (r *Renderer) Render(d notice.Data, s sink.Sink) error {
	if _, err := r.Presentation(d).WriteTo(s); err != nil {
		_ = s.Discard()
		return fmt.Errorf("render notice: %w", err)
	}
	if err := s.Commit(); err != nil {
		return fmt.Errorf("render notice: %w", err)
	}
	return nil
}

// RenderFile renders d to the file at path.
func (r *Renderer) RenderFile(d notice.Data, path string) error {
	f, err := sink.NewFile(path)
	if err != nil {
		return fmt.Errorf("render notice: %w", err)
	}
	return r.Render(d, f)
}

// RenderBytes renders d into memory.
func (r *Renderer) RenderBytes(d notice.Data) ([]byte, error) {
	m := sink.NewMemory()
	if err := r.Render(d, m); err != nil {
		return nil, err
	}
	return m.Bytes(), nil
}

// InfoText is the single line printed in the info band.
func InfoText(d notice.Data) string {
	no := d.NoticeNo
	if no == "" {
		no = "-"
	}
	return fmt.Sprintf("공고번호: %s   |   게시기간: %s ~ %s", no, d.Start, d.End)
}

// Presentation builds the slide for d without encoding it.
func (r *Renderer) Presentation(d notice.Data) *pptx.Presentation {
	st, geo := r.style, r.geo

	body := d.Body
	if len(body) == 0 {
		body = notice.Lines{notice.BodyPlaceholder}
	}
	paras := make([]pptx.Paragraph, 0, len(body))
	for _, line := range body {
		paras = append(paras, pptx.Paragraph{
			Text:        line,
			Align:       pptx.AlignLeft,
			Font:        r.font(st.BodySize, false, st.BodyText),
			LineSpacing: 1,
		})
	}

	shadow := st.Shadow
	return &pptx.Presentation{
		Width:    geo.Page.W,
		Height:   geo.Page.H,
		Title:    d.Title,
		Creator:  creator,
		Lang:     st.Lang,
		Typeface: st.Typeface,
		Slide: pptx.Slide{Shapes: []pptx.Shape{
			r.band("Title", geo.Title, st.Accent, &shadow, d.Title, st.TitleSize, true),
			r.band("Info", geo.Info, st.AccentDark, nil, InfoText(d), st.InfoSize, false),
			{
				Name: "Body Panel",
				Rect: geo.Body,
				Fill: st.Tint,
				Line: &pptx.Line{Color: st.Outline, Width: pptx.Pt(st.OutlineWidth)},
			},
			{
				Name:    "Body",
				TextBox: true,
				Rect:    geo.BodyText,
				Text: &pptx.TextFrame{
					Paragraphs: paras,
					Anchor:     pptx.AnchorTop,
					Insets:     pptx.UniformInsets(pptx.Mm(st.TextMargin)),
					Wrap:       true,
				},
			},
			r.band("Footer", geo.Footer, st.Accent, &shadow, d.Footer, st.FooterSize, true),
		}},
	}
}

func (r *Renderer) band(name string, rect pptx.Rect, fill pptx.Color, shadow *pptx.Shadow, text string, size float64, bold bool) pptx.Shape {
	return pptx.Shape{
		Name:   name,
		Rect:   rect,
		Fill:   fill,
		Shadow: shadow,
		Text: &pptx.TextFrame{
			Paragraphs: []pptx.Paragraph{{
				Text:        text,
				Align:       pptx.AlignCenter,
				Font:        r.font(size, bold, r.style.BandText),
				LineSpacing: 1,
			}},
			Anchor: pptx.AnchorMiddle,
			Insets: pptx.DefaultInsets,
			Wrap:   true,
		},
	}
}

func (r *Renderer) font(size float64, bold bool, color pptx.Color) pptx.Font {
	return pptx.Font{Typeface: r.style.Typeface, Size: size, Bold: bold, Color: color}
}
