package render

import "noticegen/internal/pptx"

// Style holds every fixed visual constant of the notice. Lengths are in
// millimeters, font sizes in points.
type Style struct {
	PageWidth  float64
	PageHeight float64
	Margin     float64

	TitleHeight  float64
	InfoHeight   float64
	BodyGap      float64 // between info band and body panel
	BodyReserve  float64 // kept free under the body panel for the footer
	BodyInset    float64 // body panel edge to text box
	TextMargin   float64 // text box internal margin
	FooterHeight float64

	Typeface   string
	Lang       string
	TitleSize  float64
	InfoSize   float64
	BodySize   float64
	FooterSize float64

	Accent       pptx.Color
	AccentDark   pptx.Color
	BandText     pptx.Color
	BodyText     pptx.Color
	Tint         pptx.Color
	Outline      pptx.Color
	OutlineWidth float64 // points

	Shadow pptx.Shadow
}

// DefaultStyle is the A4 notice look.
func DefaultStyle() Style {
	return Style{
		PageWidth:  210,
		PageHeight: 297,
		Margin:     12,

		TitleHeight:  18,
		InfoHeight:   12,
		BodyGap:      6,
		BodyReserve:  24,
		BodyInset:    4,
		TextMargin:   2,
		FooterHeight: 18,

		Typeface:   "Malgun Gothic",
		Lang:       "ko-KR",
		TitleSize:  24,
		InfoSize:   12,
		BodySize:   14,
		FooterSize: 15,

		Accent:       "1E73C8",
		AccentDark:   "0C4A99",
		BandText:     "FFFFFF",
		BodyText:     "1D1D1F",
		Tint:         "ECF2F9",
		Outline:      "CDD9E7",
		OutlineWidth: 0.75,

		Shadow: pptx.Shadow{
			Blur:      pptx.Pt(6),
			Distance:  pptx.Pt(1.5),
			Direction: 270,
			Color:     "000000",
			Opacity:   0.4,
		},
	}
}

// Geometry is the computed frame of every region on the page.
type Geometry struct {
	Page     pptx.Rect
	Title    pptx.Rect
	Info     pptx.Rect
	Body     pptx.Rect
	BodyText pptx.Rect
	Footer   pptx.Rect
}

// Layout derives band positions top to bottom from the margin.
func (s Style) Layout() Geometry {
	pageW, pageH := pptx.Mm(s.PageWidth), pptx.Mm(s.PageHeight)
	margin := pptx.Mm(s.Margin)
	innerW := pageW - 2*margin

	title := pptx.Rect{X: margin, Y: margin, W: innerW, H: pptx.Mm(s.TitleHeight)}
	info := pptx.Rect{X: margin, Y: title.Bottom(), W: innerW, H: pptx.Mm(s.InfoHeight)}

	bodyTop := info.Bottom() + pptx.Mm(s.BodyGap)
	body := pptx.Rect{
		X: margin,
		Y: bodyTop,
		W: innerW,
		H: pageH - margin - bodyTop - pptx.Mm(s.BodyReserve),
	}

	footerH := pptx.Mm(s.FooterHeight)
	return Geometry{
		Page:     pptx.Rect{W: pageW, H: pageH},
		Title:    title,
		Info:     info,
		Body:     body,
		BodyText: body.Inset(pptx.Mm(s.BodyInset)),
		Footer:   pptx.Rect{X: margin, Y: pageH - margin - footerH, W: innerW, H: footerH},
	}
}
