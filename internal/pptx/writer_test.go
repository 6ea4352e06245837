package pptx

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPresentation() *Presentation {
	return &Presentation{
		Width:    Mm(210),
		Height:   Mm(297),
		Title:    "a < b & c",
		Creator:  "test",
		Lang:     "ko-KR",
		Typeface: "Malgun Gothic",
		Slide: Slide{Shapes: []Shape{
			{
				Name:   "Band",
				Rect:   Rect{X: Mm(12), Y: Mm(12), W: Mm(186), H: Mm(18)},
				Fill:   "1E73C8",
				Shadow: &Shadow{Blur: Pt(6), Distance: Pt(1.5), Direction: 270, Color: "000000", Opacity: 0.4},
				Text: &TextFrame{
					Anchor: AnchorMiddle,
					Insets: DefaultInsets,
					Paragraphs: []Paragraph{{
						Text:        `"quoted" <tag> & 한글`,
						Align:       AlignCenter,
						Font:        Font{Typeface: "Malgun Gothic", Size: 24, Bold: true, Color: "FFFFFF"},
						LineSpacing: 1,
					}},
				},
			},
			{
				Name:    "Body",
				TextBox: true,
				Rect:    Rect{X: Mm(16), Y: Mm(52), W: Mm(178), H: Mm(205)},
				Line:    &Line{Color: "CDD9E7", Width: Pt(0.75)},
				Text: &TextFrame{
					Wrap:   true,
					Anchor: AnchorTop,
					Insets: UniformInsets(Mm(2)),
					Paragraphs: []Paragraph{
						{Text: "first", Align: AlignLeft, LineSpacing: 1},
						{Text: "", Align: AlignLeft, LineSpacing: 1},
						{Text: "  third", Align: AlignLeft, LineSpacing: 1},
					},
				},
			},
			{Name: "Plain", Rect: Rect{W: 10, H: 10}},
		}},
	}
}

func TestUnits(t *testing.T) {
	t.Run("Should convert millimeters and points to EMU", func(t *testing.T) {
		assert.Equal(t, EMU(7560000), Mm(210))
		assert.Equal(t, EMU(10692000), Mm(297))
		assert.Equal(t, EMU(12700), Pt(1))
		assert.Equal(t, EMU(9525), Pt(0.75))
	})

	t.Run("Should inset a rectangle on all sides", func(t *testing.T) {
		r := Rect{X: 10, Y: 20, W: 100, H: 50}.Inset(5)
		assert.Equal(t, Rect{X: 15, Y: 25, W: 90, H: 40}, r)
		assert.Equal(t, EMU(65), r.Bottom())
	})
}

func TestPresentation_WriteTo(t *testing.T) {
	t.Run("Should write every package part as well-formed XML", func(t *testing.T) {
		b, err := testPresentation().Bytes()
		require.NoError(t, err)

		zr, err := zip.NewReader(bytes.NewReader(b), int64(len(b)))
		require.NoError(t, err)
		require.Len(t, zr.File, len(parts))
		for i, f := range zr.File {
			assert.Equal(t, parts[i][0], f.Name)
			rc, err := f.Open()
			require.NoError(t, err)
			dec := xml.NewDecoder(rc)
			for {
				_, err := dec.Token()
				if errors.Is(err, io.EOF) {
					break
				}
				require.NoError(t, err, "part %s", f.Name)
			}
			rc.Close()
		}
	})

	t.Run("Should report the number of bytes written", func(t *testing.T) {
		var buf bytes.Buffer
		n, err := testPresentation().WriteTo(&buf)
		require.NoError(t, err)
		assert.Equal(t, int64(buf.Len()), n)
	})

	t.Run("Should produce identical bytes for identical input", func(t *testing.T) {
		a, err := testPresentation().Bytes()
		require.NoError(t, err)
		b, err := testPresentation().Bytes()
		require.NoError(t, err)
		assert.Equal(t, a, b)
	})

	t.Run("Should round-trip shapes and escaped text", func(t *testing.T) {
		b, err := testPresentation().Bytes()
		require.NoError(t, err)

		shapes, err := ReadSlide(b)
		require.NoError(t, err)
		require.Len(t, shapes, 3)

		assert.Equal(t, "Band", shapes[0].Name)
		assert.Equal(t, Rect{X: Mm(12), Y: Mm(12), W: Mm(186), H: Mm(18)}, shapes[0].Rect)
		assert.Equal(t, []string{`"quoted" <tag> & 한글`}, shapes[0].Paragraphs)

		assert.Equal(t, []string{"first", "", "  third"}, shapes[1].Paragraphs)
		assert.Equal(t, "first\n\n  third", shapes[1].Text())

		assert.Equal(t, []string{""}, shapes[2].Paragraphs)
	})

	t.Run("Should write embedded newlines as line breaks", func(t *testing.T) {
		p := testPresentation()
		p.Slide.Shapes[1].Text.Paragraphs = []Paragraph{
			{Text: "line\nwith nl", Align: AlignLeft, LineSpacing: 1},
			{Text: "a\r\n\vb\n", Align: AlignLeft, LineSpacing: 1},
		}
		b, err := p.Bytes()
		require.NoError(t, err)

		slide := readPart(t, b, SlidePart)
		assert.NotContains(t, slide, "&#xA;")
		assert.Contains(t, slide, "<a:t>line</a:t></a:r><a:br>")
		assert.Contains(t, slide, "<a:t>with nl</a:t>")

		shapes, err := ReadSlide(b)
		require.NoError(t, err)
		assert.Equal(t, []string{"line\nwith nl", "a\n\nb\n"}, shapes[1].Paragraphs)
	})

	t.Run("Should propagate writer failures", func(t *testing.T) {
		_, err := testPresentation().WriteTo(failingWriter{})
		require.Error(t, err)
	})
}

func TestReadSlide(t *testing.T) {
	t.Run("Should reject bytes that are not a package", func(t *testing.T) {
		_, err := ReadSlide([]byte("not a zip"))
		require.Error(t, err)
	})
}

func readPart(t *testing.T, pkg []byte, name string) string {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(pkg), int64(len(pkg)))
	require.NoError(t, err)
	rc, err := zr.Open(name)
	require.NoError(t, err)
	defer rc.Close()
	b, err := io.ReadAll(rc)
	require.NoError(t, err)
	return string(b)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }
