package source

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/gabriel-vasile/mimetype"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/unicode/norm"

	"noticegen/internal/notice"
)

const blockSelector = "p, li, h1, h2, h3, h4, h5, h6"

// LoadBody reads body lines from a text or HTML file. HTML is detected by
// content, not by extension. enc names the file's character set: utf-8
// (the default, BOM stripped), euc-kr or cp949.
func LoadBody(path, enc string) ([]string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load body: %w", err)
	}
	dec, err := decoderFor(enc)
	if err != nil {
		return nil, err
	}
	text, err := dec.NewDecoder().Bytes(raw)
	if err != nil {
		return nil, fmt.Errorf("load body %s: %w", path, err)
	}

	if mimetype.Detect(raw).Is("text/html") {
		lines, err := htmlLines(text)
		if err != nil {
			return nil, fmt.Errorf("load body %s: %w", path, err)
		}
		return lines, nil
	}
	return notice.NormalizeBody(norm.NFC.String(string(text))), nil
}

func decoderFor(name string) (encoding.Encoding, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "utf-8", "utf8":
		return unicode.UTF8BOM, nil
	case "euc-kr", "euckr", "cp949", "ks_c_5601-1987":
		return korean.EUCKR, nil
	default:
		return nil, fmt.Errorf("load body: unsupported encoding %q", name)
	}
}

// htmlLines keeps one line per block element. Documents without blocks
// fall back to the body text split at <br>.
func htmlLines(b []byte) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(b))
	if err != nil {
		return nil, err
	}

	var lines []string
	doc.Find(blockSelector).Each(func(_ int, s *goquery.Selection) {
		lines = append(lines, collapse(s.Text()))
	})
	if len(lines) > 0 {
		return lines, nil
	}

	doc.Find("br").ReplaceWithHtml("\n")
	return notice.NormalizeBody(norm.NFC.String(strings.TrimSpace(doc.Find("body").Text()))), nil
}

// collapse folds runs of whitespace, including no-break spaces from &nbsp;.
func collapse(s string) string {
	s = strings.ReplaceAll(s, "\u00a0", " ")
	return norm.NFC.String(strings.Join(strings.Fields(s), " "))
}
