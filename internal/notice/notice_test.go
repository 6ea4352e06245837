package notice

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestParsePeriod(t *testing.T) {
	t.Run("Should normalize dotted dates", func(t *testing.T) {
		start, end := ParsePeriod("2025.12.29 ~ 2026.01.05")
		assert.Equal(t, "2025-12-29", start)
		assert.Equal(t, "2026-01-05", end)
	})

	t.Run("Should return placeholders for a string without separator", func(t *testing.T) {
		start, end := ParsePeriod("garbage")
		assert.Equal(t, DatePlaceholder, start)
		assert.Equal(t, DatePlaceholder, end)
	})

	t.Run("Should default only the empty side", func(t *testing.T) {
		start, end := ParsePeriod(" ~ 2026.01.05")
		assert.Equal(t, DatePlaceholder, start)
		assert.Equal(t, "2026-01-05", end)
	})

	t.Run("Should reject more than one separator", func(t *testing.T) {
		start, end := ParsePeriod("2025.01.01 ~ 2025.02.01 ~ 2025.03.01")
		assert.Equal(t, DatePlaceholder, start)
		assert.Equal(t, DatePlaceholder, end)
	})

	t.Run("Should return placeholders for an empty string", func(t *testing.T) {
		start, end := ParsePeriod("")
		assert.Equal(t, DatePlaceholder, start)
		assert.Equal(t, DatePlaceholder, end)
	})
}

func TestNormalizeBody(t *testing.T) {
	t.Run("Should split a multi-line string", func(t *testing.T) {
		assert.Equal(t, []string{"line1", "line2"}, NormalizeBody("line1\nline2\n"))
	})

	t.Run("Should trim trailing whitespace and keep blank lines", func(t *testing.T) {
		assert.Equal(t, []string{"  a", "", "b"}, NormalizeBody("  a  \r\n\t\r\nb\t"))
	})

	t.Run("Should return an empty slice for nil", func(t *testing.T) {
		got := NormalizeBody(nil)
		require.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("Should keep an empty string as the only line", func(t *testing.T) {
		assert.Equal(t, []string{""}, NormalizeBody(""))
	})

	t.Run("Should stringify sequence items", func(t *testing.T) {
		assert.Equal(t, []string{"a", "3"}, NormalizeBody([]any{"a", 3}))
		assert.Equal(t, []string{"a", "3", "1.5", ""}, NormalizeBody([]any{"a", float64(3), 1.5, nil}))
		assert.Equal(t, []string{"1", "2"}, NormalizeBody([]int{1, 2}))
	})

	t.Run("Should not alias the input slice", func(t *testing.T) {
		in := []string{"x"}
		out := NormalizeBody(in)
		out[0] = "y"
		assert.Equal(t, "x", in[0])
	})
}

func TestBuild(t *testing.T) {
	t.Run("Should apply every placeholder for empty input", func(t *testing.T) {
		d := Build("", "", "", "", nil)
		assert.Equal(t, TitlePlaceholder, d.Title)
		assert.Equal(t, FooterPlaceholder, d.Footer)
		assert.Equal(t, "", d.NoticeNo)
		assert.Equal(t, DatePlaceholder, d.Start)
		assert.Equal(t, DatePlaceholder, d.End)
		assert.Equal(t, Lines{BodyPlaceholder}, d.Body)
		assert.Equal(t, PeriodLabel, d.Label)
	})

	t.Run("Should parse a string period", func(t *testing.T) {
		d := Build("제2512-001호", "한공원 아파트", "2025.12.29 ~ 2026.01.05", "층간소음 안내문", []string{"a"})
		assert.Equal(t, "2025-12-29", d.Start)
		assert.Equal(t, "2026-01-05", d.End)
		assert.Equal(t, "한공원 아파트", d.Footer)
		assert.Equal(t, Lines{"a"}, d.Body)
	})

	t.Run("Should ignore a non-string period", func(t *testing.T) {
		d := Build("", "", 20251229, "t", nil)
		assert.Equal(t, DatePlaceholder, d.Start)
		assert.Equal(t, DatePlaceholder, d.End)
	})

	t.Run("Should keep an explicitly empty body", func(t *testing.T) {
		d := Build("", "", nil, "", []string{})
		require.NotNil(t, d.Body)
		assert.Empty(t, d.Body)
	})
}

func TestData_Resolve(t *testing.T) {
	t.Run("Should fill missing fields", func(t *testing.T) {
		d := Data{Title: "x", Label: "ignored"}.Resolve()
		assert.Equal(t, "x", d.Title)
		assert.Equal(t, PeriodLabel, d.Label)
		assert.Equal(t, DatePlaceholder, d.Start)
		assert.Equal(t, FooterPlaceholder, d.Footer)
		assert.Equal(t, Lines{BodyPlaceholder}, d.Body)
	})
}

func TestLines_Decode(t *testing.T) {
	t.Run("Should decode a JSON string body", func(t *testing.T) {
		var d Data
		require.NoError(t, json.Unmarshal([]byte(`{"body":"a\nb\n"}`), &d))
		assert.Equal(t, Lines{"a", "b"}, d.Body)
	})

	t.Run("Should decode a JSON array body", func(t *testing.T) {
		var d Data
		require.NoError(t, json.Unmarshal([]byte(`{"body":["a",3]}`), &d))
		assert.Equal(t, Lines{"a", "3"}, d.Body)
	})

	t.Run("Should leave a null body unset", func(t *testing.T) {
		var d Data
		require.NoError(t, json.Unmarshal([]byte(`{"body":null}`), &d))
		assert.Nil(t, d.Body)
	})

	t.Run("Should decode a YAML block body", func(t *testing.T) {
		var d Data
		require.NoError(t, yaml.Unmarshal([]byte("title: 안내\nbody: |\n  첫째 줄\n  둘째 줄\n"), &d))
		assert.Equal(t, "안내", d.Title)
		assert.Equal(t, Lines{"첫째 줄", "둘째 줄"}, d.Body)
	})
}

func TestData_UnmarshalJSON(t *testing.T) {
	t.Run("Should accept numbers and booleans for text fields", func(t *testing.T) {
		var d Data
		require.NoError(t, json.Unmarshal([]byte(`{"title":7,"start":20250101,"end":1.5,"notice_no":2025001,"footer":true}`), &d))
		assert.Equal(t, "7", d.Title)
		assert.Equal(t, "20250101", d.Start)
		assert.Equal(t, "1.5", d.End)
		assert.Equal(t, "2025001", d.NoticeNo)
		assert.Equal(t, "true", d.Footer)
	})

	t.Run("Should treat null as empty", func(t *testing.T) {
		var d Data
		require.NoError(t, json.Unmarshal([]byte(`{"title":null,"body":["a"]}`), &d))
		assert.Empty(t, d.Title)
		assert.Equal(t, Lines{"a"}, d.Body)
	})

	t.Run("Should reject an object for a text field", func(t *testing.T) {
		var d Data
		assert.Error(t, json.Unmarshal([]byte(`{"title":{"a":1}}`), &d))
	})

	t.Run("Should keep fields missing from the input", func(t *testing.T) {
		d := Data{Footer: "관리사무소"}
		require.NoError(t, json.Unmarshal([]byte(`{"title":"x"}`), &d))
		assert.Equal(t, "x", d.Title)
		assert.Equal(t, "관리사무소", d.Footer)
	})
}
