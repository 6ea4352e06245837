package notice

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"
	"unicode"

	"gopkg.in/yaml.v3"
)

// Lines is a notice body, one printed line per element. It decodes from
// either a single (multi-line) string or an array of scalars.
type Lines []string

func (l *Lines) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	if v == nil {
		*l = nil
		return nil
	}
	*l = NormalizeBody(v)
	return nil
}

func (l *Lines) UnmarshalYAML(node *yaml.Node) error {
	var v any
	if err := node.Decode(&v); err != nil {
		return err
	}
	if v == nil {
		*l = nil
		return nil
	}
	*l = NormalizeBody(v)
	return nil
}

// NormalizeBody converts loose body input into ordered lines.
//   - nil yields an empty slice
//   - a string is split on line breaks with trailing whitespace trimmed;
//     a string without any line yields itself as the only element
//   - a slice or array yields the string form of each item
func NormalizeBody(body any) []string {
	switch v := body.(type) {
	case nil:
		return []string{}
	case string:
		lines := splitLines(v)
		if len(lines) == 0 {
			return []string{v}
		}
		for i, line := range lines {
			lines[i] = strings.TrimRightFunc(line, unicode.IsSpace)
		}
		return lines
	case []string:
		return append([]string{}, v...)
	case Lines:
		return append([]string{}, v...)
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			out = append(out, stringify(item))
		}
		return out
	}

	rv := reflect.ValueOf(body)
	if rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
		out := make([]string, 0, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			out = append(out, stringify(rv.Index(i).Interface()))
		}
		return out
	}
	return []string{stringify(body)}
}

func splitLines(s string) []string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	if s == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(s, "\n"), "\n")
}

func stringify(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case float64:
		// JSON numbers decode as float64; print integral values without exponent.
		if x == float64(int64(x)) {
			return fmt.Sprintf("%d", int64(x))
		}
	}
	return fmt.Sprint(v)
}
