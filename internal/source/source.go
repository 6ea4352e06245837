// Package source collects notice records from the front-ends: data files,
// terminal prompts and the full-screen form.
package source

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"noticegen/internal/notice"
	"noticegen/internal/sink"
)

// ErrCanceled is returned when the user backs out of an interactive front-end.
var ErrCanceled = errors.New("input canceled")

// Collected is what a front-end hands to the renderer. Output and Open are
// only set by front-ends that ask for them.
type Collected struct {
	Data   notice.Data
	Output string
	Open   bool
}

type Source interface {
	Collect(ctx context.Context) (Collected, error)
}

// Sample yields the built-in sample notice.
type Sample struct{}

func (Sample) Collect(context.Context) (Collected, error) {
	return Collected{Data: notice.Sample()}, nil
}

// Template yields the blank fill-in record, optionally with body lines.
type Template struct {
	BodyLines []string
}

func (t Template) Collect(context.Context) (Collected, error) {
	return Collected{Data: notice.Template(t.BodyLines)}, nil
}

// File loads a record from a JSON or YAML data file.
type File struct {
	Path string
}

func (f File) Collect(context.Context) (Collected, error) {
	d, err := LoadData(f.Path)
	if err != nil {
		return Collected{}, err
	}
	return Collected{Data: d.Resolve()}, nil
}

// Overlay starts from Base and replaces the record with DataPath and the
// body with BodyPath when they are set. Output and Open from Base are kept.
type Overlay struct {
	Base         Source
	DataPath     string
	BodyPath     string
	BodyEncoding string
}

func (o Overlay) Collect(ctx context.Context) (Collected, error) {
	base := o.Base
	if base == nil {
		base = Sample{}
	}
	c, err := base.Collect(ctx)
	if err != nil {
		return Collected{}, err
	}
	if o.DataPath != "" {
		d, err := LoadData(o.DataPath)
		if err != nil {
			return Collected{}, err
		}
		c.Data = d
	}
	if o.BodyPath != "" {
		lines, err := LoadBody(o.BodyPath, o.BodyEncoding)
		if err != nil {
			return Collected{}, err
		}
		c.Data.Body = lines
	}
	c.Data = c.Data.Resolve()
	return c, nil
}

// LoadData reads a record from path. Files ending in .yml or .yaml are read
// as YAML, everything else as JSON. Defaults are not applied.
func LoadData(path string) (notice.Data, error) {
	var d notice.Data
	b, err := os.ReadFile(path)
	if err != nil {
		return d, fmt.Errorf("load data: %w", err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yml", ".yaml":
		err = yaml.Unmarshal(b, &d)
	default:
		err = json.Unmarshal(b, &d)
	}
	if err != nil {
		return notice.Data{}, fmt.Errorf("load data %s: %w", path, err)
	}
	return d, nil
}

// ExportJSON writes d to path as indented JSON with non-ASCII text kept as is.
func ExportJSON(path string, d notice.Data) error {
	f, err := sink.NewFile(path)
	if err != nil {
		return fmt.Errorf("export json: %w", err)
	}
	enc := json.NewEncoder(f)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(d); err != nil {
		_ = f.Discard()
		return fmt.Errorf("export json: %w", err)
	}
	if err := f.Commit(); err != nil {
		return fmt.Errorf("export json: %w", err)
	}
	return nil
}
