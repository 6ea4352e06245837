package batch

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"noticegen/internal/pptx"
	"noticegen/internal/render"
)

func TestOutputPath(t *testing.T) {
	t.Run("Should swap the extension and directory", func(t *testing.T) {
		assert.Equal(t, filepath.Join("out", "water.pptx"), OutputPath(filepath.Join("in", "water.json"), "out"))
		assert.Equal(t, filepath.Join("out", "noext.pptx"), OutputPath("noext", "out"))
	})
}

func TestRun(t *testing.T) {
	r := render.New(render.DefaultStyle())

	t.Run("Should render good inputs and record failures", func(t *testing.T) {
		in := t.TempDir()
		out := t.TempDir()
		good := filepath.Join(in, "water.json")
		yml := filepath.Join(in, "lift.yaml")
		bad := filepath.Join(in, "broken.json")
		require.NoError(t, os.WriteFile(good, []byte(`{"title":"단수 안내"}`), 0o644))
		require.NoError(t, os.WriteFile(yml, []byte("title: 승강기 점검\n"), 0o644))
		require.NoError(t, os.WriteFile(bad, []byte(`{`), 0o644))

		rep, err := Run(context.Background(), r, []string{good, bad, yml}, out, 2)
		require.NoError(t, err)
		require.Len(t, rep.Results, 3)
		assert.Equal(t, 2, rep.Succeeded())
		assert.Equal(t, 1, rep.Failed())
		assert.Equal(t, bad, rep.Results[1].Input)
		assert.Error(t, rep.Results[1].Err)

		b, err := os.ReadFile(filepath.Join(out, "water.pptx"))
		require.NoError(t, err)
		shapes, err := pptx.ReadSlide(b)
		require.NoError(t, err)
		assert.Equal(t, []string{"단수 안내"}, shapes[0].Paragraphs)

		_, err = os.Stat(filepath.Join(out, "lift.pptx"))
		assert.NoError(t, err)
		_, err = os.Stat(filepath.Join(out, "broken.pptx"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("Should refuse two inputs with the same output", func(t *testing.T) {
		a := filepath.Join(t.TempDir(), "same.json")
		b := filepath.Join(t.TempDir(), "same.yaml")
		require.NoError(t, os.WriteFile(a, []byte(`{}`), 0o644))
		require.NoError(t, os.WriteFile(b, []byte("title: x\n"), 0o644))

		rep, err := Run(context.Background(), r, []string{a, b}, t.TempDir(), 1)
		require.NoError(t, err)
		assert.NoError(t, rep.Results[0].Err)
		assert.Error(t, rep.Results[1].Err)
	})

	t.Run("Should stop when the context is canceled", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "x.json")
		require.NoError(t, os.WriteFile(path, []byte(`{}`), 0o644))

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		rep, err := Run(ctx, r, []string{path}, t.TempDir(), 1)
		assert.ErrorIs(t, err, context.Canceled)
		assert.ErrorIs(t, rep.Results[0].Err, context.Canceled)
	})
}
