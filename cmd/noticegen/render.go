package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"noticegen/internal/opener"
	"noticegen/internal/source"
)

type renderOptions struct {
	output       string
	dataPath     string
	bodyPath     string
	bodyEncoding string
	interactive  bool
	form         bool
	exportJSON   string
	open         bool
}

func newRenderCommand(a *app) *cobra.Command {
	var o renderOptions
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a notice (the built-in sample unless input is given)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRender(cmd, a, o)
		},
	}
	f := cmd.Flags()
	f.StringVarP(&o.output, "output", "o", "", "output .pptx path (default from config: notice_a4.pptx)")
	f.StringVar(&o.dataPath, "data", "", "JSON or YAML file with title/label/start/end/notice_no/body/footer")
	f.StringVar(&o.bodyPath, "body-text", "", "text or HTML file with the body, one paragraph per line")
	f.StringVar(&o.bodyEncoding, "body-encoding", "utf-8", "body file encoding: utf-8, euc-kr or cp949")
	f.BoolVar(&o.interactive, "interactive", false, "ask for title, period, notice number and footer in the terminal")
	f.BoolVar(&o.form, "form", false, "fill in a full-screen form")
	f.StringVar(&o.exportJSON, "export-json", "", "also save the collected record as JSON")
	f.BoolVar(&o.open, "open", false, "open the document when done")
	cmd.MarkFlagsMutuallyExclusive("interactive", "form")
	return cmd
}

func runRender(cmd *cobra.Command, a *app, o renderOptions) error {
	var base source.Source = source.Sample{}
	switch {
	case o.interactive:
		base = source.Prompt{In: cmd.InOrStdin(), Out: cmd.OutOrStdout()}
	case o.form:
		base = source.Form{}
	}
	src := source.Overlay{
		Base:         base,
		DataPath:     o.dataPath,
		BodyPath:     o.bodyPath,
		BodyEncoding: o.bodyEncoding,
	}

	c, err := src.Collect(cmd.Context())
	if errors.Is(err, source.ErrCanceled) {
		return errors.New("입력이 취소되었습니다")
	}
	if err != nil {
		return err
	}

	out := a.cfg.Output.Notice
	switch {
	case cmd.Flags().Changed("output"):
		out = o.output
	case c.Output != "":
		out = c.Output
	}

	if o.exportJSON != "" {
		if err := source.ExportJSON(o.exportJSON, c.Data); err != nil {
			return err
		}
		a.log.Info("exported record", "path", o.exportJSON)
	}

	if err := a.renderer.RenderFile(c.Data, out); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "생성 완료: %s\n", out)

	if o.open || c.Open {
		openOutput(a, out)
	}
	return nil
}

// openOutput never fails the command; the document is already saved.
func openOutput(a *app, path string) {
	if err := opener.Open(path); err != nil {
		a.log.Warn("파일을 자동으로 열지 못했습니다", "path", path, "err", err)
	}
}
