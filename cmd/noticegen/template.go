package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"noticegen/internal/source"
)

func newTemplateCommand(a *app) *cobra.Command {
	var (
		output       string
		bodyPath     string
		bodyEncoding string
	)
	cmd := &cobra.Command{
		Use:   "template",
		Short: "Render the blank fill-in template",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var t source.Template
			if bodyPath != "" {
				lines, err := source.LoadBody(bodyPath, bodyEncoding)
				if err != nil {
					return err
				}
				t.BodyLines = lines
			}
			c, err := t.Collect(cmd.Context())
			if err != nil {
				return err
			}

			out := a.cfg.Output.Template
			if cmd.Flags().Changed("output") {
				out = output
			}
			if err := a.renderer.RenderFile(c.Data, out); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "생성 완료: %s\n", out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output .pptx path (default from config: notice_template.pptx)")
	cmd.Flags().StringVar(&bodyPath, "body-text", "", "text or HTML file with the template body")
	cmd.Flags().StringVar(&bodyEncoding, "body-encoding", "utf-8", "body file encoding: utf-8, euc-kr or cp949")
	return cmd
}
