package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"noticegen/internal/draft"
	"noticegen/internal/notice"
)

func newDraftCommand(a *app) *cobra.Command {
	var (
		prompt   string
		output   string
		title    string
		period   string
		noticeNo string
		issuer   string
		open     bool
	)
	cmd := &cobra.Command{
		Use:   "draft",
		Short: "Render a notice whose body is drafted by the AI client",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := draft.NewClient(a.cfg)
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			if t := a.cfg.DraftTimeout(); t > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, t)
				defer cancel()
			}

			a.log.Info("drafting body", "model", client.Model)
			lines, err := client.Draft(ctx, prompt)
			if err != nil {
				return err
			}

			var p any
			if cmd.Flags().Changed("period") {
				p = period
			}
			d := notice.Build(noticeNo, issuer, p, title, lines)

			out := a.cfg.Output.Notice
			if cmd.Flags().Changed("output") {
				out = output
			}
			if err := a.renderer.RenderFile(d, out); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "생성 완료: %s\n", out)
			if open {
				openOutput(a, out)
			}
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&prompt, "prompt", "", "what the notice is about")
	f.StringVarP(&output, "output", "o", "", "output .pptx path (default from config: notice_a4.pptx)")
	f.StringVar(&title, "title", "", "notice title")
	f.StringVar(&period, "period", "", "posting period, e.g. 2025.12.29 ~ 2026.01.05")
	f.StringVar(&noticeNo, "notice-no", "", "notice number")
	f.StringVar(&issuer, "issuer", "", "footer / issuing office")
	f.BoolVar(&open, "open", false, "open the document when done")
	_ = cmd.MarkFlagRequired("prompt")
	return cmd
}
