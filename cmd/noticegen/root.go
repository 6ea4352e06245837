package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "noticegen",
		Short:         "A4 안내문 PPT 생성기",
		Long:          "Generate a single-page A4 notice as a PPTX file from a data file, prompts, a form or a local web page.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configFlag, "config", "", "config file (default <data dir>/config.yml)")
	pf.StringVar(&a.logLevel, "log-level", "info", "log level: debug, info, warn or error")
	pf.BoolVar(&a.logJSON, "log-json", false, "log as JSON")

	root.AddCommand(
		newRenderCommand(a),
		newTemplateCommand(a),
		newServeCommand(a),
		newBatchCommand(a),
		newDraftCommand(a),
		newAPIKeyCommand(a),
		newInspectCommand(a),
	)
	return root
}
