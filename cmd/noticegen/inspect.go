package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"noticegen/internal/pptx"
)

func newInspectCommand(_ *app) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect file.pptx",
		Short: "Print the shapes and text of a generated notice",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			shapes, err := pptx.ReadSlide(b)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			for _, s := range shapes {
				fmt.Fprintf(w, "%s  x=%s y=%s w=%s h=%s\n", s.Name, mm(s.Rect.X), mm(s.Rect.Y), mm(s.Rect.W), mm(s.Rect.H))
				for _, p := range s.Paragraphs {
					fmt.Fprintf(w, "    %s\n", p)
				}
			}
			return nil
		},
	}
}

func mm(v pptx.EMU) string {
	return fmt.Sprintf("%gmm", float64(v)/36000)
}
