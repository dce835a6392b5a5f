package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"resume-editor/internal/extract"
)

func newExtractCmd() *cobra.Command {
	var timeout time.Duration
	cmd := &cobra.Command{
		Use:   "extract <file.pdf>",
		Short: "Print the plain text of a PDF, one block per page",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := extract.ValidateFileName(args[0]); err != nil {
				return err
			}
			data, err := readFile(args[0])
			if err != nil {
				return err
			}
			text, err := extract.NewExtractor(timeout).PDFText(cmd.Context(), data)
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), text)
			return err
		},
	}
	cmd.Flags().DurationVar(&timeout, "timeout", extract.DefaultTimeout, "Extraction timeout")
	return cmd
}
