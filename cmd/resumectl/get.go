package main

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"resume-editor/internal/resumes"
)

func newGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <resume-id>",
		Short: "Print a saved resume as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore(cmd.Context())
			if err != nil {
				return err
			}
			rec, err := store.Get(cmd.Context(), args[0])
			if errors.Is(err, resumes.ErrNotFound) {
				return fmt.Errorf("resume %s not found", args[0])
			}
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(rec)
		},
	}
}
