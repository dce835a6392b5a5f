package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"resume-editor/internal/bootstrap"
	"resume-editor/internal/resumes"
	"resume-editor/internal/shared/config"
	"resume-editor/internal/shared/telemetry"
)

var dataDir string

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "resumectl",
		Short: "Inspect saved resumes and extract PDF text",
		Long: `resumectl works directly against the resume record store configured
for the API (DATA_DIR, or S3 when OBJECT_STORE=s3).`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Keep stdout for command output.
			telemetry.SetOutput(cmd.ErrOrStderr())
		},
	}
	root.PersistentFlags().StringVar(&dataDir, "data-dir", "", "Record directory (overrides DATA_DIR)")

	root.AddCommand(newListCmd(), newGetCmd(), newExtractCmd())
	return root
}

func openStore(ctx context.Context) (*resumes.Store, error) {
	cfg := config.Load()
	if dataDir != "" {
		cfg.ObjectStoreType = "local"
		cfg.DataDir = dataDir
	}
	objects, err := bootstrap.BuildStore(ctx, cfg)
	if err != nil {
		return nil, err
	}
	store := resumes.NewStore(objects)
	if _, err := store.Load(ctx); err != nil {
		return nil, fmt.Errorf("load resumes: %w", err)
	}
	return store, nil
}

func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return data, nil
}
