package commands

import (
	"context"
	"log"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"pacenote/internal/app"
)

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the editor front and JSON API",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := os.MkdirAll(cfg.LogDir, 0o755); err != nil {
				return err
			}
			a, err := app.New(cfg)
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			defer stop()

			log.Printf("pacenotes root: %q", a.Wire.Store.Root())
			return a.Serve(ctx)
		},
	}
}
