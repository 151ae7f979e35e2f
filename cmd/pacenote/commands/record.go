package commands

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"pacenote/internal/app"
)

func recordCmd() *cobra.Command {
	var udp, forward string
	var offset float64
	cmd := &cobra.Command{
		Use:   "record",
		Short: "Receive game telemetry: record new stages, call pacenotes on known ones",
		RunE: func(cmd *cobra.Command, args []string) error {
			rc := cfg
			flags := cmd.Flags()
			if flags.Changed("udp") {
				rc.UDPListen = udp
			}
			if flags.Changed("forward") {
				rc.UDPForward = forward
			}
			if flags.Changed("offset") {
				rc.CueOffset = offset
			}
			if err := os.MkdirAll(rc.LogDir, 0o755); err != nil {
				return err
			}
			a, err := app.New(rc)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			return record(ctx, a, cmd)
		},
	}
	cmd.Flags().StringVar(&udp, "udp", "", "telemetry listen address (default 127.0.0.1:20777)")
	cmd.Flags().StringVar(&forward, "forward", "", "relay every datagram to this address")
	cmd.Flags().Float64Var(&offset, "offset", 0, "higher values call pacenotes earlier (default 10)")
	return cmd
}

func record(ctx context.Context, a *app.App, cmd *cobra.Command) error {
	out := cmd.OutOrStdout()
	log.Printf("pacenotes root: %q", a.Wire.Store.Root())
	return a.Receive(ctx, func(msg string) { fmt.Fprintln(out, msg) })
}
