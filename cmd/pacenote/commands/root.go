package commands

import (
	"github.com/spf13/cobra"

	"pacenote/internal/app"
)

var (
	cfg app.Config

	listen  string
	logDir  string
	apiBase string
)

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "pacenote",
		Short:        "Rally pacenote editor server and tools",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			raw, err := app.ParseEnv()
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			if flags.Changed("listen") {
				raw.WebListen = listen
			}
			if flags.Changed("log-dir") {
				raw.LogDir = logDir
			}
			if flags.Changed("api") {
				raw.APIBase = apiBase
			}
			cfg, err = raw.Normalize()
			return err
		},
	}

	root.PersistentFlags().StringVar(&listen, "listen", "", "web listen address (default 127.0.0.1:8080)")
	root.PersistentFlags().StringVar(&logDir, "log-dir", "", "stage recordings directory")
	root.PersistentFlags().StringVar(&apiBase, "api", "", "API base URL (default http://<listen>)")

	root.AddCommand(serveCmd(), recordCmd(), loadCmd(), saveCmd(), locationsCmd())
	return root
}
