package commands

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"pacenote/internal/apiclient"
	"pacenote/internal/catalog"
)

func locationsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "locations",
		Short: "List recorded locations and stages",
		RunE: func(cmd *cobra.Command, args []string) error {
			client := apiclient.NewHTTP(cfg.APIBase, &http.Client{Timeout: cfg.HTTPTimeout})
			locations, err := client.Locations(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, loc := range locations {
				fmt.Fprintln(out, loc.Name)
				for _, st := range loc.Stages {
					fmt.Fprintf(out, "  %s\t(--location %d --stage %d)\n", catalog.Label(st), st.ID.Location, st.ID.Stage)
				}
			}
			return nil
		},
	}
}
