package commands

import (
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/spf13/cobra"

	"pacenote/internal/apiclient"
	"pacenote/internal/editpage"
)

func loadCmd() *cobra.Command {
	var location, stage string
	cmd := &cobra.Command{
		Use:   "load",
		Short: "Load the edit view data for a stage and print it as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			q := url.Values{}
			if cmd.Flags().Changed("location") {
				q.Set("location", location)
			}
			if cmd.Flags().Changed("stage") {
				q.Set("stage", stage)
			}
			u := &url.URL{Path: "/edit", RawQuery: q.Encode()}

			client := apiclient.NewHTTP(cfg.APIBase, &http.Client{Timeout: cfg.HTTPTimeout})
			res, err := editpage.Load(cmd.Context(), client, u)
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(res)
		},
	}
	cmd.Flags().StringVar(&location, "location", "", "location number (e.g. 01)")
	cmd.Flags().StringVar(&stage, "stage", "", "stage number (e.g. 02)")
	return cmd
}
