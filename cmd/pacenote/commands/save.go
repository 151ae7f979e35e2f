package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"pacenote/internal/apiclient"
	"pacenote/internal/domain"
)

func saveCmd() *cobra.Command {
	var location, stage string
	cmd := &cobra.Command{
		Use:   "save --location NN --stage NN REGIONS.json",
		Short: "Save regions for a stage and regenerate its pacenotes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			regions, err := readRegions(cmd, args[0])
			if err != nil {
				return err
			}
			client := apiclient.NewHTTP(cfg.APIBase, &http.Client{Timeout: cfg.HTTPTimeout})
			if err := client.SaveRegions(cmd.Context(), location, stage, regions); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "saved %d regions to %s/%s\n", len(regions), location, stage)
			return nil
		},
	}
	cmd.Flags().StringVar(&location, "location", "", "location number (e.g. 01)")
	cmd.Flags().StringVar(&stage, "stage", "", "stage number (e.g. 02)")
	_ = cmd.MarkFlagRequired("location")
	_ = cmd.MarkFlagRequired("stage")
	return cmd
}

// readRegions decodes a JSON regions array from path, or stdin for "-".
func readRegions(cmd *cobra.Command, path string) (domain.Regions, error) {
	var r io.Reader = cmd.InOrStdin()
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}
	var regions domain.Regions
	if err := json.NewDecoder(r).Decode(&regions); err != nil {
		return nil, fmt.Errorf("regions decode failed: %w", err)
	}
	return regions, nil
}
