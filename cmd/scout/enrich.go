package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/FranksOps/scout/internal/aggregate"
	"github.com/FranksOps/scout/internal/enrich"
	"github.com/FranksOps/scout/internal/report"
)

var (
	enrichName     string
	enrichIndustry string
	enrichFormat   string
)

var enrichCmd = &cobra.Command{
	Use:   "enrich <domain> [domain...]",
	Short: "Enrich one or more company domains from the command line",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := buildApp(cmd.Context())
		if err != nil {
			return err
		}
		defer app.Close()

		results := make([]*aggregate.Result, 0, len(args))
		for _, domain := range args {
			res := app.agg.Enrich(cmd.Context(), enrich.Target{
				Domain:      domain,
				CompanyName: enrichName,
				Industry:    enrichIndustry,
			})
			results = append(results, res)
		}

		switch enrichFormat {
		case "json":
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(results)
		case "summary":
			return report.WriteText(os.Stdout, report.GenerateSummary(results))
		case "html":
			return report.WriteHTML(os.Stdout, report.GenerateSummary(results))
		default:
			return fmt.Errorf("unknown output format %q", enrichFormat)
		}
	},
}

func init() {
	enrichCmd.Flags().StringVar(&enrichName, "name", "", "company name hint (single-domain runs)")
	enrichCmd.Flags().StringVar(&enrichIndustry, "industry", "", "industry hint used to bias queries")
	enrichCmd.Flags().StringVarP(&enrichFormat, "output", "o", "json", "output format: json, summary or html")
}
