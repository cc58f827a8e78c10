package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/bobmcallan/uac-mcp/internal/catalog"
	"github.com/bobmcallan/uac-mcp/internal/client"
	"github.com/bobmcallan/uac-mcp/internal/common"
	"github.com/bobmcallan/uac-mcp/internal/mcp"
	"github.com/bobmcallan/uac-mcp/internal/schemas"
)

type toolRow struct {
	Name     string `json:"name"`
	Strategy string `json:"strategy"`
	Method   string `json:"method"`
	Path     string `json:"path"`
	Category string `json:"category"`
}

type toolsReport struct {
	Source     catalog.Source `json:"source"`
	Endpoints  int            `json:"endpoints"`
	Duplicates int            `json:"duplicates"`
	Tools      []toolRow      `json:"tools"`
}

func newToolsCmd(opts *cliOptions) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "tools",
		Short: "List the tools the server would register",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(opts)
			if err != nil {
				return err
			}
			logger := common.NewLoggerFromConfig(cfg.Logging)

			uac := client.NewUACClient(cfg.Remote, logger)
			endpoints, source := catalog.Select(uac.Discover(cmd.Context()))
			registry := mcp.BuildRegistry(endpoints, schemas.NewTable(), logger)

			report := buildToolsReport(registry, source)
			if jsonOutput {
				return writeJSON(cmd.OutOrStdout(), report)
			}
			return writeToolsTable(cmd.OutOrStdout(), report)
		},
	}
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "output JSON")
	return cmd
}

func buildToolsReport(registry *mcp.Registry, source catalog.Source) toolsReport {
	regs := registry.Registrations()
	rows := make([]toolRow, 0, len(regs))
	for _, reg := range regs {
		rows = append(rows, toolRow{
			Name:     reg.Name,
			Strategy: reg.Strategy.Kind.String(),
			Method:   reg.Endpoint.Method,
			Path:     reg.Endpoint.Path,
			Category: reg.Endpoint.Category,
		})
	}
	return toolsReport{
		Source:     source,
		Endpoints:  registry.Endpoints(),
		Duplicates: registry.Duplicates(),
		Tools:      rows,
	}
}

func writeToolsTable(w io.Writer, report toolsReport) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tSTRATEGY\tMETHOD\tPATH")
	for _, row := range report.Tools {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", row.Name, row.Strategy, row.Method, row.Path)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "\n%d tools from %d %s endpoints (%d duplicates skipped)\n",
		len(report.Tools), report.Endpoints, report.Source, report.Duplicates)
	return err
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
