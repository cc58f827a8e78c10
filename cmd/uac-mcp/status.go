package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bobmcallan/uac-mcp/internal/client"
	"github.com/bobmcallan/uac-mcp/internal/common"
)

var errEditorUnreachable = errors.New("unity editor is not reachable")

func newStatusCmd(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Probe the Unity editor and print its status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(opts)
			if err != nil {
				return err
			}
			logger := common.NewLoggerFromConfig(cfg.Logging)

			out := client.NewUACClient(cfg.Remote, logger).Status(cmd.Context())
			if err := writeJSON(cmd.OutOrStdout(), out.Response); err != nil {
				return err
			}
			if !out.OK() {
				return fmt.Errorf("%w at %s (%s)", errEditorUnreachable, cfg.Remote.BaseURL(), out.Failure)
			}
			return nil
		},
	}
}
