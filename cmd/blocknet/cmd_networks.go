package main

import (
	"github.com/spf13/cobra"
)

func newNetworksCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "networks <layout.yaml>",
		Short: "List the connected networks of a layout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			topo, _, err := loadTopology(args[0])
			if err != nil {
				return err
			}
			return writeNetworks(cmd.OutOrStdout(), flagFmt, snapshot(topo))
		},
	}
}
