package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/blocknet/blocknet"
	"github.com/katalvlaran/blocknet/location"
)

type pathView struct {
	From      string   `yaml:"from"`
	To        string   `yaml:"to"`
	Reachable bool     `yaml:"reachable"`
	Distance  int      `yaml:"distance"`
	Via       []string `yaml:"via,omitempty"`
}

func newPathCmd() *cobra.Command {
	var from, to, side string
	var maxHops int
	cmd := &cobra.Command{
		Use:   "path <layout.yaml>",
		Short: "Shortest route between two blocks",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fromPos, err := parseVec(from)
			if err != nil {
				return err
			}
			toPos, err := parseVec(to)
			if err != nil {
				return err
			}
			var opts []blocknet.PathOption
			if side != "" {
				s, err := location.ParseSide(side)
				if err != nil {
					return err
				}
				opts = append(opts, blocknet.WithEdgeFilter(location.SideConnectivityFilter(s, toPos)))
			}
			if maxHops > 0 {
				opts = append(opts, blocknet.WithMaxHops(maxHops))
			}

			topo, nodes, err := loadTopology(args[0])
			if err != nil {
				return err
			}
			src, err := nodeAt(nodes, fromPos)
			if err != nil {
				return err
			}
			dst, err := nodeAt(nodes, toPos)
			if err != nil {
				return err
			}
			if side != "" && !(isSided(src) && isSided(dst)) {
				// plain blocks have no faces, so the filter would reject every hop
				return fmt.Errorf("--side needs sided blocks at both ends, got %s and %s", src.Key(), dst.Key())
			}
			p, err := topo.Path(src, dst, opts...)
			if err != nil {
				return err
			}

			v := pathView{From: src.Key(), To: dst.Key(), Reachable: p.Reachable(), Distance: p.Distance}
			for _, n := range p.Nodes {
				v.Via = append(v.Via, n.Key())
			}
			return writePath(cmd, v)
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "Source position x,y,z")
	cmd.Flags().StringVar(&to, "to", "", "Target position x,y,z")
	cmd.Flags().StringVar(&side, "side", "", "Only enter the target through this face (sided blocks only)")
	cmd.Flags().IntVar(&maxHops, "max-hops", 0, "Give up past this many hops (0 = no limit)")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")
	return cmd
}

func isSided(n blocknet.Node) bool {
	_, ok := n.(*location.SidedLocationNode)
	return ok
}

func writePath(cmd *cobra.Command, v pathView) error {
	w := cmd.OutOrStdout()
	if flagFmt == "yaml" {
		return writeYAML(w, v)
	}
	if !v.Reachable {
		fmt.Fprintf(w, "%s -> %s: unreachable\n", v.From, v.To)
		return nil
	}
	fmt.Fprintf(w, "%s -> %s: %d hops\n", v.From, v.To, v.Distance)
	for _, k := range v.Via {
		fmt.Fprintf(w, "  via %s\n", k)
	}
	return nil
}
