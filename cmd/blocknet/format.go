package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/blocknet/blocknet"
)

// networkView is the printable form of one network.
type networkView struct {
	Index   int      `yaml:"index" json:"index"`
	ID      string   `yaml:"id" json:"id"`
	Size    int      `yaml:"size" json:"size"`
	Members []string `yaml:"members" json:"members"`
}

type networksView struct {
	Nodes    int           `yaml:"nodes" json:"nodes"`
	Networks []networkView `yaml:"networks" json:"networks"`
}

func snapshot(topo *blocknet.Topology) networksView {
	v := networksView{Nodes: topo.Size()}
	for i, net := range topo.Networks() {
		members, _ := topo.MembersOf(net)
		keys := make([]string, len(members))
		for j, m := range members {
			keys[j] = m.Key()
		}
		v.Networks = append(v.Networks, networkView{
			Index:   i + 1,
			ID:      fmt.Sprint(net),
			Size:    len(members),
			Members: keys,
		})
	}
	return v
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	return enc.Close()
}

func writeTable(w io.Writer, headers []string, rows [][]string) {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	printRow := func(cells []string) {
		parts := make([]string, len(cells))
		for i, cell := range cells {
			w := 0
			if i < len(widths) {
				w = widths[i]
			}
			parts[i] = fmt.Sprintf("%-*s", w, cell)
		}
		fmt.Fprintln(w, strings.TrimRight(strings.Join(parts, "  "), " "))
	}

	printRow(headers)
	seps := make([]string, len(headers))
	for i, w := range widths {
		seps[i] = strings.Repeat("-", w)
	}
	printRow(seps)
	for _, row := range rows {
		printRow(row)
	}
}

func writeNetworks(w io.Writer, format string, v networksView) error {
	switch format {
	case "yaml":
		return writeYAML(w, v)
	case "table":
		rows := make([][]string, 0, len(v.Networks))
		for _, n := range v.Networks {
			rows = append(rows, []string{strconv.Itoa(n.Index), strconv.Itoa(n.Size), strings.Join(n.Members, " ")})
		}
		writeTable(w, []string{"NETWORK", "SIZE", "MEMBERS"}, rows)
		return nil
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}
