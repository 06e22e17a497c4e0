package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/floodflow/layout"
	"github.com/katalvlaran/floodflow/topology"
)

func topologyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "topology",
		Short: "Print the fixed areas and streets of the district",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := topology.Validate(); err != nil {
				return err
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "AREA\tCATEGORY\tPOSITION")
			for _, a := range topology.Areas() {
				p, _ := layout.Position(a.ID)
				fmt.Fprintf(tw, "%s\t%s\t(%g, %g)\n", a.ID, a.Category, p.X(), p.Y())
			}
			fmt.Fprintln(tw)
			fmt.Fprintln(tw, "STREET\tAREAS\tFLOODABLE")
			for _, s := range topology.Streets() {
				fmt.Fprintf(tw, "%s\t%s\t%v\n", s.ID, s.Pair, s.Floodable)
			}

			return tw.Flush()
		},
	}
}
