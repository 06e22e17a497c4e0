package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/floodflow/layout"
	"github.com/katalvlaran/floodflow/traffic"
)

func computeCmd() *cobra.Command {
	var (
		sf      scenarioFlags
		geoJSON string
		table   bool
	)

	cmd := &cobra.Command{
		Use:   "compute",
		Short: "Compute the traffic flow of every street and print it in street order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sc, err := sf.resolve(cmd)
			if err != nil {
				return err
			}
			eng, log, err := newEngine(cmd, &sf)
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			res, err := eng.Compute(cmd.Context(), sc.Areas, sc.Flooding)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if table {
				printStreets(cmd, res)
			} else {
				fmt.Fprintln(out, res.String())
			}
			if geoJSON != "" {
				if err = layout.WriteGeoJSON(geoJSON, res); err != nil {
					return err
				}
				log.Sugar().Infof("wrote %s", geoJSON)
			}

			return nil
		},
	}

	sf.register(cmd)
	registerParameters(cmd)
	cmd.Flags().StringVar(&geoJSON, "geojson", "", "also write the result as a GeoJSON FeatureCollection to this file")
	cmd.Flags().BoolVar(&table, "table", false, "print one line per street instead of the list")

	return cmd
}

func printStreets(cmd *cobra.Command, res *traffic.Result) {
	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "# %s\n", res.Scenario())
	fmt.Fprintln(tw, "STREET\tAREAS\tFLOODABLE\tFLOW")
	for _, s := range res.Streets() {
		fmt.Fprintf(tw, "%s\t%s\t%v\t%d\n", s.ID, s.Pair, s.Floodable, s.Rounded)
	}
	_ = tw.Flush()
}
