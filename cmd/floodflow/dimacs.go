package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/floodflow/dimacs"
	"github.com/katalvlaran/floodflow/traffic"
)

func dimacsCmd() *cobra.Command {
	var (
		sf  scenarioFlags
		dir string
	)

	cmd := &cobra.Command{
		Use:   "dimacs",
		Short: "Write one DIMACS min-cost flow file per populated area",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sc, err := sf.resolve(cmd)
			if err != nil {
				return err
			}
			if err = os.MkdirAll(dir, 0o755); err != nil {
				return err
			}

			var (
				written []string
				hookErr error
			)
			hook := func(p *traffic.Problem) {
				if hookErr != nil {
					return
				}
				path := filepath.Join(dir, p.Source+".min")
				hookErr = writeProblem(path, p, sc.Flooding)
				written = append(written, path)
			}

			eng, log, err := newEngine(cmd, &sf, traffic.WithProblemHook(hook))
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			res, err := eng.Compute(cmd.Context(), sc.Areas, sc.Flooding)
			if err != nil {
				return err
			}
			if hookErr != nil {
				return hookErr
			}
			for _, path := range written {
				fmt.Fprintln(cmd.OutOrStdout(), path)
			}
			log.Sugar().Infof("wrote %d problems, result %s", len(written), res)

			return nil
		},
	}

	sf.register(cmd)
	registerParameters(cmd)
	cmd.Flags().StringVar(&dir, "out", ".", "directory for the .min files")

	return cmd
}

func writeProblem(path string, p *traffic.Problem, flooding int) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	return dimacs.Write(f, p.Graph, p.Demands,
		fmt.Sprintf("source %s, total demand %d, flooding level %d", p.Source, p.TotalDemand, flooding))
}
