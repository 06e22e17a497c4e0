package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/katalvlaran/floodflow/config"
	"github.com/katalvlaran/floodflow/flow"
	"github.com/katalvlaran/floodflow/logger"
	"github.com/katalvlaran/floodflow/traffic"
)

// scenarioFlags are the per-run inputs shared by compute and dimacs.
type scenarioFlags struct {
	areas        string
	flooding     int
	scenarioFile string
	workers      int
	verify       bool
	solver       string
}

func (f *scenarioFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.areas, "areas", "", "12 area states in the form 0,0,2,1,... where 0: unpopulated, 1: populated, 2: public transport. Order is top left to bottom right.")
	cmd.Flags().IntVar(&f.flooding, "flooding", 0, "0: no flooding, 1: flooding, 2: flooding+communication")
	cmd.Flags().StringVar(&f.scenarioFile, "scenario", "", "YAML file with areas and flooding; flags override it")
	cmd.Flags().IntVar(&f.workers, "workers", 1, "solve per-area problems on this many goroutines")
	cmd.Flags().BoolVar(&f.verify, "verify", false, "check every flow solution for feasibility and optimality")
	cmd.Flags().StringVar(&f.solver, "solver", "ssp", "min-cost flow algorithm: ssp or cycle")
}

// resolve merges the scenario file with explicit flags.
func (f *scenarioFlags) resolve(cmd *cobra.Command) (config.Scenario, error) {
	var sc config.Scenario
	if f.scenarioFile != "" {
		loaded, err := config.LoadScenario(f.scenarioFile)
		if err != nil {
			return sc, err
		}
		sc = loaded
	}
	if cmd.Flags().Changed("areas") {
		areas, err := config.ParseAreas(f.areas)
		if err != nil {
			return sc, err
		}
		sc.Areas = areas
	}
	if cmd.Flags().Changed("flooding") {
		sc.Flooding = f.flooding
	}
	if sc.Areas == nil {
		return sc, fmt.Errorf("either --areas or --scenario is required")
	}

	return sc, nil
}

func (f *scenarioFlags) flowSolver() (flow.Solver, error) {
	switch f.solver {
	case "ssp", "":
		return flow.SuccessiveShortestPaths, nil
	case "cycle":
		return flow.CycleCanceling, nil
	default:
		return nil, fmt.Errorf("unknown solver %q (want ssp or cycle)", f.solver)
	}
}

const logLevelFlag = "log-level"

var parameterKeys = []string{
	config.KeyConfigFile,
	config.KeyFlowPerCommercialArea,
	config.KeyFlowPerResidentialArea,
	config.KeyPublicTransportFactor,
	config.KeyWeightCommercialUnpopulated,
	config.KeyWeightCommercialPopulated,
	config.KeyWeightResidentialUnpopulated,
	config.KeyWeightResidentialPopulated,
	config.KeyFloodedStreetDensity,
	config.KeyFloodedStreetAvoidance,
	config.KeyCapacity,
}

// registerParameters adds one flag per numeric parameter, named and
// defaulted as in the config file.
func registerParameters(cmd *cobra.Command) {
	d := config.Default()
	fs := cmd.Flags()
	fs.String(config.KeyConfigFile, "", "YAML file with parameter overrides")
	fs.Float64(config.KeyFlowPerCommercialArea, d.FlowPerCommercialArea, "Flow added to the system by each populated commercial area")
	fs.Float64(config.KeyFlowPerResidentialArea, d.FlowPerResidentialArea, "Flow added to the system by each populated residential area")
	fs.Float64(config.KeyPublicTransportFactor, d.PublicTransportFactor, "The flow added by areas with public transport is multiplied by this factor")
	fs.Int64(config.KeyWeightCommercialUnpopulated, d.WeightCommercialUnpopulated, "Target weight for unpopulated commercial areas")
	fs.Int64(config.KeyWeightCommercialPopulated, d.WeightCommercialPopulated, "Target weight for populated commercial areas")
	fs.Int64(config.KeyWeightResidentialUnpopulated, d.WeightResidentialUnpopulated, "Target weight for unpopulated residential areas")
	fs.Int64(config.KeyWeightResidentialPopulated, d.WeightResidentialPopulated, "Target weight for populated residential areas")
	fs.Float64(config.KeyFloodedStreetDensity, d.FloodedStreetDensity, "The density of flooded streets is multiplied by this factor")
	fs.Int64(config.KeyFloodedStreetAvoidance, d.FloodedStreetAvoidance, "1 is a normal street; higher values make drivers avoid flooded streets when communication is enabled")
	fs.Int64(config.KeyCapacity, d.Capacity, "Capacity of every street direction")
}

// bindFlags returns a viper instance backed by the parsed flags of cmd,
// including the inherited log level.
func bindFlags(cmd *cobra.Command) (*viper.Viper, error) {
	v := viper.New()
	for _, key := range parameterKeys {
		if err := v.BindPFlag(key, cmd.Flags().Lookup(key)); err != nil {
			return nil, err
		}
	}
	if lf := cmd.Flags().Lookup(logLevelFlag); lf != nil {
		if err := v.BindPFlag("LOG_LEVEL", lf); err != nil {
			return nil, err
		}
	}

	return v, nil
}

// newEngine loads parameters and the logger from the flags of cmd, the
// environment and an optional config file, and builds an Engine.
func newEngine(cmd *cobra.Command, f *scenarioFlags, extra ...traffic.Option) (*traffic.Engine, *zap.Logger, error) {
	v, err := bindFlags(cmd)
	if err != nil {
		return nil, nil, err
	}
	params, err := config.Load(v)
	if err != nil {
		return nil, nil, err
	}
	log, err := logger.NewFrom(v)
	if err != nil {
		return nil, nil, err
	}
	solver, err := f.flowSolver()
	if err != nil {
		return nil, nil, err
	}

	opts := []traffic.Option{
		traffic.WithLogger(log),
		traffic.WithSolver(solver),
		traffic.WithWorkers(f.workers),
	}
	if f.verify {
		opts = append(opts, traffic.WithVerification())
	}
	eng, err := traffic.NewEngine(params, append(opts, extra...)...)
	if err != nil {
		return nil, nil, err
	}

	return eng, log, nil
}
