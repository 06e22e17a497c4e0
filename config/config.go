// Package config holds the numeric parameters of a traffic computation and
// loads them through viper: built-in defaults, then an optional YAML file,
// then FLOODFLOW_* environment variables, then any bound command-line flags.
package config

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable override,
// e.g. FLOODFLOW_FLOODED_STREET_DENSITY=3.
const EnvPrefix = "FLOODFLOW"

// Keys shared by viper, the YAML file and the CLI flags.
const (
	KeyFlowPerCommercialArea        = "flow_per_commercial_area"
	KeyFlowPerResidentialArea       = "flow_per_residential_area"
	KeyPublicTransportFactor        = "public_transport_factor"
	KeyWeightCommercialUnpopulated  = "weight_commercial_unpopulated"
	KeyWeightCommercialPopulated    = "weight_commercial_populated"
	KeyWeightResidentialUnpopulated = "weight_residential_unpopulated"
	KeyWeightResidentialPopulated   = "weight_residential_populated"
	KeyFloodedStreetDensity         = "flooded_street_density"
	KeyFloodedStreetAvoidance       = "flooded_street_avoidance"
	KeyCapacity                     = "capacity"

	// KeyConfigFile names the YAML parameter file to read, if any.
	KeyConfigFile = "config"
)

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("config: invalid parameters")

// Parameters are the numeric inputs of one computation.
type Parameters struct {
	FlowPerCommercialArea  float64 `mapstructure:"flow_per_commercial_area" yaml:"flow_per_commercial_area"`
	FlowPerResidentialArea float64 `mapstructure:"flow_per_residential_area" yaml:"flow_per_residential_area"`
	PublicTransportFactor  float64 `mapstructure:"public_transport_factor" yaml:"public_transport_factor"`

	WeightCommercialUnpopulated  int64 `mapstructure:"weight_commercial_unpopulated" yaml:"weight_commercial_unpopulated"`
	WeightCommercialPopulated    int64 `mapstructure:"weight_commercial_populated" yaml:"weight_commercial_populated"`
	WeightResidentialUnpopulated int64 `mapstructure:"weight_residential_unpopulated" yaml:"weight_residential_unpopulated"`
	WeightResidentialPopulated   int64 `mapstructure:"weight_residential_populated" yaml:"weight_residential_populated"`

	// FloodedStreetDensity multiplies the aggregated flow of floodable streets
	// whenever flooding is active.
	FloodedStreetDensity float64 `mapstructure:"flooded_street_density" yaml:"flooded_street_density"`
	// FloodedStreetAvoidance is the arc cost of a floodable street when
	// drivers are warned; 1 means no avoidance.
	FloodedStreetAvoidance int64 `mapstructure:"flooded_street_avoidance" yaml:"flooded_street_avoidance"`

	// Capacity bounds the flow on every arc. It is meant to be non-binding.
	Capacity int64 `mapstructure:"capacity" yaml:"capacity"`
}

// Default returns the stock parameter set.
func Default() Parameters {
	return Parameters{
		FlowPerCommercialArea:        100,
		FlowPerResidentialArea:       200,
		PublicTransportFactor:        0.5,
		WeightCommercialUnpopulated:  2,
		WeightCommercialPopulated:    4,
		WeightResidentialUnpopulated: 1,
		WeightResidentialPopulated:   2,
		FloodedStreetDensity:         2,
		FloodedStreetAvoidance:       3,
		Capacity:                     1000,
	}
}

// Validate reports the first out-of-range parameter, wrapped in ErrInvalid.
func (p Parameters) Validate() error {
	switch {
	case p.FlowPerCommercialArea < 0:
		return invalid(KeyFlowPerCommercialArea, "must be >= 0", p.FlowPerCommercialArea)
	case p.FlowPerResidentialArea < 0:
		return invalid(KeyFlowPerResidentialArea, "must be >= 0", p.FlowPerResidentialArea)
	case p.PublicTransportFactor < 0:
		return invalid(KeyPublicTransportFactor, "must be >= 0", p.PublicTransportFactor)
	case p.WeightCommercialUnpopulated < 0:
		return invalid(KeyWeightCommercialUnpopulated, "must be >= 0", p.WeightCommercialUnpopulated)
	case p.WeightCommercialPopulated < 0:
		return invalid(KeyWeightCommercialPopulated, "must be >= 0", p.WeightCommercialPopulated)
	case p.WeightResidentialUnpopulated < 0:
		return invalid(KeyWeightResidentialUnpopulated, "must be >= 0", p.WeightResidentialUnpopulated)
	case p.WeightResidentialPopulated < 0:
		return invalid(KeyWeightResidentialPopulated, "must be >= 0", p.WeightResidentialPopulated)
	case p.FloodedStreetDensity < 1:
		return invalid(KeyFloodedStreetDensity, "must be >= 1", p.FloodedStreetDensity)
	case p.FloodedStreetAvoidance < 1:
		return invalid(KeyFloodedStreetAvoidance, "must be >= 1", p.FloodedStreetAvoidance)
	case p.Capacity <= 0:
		return invalid(KeyCapacity, "must be > 0", p.Capacity)
	}

	return nil
}

func invalid(key, rule string, got interface{}) error {
	return fmt.Errorf("%w: %s %s, got %v", ErrInvalid, key, rule, got)
}

// SetDefaults registers Default() on v, key by key.
func SetDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault(KeyFlowPerCommercialArea, d.FlowPerCommercialArea)
	v.SetDefault(KeyFlowPerResidentialArea, d.FlowPerResidentialArea)
	v.SetDefault(KeyPublicTransportFactor, d.PublicTransportFactor)
	v.SetDefault(KeyWeightCommercialUnpopulated, d.WeightCommercialUnpopulated)
	v.SetDefault(KeyWeightCommercialPopulated, d.WeightCommercialPopulated)
	v.SetDefault(KeyWeightResidentialUnpopulated, d.WeightResidentialUnpopulated)
	v.SetDefault(KeyWeightResidentialPopulated, d.WeightResidentialPopulated)
	v.SetDefault(KeyFloodedStreetDensity, d.FloodedStreetDensity)
	v.SetDefault(KeyFloodedStreetAvoidance, d.FloodedStreetAvoidance)
	v.SetDefault(KeyCapacity, d.Capacity)
}

// Load resolves Parameters from v.
//
// Steps:
//  1. Register defaults and FLOODFLOW_* environment lookups.
//  2. If KeyConfigFile is set, merge that YAML file.
//  3. Decode into Parameters and validate.
func Load(v *viper.Viper) (Parameters, error) {
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if path := v.GetString(KeyConfigFile); path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.MergeInConfig(); err != nil {
			return Parameters{}, errors.Wrapf(err, "config: reading %s", path)
		}
	}

	var p Parameters
	if err := v.Unmarshal(&p); err != nil {
		return Parameters{}, errors.Wrap(err, "config: decoding parameters")
	}
	if err := p.Validate(); err != nil {
		return Parameters{}, err
	}

	return p, nil
}

// LoadFile resolves Parameters from defaults, the YAML file at path and the
// environment.
func LoadFile(path string) (Parameters, error) {
	v := viper.New()
	v.Set(KeyConfigFile, path)

	return Load(v)
}
