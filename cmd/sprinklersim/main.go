// Command sprinklersim drives the canonical sprinkler controller: soil
// moisture (0–100%) and temperature (0–50°C) in, water-flow level (0–100%)
// out.
//
// With -moisture and -temperature it evaluates a single reading; without
// them it replays the built-in table of test readings. A custom controller
// table can be supplied with -config (TOML, see package fuzzcfg); it must
// keep the soil_moisture and temperature variable names so the reading flags
// still bind.
package main

import (
	"flag"
	"math"
	"os"

	"go.uber.org/zap"

	"github.com/katalvlaran/fuzium/fuzzcfg"
	"github.com/katalvlaran/fuzium/mamdani"
)

// sprinklerTable is the canonical controller: dry/moist/wet × cold/warm/hot
// → low/medium/high over a five-rule base.
const sprinklerTable = `
resolution = 1.0

[[input]]
name = "soil_moisture"
min = 0.0
max = 100.0
[[input.term]]
label = "dry"
shape = "triangular"
points = [0.0, 0.0, 50.0]
[[input.term]]
label = "moist"
shape = "triangular"
points = [20.0, 50.0, 80.0]
[[input.term]]
label = "wet"
shape = "triangular"
points = [50.0, 100.0, 100.0]

[[input]]
name = "temperature"
min = 0.0
max = 50.0
[[input.term]]
label = "cold"
shape = "triangular"
points = [0.0, 0.0, 20.0]
[[input.term]]
label = "warm"
shape = "triangular"
points = [10.0, 25.0, 40.0]
[[input.term]]
label = "hot"
shape = "triangular"
points = [30.0, 50.0, 50.0]

[output]
name = "water"
min = 0.0
max = 100.0
[[output.term]]
label = "low"
shape = "triangular"
points = [0.0, 0.0, 50.0]
[[output.term]]
label = "medium"
shape = "triangular"
points = [20.0, 50.0, 80.0]
[[output.term]]
label = "high"
shape = "triangular"
points = [50.0, 100.0, 100.0]

[[rule]]
consequent = "high"
[[rule.when]]
variable = "soil_moisture"
label = "dry"
[[rule.when]]
variable = "temperature"
label = "hot"

[[rule]]
consequent = "medium"
[[rule.when]]
variable = "soil_moisture"
label = "dry"
[[rule.when]]
variable = "temperature"
label = "warm"

[[rule]]
consequent = "medium"
[[rule.when]]
variable = "soil_moisture"
label = "moist"
[[rule.when]]
variable = "temperature"
label = "warm"

[[rule]]
consequent = "low"
[[rule.when]]
variable = "soil_moisture"
label = "moist"
[[rule.when]]
variable = "temperature"
label = "cold"

[[rule]]
consequent = "low"
[[rule.when]]
variable = "soil_moisture"
label = "wet"
`

// replayTable holds {soil moisture %, temperature °C} readings covering hot
// dry days through cold wet ones.
var replayTable = [][2]float64{
	{30, 35},
	{70, 20},
	{10, 40},
	{50, 10},
	{80, 30},
	{20, 45},
	{90, 15},
	{40, 25},
	{15, 35},
	{60, 5},
}

func main() {
	var (
		configFile  string
		moisture    float64
		temperature float64
	)
	flag.StringVar(&configFile, "config", "", "controller table (TOML); built-in sprinkler base when empty")
	flag.Float64Var(&moisture, "moisture", math.NaN(), "soil moisture reading (%)")
	flag.Float64Var(&temperature, "temperature", math.NaN(), "temperature reading (°C)")
	flag.Parse()

	logger := zap.Must(zap.NewDevelopment())
	defer func() { _ = logger.Sync() }()

	var (
		cfg mamdani.Config
		err error
	)
	if configFile != "" {
		cfg, err = fuzzcfg.Load(configFile)
	} else {
		cfg, err = fuzzcfg.Parse([]byte(sprinklerTable))
	}
	if err != nil {
		logger.Error("failed to load controller table", zap.Error(err))
		os.Exit(1)
	}

	ctl, err := mamdani.New(cfg)
	if err != nil {
		logger.Error("failed to build controller", zap.Error(err))
		os.Exit(1)
	}

	readings := replayTable
	if !math.IsNaN(moisture) || !math.IsNaN(temperature) {
		if math.IsNaN(moisture) || math.IsNaN(temperature) {
			logger.Error("both -moisture and -temperature are required for a single evaluation")
			os.Exit(1)
		}
		readings = [][2]float64{{moisture, temperature}}
	}

	for _, reading := range readings {
		res, err := ctl.Compute(map[string]float64{
			"soil_moisture": reading[0],
			"temperature":   reading[1],
		})
		if err != nil {
			logger.Error("compute failed", zap.Error(err))
			os.Exit(1)
		}
		logger.Info("computed water level",
			zap.Float64("soil_moisture", reading[0]),
			zap.Float64("temperature", reading[1]),
			zap.Float64("water", res.Value),
			zap.Bool("activated", res.Activated),
		)
	}
}
