// Package config defines the tunable inputs of universe generation: value
// ranges, child-count bounds, per-classification overrides, worker limits
// and logging options. Configuration is data; the generator consumes it but
// never repairs it.
package config

import (
	"fmt"
	"maps"

	"universe-engine/universe"
)

// Range is a closed numeric interval [Min, Max]. A range with Min > Max is
// invalid and is rejected wherever it is used.
type Range struct {
	Min float64 `json:"min" yaml:"min"`
	Max float64 `json:"max" yaml:"max"`
}

func (r Range) Valid() bool {
	return r.Min <= r.Max
}

func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

func (r Range) Span() float64 {
	return r.Max - r.Min
}

// ClampMax returns a copy of r with Max capped at limit. Used to keep child
// ages below their parent's age. Min is lowered too when the cap undercuts
// it, so the result stays a valid range.
func (r Range) ClampMax(limit float64) Range {
	if limit < r.Max {
		r.Max = limit
	}
	if r.Min > r.Max {
		r.Min = r.Max
	}
	return r
}

type Config struct {
	// Workers bounds how many solar systems are generated concurrently.
	// Any value <= 1 disables parallelism. The output is identical for
	// every worker count.
	Workers int `yaml:"workers"`

	Logging   LoggingConfig   `yaml:"logging"`
	Galaxy    GalaxyConfig    `yaml:"galaxy"`
	System    SystemConfig    `yaml:"system"`
	Star      StarConfig      `yaml:"star"`
	Planet    PlanetConfig    `yaml:"planet"`
	Satellite SatelliteConfig `yaml:"satellite"`
}

type LoggingConfig struct {
	Level      string `yaml:"level"`
	Format     string `yaml:"format"`
	JSONFormat bool   `yaml:"json_format"`
}

type GalaxyConfig struct {
	// Name overrides the seeded pick from the name table when non-empty.
	Name string `yaml:"name"`
	// ID overrides the seed-derived galaxy ID when non-empty.
	ID         string `yaml:"id"`
	Systems    Range  `yaml:"systems"`
	Age        Range  `yaml:"age"`
	Brightness Range  `yaml:"brightness"`
}

type SystemConfig struct {
	Planets Range `yaml:"planets"`
	Age     Range `yaml:"age"`
	Coord   Range `yaml:"coord"`
}

// StarRanges are the physical attribute bounds for one spectral type.
// Temperature is in kelvin, mass and radius in solar units, luminosity in
// solar luminosities.
type StarRanges struct {
	Mass        Range `yaml:"mass"`
	Radius      Range `yaml:"radius"`
	Temperature Range `yaml:"temperature"`
	Luminosity  Range `yaml:"luminosity"`
}

type StarConfig struct {
	Age      Range                            `yaml:"age"`
	Defaults StarRanges                       `yaml:"defaults"`
	ByType   map[universe.StarType]StarRanges `yaml:"by_type"`
}

// Ranges returns the attribute bounds for a spectral type, falling back to
// the defaults when the type has no override.
func (c StarConfig) Ranges(t universe.StarType) StarRanges {
	if r, ok := c.ByType[t]; ok {
		return r
	}
	return c.Defaults
}

// PlanetRanges are the physical attribute bounds for one planet type.
// Mass and radius are in Earth units, distance in AU; Satellites bounds the
// moon count.
type PlanetRanges struct {
	Mass       Range `yaml:"mass"`
	Radius     Range `yaml:"radius"`
	Distance   Range `yaml:"distance"`
	Satellites Range `yaml:"satellites"`
}

type PlanetConfig struct {
	Age   Range `yaml:"age"`
	Coord Range `yaml:"coord"`
	// HabitableZone is the orbital band, in AU, that counts as habitable
	// around a star of one solar luminosity. The band scales with the
	// square root of the host star's luminosity.
	HabitableZone Range                                `yaml:"habitable_zone"`
	Defaults      PlanetRanges                         `yaml:"defaults"`
	ByType        map[universe.PlanetType]PlanetRanges `yaml:"by_type"`
}

func (c PlanetConfig) Ranges(t universe.PlanetType) PlanetRanges {
	if r, ok := c.ByType[t]; ok {
		return r
	}
	return c.Defaults
}

// SatelliteRanges are the physical attribute bounds for one satellite type.
// Mass and radius are in Earth units, distance from the planet in AU.
type SatelliteRanges struct {
	Mass     Range `yaml:"mass"`
	Radius   Range `yaml:"radius"`
	Distance Range `yaml:"distance"`
}

type SatelliteConfig struct {
	Age      Range                                      `yaml:"age"`
	Coord    Range                                      `yaml:"coord"`
	Defaults SatelliteRanges                            `yaml:"defaults"`
	ByType   map[universe.SatelliteType]SatelliteRanges `yaml:"by_type"`
}

func (c SatelliteConfig) Ranges(t universe.SatelliteType) SatelliteRanges {
	if r, ok := c.ByType[t]; ok {
		return r
	}
	return c.Defaults
}

// Default returns the built-in generation config. Star bounds follow the
// Harvard spectral bands (temperatures in kelvin); planet and satellite
// bounds are loosely calibrated to the solar system.
func Default() *Config {
	return &Config{
		Workers: 4,
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
		Galaxy: GalaxyConfig{
			Systems:    Range{Min: 3, Max: 12},
			Age:        Range{Min: 5, Max: 13.5},
			Brightness: Range{Min: 0.2, Max: 2.5},
		},
		System: SystemConfig{
			Planets: Range{Min: 2, Max: 8},
			Age:     Range{Min: 0.5, Max: 13},
			Coord:   Range{Min: -10000, Max: 10000},
		},
		Star: StarConfig{
			Age:      Range{Min: 0.01, Max: 13},
			Defaults: defaultStarRanges[universe.StarTypeG],
			ByType:   maps.Clone(defaultStarRanges),
		},
		Planet: PlanetConfig{
			Age:           Range{Min: 0.1, Max: 10},
			Coord:         Range{Min: -1000, Max: 1000},
			HabitableZone: Range{Min: 0.95, Max: 1.4},
			Defaults:      defaultPlanetRanges[universe.PlanetTypeRocky],
			ByType:        maps.Clone(defaultPlanetRanges),
		},
		Satellite: SatelliteConfig{
			Age:      Range{Min: 0.1, Max: 8},
			Coord:    Range{Min: -100, Max: 100},
			Defaults: defaultSatelliteRanges[universe.SatelliteTypeRegular],
			ByType:   maps.Clone(defaultSatelliteRanges),
		},
	}
}

var defaultStarRanges = map[universe.StarType]StarRanges{
	universe.StarTypeO: {
		Mass:        Range{Min: 16, Max: 90},
		Radius:      Range{Min: 6.6, Max: 15},
		Temperature: Range{Min: 30000, Max: 50000},
		Luminosity:  Range{Min: 30000, Max: 800000},
	},
	universe.StarTypeB: {
		Mass:        Range{Min: 2.1, Max: 16},
		Radius:      Range{Min: 1.8, Max: 6.6},
		Temperature: Range{Min: 10000, Max: 30000},
		Luminosity:  Range{Min: 25, Max: 30000},
	},
	universe.StarTypeA: {
		Mass:        Range{Min: 1.4, Max: 2.1},
		Radius:      Range{Min: 1.4, Max: 1.8},
		Temperature: Range{Min: 7500, Max: 10000},
		Luminosity:  Range{Min: 5, Max: 25},
	},
	universe.StarTypeF: {
		Mass:        Range{Min: 1.04, Max: 1.4},
		Radius:      Range{Min: 1.15, Max: 1.4},
		Temperature: Range{Min: 6000, Max: 7500},
		Luminosity:  Range{Min: 1.5, Max: 5},
	},
	universe.StarTypeG: {
		Mass:        Range{Min: 0.8, Max: 1.04},
		Radius:      Range{Min: 0.96, Max: 1.15},
		Temperature: Range{Min: 5200, Max: 6000},
		Luminosity:  Range{Min: 0.6, Max: 1.5},
	},
	universe.StarTypeK: {
		Mass:        Range{Min: 0.45, Max: 0.8},
		Radius:      Range{Min: 0.7, Max: 0.96},
		Temperature: Range{Min: 3700, Max: 5200},
		Luminosity:  Range{Min: 0.08, Max: 0.6},
	},
	universe.StarTypeM: {
		Mass:        Range{Min: 0.08, Max: 0.45},
		Radius:      Range{Min: 0.1, Max: 0.7},
		Temperature: Range{Min: 2400, Max: 3700},
		Luminosity:  Range{Min: 0.0001, Max: 0.08},
	},
}

var defaultPlanetRanges = map[universe.PlanetType]PlanetRanges{
	universe.PlanetTypeRocky: {
		Mass:       Range{Min: 0.05, Max: 5},
		Radius:     Range{Min: 0.3, Max: 1.8},
		Distance:   Range{Min: 0.3, Max: 3},
		Satellites: Range{Min: 0, Max: 2},
	},
	universe.PlanetTypeGasGiant: {
		Mass:       Range{Min: 50, Max: 4000},
		Radius:     Range{Min: 8, Max: 15},
		Distance:   Range{Min: 3, Max: 30},
		Satellites: Range{Min: 2, Max: 12},
	},
	universe.PlanetTypeIceGiant: {
		Mass:       Range{Min: 10, Max: 50},
		Radius:     Range{Min: 3, Max: 8},
		Distance:   Range{Min: 5, Max: 40},
		Satellites: Range{Min: 1, Max: 8},
	},
	universe.PlanetTypeOcean: {
		Mass:       Range{Min: 0.5, Max: 8},
		Radius:     Range{Min: 0.8, Max: 2.5},
		Distance:   Range{Min: 0.5, Max: 2},
		Satellites: Range{Min: 0, Max: 2},
	},
	universe.PlanetTypeDesert: {
		Mass:       Range{Min: 0.1, Max: 6},
		Radius:     Range{Min: 0.4, Max: 1.9},
		Distance:   Range{Min: 0.2, Max: 4},
		Satellites: Range{Min: 0, Max: 2},
	},
	universe.PlanetTypeLava: {
		Mass:       Range{Min: 0.1, Max: 6},
		Radius:     Range{Min: 0.3, Max: 1.8},
		Distance:   Range{Min: 0.02, Max: 0.5},
		Satellites: Range{Min: 0, Max: 1},
	},
	universe.PlanetTypeDwarf: {
		Mass:       Range{Min: 0.0002, Max: 0.01},
		Radius:     Range{Min: 0.03, Max: 0.2},
		Distance:   Range{Min: 30, Max: 50},
		Satellites: Range{Min: 0, Max: 3},
	},
}

var defaultSatelliteRanges = map[universe.SatelliteType]SatelliteRanges{
	universe.SatelliteTypeRegular: {
		Mass:     Range{Min: 0.0001, Max: 0.025},
		Radius:   Range{Min: 0.05, Max: 0.3},
		Distance: Range{Min: 0.001, Max: 0.02},
	},
	universe.SatelliteTypeIrregular: {
		Mass:     Range{Min: 0.000000001, Max: 0.0001},
		Radius:   Range{Min: 0.001, Max: 0.05},
		Distance: Range{Min: 0.01, Max: 0.2},
	},
	universe.SatelliteTypeCaptured: {
		Mass:     Range{Min: 0.00000001, Max: 0.001},
		Radius:   Range{Min: 0.002, Max: 0.1},
		Distance: Range{Min: 0.005, Max: 0.15},
	},
}

type rangeCheck struct {
	name string
	r    Range
}

// Validate checks the config for impossible values and returns the first
// offending field.
func (c *Config) Validate() error {
	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", c.Workers)
	}

	ranges := []rangeCheck{
		{"galaxy.systems", c.Galaxy.Systems},
		{"galaxy.age", c.Galaxy.Age},
		{"galaxy.brightness", c.Galaxy.Brightness},
		{"system.planets", c.System.Planets},
		{"system.age", c.System.Age},
		{"system.coord", c.System.Coord},
		{"star.age", c.Star.Age},
		{"planet.age", c.Planet.Age},
		{"planet.coord", c.Planet.Coord},
		{"planet.habitable_zone", c.Planet.HabitableZone},
		{"satellite.age", c.Satellite.Age},
		{"satellite.coord", c.Satellite.Coord},
	}
	ranges = append(ranges, starRangeChecks("star.defaults", c.Star.Defaults)...)
	for _, t := range universe.AllStarTypes {
		if r, ok := c.Star.ByType[t]; ok {
			ranges = append(ranges, starRangeChecks(fmt.Sprintf("star.by_type.%s", t), r)...)
		}
	}
	ranges = append(ranges, planetRangeChecks("planet.defaults", c.Planet.Defaults)...)
	for _, t := range universe.AllPlanetTypes {
		if r, ok := c.Planet.ByType[t]; ok {
			ranges = append(ranges, planetRangeChecks(fmt.Sprintf("planet.by_type.%s", t), r)...)
		}
	}
	ranges = append(ranges, satelliteRangeChecks("satellite.defaults", c.Satellite.Defaults)...)
	for _, t := range universe.AllSatelliteTypes {
		if r, ok := c.Satellite.ByType[t]; ok {
			ranges = append(ranges, satelliteRangeChecks(fmt.Sprintf("satellite.by_type.%s", t), r)...)
		}
	}

	for _, check := range ranges {
		if !check.r.Valid() {
			return fmt.Errorf("%s: min %v greater than max %v", check.name, check.r.Min, check.r.Max)
		}
	}

	if c.Galaxy.Systems.Min < 0 {
		return fmt.Errorf("galaxy.systems: min %v must not be negative", c.Galaxy.Systems.Min)
	}
	if c.System.Planets.Min < 0 {
		return fmt.Errorf("system.planets: min %v must not be negative", c.System.Planets.Min)
	}

	return nil
}

func starRangeChecks(prefix string, r StarRanges) []rangeCheck {
	return []rangeCheck{
		{prefix + ".mass", r.Mass},
		{prefix + ".radius", r.Radius},
		{prefix + ".temperature", r.Temperature},
		{prefix + ".luminosity", r.Luminosity},
	}
}

func planetRangeChecks(prefix string, r PlanetRanges) []rangeCheck {
	return []rangeCheck{
		{prefix + ".mass", r.Mass},
		{prefix + ".radius", r.Radius},
		{prefix + ".distance", r.Distance},
		{prefix + ".satellites", r.Satellites},
	}
}

func satelliteRangeChecks(prefix string, r SatelliteRanges) []rangeCheck {
	return []rangeCheck{
		{prefix + ".mass", r.Mass},
		{prefix + ".radius", r.Radius},
		{prefix + ".distance", r.Distance},
	}
}
