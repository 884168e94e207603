// Package taxonomy holds the classification data of the universe: weighted
// candidate sets conditioned on parent classification, compatibility sets
// for joint invariants, evolutionary lifetimes and display colors. Tables
// are plain data; callers can load replacements or edit them before
// generation.
package taxonomy

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"universe-engine/generr"
	"universe-engine/universe"
)

// Choice is one weighted candidate in an ordered candidate set. Candidate
// sets are slices, never maps: when weights tie, the earlier declaration
// wins, so selection order is part of the data.
type Choice[T any] struct {
	Value  T   `json:"value" yaml:"value"`
	Weight int `json:"weight" yaml:"weight"`
}

// StarLifetime holds the per-phase durations, in billions of years, of one
// spectral type's evolutionary path. A zero duration skips the phase.
type StarLifetime struct {
	Formation    float64 `json:"formation" yaml:"formation"`
	MainSequence float64 `json:"main_sequence" yaml:"main_sequence"`
	Subgiant     float64 `json:"subgiant" yaml:"subgiant"`
	Giant        float64 `json:"giant" yaml:"giant"`
	Supernova    float64 `json:"supernova" yaml:"supernova"`
}

// Tables is the full classification data set. Lookup keys are always known
// classifications, so map access order never influences generation; only
// the candidate slices are walked, in declaration order.
type Tables struct {
	GalaxyTypes       []Choice[universe.GalaxyType]   `json:"galaxy_types" yaml:"galaxy_types"`
	BlackHolePresence map[universe.GalaxyType]float64 `json:"black_hole_presence" yaml:"black_hole_presence"`

	StarTypes        map[universe.GalaxyType][]Choice[universe.StarType]      `json:"star_types" yaml:"star_types"`
	StarCompositions map[universe.StarType][]Choice[universe.StarComposition] `json:"star_compositions" yaml:"star_compositions"`
	StarLifetimes    map[universe.StarType]StarLifetime                       `json:"star_lifetimes" yaml:"star_lifetimes"`
	Remnants         map[universe.StarType][]Choice[universe.StarStage]       `json:"remnants" yaml:"remnants"`
	FlareActivity    map[universe.StarType]float64                            `json:"flare_activity" yaml:"flare_activity"`
	StarColors       map[universe.StarType]string                             `json:"star_colors" yaml:"star_colors"`

	PlanetTypes        map[universe.StarType][]Choice[universe.PlanetType]          `json:"planet_types" yaml:"planet_types"`
	PlanetCompositions map[universe.PlanetType][]Choice[universe.PlanetComposition] `json:"planet_compositions" yaml:"planet_compositions"`
	Atmospheres        map[universe.PlanetType][]Choice[universe.AtmosphereType]    `json:"atmospheres" yaml:"atmospheres"`
	AtmosphereCompat   map[universe.PlanetComposition][]universe.AtmosphereType     `json:"atmosphere_compat" yaml:"atmosphere_compat"`
	RingChance         map[universe.PlanetType]float64                              `json:"ring_chance" yaml:"ring_chance"`
	PlanetColors       map[universe.PlanetType]string                               `json:"planet_colors" yaml:"planet_colors"`

	SatelliteTypes        map[universe.PlanetType][]Choice[universe.SatelliteType]           `json:"satellite_types" yaml:"satellite_types"`
	SatelliteCompositions map[universe.SatelliteType][]Choice[universe.SatelliteComposition] `json:"satellite_compositions" yaml:"satellite_compositions"`
	SatelliteColors       map[universe.SatelliteComposition]string                           `json:"satellite_colors" yaml:"satellite_colors"`
}

// Pick selects a value from an ordered candidate set. The roll is the seed
// reduced modulo the total weight; the walk accumulates weights in
// declaration order, so equal-weight candidates resolve by table position.
// Entries with weight <= 0 are excluded. An empty or fully-excluded set
// fails with ErrNoValidCandidate.
func Pick[T any](seed uint64, choices []Choice[T]) (T, error) {
	var zero T

	totalWeight := 0
	for _, choice := range choices {
		if choice.Weight > 0 {
			totalWeight += choice.Weight
		}
	}
	if totalWeight <= 0 {
		return zero, generr.NoValidCandidatef("candidate set is empty")
	}

	roll := int(seed % uint64(totalWeight))
	currentWeight := 0
	for _, choice := range choices {
		if choice.Weight <= 0 {
			continue
		}
		currentWeight += choice.Weight
		if roll < currentWeight {
			return choice.Value, nil
		}
	}

	// The roll is always below the accumulated total.
	return zero, generr.NoValidCandidatef("candidate set is empty")
}

// Restrict returns the candidates whose values appear in allowed, keeping
// declaration order and weights. Used to refine one draw by the outcome of
// another, e.g. atmospheres by planet composition.
func Restrict[T comparable](choices []Choice[T], allowed []T) []Choice[T] {
	allowedSet := make(map[T]struct{}, len(allowed))
	for _, v := range allowed {
		allowedSet[v] = struct{}{}
	}

	restricted := make([]Choice[T], 0, len(choices))
	for _, choice := range choices {
		if _, ok := allowedSet[choice.Value]; ok {
			restricted = append(restricted, choice)
		}
	}
	return restricted
}

// Load reads a YAML tables file and overlays it on the defaults: a file
// only needs to state the tables it replaces.
func Load(path string) (*Tables, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open taxonomy file: %w", err)
	}
	defer f.Close()

	tables, err := LoadReader(f)
	if err != nil {
		return nil, fmt.Errorf("failed to load taxonomy file %s: %w", path, err)
	}
	return tables, nil
}

// LoadReader decodes YAML tables from r on top of the defaults.
func LoadReader(r io.Reader) (*Tables, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read taxonomy: %w", err)
	}

	tables := Default()
	if err := yaml.Unmarshal(data, tables); err != nil {
		return nil, fmt.Errorf("failed to parse taxonomy: %w", err)
	}
	if err := tables.Validate(); err != nil {
		return nil, fmt.Errorf("invalid taxonomy: %w", err)
	}
	return tables, nil
}

// Validate rejects structurally broken tables: negative weights, and
// probabilities outside [0, 1]. Empty candidate sets are legal here; they
// surface as ErrNoValidCandidate if generation ever needs them.
func (t *Tables) Validate() error {
	if err := checkWeights("galaxy_types", t.GalaxyTypes); err != nil {
		return err
	}
	for _, g := range universe.AllGalaxyTypes {
		if err := checkWeights(fmt.Sprintf("star_types.%s", g), t.StarTypes[g]); err != nil {
			return err
		}
		if err := checkProbability(fmt.Sprintf("black_hole_presence.%s", g), t.BlackHolePresence[g]); err != nil {
			return err
		}
	}
	for _, s := range universe.AllStarTypes {
		if err := checkWeights(fmt.Sprintf("star_compositions.%s", s), t.StarCompositions[s]); err != nil {
			return err
		}
		if err := checkWeights(fmt.Sprintf("remnants.%s", s), t.Remnants[s]); err != nil {
			return err
		}
		if err := checkWeights(fmt.Sprintf("planet_types.%s", s), t.PlanetTypes[s]); err != nil {
			return err
		}
		if err := checkProbability(fmt.Sprintf("flare_activity.%s", s), t.FlareActivity[s]); err != nil {
			return err
		}
	}
	for _, p := range universe.AllPlanetTypes {
		if err := checkWeights(fmt.Sprintf("planet_compositions.%s", p), t.PlanetCompositions[p]); err != nil {
			return err
		}
		if err := checkWeights(fmt.Sprintf("atmospheres.%s", p), t.Atmospheres[p]); err != nil {
			return err
		}
		if err := checkWeights(fmt.Sprintf("satellite_types.%s", p), t.SatelliteTypes[p]); err != nil {
			return err
		}
		if err := checkProbability(fmt.Sprintf("ring_chance.%s", p), t.RingChance[p]); err != nil {
			return err
		}
	}
	for _, s := range universe.AllSatelliteTypes {
		if err := checkWeights(fmt.Sprintf("satellite_compositions.%s", s), t.SatelliteCompositions[s]); err != nil {
			return err
		}
	}
	return nil
}

func checkWeights[T any](name string, choices []Choice[T]) error {
	for i, choice := range choices {
		if choice.Weight < 0 {
			return fmt.Errorf("%s[%d]: negative weight %d", name, i, choice.Weight)
		}
	}
	return nil
}

func checkProbability(name string, p float64) error {
	if p < 0 || p > 1 {
		return fmt.Errorf("%s: probability %v outside [0, 1]", name, p)
	}
	return nil
}
