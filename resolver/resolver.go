// Package resolver assigns classifications. Every draw is conditioned on
// the parent's classification through the taxonomy tables, and joint
// invariants between sibling attributes are enforced by restricting later
// draws to the sets compatible with earlier ones.
package resolver

import (
	"fmt"

	"universe-engine/sampler"
	"universe-engine/seed"
	"universe-engine/taxonomy"
	"universe-engine/universe"
)

type Resolver struct {
	tables *taxonomy.Tables
}

func New(tables *taxonomy.Tables) *Resolver {
	return &Resolver{tables: tables}
}

// GalaxyClass is the resolved classification of a galaxy.
type GalaxyClass struct {
	Type      universe.GalaxyType
	BlackHole bool
}

// StarClass is the resolved classification of a star. FlareActive is only
// ever true for stages with a photosphere; remnants and supernovae never
// flare.
type StarClass struct {
	Type        universe.StarType
	Stage       universe.StarStage
	Composition universe.StarComposition
	FlareActive bool
}

// PlanetClass is the resolved classification of a planet. Composition is
// drawn from the sets valid for the planet type, and the atmosphere from
// the type's candidates restricted to those compatible with the
// composition.
type PlanetClass struct {
	Type        universe.PlanetType
	Composition universe.PlanetComposition
	Atmosphere  universe.AtmosphereType
	HasRings    bool
}

// SatelliteClass is the resolved classification of a satellite.
type SatelliteClass struct {
	Type        universe.SatelliteType
	Composition universe.SatelliteComposition
}

// Galaxy resolves the root classification from the galaxy's seed.
func (r *Resolver) Galaxy(entitySeed uint64) (GalaxyClass, error) {
	galaxyType, err := taxonomy.Pick(seed.Expand(entitySeed, 0, seed.DomainType), r.tables.GalaxyTypes)
	if err != nil {
		return GalaxyClass{}, fmt.Errorf("galaxy type: %w", err)
	}

	blackHole := sampler.SampleBool(
		seed.Expand(entitySeed, 0, seed.DomainBlackHole),
		r.tables.BlackHolePresence[galaxyType],
	)

	return GalaxyClass{Type: galaxyType, BlackHole: blackHole}, nil
}

// Star resolves a star's classification conditioned on the host galaxy's
// type and the star's age.
func (r *Resolver) Star(entitySeed uint64, galaxyType universe.GalaxyType, age float64) (StarClass, error) {
	starType, err := taxonomy.Pick(seed.Expand(entitySeed, 0, seed.DomainType), r.tables.StarTypes[galaxyType])
	if err != nil {
		return StarClass{}, fmt.Errorf("star type in %s galaxy: %w", galaxyType, err)
	}

	composition, err := taxonomy.Pick(seed.Expand(entitySeed, 0, seed.DomainComposition), r.tables.StarCompositions[starType])
	if err != nil {
		return StarClass{}, fmt.Errorf("star composition for type %s: %w", starType, err)
	}

	stage, err := r.Stage(starType, age, seed.Expand(entitySeed, 0, seed.DomainStage))
	if err != nil {
		return StarClass{}, fmt.Errorf("star stage for type %s: %w", starType, err)
	}

	flareActive := false
	if stageFlares(stage) {
		flareActive = sampler.SampleBool(
			seed.Expand(entitySeed, 0, seed.DomainFlare),
			r.tables.FlareActivity[starType],
		)
	}

	return StarClass{
		Type:        starType,
		Stage:       stage,
		Composition: composition,
		FlareActive: flareActive,
	}, nil
}

// Planet resolves a planet's classification conditioned on the host star's
// spectral type.
func (r *Resolver) Planet(entitySeed uint64, starType universe.StarType) (PlanetClass, error) {
	planetType, err := taxonomy.Pick(seed.Expand(entitySeed, 0, seed.DomainType), r.tables.PlanetTypes[starType])
	if err != nil {
		return PlanetClass{}, fmt.Errorf("planet type around %s star: %w", starType, err)
	}

	composition, err := taxonomy.Pick(seed.Expand(entitySeed, 0, seed.DomainComposition), r.tables.PlanetCompositions[planetType])
	if err != nil {
		return PlanetClass{}, fmt.Errorf("planet composition for type %s: %w", planetType, err)
	}

	// The atmosphere draw honors both constraints at once: candidates for
	// the planet type, restricted to what the composition can hold.
	candidates := r.tables.Atmospheres[planetType]
	if compat, ok := r.tables.AtmosphereCompat[composition]; ok {
		candidates = taxonomy.Restrict(candidates, compat)
	}
	atmosphere, err := taxonomy.Pick(seed.Expand(entitySeed, 0, seed.DomainAtmosphere), candidates)
	if err != nil {
		return PlanetClass{}, fmt.Errorf("atmosphere for %s planet with composition %s: %w", planetType, composition, err)
	}

	hasRings := sampler.SampleBool(
		seed.Expand(entitySeed, 0, seed.DomainRings),
		r.tables.RingChance[planetType],
	)

	return PlanetClass{
		Type:        planetType,
		Composition: composition,
		Atmosphere:  atmosphere,
		HasRings:    hasRings,
	}, nil
}

// Satellite resolves a satellite's classification conditioned on the host
// planet's type.
func (r *Resolver) Satellite(entitySeed uint64, planetType universe.PlanetType) (SatelliteClass, error) {
	satelliteType, err := taxonomy.Pick(seed.Expand(entitySeed, 0, seed.DomainType), r.tables.SatelliteTypes[planetType])
	if err != nil {
		return SatelliteClass{}, fmt.Errorf("satellite type around %s planet: %w", planetType, err)
	}

	composition, err := taxonomy.Pick(seed.Expand(entitySeed, 0, seed.DomainComposition), r.tables.SatelliteCompositions[satelliteType])
	if err != nil {
		return SatelliteClass{}, fmt.Errorf("satellite composition for type %s: %w", satelliteType, err)
	}

	return SatelliteClass{Type: satelliteType, Composition: composition}, nil
}

func stageFlares(stage universe.StarStage) bool {
	switch stage {
	case universe.StarStageProtostar, universe.StarStageMainSequence,
		universe.StarStageSubgiant, universe.StarStageGiant:
		return true
	}
	return false
}
