package generator

import (
	"fmt"
	"math"

	"universe-engine/config"
	"universe-engine/generr"
	"universe-engine/sampler"
	"universe-engine/seed"
	"universe-engine/universe"
)

// SystemContext carries the parent-galaxy attributes a system build
// depends on.
type SystemContext struct {
	GalaxyID   string
	GalaxyType universe.GalaxyType
	GalaxyAge  float64
}

// BuildSystem generates the solar system at index under the given galaxy
// context. systemSeed must be the expander output for that index; a
// single-system rebuild then reproduces exactly what a full galaxy build
// places at the same slot.
func (g *Generator) BuildSystem(ctx SystemContext, systemSeed uint64, index int) (universe.SolarSystem, error) {
	x, err := sampler.SampleInt(seed.Expand(systemSeed, 0, seed.DomainCoordX), g.cfg.System.Coord)
	if err != nil {
		return universe.SolarSystem{}, generr.Wrap(err, universe.LevelSystem, ctx.GalaxyID, seed.DomainCoordX.String())
	}
	y, err := sampler.SampleInt(seed.Expand(systemSeed, 0, seed.DomainCoordY), g.cfg.System.Coord)
	if err != nil {
		return universe.SolarSystem{}, generr.Wrap(err, universe.LevelSystem, ctx.GalaxyID, seed.DomainCoordY.String())
	}
	age, err := sampler.Sample(seed.Expand(systemSeed, 0, seed.DomainAge), g.cfg.System.Age.ClampMax(ctx.GalaxyAge))
	if err != nil {
		return universe.SolarSystem{}, generr.Wrap(err, universe.LevelSystem, ctx.GalaxyID, seed.DomainAge.String())
	}

	system := universe.SolarSystem{
		ID:   fmt.Sprintf("%s/system-%d", ctx.GalaxyID, index),
		Name: systemName(index),
		X:    x,
		Y:    y,
		Seed: systemSeed,
		Age:  age,
	}

	star, err := g.buildStar(&system, ctx.GalaxyType)
	if err != nil {
		return universe.SolarSystem{}, fmt.Errorf("failed to generate star: %w", err)
	}
	system.Star = star

	if err := g.buildPlanets(&system); err != nil {
		return universe.SolarSystem{}, err
	}
	return system, nil
}

// buildStar generates the system's star. The star is named after its
// system and shares its coordinates.
func (g *Generator) buildStar(system *universe.SolarSystem, galaxyType universe.GalaxyType) (universe.Star, error) {
	starSeed := seed.Expand(system.Seed, 0, seed.DomainStar)

	age, err := sampler.Sample(seed.Expand(starSeed, 0, seed.DomainAge), g.cfg.Star.Age.ClampMax(system.Age))
	if err != nil {
		return universe.Star{}, generr.Wrap(err, universe.LevelStar, system.ID, seed.DomainAge.String())
	}
	class, err := g.resolver.Star(starSeed, galaxyType, age)
	if err != nil {
		return universe.Star{}, generr.Wrap(err, universe.LevelStar, system.ID, domainClassification)
	}

	ranges := g.cfg.Star.Ranges(class.Type)
	mass, err := sampler.Sample(seed.Expand(starSeed, 0, seed.DomainMass), ranges.Mass)
	if err != nil {
		return universe.Star{}, generr.Wrap(err, universe.LevelStar, system.ID, seed.DomainMass.String())
	}
	radius, err := sampler.Sample(seed.Expand(starSeed, 0, seed.DomainRadius), ranges.Radius)
	if err != nil {
		return universe.Star{}, generr.Wrap(err, universe.LevelStar, system.ID, seed.DomainRadius.String())
	}
	temperature, err := sampler.SampleInt(seed.Expand(starSeed, 0, seed.DomainTemperature), ranges.Temperature)
	if err != nil {
		return universe.Star{}, generr.Wrap(err, universe.LevelStar, system.ID, seed.DomainTemperature.String())
	}
	luminosity, err := sampler.Sample(seed.Expand(starSeed, 0, seed.DomainLuminosity), ranges.Luminosity)
	if err != nil {
		return universe.Star{}, generr.Wrap(err, universe.LevelStar, system.ID, seed.DomainLuminosity.String())
	}

	return universe.Star{
		Body: universe.Body{
			ID:     system.ID + "/star",
			Name:   system.Name,
			Age:    age,
			Mass:   mass,
			Radius: radius,
			X:      system.X,
			Y:      system.Y,
			Color:  g.tables.StarColors[class.Type],
		},
		Type:        class.Type,
		Stage:       class.Stage,
		Composition: class.Composition,
		Luminosity:  luminosity,
		Temperature: temperature,
		FlareActive: class.FlareActive,
	}, nil
}

func (g *Generator) buildPlanets(system *universe.SolarSystem) error {
	count, err := sampler.SampleCount(seed.Expand(system.Seed, 0, seed.DomainCount), g.cfg.System.Planets)
	if err != nil {
		return generr.Wrap(err, universe.LevelPlanet, system.ID, seed.DomainCount.String())
	}
	if uint64(count) > seed.MaxFanout {
		err := generr.SeedExhaustionf("%d planets exceed the per-parent fanout limit %d", count, seed.MaxFanout)
		return generr.Wrap(err, universe.LevelPlanet, system.ID, seed.DomainPlanet.String())
	}

	system.Planets = make([]universe.Planet, 0, count)
	for i := 0; i < count; i++ {
		planetSeed := seed.Expand(system.Seed, uint32(i), seed.DomainPlanet)
		planet, err := g.buildPlanet(system, planetSeed, i)
		if err != nil {
			return fmt.Errorf("failed to generate planet %d: %w", i, err)
		}
		system.Planets = append(system.Planets, planet)
	}
	return nil
}

func (g *Generator) buildPlanet(system *universe.SolarSystem, planetSeed uint64, index int) (universe.Planet, error) {
	class, err := g.resolver.Planet(planetSeed, system.Star.Type)
	if err != nil {
		return universe.Planet{}, generr.Wrap(err, universe.LevelPlanet, system.ID, domainClassification)
	}

	ranges := g.cfg.Planet.Ranges(class.Type)
	age, err := sampler.Sample(seed.Expand(planetSeed, 0, seed.DomainAge), g.cfg.Planet.Age.ClampMax(system.Age))
	if err != nil {
		return universe.Planet{}, generr.Wrap(err, universe.LevelPlanet, system.ID, seed.DomainAge.String())
	}
	mass, err := sampler.Sample(seed.Expand(planetSeed, 0, seed.DomainMass), ranges.Mass)
	if err != nil {
		return universe.Planet{}, generr.Wrap(err, universe.LevelPlanet, system.ID, seed.DomainMass.String())
	}
	radius, err := sampler.Sample(seed.Expand(planetSeed, 0, seed.DomainRadius), ranges.Radius)
	if err != nil {
		return universe.Planet{}, generr.Wrap(err, universe.LevelPlanet, system.ID, seed.DomainRadius.String())
	}
	distance, err := sampler.Sample(seed.Expand(planetSeed, 0, seed.DomainDistance), ranges.Distance)
	if err != nil {
		return universe.Planet{}, generr.Wrap(err, universe.LevelPlanet, system.ID, seed.DomainDistance.String())
	}
	x, err := sampler.SampleInt(seed.Expand(planetSeed, 0, seed.DomainCoordX), g.cfg.Planet.Coord)
	if err != nil {
		return universe.Planet{}, generr.Wrap(err, universe.LevelPlanet, system.ID, seed.DomainCoordX.String())
	}
	y, err := sampler.SampleInt(seed.Expand(planetSeed, 0, seed.DomainCoordY), g.cfg.Planet.Coord)
	if err != nil {
		return universe.Planet{}, generr.Wrap(err, universe.LevelPlanet, system.ID, seed.DomainCoordY.String())
	}

	planet := universe.Planet{
		Body: universe.Body{
			ID:     fmt.Sprintf("%s/planet-%d", system.ID, index),
			Name:   planetName(system.Name, index),
			Age:    age,
			Mass:   mass,
			Radius: radius,
			X:      x,
			Y:      y,
			Color:  g.tables.PlanetColors[class.Type],
		},
		Type:             class.Type,
		Composition:      class.Composition,
		Atmosphere:       class.Atmosphere,
		DistanceFromStar: distance,
		HasRings:         class.HasRings,
	}
	planet.IsHabitable = g.habitable(&planet, &system.Star)

	if err := g.buildSatellites(&planet, planetSeed, ranges.Satellites); err != nil {
		return universe.Planet{}, err
	}
	return planet, nil
}

func (g *Generator) buildSatellites(planet *universe.Planet, planetSeed uint64, countRange config.Range) error {
	count, err := sampler.SampleCount(seed.Expand(planetSeed, 0, seed.DomainCount), countRange)
	if err != nil {
		return generr.Wrap(err, universe.LevelSatellite, planet.ID, seed.DomainCount.String())
	}
	if uint64(count) > seed.MaxFanout {
		err := generr.SeedExhaustionf("%d satellites exceed the per-parent fanout limit %d", count, seed.MaxFanout)
		return generr.Wrap(err, universe.LevelSatellite, planet.ID, seed.DomainSatellite.String())
	}

	planet.Satellites = make([]universe.Satellite, 0, count)
	for i := 0; i < count; i++ {
		satSeed := seed.Expand(planetSeed, uint32(i), seed.DomainSatellite)
		satellite, err := g.buildSatellite(planet, satSeed, i)
		if err != nil {
			return fmt.Errorf("failed to generate satellite %d: %w", i, err)
		}
		planet.Satellites = append(planet.Satellites, satellite)
	}
	return nil
}

func (g *Generator) buildSatellite(planet *universe.Planet, satSeed uint64, index int) (universe.Satellite, error) {
	class, err := g.resolver.Satellite(satSeed, planet.Type)
	if err != nil {
		return universe.Satellite{}, generr.Wrap(err, universe.LevelSatellite, planet.ID, domainClassification)
	}

	ranges := g.cfg.Satellite.Ranges(class.Type)
	age, err := sampler.Sample(seed.Expand(satSeed, 0, seed.DomainAge), g.cfg.Satellite.Age.ClampMax(planet.Age))
	if err != nil {
		return universe.Satellite{}, generr.Wrap(err, universe.LevelSatellite, planet.ID, seed.DomainAge.String())
	}
	mass, err := sampler.Sample(seed.Expand(satSeed, 0, seed.DomainMass), ranges.Mass)
	if err != nil {
		return universe.Satellite{}, generr.Wrap(err, universe.LevelSatellite, planet.ID, seed.DomainMass.String())
	}
	radius, err := sampler.Sample(seed.Expand(satSeed, 0, seed.DomainRadius), ranges.Radius)
	if err != nil {
		return universe.Satellite{}, generr.Wrap(err, universe.LevelSatellite, planet.ID, seed.DomainRadius.String())
	}
	distance, err := sampler.Sample(seed.Expand(satSeed, 0, seed.DomainDistance), ranges.Distance)
	if err != nil {
		return universe.Satellite{}, generr.Wrap(err, universe.LevelSatellite, planet.ID, seed.DomainDistance.String())
	}
	x, err := sampler.SampleInt(seed.Expand(satSeed, 0, seed.DomainCoordX), g.cfg.Satellite.Coord)
	if err != nil {
		return universe.Satellite{}, generr.Wrap(err, universe.LevelSatellite, planet.ID, seed.DomainCoordX.String())
	}
	y, err := sampler.SampleInt(seed.Expand(satSeed, 0, seed.DomainCoordY), g.cfg.Satellite.Coord)
	if err != nil {
		return universe.Satellite{}, generr.Wrap(err, universe.LevelSatellite, planet.ID, seed.DomainCoordY.String())
	}

	return universe.Satellite{
		Body: universe.Body{
			ID:     fmt.Sprintf("%s/moon-%d", planet.ID, index),
			Name:   satelliteName(planet.Name, index),
			Age:    age,
			Mass:   mass,
			Radius: radius,
			X:      x,
			Y:      y,
			Color:  g.tables.SatelliteColors[class.Composition],
		},
		Type:               class.Type,
		Composition:        class.Composition,
		PlanetID:           planet.ID,
		DistanceFromPlanet: distance,
	}, nil
}

// habitable reports whether a planet can support life: a rocky planet
// with an earthlike atmosphere orbiting a main-sequence star inside the
// habitable zone. The zone scales with the square root of the stellar
// luminosity.
func (g *Generator) habitable(planet *universe.Planet, star *universe.Star) bool {
	if planet.Type != universe.PlanetTypeRocky || planet.Atmosphere != universe.AtmosphereTypeEarthlike {
		return false
	}
	if star.Stage != universe.StarStageMainSequence {
		return false
	}
	scale := math.Sqrt(star.Luminosity)
	zone := g.cfg.Planet.HabitableZone
	return planet.DistanceFromStar >= zone.Min*scale && planet.DistanceFromStar <= zone.Max*scale
}
