// Package generator builds universe graphs top-down from a single root
// seed. Every attribute of every body is derived through the seed
// expander, so the same root seed, config and taxonomy tables always
// produce the same graph, regardless of worker count.
package generator

import (
	"fmt"
	"io"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"universe-engine/config"
	"universe-engine/generr"
	"universe-engine/resolver"
	"universe-engine/sampler"
	"universe-engine/seed"
	"universe-engine/taxonomy"
	"universe-engine/universe"
)

// domainClassification labels errors raised by the classification
// resolver rather than by a single attribute stream.
const domainClassification = "classification"

// Generator assembles galaxies from a root seed using a config for
// numeric ranges and taxonomy tables for categorical draws.
type Generator struct {
	cfg      *config.Config
	tables   *taxonomy.Tables
	resolver *resolver.Resolver
	logger   *slog.Logger
}

// New creates a Generator. Nil arguments fall back to the default
// config, the default taxonomy tables, and a discarding logger.
func New(cfg *config.Config, tables *taxonomy.Tables, logger *slog.Logger) *Generator {
	if cfg == nil {
		cfg = config.Default()
	}
	if tables == nil {
		tables = taxonomy.Default()
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Generator{
		cfg:      cfg,
		tables:   tables,
		resolver: resolver.New(tables),
		logger:   logger,
	}
}

// Generate builds the complete galaxy graph rooted at rootSeed.
//
// Generation is all-or-nothing: on failure the galaxy is nil and the
// error carries the level, parent ID and domain of the entity whose
// generation failed.
func (g *Generator) Generate(rootSeed uint64) (*universe.Galaxy, error) {
	logger := g.logger.With("component", "generator", "operation", "generate", "root_seed", rootSeed)
	logger.Debug("Generating universe")

	galaxy, err := g.buildGalaxy(rootSeed)
	if err != nil {
		logger.Error("Failed to generate universe", "error", err)
		return nil, err
	}

	stats := universe.ComputeStats(galaxy)
	logger.Info("Universe generated",
		"galaxy_id", galaxy.ID,
		"galaxy_type", galaxy.Type,
		"systems", stats.SystemCount,
		"planets", stats.PlanetCount,
		"satellites", stats.SatelliteCount,
		"habitable_planets", stats.HabitablePlanets,
	)
	return galaxy, nil
}

func (g *Generator) buildGalaxy(rootSeed uint64) (*universe.Galaxy, error) {
	class, err := g.resolver.Galaxy(rootSeed)
	if err != nil {
		return nil, generr.Wrap(err, universe.LevelGalaxy, "", domainClassification)
	}

	id := g.cfg.Galaxy.ID
	if id == "" {
		id = fmt.Sprintf("galaxy-%016x", rootSeed)
	}
	name := g.cfg.Galaxy.Name
	if name == "" {
		name = galaxyName(seed.Expand(rootSeed, 0, seed.DomainName))
	}

	age, err := sampler.Sample(seed.Expand(rootSeed, 0, seed.DomainAge), g.cfg.Galaxy.Age)
	if err != nil {
		return nil, generr.Wrap(err, universe.LevelGalaxy, "", seed.DomainAge.String())
	}
	brightness, err := sampler.Sample(seed.Expand(rootSeed, 0, seed.DomainBrightness), g.cfg.Galaxy.Brightness)
	if err != nil {
		return nil, generr.Wrap(err, universe.LevelGalaxy, "", seed.DomainBrightness.String())
	}
	systemCount, err := sampler.SampleCount(seed.Expand(rootSeed, 0, seed.DomainCount), g.cfg.Galaxy.Systems)
	if err != nil {
		return nil, generr.Wrap(err, universe.LevelSystem, id, seed.DomainCount.String())
	}
	if uint64(systemCount) > seed.MaxFanout {
		err := generr.SeedExhaustionf("%d systems exceed the per-parent fanout limit %d", systemCount, seed.MaxFanout)
		return nil, generr.Wrap(err, universe.LevelSystem, id, seed.DomainSystem.String())
	}

	galaxy := &universe.Galaxy{
		ID:                id,
		Name:              name,
		Type:              class.Type,
		Age:               age,
		Brightness:        brightness,
		BlackHolePresence: class.BlackHole,
		Seed:              rootSeed,
		Systems:           make([]universe.SolarSystem, systemCount),
	}

	if err := g.buildSystems(galaxy); err != nil {
		return nil, err
	}
	return galaxy, nil
}

// buildSystems fills galaxy.Systems in parallel. Each slot is written by
// exactly one goroutine from its own seed stream, so the result is
// identical for any worker count.
func (g *Generator) buildSystems(galaxy *universe.Galaxy) error {
	workers := g.cfg.Workers
	if workers < 1 {
		workers = 1
	}
	g.logger.Debug("Building systems", "galaxy_id", galaxy.ID, "count", len(galaxy.Systems), "workers", workers)

	sysCtx := SystemContext{
		GalaxyID:   galaxy.ID,
		GalaxyType: galaxy.Type,
		GalaxyAge:  galaxy.Age,
	}

	var eg errgroup.Group
	eg.SetLimit(workers)
	errs := make([]error, len(galaxy.Systems))
	for i := range galaxy.Systems {
		i := i
		eg.Go(func() error {
			systemSeed := seed.Expand(galaxy.Seed, uint32(i), seed.DomainSystem)
			system, err := g.BuildSystem(sysCtx, systemSeed, i)
			if err != nil {
				errs[i] = err
				return nil
			}
			galaxy.Systems[i] = system
			return nil
		})
	}
	// Workers record failures in errs instead of returning them, so the
	// reported error is always the lowest failing index rather than
	// whichever goroutine lost the race.
	_ = eg.Wait()

	for i, err := range errs {
		if err != nil {
			return fmt.Errorf("failed to generate system %d: %w", i, err)
		}
	}
	return nil
}
