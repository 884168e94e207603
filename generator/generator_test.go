package generator_test

import (
	"math"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"universe-engine/config"
	"universe-engine/generator"
	"universe-engine/generr"
	"universe-engine/resolver"
	"universe-engine/seed"
	"universe-engine/taxonomy"
	"universe-engine/universe"
)

// TestGenerate_Deterministic requires two independent generators to
// produce bit-identical graphs from the same root seed.
func TestGenerate_Deterministic(t *testing.T) {
	first, err := generator.New(nil, nil, nil).Generate(42)
	require.NoError(t, err)
	second, err := generator.New(nil, nil, nil).Generate(42)
	require.NoError(t, err)

	require.Equal(t, first, second)
}

// TestGenerate_WorkerCountInvariance requires identical output for any
// worker count, including the degenerate zero.
func TestGenerate_WorkerCountInvariance(t *testing.T) {
	baseline, err := generator.New(nil, nil, nil).Generate(7)
	require.NoError(t, err)

	for _, workers := range []int{0, 1, 2, 8, 64} {
		cfg := config.Default()
		cfg.Workers = workers
		got, err := generator.New(cfg, nil, nil).Generate(7)
		require.NoError(t, err)
		require.Equal(t, baseline, got, "workers=%d diverged", workers)
	}
}

func TestGenerate_DistinctSeedsDiffer(t *testing.T) {
	first, err := generator.New(nil, nil, nil).Generate(1)
	require.NoError(t, err)
	second, err := generator.New(nil, nil, nil).Generate(2)
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, uint64(1), first.Seed)
	assert.Equal(t, uint64(2), second.Seed)
}

// TestGenerate_GraphInvariants walks full graphs for several seeds and
// checks the structural guarantees: stable IDs, index-ordered children,
// ages never exceeding the parent's, attributes inside their configured
// bounds, and classifications consistent with the tables.
func TestGenerate_GraphInvariants(t *testing.T) {
	cfg := config.Default()
	tables := taxonomy.Default()
	res := resolver.New(tables)

	for _, rootSeed := range []uint64{1, 42, 2026} {
		galaxy, err := generator.New(cfg, tables, nil).Generate(rootSeed)
		require.NoError(t, err)

		assert.Contains(t, universe.AllGalaxyTypes, galaxy.Type)
		assert.True(t, cfg.Galaxy.Age.Contains(galaxy.Age))
		assert.True(t, cfg.Galaxy.Brightness.Contains(galaxy.Brightness))
		requireCountIn(t, len(galaxy.Systems), cfg.Galaxy.Systems)

		ids := map[string]bool{galaxy.ID: true}
		for i := range galaxy.Systems {
			system := &galaxy.Systems[i]
			wantSystemID := galaxy.ID + "/system-" + strconv.Itoa(i)
			require.Equal(t, wantSystemID, system.ID)
			requireFreshID(t, ids, system.ID)
			assert.NotEmpty(t, system.Name)
			assert.Equal(t, seed.Expand(rootSeed, uint32(i), seed.DomainSystem), system.Seed)
			requireAgeOrdered(t, system.Age, galaxy.Age)
			assert.True(t, cfg.System.Coord.Contains(float64(system.X)))
			assert.True(t, cfg.System.Coord.Contains(float64(system.Y)))

			star := &system.Star
			require.Equal(t, system.ID+"/star", star.ID)
			requireFreshID(t, ids, star.ID)
			assert.Equal(t, system.Name, star.Name)
			assert.Equal(t, system.X, star.X)
			assert.Equal(t, system.Y, star.Y)
			requireAgeOrdered(t, star.Age, system.Age)
			assert.True(t, res.ValidStage(star.Type, star.Stage), "%s star in stage %s", star.Type, star.Stage)
			assert.Equal(t, tables.StarColors[star.Type], star.Color)

			starRanges := cfg.Star.Ranges(star.Type)
			assert.True(t, starRanges.Mass.Contains(star.Mass))
			assert.True(t, starRanges.Radius.Contains(star.Radius))
			assert.True(t, starRanges.Temperature.Contains(float64(star.Temperature)))
			assert.True(t, starRanges.Luminosity.Contains(star.Luminosity))

			requireCountIn(t, len(system.Planets), cfg.System.Planets)
			for j := range system.Planets {
				planet := &system.Planets[j]
				require.Equal(t, system.ID+"/planet-"+strconv.Itoa(j), planet.ID)
				requireFreshID(t, ids, planet.ID)
				assert.True(t, strings.HasPrefix(planet.Name, system.Name+" "), "planet name %q", planet.Name)
				requireAgeOrdered(t, planet.Age, system.Age)
				assert.Equal(t, tables.PlanetColors[planet.Type], planet.Color)

				planetRanges := cfg.Planet.Ranges(planet.Type)
				assert.True(t, planetRanges.Mass.Contains(planet.Mass))
				assert.True(t, planetRanges.Radius.Contains(planet.Radius))
				assert.True(t, planetRanges.Distance.Contains(planet.DistanceFromStar))
				assert.True(t, cfg.Planet.Coord.Contains(float64(planet.X)))
				assert.True(t, cfg.Planet.Coord.Contains(float64(planet.Y)))

				wantHabitable := planet.Type == universe.PlanetTypeRocky &&
					planet.Atmosphere == universe.AtmosphereTypeEarthlike &&
					star.Stage == universe.StarStageMainSequence &&
					planet.DistanceFromStar >= cfg.Planet.HabitableZone.Min*math.Sqrt(star.Luminosity) &&
					planet.DistanceFromStar <= cfg.Planet.HabitableZone.Max*math.Sqrt(star.Luminosity)
				assert.Equal(t, wantHabitable, planet.IsHabitable, "habitability for %s", planet.ID)

				requireCountIn(t, len(planet.Satellites), planetRanges.Satellites)
				for k := range planet.Satellites {
					satellite := &planet.Satellites[k]
					require.Equal(t, planet.ID+"/moon-"+strconv.Itoa(k), satellite.ID)
					requireFreshID(t, ids, satellite.ID)
					assert.Equal(t, planet.ID, satellite.PlanetID)
					assert.True(t, strings.HasPrefix(satellite.Name, planet.Name+" "))
					requireAgeOrdered(t, satellite.Age, planet.Age)
					assert.Equal(t, tables.SatelliteColors[satellite.Composition], satellite.Color)

					satRanges := cfg.Satellite.Ranges(satellite.Type)
					assert.True(t, satRanges.Mass.Contains(satellite.Mass))
					assert.True(t, satRanges.Radius.Contains(satellite.Radius))
					assert.True(t, satRanges.Distance.Contains(satellite.DistanceFromPlanet))
				}
			}
		}
	}
}

// TestBuildSystem_MatchesFullBuild rebuilds each system in isolation from
// its own seed and requires it to match the full build slot for slot.
func TestBuildSystem_MatchesFullBuild(t *testing.T) {
	gen := generator.New(nil, nil, nil)
	galaxy, err := gen.Generate(42)
	require.NoError(t, err)

	ctx := generator.SystemContext{
		GalaxyID:   galaxy.ID,
		GalaxyType: galaxy.Type,
		GalaxyAge:  galaxy.Age,
	}
	for i := range galaxy.Systems {
		rebuilt, err := gen.BuildSystem(ctx, seed.Expand(42, uint32(i), seed.DomainSystem), i)
		require.NoError(t, err)
		require.Equal(t, galaxy.Systems[i], rebuilt, "system %d did not rebuild identically", i)
	}
}

// TestBuildSystem_SunlikeStarStandalone forces the star tables to a
// single Sun-like candidate and rebuilds system 0 alone from its expanded
// seed: the star must come back main-sequence G / population I on every
// run, identical to the slot in the full build.
func TestBuildSystem_SunlikeStarStandalone(t *testing.T) {
	tables := taxonomy.Default()
	for _, gt := range universe.AllGalaxyTypes {
		tables.StarTypes[gt] = []taxonomy.Choice[universe.StarType]{
			{Value: universe.StarTypeG, Weight: 1},
		}
	}
	tables.StarCompositions[universe.StarTypeG] = []taxonomy.Choice[universe.StarComposition]{
		{Value: universe.StarCompositionPopI, Weight: 1},
	}

	cfg := config.Default()
	cfg.Galaxy.Systems = config.Range{Min: 3, Max: 3}
	// A degenerate age range pins the star mid main sequence; the clamp
	// to a younger system age stays inside the same phase.
	cfg.Star.Age = config.Range{Min: 4.6, Max: 4.6}

	gen := generator.New(cfg, tables, nil)
	galaxy, err := gen.Generate(42)
	require.NoError(t, err)
	require.Len(t, galaxy.Systems, 3)

	ctx := generator.SystemContext{
		GalaxyID:   galaxy.ID,
		GalaxyType: galaxy.Type,
		GalaxyAge:  galaxy.Age,
	}
	for run := 0; run < 3; run++ {
		rebuilt, err := gen.BuildSystem(ctx, seed.Expand(42, 0, seed.DomainSystem), 0)
		require.NoError(t, err)
		require.Equal(t, galaxy.Systems[0], rebuilt)

		star := rebuilt.Star
		assert.Equal(t, universe.StarTypeG, star.Type)
		assert.Equal(t, universe.StarStageMainSequence, star.Stage)
		assert.Equal(t, universe.StarCompositionPopI, star.Composition)
	}
}

func TestGenerate_ConfigOverrides(t *testing.T) {
	cfg := config.Default()
	cfg.Galaxy.ID = "m87"
	cfg.Galaxy.Name = "Messier 87"

	galaxy, err := generator.New(cfg, nil, nil).Generate(5)
	require.NoError(t, err)
	assert.Equal(t, "m87", galaxy.ID)
	assert.Equal(t, "Messier 87", galaxy.Name)
	assert.Equal(t, uint64(5), galaxy.Seed)
	assert.True(t, strings.HasPrefix(galaxy.Systems[0].ID, "m87/"))
}

func TestGenerate_DerivedIdentity(t *testing.T) {
	galaxy, err := generator.New(nil, nil, nil).Generate(0x2a)
	require.NoError(t, err)
	assert.Equal(t, "galaxy-000000000000002a", galaxy.ID)
	assert.NotEmpty(t, galaxy.Name)
}

func TestGenerate_ZeroSystems(t *testing.T) {
	cfg := config.Default()
	cfg.Galaxy.Systems = config.Range{Min: 0, Max: 0}

	galaxy, err := generator.New(cfg, nil, nil).Generate(9)
	require.NoError(t, err)
	require.NotNil(t, galaxy)
	assert.Empty(t, galaxy.Systems)
}

// TestGenerate_InvalidRange checks the failure contract: a nil graph and
// an error locating the galaxy-level age range.
func TestGenerate_InvalidRange(t *testing.T) {
	cfg := config.Default()
	cfg.Galaxy.Age = config.Range{Min: 14, Max: 2}

	galaxy, err := generator.New(cfg, nil, nil).Generate(7)
	require.Error(t, err)
	require.Nil(t, galaxy)
	assert.ErrorIs(t, err, generr.ErrInvalidRange)

	genErr, ok := generr.From(err)
	require.True(t, ok)
	assert.Equal(t, universe.LevelGalaxy, genErr.Level)
	assert.Equal(t, "", genErr.ParentID)
	assert.Equal(t, "age", genErr.Domain)
}

// TestGenerate_NoValidCandidate forces every planet draw into an empty
// composition table and checks the abort carries the failing subtree's
// parent system.
func TestGenerate_NoValidCandidate(t *testing.T) {
	tables := taxonomy.Default()
	for _, st := range universe.AllStarTypes {
		tables.PlanetTypes[st] = []taxonomy.Choice[universe.PlanetType]{
			{Value: universe.PlanetTypeRocky, Weight: 1},
		}
	}
	tables.PlanetCompositions[universe.PlanetTypeRocky] = nil

	cfg := config.Default()
	cfg.Galaxy.ID = "g"
	cfg.Workers = 8

	galaxy, err := generator.New(cfg, tables, nil).Generate(42)
	require.Error(t, err)
	require.Nil(t, galaxy)
	assert.ErrorIs(t, err, generr.ErrNoValidCandidate)
	assert.Contains(t, err.Error(), "failed to generate system 0")

	genErr, ok := generr.From(err)
	require.True(t, ok)
	assert.Equal(t, universe.LevelPlanet, genErr.Level)
	assert.Equal(t, "g/system-0", genErr.ParentID)
	assert.Equal(t, "classification", genErr.Domain)
}

// TestGenerate_DeterministicFailure requires concurrent runs to fail
// identically: always the lowest failing index, never a goroutine race.
func TestGenerate_DeterministicFailure(t *testing.T) {
	broken := func() *taxonomy.Tables {
		tables := taxonomy.Default()
		for _, st := range universe.AllStarTypes {
			tables.PlanetTypes[st] = []taxonomy.Choice[universe.PlanetType]{
				{Value: universe.PlanetTypeRocky, Weight: 1},
			}
		}
		tables.PlanetCompositions[universe.PlanetTypeRocky] = nil
		return tables
	}

	cfg := config.Default()
	cfg.Workers = 8

	_, first := generator.New(cfg, broken(), nil).Generate(99)
	require.Error(t, first)
	for run := 0; run < 5; run++ {
		_, again := generator.New(cfg, broken(), nil).Generate(99)
		require.Error(t, again)
		require.Equal(t, first.Error(), again.Error())
	}
}

// TestGenerate_SeedExhaustion requests more children than one seed stream
// can address.
func TestGenerate_SeedExhaustion(t *testing.T) {
	cfg := config.Default()
	cfg.Galaxy.ID = "overflow"
	cfg.Galaxy.Systems = config.Range{Min: 5e9, Max: 5e9}

	galaxy, err := generator.New(cfg, nil, nil).Generate(3)
	require.Error(t, err)
	require.Nil(t, galaxy)
	assert.ErrorIs(t, err, generr.ErrSeedExhaustion)
	assert.Equal(t, "seed_exhaustion", generr.Kind(err))

	genErr, ok := generr.From(err)
	require.True(t, ok)
	assert.Equal(t, universe.LevelSystem, genErr.Level)
	assert.Equal(t, "overflow", genErr.ParentID)
	assert.Equal(t, "system", genErr.Domain)
}

func TestNew_NilArguments(t *testing.T) {
	galaxy, err := generator.New(nil, nil, nil).Generate(1)
	require.NoError(t, err)
	require.NotNil(t, galaxy)
}

// requireAgeOrdered allows one ulp of slack: clamped ranges are closed at
// the parent's age, and Min + unit*Span can land a rounding step above it.
func requireAgeOrdered(t *testing.T, child, parent float64) {
	t.Helper()
	require.LessOrEqual(t, child, parent+1e-9)
	require.GreaterOrEqual(t, child, 0.0)
}

func requireCountIn(t *testing.T, n int, r config.Range) {
	t.Helper()
	require.GreaterOrEqual(t, float64(n), r.Min)
	require.LessOrEqual(t, float64(n), r.Max)
}

func requireFreshID(t *testing.T, ids map[string]bool, id string) {
	t.Helper()
	require.False(t, ids[id], "duplicate ID %s", id)
	ids[id] = true
}
