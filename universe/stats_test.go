package universe_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"universe-engine/universe"
)

func smallGalaxy() *universe.Galaxy {
	return &universe.Galaxy{
		ID: "g",
		Systems: []universe.SolarSystem{
			{
				ID:   "g/system-0",
				Star: universe.Star{Type: universe.StarTypeG, Stage: universe.StarStageMainSequence},
				Planets: []universe.Planet{
					{
						Type:        universe.PlanetTypeRocky,
						IsHabitable: true,
						Satellites:  []universe.Satellite{{}, {}},
					},
					{Type: universe.PlanetTypeGasGiant, HasRings: true},
				},
			},
			{
				ID:   "g/system-1",
				Star: universe.Star{Type: universe.StarTypeM, Stage: universe.StarStageMainSequence},
				Planets: []universe.Planet{
					{Type: universe.PlanetTypeRocky},
				},
			},
		},
	}
}

func TestComputeStats(t *testing.T) {
	stats := universe.ComputeStats(smallGalaxy())

	assert.Equal(t, 2, stats.SystemCount)
	assert.Equal(t, 3, stats.PlanetCount)
	assert.Equal(t, 2, stats.SatelliteCount)
	assert.Equal(t, 1, stats.HabitablePlanets)
	assert.Equal(t, 1, stats.RingedPlanets)
	assert.Equal(t, 2, stats.PlanetsByType[universe.PlanetTypeRocky])
	assert.Equal(t, 1, stats.PlanetsByType[universe.PlanetTypeGasGiant])
	assert.Equal(t, 1, stats.StarsByType[universe.StarTypeG])
	assert.Equal(t, 2, stats.StarsByStage[universe.StarStageMainSequence])
	assert.InDelta(t, 1.5, stats.AvgPlanetsPerSystem, 1e-12)
}

func TestComputeStats_Nil(t *testing.T) {
	stats := universe.ComputeStats(nil)
	assert.Equal(t, 0, stats.SystemCount)
	assert.Equal(t, 0.0, stats.AvgPlanetsPerSystem)
	assert.NotNil(t, stats.PlanetsByType)
}

func TestComputeStats_Empty(t *testing.T) {
	stats := universe.ComputeStats(&universe.Galaxy{ID: "empty"})
	assert.Equal(t, 0, stats.SystemCount)
	assert.Equal(t, 0.0, stats.AvgPlanetsPerSystem)
}

// TestCelestial verifies the shared-body accessor across the three body
// kinds that implement it.
func TestCelestial(t *testing.T) {
	star := &universe.Star{Body: universe.Body{ID: "s"}}
	planet := &universe.Planet{Body: universe.Body{ID: "p"}}
	satellite := &universe.Satellite{Body: universe.Body{ID: "m"}}

	bodies := []universe.Celestial{star, planet, satellite}
	wantIDs := []string{"s", "p", "m"}
	wantLevels := []universe.Level{universe.LevelStar, universe.LevelPlanet, universe.LevelSatellite}

	for i, c := range bodies {
		assert.Equal(t, wantIDs[i], c.Physical().ID)
		assert.Equal(t, wantLevels[i], c.Level())
	}

	// Physical returns the embedded body itself, not a copy.
	star.Physical().Name = "Sol"
	assert.Equal(t, "Sol", star.Name)
}

func TestLevelDepths(t *testing.T) {
	assert.Equal(t, 1, universe.LevelDepths[universe.LevelGalaxy])
	assert.Equal(t, 2, universe.LevelDepths[universe.LevelSystem])
	assert.Equal(t, 3, universe.LevelDepths[universe.LevelStar])
	assert.Equal(t, 3, universe.LevelDepths[universe.LevelPlanet])
	assert.Equal(t, 4, universe.LevelDepths[universe.LevelSatellite])
}
