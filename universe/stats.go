package universe

// Stats summarizes a generated galaxy.
type Stats struct {
	SystemCount         int                `json:"system_count"`
	PlanetCount         int                `json:"planet_count"`
	SatelliteCount      int                `json:"satellite_count"`
	HabitablePlanets    int                `json:"habitable_planets"`
	RingedPlanets       int                `json:"ringed_planets"`
	PlanetsByType       map[PlanetType]int `json:"planets_by_type"`
	StarsByType         map[StarType]int   `json:"stars_by_type"`
	StarsByStage        map[StarStage]int  `json:"stars_by_stage"`
	AvgPlanetsPerSystem float64            `json:"avg_planets_per_system"`
}

// ComputeStats walks a generated galaxy and aggregates counts.
func ComputeStats(g *Galaxy) Stats {
	stats := Stats{
		PlanetsByType: make(map[PlanetType]int),
		StarsByType:   make(map[StarType]int),
		StarsByStage:  make(map[StarStage]int),
	}
	if g == nil {
		return stats
	}

	stats.SystemCount = len(g.Systems)
	for i := range g.Systems {
		system := &g.Systems[i]
		stats.StarsByType[system.Star.Type]++
		stats.StarsByStage[system.Star.Stage]++

		stats.PlanetCount += len(system.Planets)
		for j := range system.Planets {
			planet := &system.Planets[j]
			stats.PlanetsByType[planet.Type]++
			stats.SatelliteCount += len(planet.Satellites)
			if planet.IsHabitable {
				stats.HabitablePlanets++
			}
			if planet.HasRings {
				stats.RingedPlanets++
			}
		}
	}

	if stats.SystemCount > 0 {
		stats.AvgPlanetsPerSystem = float64(stats.PlanetCount) / float64(stats.SystemCount)
	}
	return stats
}
