package taxonomy

import "universe-engine/universe"

// Default returns the built-in classification tables. The data follows the
// standard taxonomy: population III stars only form as massive O/B types,
// elliptical galaxies carry old cool populations, gas giants are rare
// around M dwarfs, and each planet composition admits only a subset of
// atmospheres. Every call returns a fresh copy safe to edit.
func Default() *Tables {
	return &Tables{
		GalaxyTypes: []Choice[universe.GalaxyType]{
			{Value: universe.GalaxyTypeSpiral, Weight: 60},
			{Value: universe.GalaxyTypeElliptical, Weight: 25},
			{Value: universe.GalaxyTypeIrregular, Weight: 15},
		},

		// Central massive black holes are near-universal in large
		// galaxies, much rarer in irregulars.
		BlackHolePresence: map[universe.GalaxyType]float64{
			universe.GalaxyTypeSpiral:     0.90,
			universe.GalaxyTypeElliptical: 0.95,
			universe.GalaxyTypeIrregular:  0.30,
		},

		StarTypes: map[universe.GalaxyType][]Choice[universe.StarType]{
			universe.GalaxyTypeSpiral: {
				{Value: universe.StarTypeO, Weight: 1},
				{Value: universe.StarTypeB, Weight: 3},
				{Value: universe.StarTypeA, Weight: 6},
				{Value: universe.StarTypeF, Weight: 10},
				{Value: universe.StarTypeG, Weight: 16},
				{Value: universe.StarTypeK, Weight: 24},
				{Value: universe.StarTypeM, Weight: 40},
			},
			// Old populations: no short-lived O/B stars left.
			universe.GalaxyTypeElliptical: {
				{Value: universe.StarTypeA, Weight: 2},
				{Value: universe.StarTypeF, Weight: 6},
				{Value: universe.StarTypeG, Weight: 12},
				{Value: universe.StarTypeK, Weight: 30},
				{Value: universe.StarTypeM, Weight: 50},
			},
			// Starburst populations skew hot and young.
			universe.GalaxyTypeIrregular: {
				{Value: universe.StarTypeO, Weight: 3},
				{Value: universe.StarTypeB, Weight: 8},
				{Value: universe.StarTypeA, Weight: 10},
				{Value: universe.StarTypeF, Weight: 14},
				{Value: universe.StarTypeG, Weight: 18},
				{Value: universe.StarTypeK, Weight: 22},
				{Value: universe.StarTypeM, Weight: 25},
			},
		},

		// Population III candidates appear only for O and B types.
		StarCompositions: map[universe.StarType][]Choice[universe.StarComposition]{
			universe.StarTypeO: {
				{Value: universe.StarCompositionPopI, Weight: 5},
				{Value: universe.StarCompositionPopII, Weight: 3},
				{Value: universe.StarCompositionPopIII, Weight: 2},
			},
			universe.StarTypeB: {
				{Value: universe.StarCompositionPopI, Weight: 6},
				{Value: universe.StarCompositionPopII, Weight: 3},
				{Value: universe.StarCompositionPopIII, Weight: 1},
			},
			universe.StarTypeA: {
				{Value: universe.StarCompositionPopI, Weight: 8},
				{Value: universe.StarCompositionPopII, Weight: 2},
			},
			universe.StarTypeF: {
				{Value: universe.StarCompositionPopI, Weight: 7},
				{Value: universe.StarCompositionPopII, Weight: 3},
			},
			universe.StarTypeG: {
				{Value: universe.StarCompositionPopI, Weight: 8},
				{Value: universe.StarCompositionPopII, Weight: 2},
			},
			universe.StarTypeK: {
				{Value: universe.StarCompositionPopI, Weight: 6},
				{Value: universe.StarCompositionPopII, Weight: 4},
			},
			universe.StarTypeM: {
				{Value: universe.StarCompositionPopI, Weight: 6},
				{Value: universe.StarCompositionPopII, Weight: 4},
			},
		},

		// Phase durations in Gyr. Zero duration skips the phase: massive
		// types have no subgiant phase, cool dwarfs collapse straight to
		// white dwarf after a main sequence longer than any configurable
		// age.
		StarLifetimes: map[universe.StarType]StarLifetime{
			universe.StarTypeO: {Formation: 0.001, MainSequence: 0.01, Giant: 0.002, Supernova: 0.0005},
			universe.StarTypeB: {Formation: 0.002, MainSequence: 0.1, Giant: 0.02, Supernova: 0.001},
			universe.StarTypeA: {Formation: 0.003, MainSequence: 1.5, Subgiant: 0.1, Giant: 0.2},
			universe.StarTypeF: {Formation: 0.005, MainSequence: 4, Subgiant: 0.5, Giant: 0.5},
			universe.StarTypeG: {Formation: 0.05, MainSequence: 10, Subgiant: 1, Giant: 1},
			universe.StarTypeK: {Formation: 0.05, MainSequence: 30, Subgiant: 2, Giant: 2},
			universe.StarTypeM: {Formation: 0.1, MainSequence: 1000},
		},

		// Supernova remnants: upper-mass O collapses to a black hole,
		// massive B leaves a neutron star.
		Remnants: map[universe.StarType][]Choice[universe.StarStage]{
			universe.StarTypeO: {
				{Value: universe.StarStageBlackHole, Weight: 7},
				{Value: universe.StarStageNeutronStar, Weight: 3},
			},
			universe.StarTypeB: {
				{Value: universe.StarStageNeutronStar, Weight: 8},
				{Value: universe.StarStageBlackHole, Weight: 2},
			},
		},

		// M dwarfs are the most magnetically active.
		FlareActivity: map[universe.StarType]float64{
			universe.StarTypeO: 0.05,
			universe.StarTypeB: 0.05,
			universe.StarTypeA: 0.05,
			universe.StarTypeF: 0.08,
			universe.StarTypeG: 0.10,
			universe.StarTypeK: 0.25,
			universe.StarTypeM: 0.45,
		},

		StarColors: map[universe.StarType]string{
			universe.StarTypeO: "blue",
			universe.StarTypeB: "blue-white",
			universe.StarTypeA: "white",
			universe.StarTypeF: "yellow-white",
			universe.StarTypeG: "yellow",
			universe.StarTypeK: "orange",
			universe.StarTypeM: "red",
		},

		// Gas giants are rare around M dwarfs; hot massive stars favor
		// scorched worlds.
		PlanetTypes: map[universe.StarType][]Choice[universe.PlanetType]{
			universe.StarTypeO: {
				{Value: universe.PlanetTypeRocky, Weight: 20},
				{Value: universe.PlanetTypeGasGiant, Weight: 10},
				{Value: universe.PlanetTypeIceGiant, Weight: 10},
				{Value: universe.PlanetTypeOcean, Weight: 2},
				{Value: universe.PlanetTypeDesert, Weight: 25},
				{Value: universe.PlanetTypeLava, Weight: 25},
				{Value: universe.PlanetTypeDwarf, Weight: 8},
			},
			universe.StarTypeB: {
				{Value: universe.PlanetTypeRocky, Weight: 22},
				{Value: universe.PlanetTypeGasGiant, Weight: 12},
				{Value: universe.PlanetTypeIceGiant, Weight: 12},
				{Value: universe.PlanetTypeOcean, Weight: 3},
				{Value: universe.PlanetTypeDesert, Weight: 22},
				{Value: universe.PlanetTypeLava, Weight: 20},
				{Value: universe.PlanetTypeDwarf, Weight: 9},
			},
			universe.StarTypeA: {
				{Value: universe.PlanetTypeRocky, Weight: 25},
				{Value: universe.PlanetTypeGasGiant, Weight: 15},
				{Value: universe.PlanetTypeIceGiant, Weight: 14},
				{Value: universe.PlanetTypeOcean, Weight: 6},
				{Value: universe.PlanetTypeDesert, Weight: 18},
				{Value: universe.PlanetTypeLava, Weight: 12},
				{Value: universe.PlanetTypeDwarf, Weight: 10},
			},
			universe.StarTypeF: {
				{Value: universe.PlanetTypeRocky, Weight: 26},
				{Value: universe.PlanetTypeGasGiant, Weight: 16},
				{Value: universe.PlanetTypeIceGiant, Weight: 15},
				{Value: universe.PlanetTypeOcean, Weight: 9},
				{Value: universe.PlanetTypeDesert, Weight: 14},
				{Value: universe.PlanetTypeLava, Weight: 8},
				{Value: universe.PlanetTypeDwarf, Weight: 12},
			},
			universe.StarTypeG: {
				{Value: universe.PlanetTypeRocky, Weight: 28},
				{Value: universe.PlanetTypeGasGiant, Weight: 15},
				{Value: universe.PlanetTypeIceGiant, Weight: 14},
				{Value: universe.PlanetTypeOcean, Weight: 10},
				{Value: universe.PlanetTypeDesert, Weight: 12},
				{Value: universe.PlanetTypeLava, Weight: 6},
				{Value: universe.PlanetTypeDwarf, Weight: 15},
			},
			universe.StarTypeK: {
				{Value: universe.PlanetTypeRocky, Weight: 32},
				{Value: universe.PlanetTypeGasGiant, Weight: 10},
				{Value: universe.PlanetTypeIceGiant, Weight: 12},
				{Value: universe.PlanetTypeOcean, Weight: 9},
				{Value: universe.PlanetTypeDesert, Weight: 12},
				{Value: universe.PlanetTypeLava, Weight: 7},
				{Value: universe.PlanetTypeDwarf, Weight: 18},
			},
			universe.StarTypeM: {
				{Value: universe.PlanetTypeRocky, Weight: 38},
				{Value: universe.PlanetTypeGasGiant, Weight: 4},
				{Value: universe.PlanetTypeIceGiant, Weight: 7},
				{Value: universe.PlanetTypeOcean, Weight: 8},
				{Value: universe.PlanetTypeDesert, Weight: 15},
				{Value: universe.PlanetTypeLava, Weight: 8},
				{Value: universe.PlanetTypeDwarf, Weight: 20},
			},
		},

		PlanetCompositions: map[universe.PlanetType][]Choice[universe.PlanetComposition]{
			universe.PlanetTypeRocky: {
				{Value: universe.PlanetCompositionRockySilicate, Weight: 6},
				{Value: universe.PlanetCompositionRockyIronRich, Weight: 3},
				{Value: universe.PlanetCompositionCarbonWorld, Weight: 1},
			},
			universe.PlanetTypeGasGiant: {
				{Value: universe.PlanetCompositionGasGiantH2He, Weight: 1},
			},
			universe.PlanetTypeIceGiant: {
				{Value: universe.PlanetCompositionIceGiantH2He, Weight: 1},
			},
			universe.PlanetTypeOcean: {
				{Value: universe.PlanetCompositionOceanWorld, Weight: 1},
			},
			universe.PlanetTypeDesert: {
				{Value: universe.PlanetCompositionDesertWorld, Weight: 1},
			},
			universe.PlanetTypeLava: {
				{Value: universe.PlanetCompositionLavaWorld, Weight: 1},
			},
			universe.PlanetTypeDwarf: {
				{Value: universe.PlanetCompositionDwarfIceRock, Weight: 1},
			},
		},

		Atmospheres: map[universe.PlanetType][]Choice[universe.AtmosphereType]{
			universe.PlanetTypeRocky: {
				{Value: universe.AtmosphereTypeNone, Weight: 3},
				{Value: universe.AtmosphereTypeThin, Weight: 3},
				{Value: universe.AtmosphereTypeEarthlike, Weight: 2},
				{Value: universe.AtmosphereTypeCO2, Weight: 2},
			},
			universe.PlanetTypeGasGiant: {
				{Value: universe.AtmosphereTypeH2He, Weight: 1},
			},
			universe.PlanetTypeIceGiant: {
				{Value: universe.AtmosphereTypeH2He, Weight: 3},
				{Value: universe.AtmosphereTypeMethane, Weight: 1},
			},
			universe.PlanetTypeOcean: {
				{Value: universe.AtmosphereTypeEarthlike, Weight: 4},
				{Value: universe.AtmosphereTypeCO2, Weight: 3},
				{Value: universe.AtmosphereTypeToxic, Weight: 3},
			},
			universe.PlanetTypeDesert: {
				{Value: universe.AtmosphereTypeThin, Weight: 3},
				{Value: universe.AtmosphereTypeCO2, Weight: 3},
				{Value: universe.AtmosphereTypeDense, Weight: 2},
				{Value: universe.AtmosphereTypeToxic, Weight: 2},
			},
			universe.PlanetTypeLava: {
				{Value: universe.AtmosphereTypeToxic, Weight: 5},
				{Value: universe.AtmosphereTypeDense, Weight: 5},
			},
			universe.PlanetTypeDwarf: {
				{Value: universe.AtmosphereTypeNone, Weight: 7},
				{Value: universe.AtmosphereTypeThin, Weight: 3},
			},
		},

		// Atmospheres a composition can hold. The atmosphere draw is
		// restricted to this set after the composition is known; iron-rich
		// worlds keep no thick envelope, giants hold only their primordial
		// envelope.
		AtmosphereCompat: map[universe.PlanetComposition][]universe.AtmosphereType{
			universe.PlanetCompositionRockySilicate: {
				universe.AtmosphereTypeNone, universe.AtmosphereTypeThin,
				universe.AtmosphereTypeEarthlike, universe.AtmosphereTypeCO2,
			},
			universe.PlanetCompositionRockyIronRich: {
				universe.AtmosphereTypeNone, universe.AtmosphereTypeThin,
			},
			universe.PlanetCompositionCarbonWorld: {
				universe.AtmosphereTypeNone, universe.AtmosphereTypeThin, universe.AtmosphereTypeCO2,
			},
			universe.PlanetCompositionOceanWorld: {
				universe.AtmosphereTypeEarthlike, universe.AtmosphereTypeCO2, universe.AtmosphereTypeToxic,
			},
			universe.PlanetCompositionGasGiantH2He: {
				universe.AtmosphereTypeH2He,
			},
			universe.PlanetCompositionIceGiantH2He: {
				universe.AtmosphereTypeH2He, universe.AtmosphereTypeMethane,
			},
			universe.PlanetCompositionLavaWorld: {
				universe.AtmosphereTypeToxic, universe.AtmosphereTypeDense,
			},
			universe.PlanetCompositionDesertWorld: {
				universe.AtmosphereTypeThin, universe.AtmosphereTypeCO2,
				universe.AtmosphereTypeDense, universe.AtmosphereTypeToxic,
			},
			universe.PlanetCompositionDwarfIceRock: {
				universe.AtmosphereTypeNone, universe.AtmosphereTypeThin,
			},
		},

		RingChance: map[universe.PlanetType]float64{
			universe.PlanetTypeRocky:    0.02,
			universe.PlanetTypeGasGiant: 0.50,
			universe.PlanetTypeIceGiant: 0.35,
			universe.PlanetTypeOcean:    0.03,
			universe.PlanetTypeDesert:   0.02,
			universe.PlanetTypeLava:     0.01,
			universe.PlanetTypeDwarf:    0.05,
		},

		PlanetColors: map[universe.PlanetType]string{
			universe.PlanetTypeRocky:    "brown",
			universe.PlanetTypeGasGiant: "beige",
			universe.PlanetTypeIceGiant: "cyan",
			universe.PlanetTypeOcean:    "blue",
			universe.PlanetTypeDesert:   "tan",
			universe.PlanetTypeLava:     "crimson",
			universe.PlanetTypeDwarf:    "pale-gray",
		},

		// Only giants hold on to irregular swarms; small worlds keep at
		// most regular or captured moons.
		SatelliteTypes: map[universe.PlanetType][]Choice[universe.SatelliteType]{
			universe.PlanetTypeRocky: {
				{Value: universe.SatelliteTypeRegular, Weight: 8},
				{Value: universe.SatelliteTypeCaptured, Weight: 2},
			},
			universe.PlanetTypeGasGiant: {
				{Value: universe.SatelliteTypeRegular, Weight: 5},
				{Value: universe.SatelliteTypeIrregular, Weight: 4},
				{Value: universe.SatelliteTypeCaptured, Weight: 1},
			},
			universe.PlanetTypeIceGiant: {
				{Value: universe.SatelliteTypeRegular, Weight: 4},
				{Value: universe.SatelliteTypeIrregular, Weight: 3},
				{Value: universe.SatelliteTypeCaptured, Weight: 3},
			},
			universe.PlanetTypeOcean: {
				{Value: universe.SatelliteTypeRegular, Weight: 7},
				{Value: universe.SatelliteTypeCaptured, Weight: 3},
			},
			universe.PlanetTypeDesert: {
				{Value: universe.SatelliteTypeRegular, Weight: 5},
				{Value: universe.SatelliteTypeCaptured, Weight: 5},
			},
			universe.PlanetTypeLava: {
				{Value: universe.SatelliteTypeRegular, Weight: 6},
				{Value: universe.SatelliteTypeCaptured, Weight: 4},
			},
			universe.PlanetTypeDwarf: {
				{Value: universe.SatelliteTypeRegular, Weight: 6},
				{Value: universe.SatelliteTypeCaptured, Weight: 4},
			},
		},

		SatelliteCompositions: map[universe.SatelliteType][]Choice[universe.SatelliteComposition]{
			universe.SatelliteTypeRegular: {
				{Value: universe.SatelliteCompositionRockySilicate, Weight: 4},
				{Value: universe.SatelliteCompositionMixedIceRock, Weight: 4},
				{Value: universe.SatelliteCompositionIceRich, Weight: 2},
			},
			universe.SatelliteTypeIrregular: {
				{Value: universe.SatelliteCompositionIceRich, Weight: 4},
				{Value: universe.SatelliteCompositionMixedIceRock, Weight: 3},
				{Value: universe.SatelliteCompositionRubblePile, Weight: 3},
			},
			universe.SatelliteTypeCaptured: {
				{Value: universe.SatelliteCompositionMetallicFragment, Weight: 3},
				{Value: universe.SatelliteCompositionRubblePile, Weight: 4},
				{Value: universe.SatelliteCompositionIceRich, Weight: 3},
			},
		},

		SatelliteColors: map[universe.SatelliteComposition]string{
			universe.SatelliteCompositionRockySilicate:    "gray",
			universe.SatelliteCompositionIceRich:          "white",
			universe.SatelliteCompositionMixedIceRock:     "light-gray",
			universe.SatelliteCompositionMetallicFragment: "dark-gray",
			universe.SatelliteCompositionRubblePile:       "charcoal",
		},
	}
}
