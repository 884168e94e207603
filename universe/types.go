package universe

// GalaxyType is the structural classification of a galaxy.
type GalaxyType string

const (
	GalaxyTypeSpiral     GalaxyType = "spiral"
	GalaxyTypeElliptical GalaxyType = "elliptical"
	GalaxyTypeIrregular  GalaxyType = "irregular"
)

// StarType is the Harvard spectral classification, hottest to coolest.
type StarType string

const (
	StarTypeO StarType = "O"
	StarTypeB StarType = "B"
	StarTypeA StarType = "A"
	StarTypeF StarType = "F"
	StarTypeG StarType = "G"
	StarTypeK StarType = "K"
	StarTypeM StarType = "M"
)

// StarStage is an evolutionary stage in a star's lifecycle. Which stages a
// star passes through depends on its spectral type; white_dwarf,
// neutron_star and black_hole are terminal.
type StarStage string

const (
	StarStageProtostar    StarStage = "protostar"
	StarStageMainSequence StarStage = "main_sequence"
	StarStageSubgiant     StarStage = "subgiant"
	StarStageGiant        StarStage = "giant"
	StarStageSupernova    StarStage = "supernova"
	StarStageWhiteDwarf   StarStage = "white_dwarf"
	StarStageNeutronStar  StarStage = "neutron_star"
	StarStageBlackHole    StarStage = "black_hole"
)

// StarComposition is the stellar population category (metallicity).
// pop_iii stars only occur as massive O/B types.
type StarComposition string

const (
	StarCompositionPopI   StarComposition = "pop_i"
	StarCompositionPopII  StarComposition = "pop_ii"
	StarCompositionPopIII StarComposition = "pop_iii"
)

// PlanetType is the broad physical category of a planet.
type PlanetType string

const (
	PlanetTypeRocky    PlanetType = "rocky"
	PlanetTypeGasGiant PlanetType = "gas_giant"
	PlanetTypeIceGiant PlanetType = "ice_giant"
	PlanetTypeOcean    PlanetType = "ocean"
	PlanetTypeDesert   PlanetType = "desert"
	PlanetTypeLava     PlanetType = "lava"
	PlanetTypeDwarf    PlanetType = "dwarf"
)

// PlanetComposition is the detailed bulk-material makeup of a planet,
// finer-grained than PlanetType.
type PlanetComposition string

const (
	PlanetCompositionRockySilicate PlanetComposition = "rocky_silicate"
	PlanetCompositionRockyIronRich PlanetComposition = "rocky_iron_rich"
	PlanetCompositionCarbonWorld   PlanetComposition = "carbon_world"
	PlanetCompositionOceanWorld    PlanetComposition = "ocean_world"
	PlanetCompositionGasGiantH2He  PlanetComposition = "gas_giant_h2_he"
	PlanetCompositionIceGiantH2He  PlanetComposition = "ice_giant_h2_he_ch4"
	PlanetCompositionLavaWorld     PlanetComposition = "lava_world"
	PlanetCompositionDesertWorld   PlanetComposition = "desert_world"
	PlanetCompositionDwarfIceRock  PlanetComposition = "dwarf_ice_rock"
)

// AtmosphereType classifies an atmosphere by bulk density and chemistry.
type AtmosphereType string

const (
	AtmosphereTypeNone      AtmosphereType = "none"
	AtmosphereTypeThin      AtmosphereType = "thin"
	AtmosphereTypeEarthlike AtmosphereType = "earthlike"
	AtmosphereTypeDense     AtmosphereType = "dense"
	AtmosphereTypeToxic     AtmosphereType = "toxic"
	AtmosphereTypeCO2       AtmosphereType = "co2"
	AtmosphereTypeMethane   AtmosphereType = "methane"
	AtmosphereTypeH2He      AtmosphereType = "h2_he"
)

// SatelliteType classifies a moon by its origin and orbit.
type SatelliteType string

const (
	SatelliteTypeRegular   SatelliteType = "regular"
	SatelliteTypeIrregular SatelliteType = "irregular"
	SatelliteTypeCaptured  SatelliteType = "captured"
)

// SatelliteComposition is the bulk-material makeup of a moon.
type SatelliteComposition string

const (
	SatelliteCompositionRockySilicate    SatelliteComposition = "rocky_silicate"
	SatelliteCompositionIceRich          SatelliteComposition = "ice_rich"
	SatelliteCompositionMixedIceRock     SatelliteComposition = "mixed_ice_rock"
	SatelliteCompositionMetallicFragment SatelliteComposition = "metallic_fragment"
	SatelliteCompositionRubblePile       SatelliteComposition = "rubble_pile"
)

// Level identifies a tier of the containment hierarchy. Used for error
// context and stats; star and planet share a depth since both sit directly
// under a solar system.
type Level string

const (
	LevelGalaxy    Level = "galaxy"
	LevelSystem    Level = "system"
	LevelStar      Level = "star"
	LevelPlanet    Level = "planet"
	LevelSatellite Level = "satellite"
)

var LevelDepths = map[Level]int{
	LevelGalaxy:    1,
	LevelSystem:    2,
	LevelStar:      3,
	LevelPlanet:    3,
	LevelSatellite: 4,
}

// Declaration-order listings of every enum value. Taxonomy defaults,
// validation and tests iterate these instead of maps so traversal order is
// fixed.
var (
	AllGalaxyTypes = []GalaxyType{GalaxyTypeSpiral, GalaxyTypeElliptical, GalaxyTypeIrregular}

	AllStarTypes = []StarType{StarTypeO, StarTypeB, StarTypeA, StarTypeF, StarTypeG, StarTypeK, StarTypeM}

	AllStarStages = []StarStage{
		StarStageProtostar, StarStageMainSequence, StarStageSubgiant, StarStageGiant,
		StarStageSupernova, StarStageWhiteDwarf, StarStageNeutronStar, StarStageBlackHole,
	}

	AllStarCompositions = []StarComposition{StarCompositionPopI, StarCompositionPopII, StarCompositionPopIII}

	AllPlanetTypes = []PlanetType{
		PlanetTypeRocky, PlanetTypeGasGiant, PlanetTypeIceGiant, PlanetTypeOcean,
		PlanetTypeDesert, PlanetTypeLava, PlanetTypeDwarf,
	}

	AllPlanetCompositions = []PlanetComposition{
		PlanetCompositionRockySilicate, PlanetCompositionRockyIronRich, PlanetCompositionCarbonWorld,
		PlanetCompositionOceanWorld, PlanetCompositionGasGiantH2He, PlanetCompositionIceGiantH2He,
		PlanetCompositionLavaWorld, PlanetCompositionDesertWorld, PlanetCompositionDwarfIceRock,
	}

	AllAtmosphereTypes = []AtmosphereType{
		AtmosphereTypeNone, AtmosphereTypeThin, AtmosphereTypeEarthlike, AtmosphereTypeDense,
		AtmosphereTypeToxic, AtmosphereTypeCO2, AtmosphereTypeMethane, AtmosphereTypeH2He,
	}

	AllSatelliteTypes = []SatelliteType{SatelliteTypeRegular, SatelliteTypeIrregular, SatelliteTypeCaptured}

	AllSatelliteCompositions = []SatelliteComposition{
		SatelliteCompositionRockySilicate, SatelliteCompositionIceRich, SatelliteCompositionMixedIceRock,
		SatelliteCompositionMetallicFragment, SatelliteCompositionRubblePile,
	}
)
