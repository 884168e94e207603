// Package seed derives child and attribute seeds from a parent seed.
//
// Every entity seed and every attribute draw gets its own sub-stream, so
// regenerating one subtree never consumes randomness belonging to another
// and unrelated attributes never correlate.
//
// Goals:
//   - Determinism: same inputs produce the same output on every platform.
//   - Independence: expansion is pure; there is no shared RNG state.
//   - No collisions: for a fixed parent, distinct (index, domain) pairs
//     always yield distinct child seeds.
package seed

import "fmt"

// Domain tags the purpose of a derived sub-stream. Two expansions of the
// same parent with different domains are decorrelated even at equal indexes.
type Domain uint32

const (
	// Child entity streams.
	DomainSystem Domain = iota + 1
	DomainStar
	DomainPlanet
	DomainSatellite

	// Attribute streams.
	DomainName
	DomainType
	DomainComposition
	DomainAtmosphere
	DomainStage
	DomainAge
	DomainMass
	DomainRadius
	DomainCoordX
	DomainCoordY
	DomainLuminosity
	DomainTemperature
	DomainDistance
	DomainCount
	DomainBrightness
	DomainFlare
	DomainRings
	DomainBlackHole
)

func (d Domain) String() string {
	switch d {
	case DomainSystem:
		return "system"
	case DomainStar:
		return "star"
	case DomainPlanet:
		return "planet"
	case DomainSatellite:
		return "satellite"
	case DomainName:
		return "name"
	case DomainType:
		return "type"
	case DomainComposition:
		return "composition"
	case DomainAtmosphere:
		return "atmosphere"
	case DomainStage:
		return "stage"
	case DomainAge:
		return "age"
	case DomainMass:
		return "mass"
	case DomainRadius:
		return "radius"
	case DomainCoordX:
		return "coord_x"
	case DomainCoordY:
		return "coord_y"
	case DomainLuminosity:
		return "luminosity"
	case DomainTemperature:
		return "temperature"
	case DomainDistance:
		return "distance"
	case DomainCount:
		return "count"
	case DomainBrightness:
		return "brightness"
	case DomainFlare:
		return "flare"
	case DomainRings:
		return "rings"
	case DomainBlackHole:
		return "black_hole"
	}
	return fmt.Sprintf("domain(%d)", uint32(d))
}

// MaxFanout is the largest child index addressable under one (parent, domain)
// stream. Requesting more children than this is a seed exhaustion failure.
const MaxFanout uint64 = 1<<32 - 1

// Expand derives the seed for child index within the given domain of parent.
//
// The (domain, index) pair is packed into a single stream word and pushed
// through an avalanche mix built from the canonical SplitMix64 constants.
// Every step is a bijection on 64-bit words, so for a fixed parent the map
// from (index, domain) to output is injective: sibling streams cannot
// collide. Small input changes produce large, well-distributed output
// changes, which keeps neighbouring indexes and adjacent domains
// statistically independent.
//
// Complexity: O(1).
func Expand(parent uint64, index uint32, domain Domain) uint64 {
	stream := uint64(domain)<<32 | uint64(index)

	x := parent ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
