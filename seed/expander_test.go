package seed_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"universe-engine/seed"
)

var allDomains = []seed.Domain{
	seed.DomainSystem, seed.DomainStar, seed.DomainPlanet, seed.DomainSatellite,
	seed.DomainName, seed.DomainType, seed.DomainComposition, seed.DomainAtmosphere,
	seed.DomainStage, seed.DomainAge, seed.DomainMass, seed.DomainRadius,
	seed.DomainCoordX, seed.DomainCoordY, seed.DomainLuminosity, seed.DomainTemperature,
	seed.DomainDistance, seed.DomainCount, seed.DomainBrightness, seed.DomainFlare,
	seed.DomainRings, seed.DomainBlackHole,
}

// TestExpand_Deterministic verifies that expansion is a pure function of
// its inputs.
func TestExpand_Deterministic(t *testing.T) {
	for _, parent := range []uint64{0, 1, 42, 1<<64 - 1} {
		for _, index := range []uint32{0, 1, 7, 1<<32 - 1} {
			for _, domain := range allDomains {
				first := seed.Expand(parent, index, domain)
				second := seed.Expand(parent, index, domain)
				require.Equal(t, first, second,
					"Expand(%d, %d, %s) not stable", parent, index, domain)
			}
		}
	}
}

// TestExpand_NoSiblingCollisions sweeps a grid of (index, domain) pairs
// under fixed parents and requires every derived seed to be distinct.
func TestExpand_NoSiblingCollisions(t *testing.T) {
	for _, parent := range []uint64{0, 42, 0xdeadbeefcafef00d, 1<<64 - 1} {
		seen := make(map[uint64]struct{})
		for index := uint32(0); index < 256; index++ {
			for _, domain := range allDomains {
				child := seed.Expand(parent, index, domain)
				_, dup := seen[child]
				require.False(t, dup,
					"collision under parent %d at index %d domain %s", parent, index, domain)
				seen[child] = struct{}{}
			}
		}
	}
}

// TestExpand_ParentSensitivity verifies that distinct parents yield
// distinct children for the same (index, domain) stream.
func TestExpand_ParentSensitivity(t *testing.T) {
	seen := make(map[uint64]struct{})
	for parent := uint64(0); parent < 4096; parent++ {
		child := seed.Expand(parent, 3, seed.DomainPlanet)
		_, dup := seen[child]
		require.False(t, dup, "two parents map to the same child seed")
		seen[child] = struct{}{}
	}
}

// TestExpand_DomainsDecorrelated checks that the same (parent, index)
// under different domains never produces the same stream.
func TestExpand_DomainsDecorrelated(t *testing.T) {
	const parent = 0x9e3779b97f4a7c15
	values := make(map[uint64]seed.Domain)
	for _, domain := range allDomains {
		v := seed.Expand(parent, 0, domain)
		if prev, ok := values[v]; ok {
			t.Fatalf("domains %s and %s collide at value %d", prev, domain, v)
		}
		values[v] = domain
	}
}

// TestExpand_HighIndexStaysAddressable exercises the top of the index
// space, the boundary the fan-out limit protects.
func TestExpand_HighIndexStaysAddressable(t *testing.T) {
	top := seed.Expand(7, uint32(seed.MaxFanout), seed.DomainSatellite)
	next := seed.Expand(7, uint32(seed.MaxFanout-1), seed.DomainSatellite)
	assert.NotEqual(t, top, next)
}

func TestDomain_String(t *testing.T) {
	assert.Equal(t, "system", seed.DomainSystem.String())
	assert.Equal(t, "coord_x", seed.DomainCoordX.String())
	assert.Equal(t, "black_hole", seed.DomainBlackHole.String())
	assert.Equal(t, "domain(999)", seed.Domain(999).String())
}
