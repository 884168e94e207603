package generr_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"universe-engine/generr"
	"universe-engine/universe"
)

func TestWrap_Nil(t *testing.T) {
	assert.NoError(t, generr.Wrap(nil, universe.LevelStar, "sys", "mass"))
}

// TestWrap_KeepsSentinelsMatchable verifies errors.Is reaches the
// sentinel through the context wrapper and further fmt.Errorf layers, the
// shape errors take as they bubble out of a nested build.
func TestWrap_KeepsSentinelsMatchable(t *testing.T) {
	origin := generr.NoValidCandidatef("candidate set is empty")
	wrapped := generr.Wrap(origin, universe.LevelPlanet, "g/system-3", "classification")
	chained := fmt.Errorf("failed to generate planet 2: %w", wrapped)
	outer := fmt.Errorf("failed to generate system 3: %w", chained)

	assert.ErrorIs(t, outer, generr.ErrNoValidCandidate)
	assert.NotErrorIs(t, outer, generr.ErrInvalidRange)
}

// TestFrom_ExtractsContext checks the typed context survives the chain
// and carries the origin's level, parent and domain.
func TestFrom_ExtractsContext(t *testing.T) {
	origin := generr.InvalidRangef("sample range min 5 greater than max 2")
	wrapped := generr.Wrap(origin, universe.LevelSatellite, "g/system-0/planet-1", "mass")
	outer := fmt.Errorf("failed to generate satellite 0: %w", wrapped)

	genErr, ok := generr.From(outer)
	require.True(t, ok)
	assert.Equal(t, universe.LevelSatellite, genErr.Level)
	assert.Equal(t, "g/system-0/planet-1", genErr.ParentID)
	assert.Equal(t, "mass", genErr.Domain)
	assert.ErrorIs(t, genErr.Err, generr.ErrInvalidRange)
}

func TestFrom_NoContext(t *testing.T) {
	_, ok := generr.From(errors.New("plain"))
	assert.False(t, ok)
	_, ok = generr.From(nil)
	assert.False(t, ok)
}

func TestError_Message(t *testing.T) {
	full := generr.Wrap(errors.New("boom"), universe.LevelStar, "g/system-7", "luminosity")
	assert.Equal(t, "generate star under g/system-7 [luminosity]: boom", full.Error())

	// Root-level failures have no parent to name.
	rootless := generr.Wrap(errors.New("boom"), universe.LevelGalaxy, "", "age")
	assert.Equal(t, "generate galaxy [age]: boom", rootless.Error())

	bare := generr.Wrap(errors.New("boom"), universe.LevelGalaxy, "", "")
	assert.Equal(t, "generate galaxy: boom", bare.Error())
}

func TestKind(t *testing.T) {
	assert.Equal(t, "invalid_range", generr.Kind(generr.InvalidRangef("x")))
	assert.Equal(t, "no_valid_candidate", generr.Kind(generr.NoValidCandidatef("x")))
	assert.Equal(t, "seed_exhaustion", generr.Kind(generr.SeedExhaustionf("x")))
	assert.Equal(t, "", generr.Kind(errors.New("other")))
	assert.Equal(t, "", generr.Kind(nil))

	wrapped := generr.Wrap(generr.SeedExhaustionf("too many"), universe.LevelSystem, "g", "system")
	assert.Equal(t, "seed_exhaustion", generr.Kind(wrapped))
}
