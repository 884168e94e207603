package resolver

import (
	"universe-engine/generr"
	"universe-engine/taxonomy"
	"universe-engine/universe"
)

// stagePhase is one segment of an evolutionary path.
type stagePhase struct {
	stage    universe.StarStage
	duration float64
}

// phasesOf expands lifetime data into the ordered path segments. Zero or
// negative durations drop the phase, which is how the data encodes the
// different paths: massive types carry no subgiant phase, cool dwarfs
// carry neither subgiant nor giant, and only massive types have a
// supernova window.
func phasesOf(life taxonomy.StarLifetime) []stagePhase {
	return []stagePhase{
		{universe.StarStageProtostar, life.Formation},
		{universe.StarStageMainSequence, life.MainSequence},
		{universe.StarStageSubgiant, life.Subgiant},
		{universe.StarStageGiant, life.Giant},
		{universe.StarStageSupernova, life.Supernova},
	}
}

// Stage advances a star of the given spectral type through its
// evolutionary path to the stage its age falls in. Ages beyond the end of
// the path resolve to the terminal remnant: a weighted draw between
// neutron star and black hole for types with a remnant table, a white
// dwarf otherwise. Terminal stages are absorbing; there is nothing to
// advance past them.
func (r *Resolver) Stage(starType universe.StarType, age float64, remnantSeed uint64) (universe.StarStage, error) {
	life, ok := r.tables.StarLifetimes[starType]
	if !ok {
		return "", generr.NoValidCandidatef("no lifetime data for star type %s", starType)
	}

	elapsed := age
	for _, phase := range phasesOf(life) {
		if phase.duration <= 0 {
			continue
		}
		if elapsed < phase.duration {
			return phase.stage, nil
		}
		elapsed -= phase.duration
	}

	return r.remnant(starType, remnantSeed)
}

func (r *Resolver) remnant(starType universe.StarType, remnantSeed uint64) (universe.StarStage, error) {
	if choices, ok := r.tables.Remnants[starType]; ok && len(choices) > 0 {
		return taxonomy.Pick(remnantSeed, choices)
	}
	return universe.StarStageWhiteDwarf, nil
}

// StagePath returns every stage a star of the given type can occupy, in
// evolutionary order, ending with its possible terminal stages.
func (r *Resolver) StagePath(starType universe.StarType) []universe.StarStage {
	life, ok := r.tables.StarLifetimes[starType]
	if !ok {
		return nil
	}

	var path []universe.StarStage
	for _, phase := range phasesOf(life) {
		if phase.duration > 0 {
			path = append(path, phase.stage)
		}
	}
	if choices, ok := r.tables.Remnants[starType]; ok && len(choices) > 0 {
		for _, choice := range choices {
			if choice.Weight > 0 {
				path = append(path, choice.Value)
			}
		}
	} else {
		path = append(path, universe.StarStageWhiteDwarf)
	}
	return path
}

// ValidStage reports whether a (type, stage) pairing lies on the type's
// evolutionary path.
func (r *Resolver) ValidStage(starType universe.StarType, stage universe.StarStage) bool {
	for _, s := range r.StagePath(starType) {
		if s == stage {
			return true
		}
	}
	return false
}
