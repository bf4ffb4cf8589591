package solverapi

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/parigo/lifting"
	"github.com/katalvlaran/parigo/parity"
	"github.com/katalvlaran/parigo/stats"
)

// ErrUnknownBackend is returned by New when a descriptor names a backend
// other than "recursive" or "spm".
var ErrUnknownBackend = fmt.Errorf("solverapi: unknown backend")

// Parse parses a full solver descriptor into a Factory (§9): either the
// literal "recursive", or "spm:" followed by a lifting strategy descriptor
// in §6's grammar (e.g. "spm:maxmeasure" or "spm:predecessor:true").
func Parse(descriptor string) (Factory, error) {
	name, rest, _ := strings.Cut(descriptor, ":")
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "recursive":
		return RecursiveFactory{}, nil
	case "spm":
		d, err := lifting.Parse(rest)
		if err != nil {
			return nil, err
		}
		return SPMFactory{Descriptor: d}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, descriptor)
	}
}

// New parses descriptor and returns the fully composed Solver
// (§9: SCC(Decycle(Deloop(base)))), ready to solve game, along with the
// LiftingStatistics it reports into (unused and zero-sized for the
// "recursive" backend).
func New(descriptor string, game *parity.Game) (Solver, *stats.LiftingStatistics, error) {
	f, err := Parse(descriptor)
	if err != nil {
		return nil, nil, err
	}
	base, st := f.Create(game.V())
	return Chain(base), st, nil
}
