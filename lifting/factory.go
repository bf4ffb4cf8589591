package lifting

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/parigo/spm"
)

// ErrInvalidStrategyDescriptor is returned by Parse when a descriptor string
// names an unknown strategy, or supplies arguments that strategy rejects.
var ErrInvalidStrategyDescriptor = fmt.Errorf("lifting: invalid strategy descriptor")

// Generation distinguishes which spm driver a descriptor's strategy needs:
// spm.Solve/Alternating (v1, pull) or spm.SolveV2Based (v2, push/pop).
type Generation int

const (
	V1 Generation = iota
	V2
)

// Descriptor is the result of parsing a strategy specifier (§6): which
// generation it needs, and a constructor bound to a concrete engine.
type Descriptor struct {
	Generation Generation
	NewV1      func(e *spm.Engine) spm.StrategyV1
	NewV2      func(e *spm.Engine) spm.StrategyV2
}

// Parse parses a descriptor of the form name[:arg1[:arg2[...]]] (§6),
// case-insensitive on the name, into a Descriptor. Recognized names:
//
//	linear[:alternate]       alternate (bool, default false)
//	predecessor|pred[:stack] stack (bool, default false: FIFO)
//	focuslist|focus          no arguments
//	linpred                  no arguments
//	maxmeasure|oldmaxmeasure no arguments
//	minmeasure               no arguments
//	maxstep                  no arguments
func Parse(s string) (Descriptor, error) {
	parts := strings.Split(s, ":")
	name := strings.ToLower(strings.TrimSpace(parts[0]))
	args := parts[1:]
	if name == "" {
		return Descriptor{}, fmt.Errorf("%w: empty strategy name", ErrInvalidStrategyDescriptor)
	}

	switch name {
	case "linear":
		alt, err := boolArg(args, 0, false)
		if err != nil {
			return Descriptor{}, err
		}
		return Descriptor{NewV1: func(e *spm.Engine) spm.StrategyV1 {
			return NewLinear(e.Game().V(), alt)
		}}, nil

	case "predecessor", "pred":
		stack, err := boolArg(args, 0, false)
		if err != nil {
			return Descriptor{}, err
		}
		return Descriptor{NewV1: func(e *spm.Engine) spm.StrategyV1 {
			return NewPredecessor(e.Game().V(), stack)
		}}, nil

	case "focuslist", "focus":
		if err := noArgs(name, args); err != nil {
			return Descriptor{}, err
		}
		return Descriptor{NewV1: func(e *spm.Engine) spm.StrategyV1 {
			return NewFocusList(e.Game().V())
		}}, nil

	case "linpred":
		if err := noArgs(name, args); err != nil {
			return Descriptor{}, err
		}
		return Descriptor{NewV1: func(e *spm.Engine) spm.StrategyV1 {
			return NewLinPred(e.Game().V())
		}}, nil

	case "maxmeasure", "oldmaxmeasure":
		if err := noArgs(name, args); err != nil {
			return Descriptor{}, err
		}
		return Descriptor{Generation: V2, NewV2: func(e *spm.Engine) spm.StrategyV2 {
			return NewMaxMeasure(e)
		}}, nil

	case "minmeasure":
		if err := noArgs(name, args); err != nil {
			return Descriptor{}, err
		}
		return Descriptor{Generation: V2, NewV2: func(e *spm.Engine) spm.StrategyV2 {
			return NewMinMeasure(e)
		}}, nil

	case "maxstep":
		if err := noArgs(name, args); err != nil {
			return Descriptor{}, err
		}
		return Descriptor{Generation: V2, NewV2: func(e *spm.Engine) spm.StrategyV2 {
			return NewMaxStep(e)
		}}, nil

	default:
		return Descriptor{}, fmt.Errorf("%w: unknown strategy %q", ErrInvalidStrategyDescriptor, name)
	}
}

func noArgs(name string, args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("%w: %s takes no arguments", ErrInvalidStrategyDescriptor, name)
	}
	return nil
}

func boolArg(args []string, i int, def bool) (bool, error) {
	if i >= len(args) || args[i] == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(args[i])
	if err != nil {
		return false, fmt.Errorf("%w: argument %d: %v", ErrInvalidStrategyDescriptor, i+1, err)
	}
	return b, nil
}
