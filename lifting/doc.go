// Package lifting provides the concrete vertex-selection strategies that
// drive an spm.Engine's Lift calls to a fixpoint (§4.4), plus a factory that
// builds one from a textual descriptor (§6): name[:arg1[:arg2[...]]].
//
// Strategies come in two generations, matching spm.StrategyV1 and
// spm.StrategyV2: pull-style (the engine asks "what next?") and
// push/pop-style (the engine pushes predecessors of a changed vertex onto
// the strategy's own queue). Linear, Predecessor, FocusList and LinPred are
// v1; the heap-ordered measure strategies are v2, since a reordering
// priority queue is naturally driven by push/pop/bump rather than by being
// asked in a fixed order.
package lifting
