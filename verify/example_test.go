package verify_test

import (
	"fmt"

	"github.com/katalvlaran/parigo/graph"
	"github.com/katalvlaran/parigo/parity"
	"github.com/katalvlaran/parigo/recursive"
	"github.com/katalvlaran/parigo/verify"
)

// ExampleStrategy checks a solver's output independently of the solver that
// produced it, then shows a fabricated strategy getting rejected.
func ExampleStrategy() {
	// 1) The same two-vertex cycle as recursive's example: Even wins both
	//    vertices.
	g, err := graph.New(2, []graph.Edge{{From: 0, To: 1}, {From: 1, To: 0}}, graph.Bidirectional)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	pg, err := parity.New(g, []parity.VertexLabel{
		{Player: parity.Even, Priority: 2},
		{Player: parity.Odd, Priority: 1},
	}, 3)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 2) Solve, then verify the genuine result.
	strat, ok := recursive.SolveGame(pg)
	if !ok {
		fmt.Println("solver aborted")
		return
	}
	valid, _ := verify.Strategy(pg, strat)
	fmt.Println("genuine strategy valid:", valid)

	// 3) Swap the moves: vertex 0 now carries no recorded move and vertex 1
	//    carries one, which reverses both claimed winners even though the
	//    cycle's own dominant priority never changes.
	fabricated := parity.Strategy{graph.NoVertex, 0}
	valid, violation := verify.Strategy(pg, fabricated)
	fmt.Println("fabricated strategy valid:", valid, "violation found:", violation != nil)
	// Output:
	// genuine strategy valid: true
	// fabricated strategy valid: false violation found: true
}
