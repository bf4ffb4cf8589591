package pgio_test

import (
	"bytes"
	"fmt"

	"github.com/katalvlaran/parigo/graph"
	"github.com/katalvlaran/parigo/parity"
	"github.com/katalvlaran/parigo/pgio"
)

// ExampleWriteGame round-trips a game through the raw binary format and
// confirms the decoded copy has the same shape as the original.
func ExampleWriteGame() {
	// 1) A three-vertex cycle, priorities 0/1/2.
	g, err := graph.New(3, []graph.Edge{{From: 0, To: 1}, {From: 1, To: 2}, {From: 2, To: 0}}, graph.Bidirectional)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	pg, err := parity.New(g, []parity.VertexLabel{
		{Player: parity.Even, Priority: 2},
		{Player: parity.Odd, Priority: 1},
		{Player: parity.Even, Priority: 0},
	}, 3)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 2) Encode into a buffer and decode it back.
	var buf bytes.Buffer
	if err := pgio.WriteGame(&buf, pg); err != nil {
		fmt.Println("error:", err)
		return
	}
	got, err := pgio.ReadGame(&buf)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 3) The decoded game has the same vertex count, priority count, and
	//    per-vertex labels as the original.
	fmt.Printf("V=%d D=%d owner(1)=%s priority(1)=%d\n", got.V(), got.D(), got.Player(1), got.Priority(1))
	// Output: V=3 D=3 owner(1)=Odd priority(1)=1
}
