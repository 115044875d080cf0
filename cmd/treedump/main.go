// Command treedump runs a fixed number of playouts from a fresh game and
// writes the resulting search tree out as Graphviz DOT, for visual
// inspection of how UCB1 concentrates visits on a strong line.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	floeengine "github.com/jthemphill/floeengine"
)

var (
	seedFlag     = flag.Uint64("seed", 1, "RNG seed for the fish shuffle and every playout")
	playoutsFlag = flag.Int("playouts", 2000, "playouts to run before dumping the tree")
	outFlag      = flag.String("out", "", "output path for the DOT file; defaults to stdout")
)

func main() {
	flag.Parse()

	e := floeengine.New(*seedFlag)
	e.PlayoutNTimes(*playoutsFlag)

	dot, err := e.Tree().DOT()
	if err != nil {
		log.Fatalf("rendering DOT: %v", err)
	}

	stats := e.Stats()
	log.Printf("tree size %d, root visits %d, total playouts %d, visit share mean %.4f var %.6f",
		stats.TreeSize, stats.Visits, stats.TotalPlayouts, stats.VisitShareMean, stats.VisitShareVar)

	if *outFlag == "" {
		fmt.Println(dot)
		return
	}
	if err := os.WriteFile(*outFlag, []byte(dot), 0644); err != nil {
		log.Fatalf("writing %s: %v", *outFlag, err)
	}
	log.Printf("wrote %s", *outFlag)
}
