// Command bench runs a batch of self-play games to measure playout
// throughput and tree growth: each game logs its turn-by-turn progress to
// a buffer and the run reports aggregate win/loss/draw tallies.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"log"
	"time"

	floeengine "github.com/jthemphill/floeengine"
	"github.com/jthemphill/floeengine/board"
)

var (
	numGamesFlag = flag.Int("games", 10, "number of self-play games to run")
	playoutsFlag = flag.Int("playouts", 4000, "playouts run before each AI move")
	seedFlag     = flag.Uint64("seed", 1, "base RNG seed; game i uses seed+i")
	verboseFlag  = flag.Bool("v", false, "print the per-game log buffer")
)

type result struct {
	scores        [2]int
	turns         int
	totalPlayouts int
	elapsed       time.Duration
}

func playOneGame(seed uint64, playoutsPerMove int) result {
	var buf bytes.Buffer
	logger := log.New(&buf, "", log.Ltime)

	start := time.Now()
	e := floeengine.New(seed)
	for !e.GameOver() {
		e.PlayoutNTimes(playoutsPerMove)
		mover := e.ActivePlayer()
		if err := e.TakeAction(); err != nil {
			logger.Fatalf("take action failed: %v", err)
		}
		logger.Printf("turn %d active-was %v visits %d", e.Turn(), mover, e.GetVisits())
	}

	s0, _ := e.Score(board.Player0)
	s1, _ := e.Score(board.Player1)
	if *verboseFlag {
		fmt.Print(buf.String())
	}
	return result{
		scores:        [2]int{s0, s1},
		turns:         e.Turn(),
		totalPlayouts: e.GetTotalPlayouts(),
		elapsed:       time.Since(start),
	}
}

func main() {
	flag.Parse()

	var wins, draws [2]int
	var totalTurns, totalPlayouts int
	var totalElapsed time.Duration

	for i := 0; i < *numGamesFlag; i++ {
		r := playOneGame(*seedFlag+uint64(i), *playoutsFlag)
		switch {
		case r.scores[0] > r.scores[1]:
			wins[0]++
		case r.scores[1] > r.scores[0]:
			wins[1]++
		default:
			draws[0]++
			draws[1]++
		}
		totalTurns += r.turns
		totalPlayouts += r.totalPlayouts
		totalElapsed += r.elapsed
		log.Printf("game %d: scores=%v turns=%d playouts=%d elapsed=%v",
			i, r.scores, r.turns, r.totalPlayouts, r.elapsed)
	}

	fmt.Printf("player 0 wins: %d, player 1 wins: %d, draws: %d\n", wins[0], wins[1], draws[0])
	fmt.Printf("avg turns/game: %.1f, avg playouts/game: %.1f, avg playouts/sec: %.0f\n",
		float64(totalTurns)/float64(*numGamesFlag),
		float64(totalPlayouts)/float64(*numGamesFlag),
		float64(totalPlayouts)/totalElapsed.Seconds())
}
