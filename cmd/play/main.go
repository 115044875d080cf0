// Command play is a terminal driver for a single human-vs-AI game: it
// prints the board's fish/score/active-player summary, reads move
// commands from stdin, and runs the AI's ponder loop in chunks between
// human turns.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	floeengine "github.com/jthemphill/floeengine"
	"github.com/jthemphill/floeengine/board"
)

var (
	seedFlag        = flag.Uint64("seed", 1, "RNG seed for the fish shuffle and every playout")
	chunkFlag       = flag.Int("chunk", 200, "playouts run per ponder chunk between human turns")
	requiredFlag    = flag.Uint("required", 28000, "playouts required before the AI commits a move")
	humanPlayerFlag = flag.Int("human", 0, "which player (0 or 1) the human plays as")
)

func main() {
	flag.Parse()
	human := board.Player(*humanPlayerFlag)
	e := floeengine.New(*seedFlag)

	scanner := bufio.NewScanner(os.Stdin)
	for !e.GameOver() {
		printState(e)
		if e.ActivePlayer() == human {
			if !promptAndApply(e, scanner) {
				return
			}
			continue
		}
		ponder(e)
		if err := e.TakeAction(); err != nil {
			log.Fatalf("AI failed to take action: %v", err)
		}
	}
	printState(e)
	fmt.Println("game over")
}

func ponder(e *floeengine.Engine) {
	for e.GetVisits() < uint32(*requiredFlag) {
		e.PlayoutNTimes(*chunkFlag)
	}
}

func printState(e *floeengine.Engine) {
	fmt.Printf("turn %d | active %v | scores %v,%v\n",
		e.Turn(), e.ActivePlayer(), mustScore(e, board.Player0), mustScore(e, board.Player1))
	if e.IsDrafting() {
		fmt.Printf("draftable: %v\n", e.DraftableCells())
		return
	}
	active := e.ActivePlayer()
	if active == board.NoPlayer {
		return
	}
	penguins, _ := e.Penguins(active)
	for _, src := range penguins {
		fmt.Printf("  %d -> %v\n", src, e.PossibleMoves(src))
	}
}

func mustScore(e *floeengine.Engine, p board.Player) int {
	s, _ := e.Score(p)
	return s
}

// promptAndApply reads one line of the form "dst" (draft) or "src dst"
// (slide) and applies it. Returns false on EOF.
func promptAndApply(e *floeengine.Engine, scanner *bufio.Scanner) bool {
	fmt.Print("> ")
	if !scanner.Scan() {
		return false
	}
	fields := strings.Fields(scanner.Text())
	cells := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			fmt.Println("expected cell indices, got:", f)
			return true
		}
		cells = append(cells, n)
	}

	var err error
	switch len(cells) {
	case 1:
		err = e.PlacePenguin(board.Cell(cells[0]))
	case 2:
		err = e.MovePenguin(board.Cell(cells[0]), board.Cell(cells[1]))
	default:
		fmt.Println("enter either a destination cell, or a source and destination cell")
		return true
	}
	if err != nil {
		fmt.Println("illegal move:", err)
	}
	return true
}
