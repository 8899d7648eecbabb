// Command autoplay generates a game and lets the deduction engine play
// it out, printing every step. It is the command-line stand-in for the
// Auto Step button: one proposed move per step, applied immediately.
package main

import (
	"errors"
	"flag"
	"fmt"
	"hash/maphash"
	"math/rand/v2"
	"os"
	"time"

	"github.com/ashabalin/autosweeper/internal/mines"
	"github.com/ashabalin/autosweeper/internal/solver"
)

var (
	width     int
	height    int
	mineCount int
	seed      uint64
	delay     time.Duration
	quiet     bool
)

func init() {
	flag.IntVar(&width, "width", 9, "board width")
	flag.IntVar(&height, "height", 9, "board height")
	flag.IntVar(&mineCount, "mines", 10, "mine count")
	flag.Uint64Var(&seed, "seed", 0, "rng seed (0 picks a random one)")
	flag.DurationVar(&delay, "delay", 0, "pause between steps")
	flag.BoolVar(&quiet, "quiet", false, "print only the final result")
}

func main() {
	flag.Parse()

	if seed == 0 {
		seed = new(maphash.Hash).Sum64()
	}
	rnd := rand.New(rand.NewPCG(seed, seed+1))

	params := &mines.GameParams{
		Width:     width,
		Height:    height,
		MineCount: mineCount,
	}
	game, err := mines.NewGame(params, width/2, height/2, rnd)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(2)
	}

	auto := solver.NewAutoplay(game, nil)
	steps := 0
	for !game.Dead && !game.Won {
		move, err := auto.Step()
		if errors.Is(err, solver.ErrNoMoves) || errors.Is(err, solver.ErrGameOver) {
			break
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, "error:", err)
			os.Exit(2)
		}
		steps++
		if !quiet {
			marker := ""
			if move.Guess {
				marker = " (guess)"
			}
			fmt.Printf("step %d: %s %d:%d%s\n", steps, move.Kind, move.X, move.Y, marker)
			fmt.Println(game.PlayerGrid.ToString(game.Width))
			time.Sleep(delay)
		}
	}

	fmt.Printf("seed %d, %d steps: ", seed, steps)
	if game.Won {
		fmt.Println("solved")
		return
	}
	fmt.Println("hit a mine")
	os.Exit(1)
}
