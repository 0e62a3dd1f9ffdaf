package main

import (
	"errors"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ncruces/zenity"

	"hackwheel/internal/config"
	"hackwheel/internal/roulette"
	"hackwheel/internal/sound"
	"hackwheel/internal/wheel"
)

func usage() {
	fmt.Println("Hackathon Roulette - Cross-Community Project Generator")
	fmt.Println(strings.Repeat("=", 60))
	fmt.Println("\nUsage: hackwheel [-dialog] <community1> <community2> ...")
	fmt.Println("\nAvailable communities:")
	for _, community := range roulette.Available {
		fmt.Printf("  - %s\n", community)
	}
	fmt.Println("\nExamples:")
	fmt.Println("  hackwheel Python Frontend")
	fmt.Println("  hackwheel Python API DevOps")
	fmt.Println("  hackwheel all")
	fmt.Println("\nNote: You need at least 2 communities.")
}

func main() {
	dialog := flag.Bool("dialog", false, "announce the winner in a desktop dialog")
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() == 0 {
		usage()
		os.Exit(1)
	}

	communities, err := roulette.ParseCommunities(flag.Args())
	if err != nil {
		fmt.Println("Error: You must select at least 2 communities.")
		fmt.Printf("Available communities: %s\n", strings.Join(roulette.Available, ", "))
		os.Exit(1)
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	pool, err := roulette.Generate(communities, rng)
	if err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}
	roulette.DisplayPool(pool)

	w, err := wheel.NewWheel(pool, sound.NewEngine())
	if err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}

	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle("Hackathon Roulette - Project Selector")
	ebiten.SetTPS(config.TPS)
	if err := ebiten.RunGame(w); err != nil && !errors.Is(err, ebiten.Termination) {
		fmt.Println("Error:", err)
		os.Exit(1)
	}

	winner, ok := w.Winner()
	if !ok {
		fmt.Println("\nNo project was selected.")
		return
	}
	roulette.DisplayWinner(winner)

	if *dialog {
		_ = zenity.Info(
			fmt.Sprintf("%s\n\n%s\n\nCommunities: %s\nTeam Size: %s",
				winner.Title, winner.Description, strings.Join(winner.Communities, ", "), winner.TeamSize),
			zenity.Title("Selected project"),
		)
	}
}
