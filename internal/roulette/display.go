package roulette

import (
	"fmt"
	"strings"
)

var rule = strings.Repeat("=", 60)

// DisplayPool prints the generated ideas before the wheel launches.
func DisplayPool(pool []Project) {
	fmt.Println("\n" + rule)
	fmt.Println("GENERATED HACKATHON PROJECT IDEAS")
	fmt.Println(rule)
	for i, p := range pool {
		fmt.Printf("\n%d. %s\n", i+1, p.Title)
		fmt.Printf("   Wheel display: %s\n", p.Slug)
		fmt.Printf("   Description: %s\n", p.Description)
		fmt.Printf("   Communities: %s\n", strings.Join(p.Communities, ", "))
		fmt.Printf("   Team Size: %s\n", p.TeamSize)
	}
	fmt.Println("\n" + rule)
	fmt.Println("Launching spinning wheel to select a project...")
	fmt.Println(rule + "\n")
}

// DisplayWinner prints the selected idea after the wheel closes.
func DisplayWinner(p Project) {
	fmt.Println("\n" + rule)
	fmt.Println("SELECTED PROJECT FOR YOUR HACKATHON!")
	fmt.Println(rule)
	fmt.Printf("\nTitle: %s\n", p.Title)
	fmt.Printf("Description: %s\n", p.Description)
	fmt.Printf("Communities: %s\n", strings.Join(p.Communities, ", "))
	fmt.Printf("Team Size: %s\n", p.TeamSize)
	fmt.Println("\n" + rule)
	fmt.Println("Happy hacking!")
	fmt.Println(rule)
}
