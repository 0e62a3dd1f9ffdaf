package roulette

import (
	"errors"
	"fmt"
	"strings"
)

// Available lists the canonical community names eligible for pairing.
var Available = []string{
	"Python",
	"API",
	"FinOps",
	"Frontend",
	"Data Science",
	"DevOps",
	"UX/UI",
	"Security",
}

var ErrTooFewCommunities = errors.New("roulette: at least 2 communities required")

// ParseCommunities resolves the command-line selection against the
// canonical list. Matching is case-insensitive, "all" selects everything,
// unknown names are skipped with a console warning, and repeats collapse.
func ParseCommunities(args []string) ([]string, error) {
	var selected []string
	for _, arg := range args {
		if strings.EqualFold(arg, "all") {
			return append([]string(nil), Available...), nil
		}
		matched := false
		for _, community := range Available {
			if strings.EqualFold(arg, community) {
				if !contains(selected, community) {
					selected = append(selected, community)
				}
				matched = true
				break
			}
		}
		if !matched {
			fmt.Printf("Warning: %q is not a valid community. Skipping.\n", arg)
		}
	}
	if len(selected) < minCommunities {
		return nil, ErrTooFewCommunities
	}
	return selected, nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
