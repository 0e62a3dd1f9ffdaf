package roulette

import "fmt"

const (
	minCommunities = 2
	maxCommunities = 8
	slugMaxLen     = 30
)

// Project is one generated hackathon idea. Fields are fixed at construction
// and the record is passed around by value; the wheel never mutates it.
type Project struct {
	Title       string
	Slug        string
	Description string
	Communities []string
	TeamSize    string
}

// NewProject validates the community pairing rules every generated idea
// must satisfy: between 2 and 8 communities, all distinct.
func NewProject(title, slug, description, teamSize string, communities []string) (Project, error) {
	if len(communities) < minCommunities || len(communities) > maxCommunities {
		return Project{}, fmt.Errorf("roulette: project %q needs %d to %d communities, got %d",
			title, minCommunities, maxCommunities, len(communities))
	}
	seen := make(map[string]struct{}, len(communities))
	for _, c := range communities {
		if _, dup := seen[c]; dup {
			return Project{}, fmt.Errorf("roulette: project %q repeats community %q", title, c)
		}
		seen[c] = struct{}{}
	}
	return Project{
		Title:       title,
		Slug:        slug,
		Description: description,
		Communities: append([]string(nil), communities...),
		TeamSize:    teamSize,
	}, nil
}
