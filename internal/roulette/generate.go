package roulette

import (
	"fmt"
	"math/rand"
	"strings"
)

// PoolSize is the number of ideas one wheel session runs on.
const PoolSize = 6

// templates pair a title with a matching pitch; {comm1} and {comm2} expand
// to the two communities drawn for the idea.
var templates = [PoolSize]struct {
	title string
	desc  string
}{
	{
		"AI-Powered {comm1} Analytics Dashboard",
		"Build a dashboard that uses {comm1} for data processing and {comm2} for the frontend interface.",
	},
	{
		"{comm1} and {comm2} Collaboration Platform",
		"Create a platform that facilitates collaboration between {comm1} and {comm2} teams.",
	},
	{
		"Secure {comm1} Application with {comm2} Integration",
		"Develop a secure application using {comm1} principles with {comm2} integration.",
	},
	{
		"Automated {comm1} Pipeline with {comm2} Monitoring",
		"Implement an automated pipeline for {comm1} with monitoring using {comm2} tools.",
	},
	{
		"{comm1} Data Visualization with {comm2} UX",
		"Create interactive data visualizations using {comm1} with {comm2} user experience design.",
	},
	{
		"API-First {comm1} Solution with {comm2} Security",
		"Build an API-first solution for {comm1} with {comm2} security best practices.",
	},
}

// Generate produces the fixed pool of six ideas, each pairing two distinct
// communities drawn at random from the selection.
func Generate(communities []string, rng *rand.Rand) ([]Project, error) {
	pool := make([]Project, 0, PoolSize)
	for _, tpl := range templates {
		comm1, comm2 := samplePair(communities, rng)
		title := expand(tpl.title, comm1, comm2)
		p, err := NewProject(
			title,
			Slugify(title),
			expand(tpl.desc, comm1, comm2),
			fmt.Sprintf("1 %s, 1 %s", comm1, comm2),
			[]string{comm1, comm2},
		)
		if err != nil {
			return nil, err
		}
		pool = append(pool, p)
	}
	return pool, nil
}

func expand(tpl, comm1, comm2 string) string {
	return strings.NewReplacer("{comm1}", comm1, "{comm2}", comm2).Replace(tpl)
}

// samplePair draws two distinct indices from the selection.
func samplePair(communities []string, rng *rand.Rand) (string, string) {
	i := rng.Intn(len(communities))
	j := rng.Intn(len(communities) - 1)
	if j >= i {
		j++
	}
	return communities[i], communities[j]
}

var slugPrefixes = []string{"AI-Powered ", "Secure ", "Automated ", "API-First "}

// Slugify derives the short wheel label for a title: drop the flavor prefix
// and, if still long, cut at a word boundary near 30 characters with an
// ellipsis.
func Slugify(title string) string {
	slug := title
	for _, prefix := range slugPrefixes {
		if strings.HasPrefix(slug, prefix) {
			slug = strings.TrimPrefix(slug, prefix)
			break
		}
	}
	if len(slug) <= slugMaxLen {
		return slug
	}
	var out string
	for _, word := range strings.Fields(slug) {
		candidate := word
		if out != "" {
			candidate = out + " " + word
		}
		if len(candidate) > slugMaxLen {
			out += "..."
			break
		}
		out = candidate
	}
	return out
}
