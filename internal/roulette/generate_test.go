package roulette

import (
	"math/rand"
	"strings"
	"testing"
)

func TestGeneratePool(t *testing.T) {
	communities := []string{"Python", "Frontend", "DevOps"}
	rng := rand.New(rand.NewSource(1))

	pool, err := Generate(communities, rng)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(pool) != PoolSize {
		t.Fatalf("got %d projects, want %d", len(pool), PoolSize)
	}

	for i, p := range pool {
		if p.Title == "" || p.Description == "" || p.TeamSize == "" {
			t.Errorf("project %d has empty fields: %+v", i, p)
		}
		if len(p.Communities) != 2 {
			t.Fatalf("project %d pairs %d communities, want 2", i, len(p.Communities))
		}
		if p.Communities[0] == p.Communities[1] {
			t.Errorf("project %d pairs the same community twice: %v", i, p.Communities)
		}
		for _, c := range p.Communities {
			if !contains(communities, c) {
				t.Errorf("project %d uses %q, not in the selection", i, c)
			}
		}
		if p.Slug == "" || len(p.Slug) > slugMaxLen+3 {
			t.Errorf("project %d slug %q out of bounds", i, p.Slug)
		}
	}
}

func TestGenerateDeterministicPerSeed(t *testing.T) {
	communities := []string{"Python", "API", "Security"}
	a, err := Generate(communities, rand.New(rand.NewSource(9)))
	if err != nil {
		t.Fatal(err)
	}
	b, err := Generate(communities, rand.New(rand.NewSource(9)))
	if err != nil {
		t.Fatal(err)
	}
	for i := range a {
		if a[i].Title != b[i].Title {
			t.Errorf("project %d differs for identical seeds: %q vs %q", i, a[i].Title, b[i].Title)
		}
	}
}

func TestSlugify(t *testing.T) {
	cases := []struct {
		title string
		want  string
	}{
		{
			"AI-Powered Data Science Analytics Dashboard",
			"Data Science Analytics...",
		},
		{
			"Secure API Application with Python Integration",
			"API Application with Python...",
		},
		{
			"Python and API Collaboration Platform",
			"Python and API Collaboration...",
		},
		{
			"Secure API Application",
			"API Application",
		},
		{
			"Automated DevOps Pipeline",
			"DevOps Pipeline",
		},
	}
	for _, tc := range cases {
		if got := Slugify(tc.title); got != tc.want {
			t.Errorf("Slugify(%q) = %q, want %q", tc.title, got, tc.want)
		}
	}
}

func TestSlugifyCap(t *testing.T) {
	long := "Data Science and Data Science Collaboration Platform"
	slug := Slugify(long)
	if len(slug) > slugMaxLen+3 {
		t.Errorf("slug %q longer than %d chars plus ellipsis", slug, slugMaxLen)
	}
	if !strings.HasSuffix(slug, "...") {
		t.Errorf("truncated slug %q lacks ellipsis", slug)
	}
}

func TestNewProjectValidation(t *testing.T) {
	cases := []struct {
		name        string
		communities []string
		wantErr     bool
	}{
		{"pair", []string{"Python", "API"}, false},
		{"eight", Available, false},
		{"single", []string{"Python"}, true},
		{"empty", nil, true},
		{"duplicate", []string{"Python", "Python"}, true},
		{"nine", append(append([]string(nil), Available...), "Extra"), true},
	}
	for _, tc := range cases {
		_, err := NewProject("t", "s", "d", "1+1", tc.communities)
		if (err != nil) != tc.wantErr {
			t.Errorf("%s: NewProject err = %v, wantErr %v", tc.name, err, tc.wantErr)
		}
	}
}
