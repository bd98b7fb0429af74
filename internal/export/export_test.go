package export

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aquarium-catalog/internal/domain/species"
)

type fakeCatalog struct {
	fishes []species.Summary
	plants []species.Summary
	plErr  error
}

func (f *fakeCatalog) ListSpecies(ctx context.Context, kind species.Kind) ([]species.Summary, error) {
	if kind == species.KindPlant {
		return f.plants, f.plErr
	}
	return f.fishes, nil
}

func (f *fakeCatalog) GetFish(ctx context.Context, name string) (species.Fish, error) {
	return species.Fish{Name: name, Description: "desc of " + name, MinTankSizeGal: "5"}, nil
}

func (f *fakeCatalog) GetPlant(ctx context.Context, name string) (species.Plant, error) {
	return species.Plant{Name: name, CareLevel: "Easy"}, nil
}

func (f *fakeCatalog) Search(ctx context.Context, query string) (species.SearchResult, error) {
	return species.SearchResult{}, errors.New("not used")
}

func TestSlug(t *testing.T) {
	assert.Equal(t, "betta-fish", Slug("Betta Fish"))
	assert.Equal(t, "cardinal-tetra", Slug("  Cardinal   Tetra! "))
	assert.Equal(t, "unnamed", Slug("???"))
	assert.Equal(t, "fish-neon-tetra.html", newFileNames().Link(species.KindFish, "Neon Tetra"))
}

func TestFileNames_CollidingSlugsGetSuffix(t *testing.T) {
	f := newFileNames()

	assert.Equal(t, "fish-betta.html", f.Link(species.KindFish, "Betta"))
	assert.Equal(t, "fish-betta-2.html", f.Link(species.KindFish, "betta!"))
	assert.Equal(t, "fish-unnamed.html", f.Link(species.KindFish, "??"))
	assert.Equal(t, "fish-unnamed-2.html", f.Link(species.KindFish, "!!"))
	assert.Equal(t, "plant-betta.html", f.Link(species.KindPlant, "Betta"))

	assert.Equal(t, "fish-betta.html", f.Link(species.KindFish, "Betta"), "same name, same file")
	assert.Equal(t, "fish-betta-2.html", f.Link(species.KindFish, "betta!"))
}

func TestExport_CollidingNamesKeepEveryPage(t *testing.T) {
	dir := t.TempDir()
	c := &fakeCatalog{fishes: []species.Summary{
		{Name: "Betta"},
		{Name: "betta!"},
		{Name: "Ω"},
		{Name: "??"},
		{Name: "Betta"},
	}}

	res, err := New(c, Options{OutDir: dir}).Export(context.Background())
	require.NoError(t, err)

	got := append([]string(nil), res.Files...)
	sort.Strings(got)
	want := []string{
		"fish-betta-2.html",
		"fish-betta.html",
		"fish-unnamed.html",
		"fish-ω.html",
		"fishes.html",
		"index.html",
		"plants.html",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("files mismatch (-want +got):\n%s", diff)
	}

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, len(res.Files), "no page overwritten")

	betta, err := os.ReadFile(filepath.Join(dir, "fish-betta.html"))
	require.NoError(t, err)
	assert.Contains(t, string(betta), "desc of Betta")
	other, err := os.ReadFile(filepath.Join(dir, "fish-betta-2.html"))
	require.NoError(t, err)
	assert.Contains(t, string(other), "desc of betta!")

	list, err := os.ReadFile(filepath.Join(dir, "fishes.html"))
	require.NoError(t, err)
	assert.Contains(t, string(list), `href="fish-betta.html"`)
	assert.Contains(t, string(list), `href="fish-betta-2.html"`)
}

func TestExport_WritesBrowsableTree(t *testing.T) {
	dir := t.TempDir()
	c := &fakeCatalog{
		fishes: []species.Summary{{Name: "Betta Fish"}, {Name: "Guppy"}},
		plants: []species.Summary{{Name: "Java Fern"}},
	}

	res, err := New(c, Options{OutDir: dir, Concurrency: 2}).Export(context.Background())
	require.NoError(t, err)

	got := append([]string(nil), res.Files...)
	sort.Strings(got)
	want := []string{
		"fish-betta-fish.html",
		"fish-guppy.html",
		"fishes.html",
		"index.html",
		"plant-java-fern.html",
		"plants.html",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("files mismatch (-want +got):\n%s", diff)
	}

	list, err := os.ReadFile(filepath.Join(dir, "fishes.html"))
	require.NoError(t, err)
	assert.Contains(t, string(list), `href="fish-betta-fish.html"`)

	detail, err := os.ReadFile(filepath.Join(dir, "fish-guppy.html"))
	require.NoError(t, err)
	assert.Contains(t, string(detail), "desc of Guppy")
	assert.Contains(t, string(detail), "5 gallons")
	assert.True(t, strings.Contains(string(detail), `href="fish-guppy.html" aria-label="Close"`), "close link stays on the exported file")
}

func TestExport_ListFailureStillWritesPage(t *testing.T) {
	dir := t.TempDir()
	c := &fakeCatalog{plErr: &species.APIError{Status: 500, Message: "Could not load plant list."}}

	res, err := New(c, Options{OutDir: dir}).Export(context.Background())
	require.NoError(t, err)
	assert.Len(t, res.Files, 3)

	b, err := os.ReadFile(filepath.Join(dir, "plants.html"))
	require.NoError(t, err)
	assert.Contains(t, string(b), "Failed to load plant species.")
}
