package render

import (
	"bytes"
	"html/template"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aquarium-catalog/internal/domain/page"
	"aquarium-catalog/internal/domain/species"
)

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc...", Truncate("abc", 100))
	assert.Equal(t, "ab...", Truncate("abcdef", 2))
	assert.Equal(t, "🐠🐠...", Truncate("🐠🐠🐠", 2), "must cut on runes")
	assert.Equal(t, "...", Truncate("", 10))
}

func TestEncodeURIComponent(t *testing.T) {
	assert.Equal(t, "Betta%20Fish", EncodeURIComponent("Betta Fish"))
	assert.Equal(t, "a%26b%3Dc", EncodeURIComponent("a&b=c"))
	assert.Equal(t, "fish_detail.html?name=Neon%20Tetra", QueryLinks(species.KindFish, "Neon Tetra"))
	assert.Equal(t, "plant_detail.html?name=Java%20Fern", QueryLinks(species.KindPlant, "Java Fern"))
}

func TestListCards(t *testing.T) {
	r := MustNew(nil)
	long := strings.Repeat("x", 120)

	h, err := r.ListCards(species.KindFish, []species.Summary{
		{Name: "Betta Fish", Description: long, ImageURL: "https://img.example/betta.png"},
		{Name: "Guppy", Description: "Small <b>livebearer</b>"},
	})
	require.NoError(t, err)

	assert.Equal(t, 2, page.CountElements(h, "a", "list-card"))
	assert.Contains(t, string(h), `href="fish_detail.html?name=Betta%20Fish"`)
	assert.Contains(t, string(h), `<img src="https://img.example/betta.png" alt="Betta Fish">`)
	assert.Contains(t, string(h), strings.Repeat("x", 100)+"...")
	assert.NotContains(t, string(h), strings.Repeat("x", 101))
	assert.Contains(t, string(h), "🐠", "missing image falls back to the icon")
	assert.NotContains(t, string(h), "<b>", "descriptions are escaped")

	empty, err := r.ListCards(species.KindPlant, nil)
	require.NoError(t, err)
	assert.Equal(t, template.HTML(""), empty)
}

func TestFishDetail_AllFieldsVerbatim(t *testing.T) {
	r := MustNew(nil)
	desc := strings.Repeat("Long description. ", 20)
	f := species.Fish{
		Name:                 "Betta Fish",
		Description:          desc,
		HabitatTemp:          "24-28°C",
		HabitatPH:            "6.5-7.5",
		Diet:                 "Carnivore",
		Compatibility:        "Solitary",
		MinTankSizeGal:       "5",
		PlantNeeds:           "Floating plants",
		FilterRecommendation: "Gentle sponge filter",
	}
	h, err := r.FishDetail(f)
	require.NoError(t, err)

	text := page.TextContent(h)
	for _, want := range []string{
		"Betta Fish",
		"Description: " + desc,
		"Habitat Temp: 24-28°C",
		"Habitat pH: 6.5-7.5",
		"Diet: Carnivore",
		"Compatibility: Solitary",
		"Min Tank Size: 5 gallons",
		"Plant Needs: Floating plants",
		"Filter Recommendation: Gentle sponge filter",
	} {
		assert.Contains(t, text, want)
	}
	assert.NotContains(t, text, desc+"...")
}

func TestPlantDetail_AllFieldsVerbatim(t *testing.T) {
	r := MustNew(nil)
	h, err := r.PlantDetail(species.Plant{
		Name:        "Java Fern",
		Description: "Hardy epiphyte",
		ImageURL:    "https://img.example/fern.png",
		CareLevel:   "Easy",
		Lighting:    "Low",
		CO2Needed:   "No",
		Placement:   "Midground",
		GrowthRate:  "Slow",
	})
	require.NoError(t, err)

	text := page.TextContent(h)
	for _, want := range []string{
		"Java Fern",
		"Description: Hardy epiphyte",
		"Care Level: Easy",
		"Lighting: Low",
		"CO2 Needed: No",
		"Placement: Midground",
		"Growth Rate: Slow",
	} {
		assert.Contains(t, text, want)
	}
	assert.Equal(t, 1, page.CountElements(h, "img", ""))
}

func TestSearchCard(t *testing.T) {
	r := MustNew(nil)
	long := strings.Repeat("y", 200)

	h, err := r.SearchCard(species.SearchResult{
		Type: species.ResultPlant,
		Data: &species.Summary{Name: "Java Fern", Description: long, CareLevel: "Easy"},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, page.CountElements(h, "div", "search-result-card"))
	text := page.TextContent(h)
	assert.Contains(t, text, strings.Repeat("y", 150)+"...")
	assert.NotContains(t, text, strings.Repeat("y", 151))
	assert.Contains(t, text, "Care Level: Easy")
	assert.NotContains(t, text, "Diet:")
	assert.Contains(t, string(h), `href="plant_detail.html?name=Java%20Fern"`)

	h, err = r.SearchCard(species.SearchResult{
		Type: species.ResultFish,
		Data: &species.Summary{Name: "Guppy", Description: "Colorful", Diet: "Omnivore"},
	})
	require.NoError(t, err)
	assert.Contains(t, page.TextContent(h), "Diet: Omnivore")
	assert.Contains(t, page.TextContent(h), "View Full Details →")

	// tipo desconocido con data: solo el nombre
	h, err = r.SearchCard(species.SearchResult{
		Type: "general_info",
		Data: &species.Summary{Name: "Mystery"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Mystery", strings.TrimSpace(page.TextContent(h)))

	_, err = r.SearchCard(species.SearchResult{Type: species.ResultFish})
	assert.Error(t, err)
}

func TestImageSrc_InlineImagesKept(t *testing.T) {
	r := MustNew(nil)
	inline := "data:image/png;base64,iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAQAAAC1HAwCAAAAC0lEQVR42mNkYAAAAAYAAjCB0C8AAAAASUVORK5CYII="

	h, err := r.ListCards(species.KindFish, []species.Summary{
		{Name: "Inline", ImageURL: inline},
		{Name: "Upper", ImageURL: "DATA:IMAGE/gif;base64,R0lGODlhAQABAAAAACw="},
		{Name: "Script", ImageURL: "javascript:alert(1)"},
		{Name: "Text", ImageURL: "data:text/html;base64,PHNjcmlwdD4="},
	})
	require.NoError(t, err)

	assert.Contains(t, string(h), `<img src="`+inline+`" alt="Inline">`)
	assert.Contains(t, string(h), `<img src="DATA:IMAGE/gif;base64,R0lGODlhAQABAAAAACw=" alt="Upper">`)
	assert.Contains(t, string(h), `<img src="#ZgotmplZ" alt="Script">`)
	assert.Contains(t, string(h), `<img src="#ZgotmplZ" alt="Text">`)

	d, err := r.FishDetail(species.Fish{Name: "Inline", ImageURL: inline})
	require.NoError(t, err)
	assert.Contains(t, string(d), `src="`+inline+`"`)
}

func TestCustomLinks(t *testing.T) {
	r := MustNew(func(kind species.Kind, name string) string {
		return kind.Noun() + "_" + EncodeURIComponent(name) + ".html"
	})
	h, err := r.ListCards(species.KindPlant, []species.Summary{{Name: "Java Fern"}})
	require.NoError(t, err)
	assert.Contains(t, string(h), `href="plant_Java%20Fern.html"`)
	assert.Equal(t, "plant_Java%20Fern.html", r.DetailLink(species.KindPlant, "Java Fern"))
}

func TestPage_ContainsContractIDs(t *testing.T) {
	r := MustNew(nil)
	var buf bytes.Buffer
	err := r.Page(&buf, PageData{
		Title:    "Fish Details",
		Heading:  "Fish Details",
		Search:   SearchForm{Action: "/fish_detail.html", Hidden: []Hidden{{Name: "name", Value: "Betta"}}},
		Main:     &Region{ID: page.IDFishDetailCard, Class: "detail-card", Content: r.Message(ClassError, "x")},
		Subtitle: &Region{ID: page.IDFishDetailSubtitle, Content: "Betta"},
		Overlay:  Overlay{Class: "search-overlay", CloseHref: "/fish_detail.html?name=Betta"},
	})
	require.NoError(t, err)

	out := buf.String()
	for _, id := range append(page.SearchIDs, page.IDFishDetailCard, page.IDFishDetailSubtitle) {
		assert.Contains(t, out, `id="`+id+`"`)
	}
	assert.Contains(t, out, `<input type="hidden" name="name" value="Betta">`)
}
