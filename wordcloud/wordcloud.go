// Package wordcloud turns the word-frequency table into renderable
// lemma-frequency mappings and draws them as word-cloud images.
package wordcloud

import (
	"errors"
	"image"
	"image/color"

	"github.com/mozgsvina/sis-app/corpus"
	"github.com/psykhi/wordclouds"
)

// ErrNoData is returned when a category has no frequency rows; callers
// should surface an informational "no data" state instead of rendering.
var ErrNoData = errors.New("no frequency data for category")

// BuildInput filters the frequency table to the selected category and
// returns the lemma -> frequency mapping handed to the renderer.
//
// Duplicate (category, lemma) rows are summed. The upstream table is not
// deduplicated and last-write-wins there was incidental; summing keeps
// every observed occurrence counted.
func BuildInput(rows []corpus.FrequencyRow, category string) (map[string]int, error) {
	input := make(map[string]int)
	for _, row := range rows {
		if row.Category != category {
			continue
		}
		input[row.Lemma] += row.Freq
	}
	if len(input) == 0 {
		return nil, ErrNoData
	}
	return input, nil
}

// Categories returns the distinct categories of the table in first-seen
// order, for populating the category selector.
func Categories(rows []corpus.FrequencyRow) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, row := range rows {
		if _, ok := seen[row.Category]; ok {
			continue
		}
		seen[row.Category] = struct{}{}
		out = append(out, row.Category)
	}
	return out
}

// RenderConfig controls word-cloud image generation.
type RenderConfig struct {
	// FontFile is the path to a TTF font able to display the corpus
	// language. Required for rendering.
	FontFile string
	Width    int
	Height   int
	// Colors cycles through the palette per word; nil uses a default.
	Colors []color.Color
}

// Renderer draws word clouds from lemma-frequency mappings.
type Renderer struct {
	cfg RenderConfig
}

// NewRenderer creates a renderer. Zero width/height default to 1024x512.
func NewRenderer(cfg RenderConfig) *Renderer {
	if cfg.Width <= 0 {
		cfg.Width = 1024
	}
	if cfg.Height <= 0 {
		cfg.Height = 512
	}
	if len(cfg.Colors) == 0 {
		cfg.Colors = []color.Color{
			color.RGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff},
			color.RGBA{R: 0xff, G: 0x7f, B: 0x0e, A: 0xff},
			color.RGBA{R: 0x2c, G: 0xa0, B: 0x2c, A: 0xff},
			color.RGBA{R: 0xd6, G: 0x27, B: 0x28, A: 0xff},
		}
	}
	return &Renderer{cfg: cfg}
}

// Render draws the mapping as an image. Empty input returns ErrNoData.
func (r *Renderer) Render(input map[string]int) (image.Image, error) {
	if len(input) == 0 {
		return nil, ErrNoData
	}

	w := wordclouds.NewWordcloud(input,
		wordclouds.FontFile(r.cfg.FontFile),
		wordclouds.Width(r.cfg.Width),
		wordclouds.Height(r.cfg.Height),
		wordclouds.FontMaxSize(r.cfg.Height/4),
		wordclouds.FontMinSize(10),
		wordclouds.Colors(r.cfg.Colors),
		wordclouds.BackgroundColor(color.White),
	)

	return w.Draw(), nil
}
