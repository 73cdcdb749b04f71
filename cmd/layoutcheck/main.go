// Prints the card layout of every carousel for a range of window widths.
package main

import (
	"flag"
	"log"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"

	"github.com/llehouerou/showcase/internal/app"
	"github.com/llehouerou/showcase/internal/config"
	"github.com/llehouerou/showcase/internal/content"
)

var widths = []int{40, 60, 80, 100, 120, 160, 200}

func main() {
	contentPath := flag.String("content", "", "path to a YAML card catalog")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	catalog, err := content.Default()
	if *contentPath != "" {
		catalog, err = content.Load(*contentPath)
	}
	if err != nil {
		log.Fatalf("Failed to load content: %v", err)
	}

	for _, width := range widths {
		m, err := app.New(cfg, catalog, nil)
		if err != nil {
			log.Fatalf("Failed to build carousels: %v", err)
		}
		next, _ := m.Update(tea.WindowSizeMsg{Width: width, Height: 50})
		m = next.(app.Model)

		log.Printf("width %d:", width)
		for _, c := range m.Carousels {
			mt := c.Metrics()
			st := c.State()
			log.Printf("  %-14s slides %.1f  card %5.1fx%-5.1f gap %4.1f  scale %.2f  rows %2d  track max %s%s",
				c.Title(), mt.SlidesToShow, mt.CardWidth, mt.CardHeight, mt.Gap, mt.Scale,
				c.CardRows(), humanize.Comma(int64(st.MaxScroll)), clampNote(mt.Clamped))
		}
	}
}

func clampNote(clamped bool) string {
	if clamped {
		return "  (min width)"
	}
	return ""
}
