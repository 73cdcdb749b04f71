// internal/app/app.go
package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/showcase/internal/config"
	"github.com/llehouerou/showcase/internal/content"
	"github.com/llehouerou/showcase/internal/keymap"
	"github.com/llehouerou/showcase/internal/ui/cards"
	"github.com/llehouerou/showcase/internal/ui/helpbindings"
	"github.com/llehouerou/showcase/internal/ui/scroller"
)

// Model is the page: a header, the carousel sections stacked vertically,
// an optional status line and the key hint line.
type Model struct {
	Carousels []scroller.Model
	Help      helpbindings.Model
	ShowHelp  bool
	Focus     int // focused carousel, -1 for none
	Hovered   int // carousel under the pointer, -1 for none
	ScrollTop int // page scroll in rows
	Status    string
	StatusErr bool
	statusID  int64
	keys      *keymap.Resolver
	Width     int
	Height    int

	cfg            *config.Config
	images         cards.Images
	contentPath    string
	contentChanges <-chan struct{}
}

// New builds the page from the user config and the card catalog.
// images draws local card images and may be nil.
func New(cfg *config.Config, catalog *content.Catalog, images cards.Images) (Model, error) {
	carousels, err := buildCarousels(cfg, catalog, images)
	if err != nil {
		return Model{}, err
	}
	return Model{
		Carousels: carousels,
		Help:      helpbindings.New(),
		Focus:     -1,
		Hovered:   -1,
		keys:      keymap.ForContexts("global"),
		cfg:       cfg,
		images:    images,
	}, nil
}

// WatchContent makes the page reload its catalog from path each time
// changes delivers a value.
func (m Model) WatchContent(path string, changes <-chan struct{}) Model {
	m.contentPath = path
	m.contentChanges = changes
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(m.Carousels)+1)
	for _, c := range m.Carousels {
		cmds = append(cmds, c.Init())
	}
	if m.contentChanges != nil {
		cmds = append(cmds, waitForContentChange(m.contentChanges))
	}
	return tea.Batch(cmds...)
}

// carouselIndex returns the index of the carousel with id, or -1.
func (m Model) carouselIndex(id string) int {
	for i, c := range m.Carousels {
		if c.ID() == id {
			return i
		}
	}
	return -1
}
