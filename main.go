package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/showcase/internal/app"
	"github.com/llehouerou/showcase/internal/config"
	"github.com/llehouerou/showcase/internal/content"
	"github.com/llehouerou/showcase/internal/errmsg"
	"github.com/llehouerou/showcase/internal/ui/thumbnail"
	"github.com/llehouerou/showcase/internal/watcher"
)

var contentFlag string

// initialModel loads the config and catalog and builds the page.
// It also returns the catalog path, empty for the bundled catalog.
func initialModel() (app.Model, string, error) {
	cfg, err := config.Load()
	if err != nil {
		return app.Model{}, "", errors.New(errmsg.Format(errmsg.OpConfigLoad, err))
	}

	// Catalog: -content flag > config > bundled
	path := cfg.Content
	if contentFlag != "" {
		path = contentFlag
	}
	var catalog *content.Catalog
	if path != "" {
		catalog, err = content.Load(path)
	} else {
		catalog, err = content.Default()
	}
	if err != nil {
		return app.Model{}, "", errors.New(errmsg.FormatWith(errmsg.OpContentLoad, path, err))
	}

	cache, err := thumbnail.NewCache("")
	if err != nil {
		log.Printf("thumbnail cache disabled: %v", err)
	}

	m, err := app.New(cfg, catalog, thumbnail.New(cache))
	if err != nil {
		return app.Model{}, "", errors.New(errmsg.Format(errmsg.OpCarousel, err))
	}
	return m, path, nil
}

func main() {
	flag.StringVar(&contentFlag, "content", "", "path to a YAML card catalog")
	flag.Parse()
	os.Exit(run())
}

func run() int {
	if os.Getenv("SHOWCASE_DEBUG") != "" {
		f, err := tea.LogToFile("debug.log", "showcase")
		if err != nil {
			fmt.Println(errmsg.Format(errmsg.OpInitialize, err))
			return 1
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	m, path, err := initialModel()
	if err != nil {
		fmt.Println(err)
		return 1
	}

	// Live reload is best-effort; the page works without it.
	if path != "" {
		w, err := watcher.New(path, 0)
		if err != nil {
			log.Printf("content reload disabled: %v", err)
		} else {
			defer w.Close()
			m = m.WatchContent(path, w.Changes())
		}
	}

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion())
	if _, err := p.Run(); err != nil {
		fmt.Println(errmsg.Format(errmsg.OpInitialize, err))
		return 1
	}
	return 0
}
