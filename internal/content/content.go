// Package content defines the card records shown by the carousels.
// Records are read-only once loaded; renderers and scrollers never modify them.
package content

import (
	"net/url"
	"os"

	"github.com/dustin/go-humanize"
)

// Kind identifies the family a record belongs to.
type Kind string

const (
	KindStat    Kind = "stat"
	KindProject Kind = "project"
	KindStep    Kind = "step"
)

// Record is one card's content.
type Record interface {
	Kind() Kind
	Name() string
	ImageRef() string
}

// Stat is a headline number with a label ("38,406 / MT of plastic collected").
type Stat struct {
	Caption      string `yaml:"caption"` // small text in the top corner
	CaptionColor string `yaml:"caption_color"`
	DotColor     string `yaml:"dot_color"`
	Label        string `yaml:"label"`
	LabelColor   string `yaml:"label_color"`
	Value        string `yaml:"value"` // preformatted, wins over Count
	Count        *int64 `yaml:"count"`
	Suffix       string `yaml:"suffix"`
	ValueColor   string `yaml:"value_color"`
	Image        string `yaml:"image"`
	BgColor      string `yaml:"bg_color"`
	KnowMore     bool   `yaml:"know_more"`
}

func (s Stat) Kind() Kind { return KindStat }
func (s Stat) ImageRef() string { return s.Image }

// Name returns the label, or the caption for caption-only cards.
func (s Stat) Name() string {
	if s.Label != "" {
		return s.Label
	}
	return s.Caption
}

// DisplayValue returns the headline number with thousands separators.
func (s Stat) DisplayValue() string {
	if s.Value != "" {
		return s.Value
	}
	if s.Count == nil {
		return ""
	}
	return humanize.Comma(*s.Count) + s.Suffix
}

// TextPosition places a project's title over its image.
type TextPosition string

const (
	TextTop    TextPosition = "top"
	TextBottom TextPosition = "bottom"
)

// Project is an image card with a title overlay.
type Project struct {
	Title        string       `yaml:"title"`
	TitleColor   string       `yaml:"title_color"`
	Image        string       `yaml:"image"`
	BgColor      string       `yaml:"bg_color"`
	TextPosition TextPosition `yaml:"text_position"`
}

func (p Project) Kind() Kind { return KindProject }
func (p Project) Name() string { return p.Title }
func (p Project) ImageRef() string { return p.Image }

// Step is one numbered stage of a process with an optional checklist.
type Step struct {
	Number           int      `yaml:"step"`
	Title            string   `yaml:"title"`
	TitleColor       string   `yaml:"title_color"`
	Description      string   `yaml:"description"`
	DescriptionColor string   `yaml:"description_color"`
	Checklist        []string `yaml:"checklist"`
	ChecklistColor   string   `yaml:"checklist_color"`
	Image            string   `yaml:"image"`
	BgColor          string   `yaml:"bg_color"`
}

func (s Step) Kind() Kind { return KindStep }
func (s Step) Name() string { return s.Title }
func (s Step) ImageRef() string { return s.Image }

// ImageAvailable reports whether ref looks loadable: an absolute http(s)
// URL or an existing local file. Cards fall back to a placeholder otherwise.
func ImageAvailable(ref string) bool {
	if ref == "" {
		return false
	}
	if u, err := url.Parse(ref); err == nil && u.Scheme != "" {
		return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
	}
	info, err := os.Stat(ref)
	return err == nil && !info.IsDir()
}
