package keymap

// Binding describes a single key binding.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Context     string // "global", "carousel", "help"
}

// Bindings contains every key binding, in help display order.
var Bindings = []Binding{
	// Global
	{ActionQuit, []string{"q", "ctrl+c"}, "Quit application", "global"},
	{ActionSwitchFocus, []string{"tab"}, "Focus next carousel", "global"},
	{ActionFocusPrev, []string{"shift+tab"}, "Focus previous carousel", "global"},
	{ActionPageUp, []string{"pgup", "K"}, "Scroll page up", "global"},
	{ActionPageDown, []string{"pgdown", "J"}, "Scroll page down", "global"},
	{ActionHelp, []string{"?"}, "Show help", "global"},

	// Carousel (hovered or focused)
	{ActionScrollLeft, []string{"left", "h"}, "Previous card", "carousel"},
	{ActionScrollRight, []string{"right", "l"}, "Next card", "carousel"},
	{ActionScrollStart, []string{"home", "g"}, "First card", "carousel"},
	{ActionScrollEnd, []string{"end", "G"}, "Last card", "carousel"},

	// Help panel
	{ActionHelpDown, []string{"j", "down"}, "Scroll down", "help"},
	{ActionHelpUp, []string{"k", "up"}, "Scroll up", "help"},
	{ActionHelpClose, []string{"?", "esc", "q"}, "Close help", "help"},
}

// ByContext returns key bindings filtered by context.
func ByContext(context string) []Binding {
	var result []Binding
	for _, kb := range Bindings {
		if kb.Context == context {
			result = append(result, kb)
		}
	}
	return result
}

// Contexts returns the distinct binding contexts in declaration order.
func Contexts() []string {
	var result []string
	seen := make(map[string]bool)
	for _, kb := range Bindings {
		if !seen[kb.Context] {
			seen[kb.Context] = true
			result = append(result, kb.Context)
		}
	}
	return result
}
