// Package keymap defines key bindings and action dispatch for the application.
package keymap

// Action represents a user-triggerable action.
type Action string

const (
	// Global actions
	ActionQuit        Action = "quit"
	ActionSwitchFocus Action = "switch_focus"
	ActionFocusPrev   Action = "focus_prev"
	ActionHelp        Action = "help"
	ActionPageUp      Action = "page_up"
	ActionPageDown    Action = "page_down"

	// Carousel actions, gated by hover or focus
	ActionScrollLeft  Action = "scroll_left"
	ActionScrollRight Action = "scroll_right"
	ActionScrollStart Action = "scroll_start"
	ActionScrollEnd   Action = "scroll_end"

	// Help panel
	ActionHelpUp    Action = "help_up"
	ActionHelpDown  Action = "help_down"
	ActionHelpClose Action = "help_close"
)
