package testutil

import tea "github.com/charmbracelet/bubbletea"

// Updater is a bubbletea model whose Update returns its own concrete type.
type Updater[M any] interface {
	Update(msg tea.Msg) (M, tea.Cmd)
}

// Harness wraps a model for testing, providing helpers to simulate
// user interactions and collect the returned commands.
type Harness[M Updater[M]] struct {
	model M
	cmds  []tea.Cmd
}

// NewHarness creates a test harness around m.
func NewHarness[M Updater[M]](m M) *Harness[M] {
	return &Harness[M]{model: m}
}

// Model returns the current model.
func (h *Harness[M]) Model() M {
	return h.model
}

// Send delivers msg to the model and returns the resulting command.
func (h *Harness[M]) Send(msgs ...tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	for _, msg := range msgs {
		h.model, cmd = h.model.Update(msg)
		if cmd != nil {
			h.cmds = append(h.cmds, cmd)
		}
	}
	return cmd
}

// Commands returns all commands collected since creation or last ClearCommands.
func (h *Harness[M]) Commands() []tea.Cmd {
	return h.cmds
}

// ClearCommands clears the collected commands.
func (h *Harness[M]) ClearCommands() {
	h.cmds = nil
}

// Key builds a key message from its string form ("left", "ctrl+c", "g").
func Key(s string) tea.KeyMsg {
	if k, ok := namedKeys[s]; ok {
		return tea.KeyMsg{Type: k}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var namedKeys = map[string]tea.KeyType{
	"left":      tea.KeyLeft,
	"right":     tea.KeyRight,
	"up":        tea.KeyUp,
	"down":      tea.KeyDown,
	"home":      tea.KeyHome,
	"end":       tea.KeyEnd,
	"pgup":      tea.KeyPgUp,
	"pgdown":    tea.KeyPgDown,
	"tab":       tea.KeyTab,
	"shift+tab": tea.KeyShiftTab,
	"enter":     tea.KeyEnter,
	"esc":       tea.KeyEscape,
	"ctrl+c":    tea.KeyCtrlC,
}

// Press builds a left-button press at (x, y).
func Press(x, y int) tea.MouseMsg {
	return mouse(x, y, tea.MouseActionPress, tea.MouseButtonLeft)
}

// Motion builds a left-button drag motion event at (x, y).
func Motion(x, y int) tea.MouseMsg {
	return mouse(x, y, tea.MouseActionMotion, tea.MouseButtonLeft)
}

// Hover builds a motion event with no button held.
func Hover(x, y int) tea.MouseMsg {
	return mouse(x, y, tea.MouseActionMotion, tea.MouseButtonNone)
}

// Release builds a button release at (x, y).
func Release(x, y int) tea.MouseMsg {
	return mouse(x, y, tea.MouseActionRelease, tea.MouseButtonNone)
}

// Wheel builds a wheel event; button is one of the tea.MouseButtonWheel* values.
func Wheel(x, y int, button tea.MouseButton) tea.MouseMsg {
	return mouse(x, y, tea.MouseActionPress, button)
}

func mouse(x, y int, action tea.MouseAction, button tea.MouseButton) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: action, Button: button}
}
