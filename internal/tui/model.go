package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/glamour"

	"github.com/alexander-akhmetov/todolist/internal/config"
	"github.com/alexander-akhmetov/todolist/internal/event"
	"github.com/alexander-akhmetov/todolist/internal/todo"
)

type focusArea int

const (
	focusInput focusArea = iota
	focusList
	focusEdit
)

func (f focusArea) String() string {
	switch f {
	case focusInput:
		return "input"
	case focusList:
		return "list"
	case focusEdit:
		return "edit"
	default:
		return "unknown"
	}
}

// press is a left mouse press on an item row that has not been released yet.
type press struct {
	row int
}

// click remembers the last click for double-click detection.
type click struct {
	id string
	at time.Time
}

// changeLog collects store events between two Update calls. It is shared
// by pointer so every copy of the Model sees the same buffer.
type changeLog struct {
	pending []event.Event
}

func (c *changeLog) record(e event.Event) {
	c.pending = append(c.pending, e)
}

func (c *changeLog) drain() []event.Event {
	out := c.pending
	c.pending = nil
	return out
}

// Model is the bubbletea model for the to-do list.
type Model struct {
	store   *todo.Store
	changes *changeLog

	keys      keyMap
	help      help.Model
	input     textinput.Model
	editInput textinput.Model
	list      viewport.Model
	styles    styles

	title       string
	mouse       bool
	hideHelp    bool
	charLimit   int
	doubleClick time.Duration
	now         func() time.Time

	focus      focusArea
	editReturn focusArea // focus to restore when an edit ends
	cursor     int
	dropTarget int // row under the pointer or cursor while dragging, -1 otherwise
	press      *press
	lastClick  click
	status     string

	showHelp bool
	renderer *glamour.TermRenderer

	width  int
	height int
	ready  bool
}

// NewModel creates a Model driving store with the given configuration.
// Items already in the store are shown as-is.
func NewModel(store *todo.Store, cfg *config.Config) Model {
	changes := &changeLog{}
	store.OnChange(changes.record)

	input := textinput.New()
	input.Prompt = "> "
	input.Placeholder = cfg.Placeholder
	input.CharLimit = cfg.CharLimit
	input.Focus()

	editInput := textinput.New()
	editInput.Prompt = ""
	editInput.CharLimit = cfg.CharLimit

	return Model{
		store:       store,
		changes:     changes,
		keys:        defaultKeyMap(),
		help:        help.New(),
		input:       input,
		editInput:   editInput,
		list:        viewport.New(0, 0),
		styles:      newStyles(cfg.Theme),
		title:       cfg.Title,
		mouse:       cfg.Mouse,
		hideHelp:    cfg.HideHelp,
		charLimit:   cfg.CharLimit,
		doubleClick: cfg.DoubleClick(),
		now:         time.Now,
		focus:       focusInput,
		dropTarget:  -1,
	}
}

type rendererReadyMsg struct {
	renderer *glamour.TermRenderer
}

type clipboardMsg struct {
	text string
	err  error
}
