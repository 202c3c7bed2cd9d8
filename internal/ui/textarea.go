package ui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
)

// TextAreaKeyMap defines the key bindings for a [TextArea] field.
type TextAreaKeyMap struct {
	Accept key.Binding
}

// DefaultTextAreaKeyMap is the default key map for a [TextArea] field.
var DefaultTextAreaKeyMap = TextAreaKeyMap{
	Accept: key.NewBinding(
		key.WithKeys("ctrl+d"),
		key.WithHelp("ctrl+d", "accept"),
	),
}

// TextArea is a field that accepts multiple lines of free-form text.
type TextArea struct {
	KeyMap TextAreaKeyMap

	title string
	desc  string

	model textarea.Model
	value *string
}

var _ Field = (*TextArea)(nil)

// NewTextArea builds a new text area field.
func NewTextArea() *TextArea {
	m := textarea.New()
	m.ShowLineNumbers = false
	m.CharLimit = 0 // no limit
	return &TextArea{
		KeyMap: DefaultTextAreaKeyMap,
		model:  m,
		value:  new(string),
	}
}

// WithValue sets the destination for the text area field.
// If the value is non-empty, it will be used as the initial value.
func (ta *TextArea) WithValue(value *string) *TextArea {
	ta.value = value
	ta.model.SetValue(*value)
	return ta
}

// Value returns the current value of the text area field.
func (ta *TextArea) Value() string {
	return *ta.value
}

// UnmarshalValue reads a string answer for the field,
// simulating user input.
func (ta *TextArea) UnmarshalValue(unmarshal func(any) error) error {
	return unmarshal(ta.value)
}

// WithTitle sets the title of the text area field.
func (ta *TextArea) WithTitle(title string) *TextArea {
	ta.title = title
	return ta
}

// Title returns the title of the text area field.
func (ta *TextArea) Title() string {
	return ta.title
}

// WithDescription sets the description of the text area field.
func (ta *TextArea) WithDescription(desc string) *TextArea {
	ta.desc = desc
	return ta
}

// Description returns the description of the text area field.
func (ta *TextArea) Description() string {
	return ta.desc
}

// Err reports any errors in the text area field.
func (ta *TextArea) Err() error {
	return nil
}

// Init initializes the field.
func (ta *TextArea) Init() tea.Cmd {
	return ta.model.Focus()
}

// Update handles a bubbletea event.
func (ta *TextArea) Update(msg tea.Msg) tea.Cmd {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && key.Matches(keyMsg, ta.KeyMap.Accept) {
		ta.model.Blur()
		*ta.value = ta.model.Value()
		return AcceptField
	}

	var cmd tea.Cmd
	ta.model, cmd = ta.model.Update(msg)
	*ta.value = ta.model.Value()
	return cmd
}

// Render renders the text area field.
func (ta *TextArea) Render(w Writer) {
	w.WriteString("\n")
	w.WriteString(ta.model.View())
}
