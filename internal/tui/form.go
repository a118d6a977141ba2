package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-climate-intel/models"
)

type field struct {
	label       string
	placeholder string
	secret      bool
	limit       int
}

// form is a column of labelled text inputs with tab navigation.
type form struct {
	labels []string
	inputs []textinput.Model
	focus  int
}

func newForm(fields ...field) form {
	f := form{}
	for i, fd := range fields {
		in := textinput.New()
		in.Placeholder = fd.placeholder
		in.CharLimit = fd.limit
		in.Width = 40
		if fd.secret {
			in.EchoMode = textinput.EchoPassword
			in.EchoCharacter = '*'
		}
		if i == 0 {
			in.Focus()
		}
		f.labels = append(f.labels, fd.label)
		f.inputs = append(f.inputs, in)
	}
	return f
}

func (f *form) focusNext() {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus + 1) % len(f.inputs)
	f.inputs[f.focus].Focus()
}

func (f *form) focusPrev() {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus - 1 + len(f.inputs)) % len(f.inputs)
	f.inputs[f.focus].Focus()
}

func (f *form) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}

func (f form) value(i int) string {
	return strings.TrimSpace(f.inputs[i].Value())
}

func (f *form) set(i int, v string) {
	f.inputs[i].SetValue(v)
}

func (f *form) reset() {
	for i := range f.inputs {
		f.inputs[i].Reset()
	}
	f.inputs[f.focus].Blur()
	f.focus = 0
	f.inputs[0].Focus()
}

func (f form) view() string {
	width := 0
	for _, l := range f.labels {
		width = max(width, len([]rune(l)))
	}

	var b strings.Builder
	for i, in := range f.inputs {
		label := f.labels[i]
		b.WriteString(label)
		b.WriteString(strings.Repeat(" ", width-len([]rune(label))))
		b.WriteString(" │ [")
		b.WriteString(in.View())
		b.WriteString("]\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// parseIdentity treats input containing "@" as an email and anything else as
// a phone number.
func parseIdentity(input string) models.Identity {
	input = strings.TrimSpace(input)
	if strings.Contains(input, "@") {
		return models.Identity{Email: input}
	}
	return models.Identity{Phone: input}
}

// parseFloat accepts an empty string as zero.
func parseFloat(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	return strconv.ParseFloat(s, 64)
}
