package components

import (
	"prjdeck/internal/models"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Field indexes of the project input form
const (
	FieldTitle = iota
	FieldDescription
	FieldPeople
	fieldCount
)

var (
	labelStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Width(13)
	focusedLabelStyle = labelStyle.Foreground(lipgloss.Color("205")).Bold(true)
	formStyle         = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("39")).
				Padding(0, 1)
)

// ProjectInputForm collects the title, description and people fields
type ProjectInputForm struct {
	Inputs  []textinput.Model
	Focused int
	Active  bool
}

// NewProjectInputForm creates the form with the title field focused
func NewProjectInputForm() *ProjectInputForm {
	inputs := make([]textinput.Model, fieldCount)

	inputs[FieldTitle] = textinput.New()
	inputs[FieldTitle].Placeholder = "Project title"
	inputs[FieldTitle].CharLimit = 120

	inputs[FieldDescription] = textinput.New()
	inputs[FieldDescription].Placeholder = "What is it about? (Markdown)"
	inputs[FieldDescription].CharLimit = 1000

	inputs[FieldPeople] = textinput.New()
	inputs[FieldPeople].Placeholder = "0"
	inputs[FieldPeople].CharLimit = 6

	for i := range inputs {
		inputs[i].Prompt = "› "
	}

	f := &ProjectInputForm{Inputs: inputs}
	f.FocusField(FieldTitle)
	return f
}

// FocusField focuses the given field and blurs the others
func (f *ProjectInputForm) FocusField(field int) tea.Cmd {
	f.Active = true
	f.Focused = field

	var cmd tea.Cmd
	for i := range f.Inputs {
		if i == field {
			cmd = f.Inputs[i].Focus()
			continue
		}
		f.Inputs[i].Blur()
	}
	return cmd
}

// Blur removes focus from every field
func (f *ProjectInputForm) Blur() {
	f.Active = false
	for i := range f.Inputs {
		f.Inputs[i].Blur()
	}
}

// Values returns the raw field values
func (f *ProjectInputForm) Values() models.ProjectInput {
	return models.ProjectInput{
		Title:       f.Inputs[FieldTitle].Value(),
		Description: f.Inputs[FieldDescription].Value(),
		People:      f.Inputs[FieldPeople].Value(),
	}
}

// SetValues fills the fields
func (f *ProjectInputForm) SetValues(in models.ProjectInput) {
	f.Inputs[FieldTitle].SetValue(in.Title)
	f.Inputs[FieldDescription].SetValue(in.Description)
	f.Inputs[FieldPeople].SetValue(in.People)
}

// Clear empties every field
func (f *ProjectInputForm) Clear() {
	for i := range f.Inputs {
		f.Inputs[i].Reset()
	}
}

// Update forwards a message to the focused field
func (f *ProjectInputForm) Update(msg tea.Msg) tea.Cmd {
	if !f.Active {
		return nil
	}

	var cmd tea.Cmd
	f.Inputs[f.Focused], cmd = f.Inputs[f.Focused].Update(msg)
	return cmd
}

// View renders the form
func (f *ProjectInputForm) View(width int) string {
	labels := []string{"Title", "Description", "People"}

	rows := make([]string, len(f.Inputs))
	for i := range f.Inputs {
		style := labelStyle
		if f.Active && i == f.Focused {
			style = focusedLabelStyle
		}
		rows[i] = lipgloss.JoinHorizontal(lipgloss.Top, style.Render(labels[i]), f.Inputs[i].View())
	}

	style := formStyle
	if width > 4 {
		style = style.Width(width - 4)
	}
	if !f.Active {
		style = style.BorderForeground(lipgloss.Color("241"))
	}

	return style.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}
