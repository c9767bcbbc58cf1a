package ui

import (
	"fmt"
	"prjdeck/internal/config"
	"prjdeck/internal/models"
	"prjdeck/internal/ui/components"
	"prjdeck/internal/util"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
)

// InvalidInputMessage is shown when a form submission fails validation
const InvalidInputMessage = "Invalid input, please try again!"

// Focus stops, in tab order
const (
	focusTitle = iota
	focusDescription
	focusPeople
	focusActive
	focusFinished
	focusCount
)

type keyMap struct {
	Next    key.Binding
	Prev    key.Binding
	Submit  key.Binding
	Dismiss key.Binding
	Quit    key.Binding
	Exit    key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Prev, k.Submit, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

var keys = keyMap{
	Next:    key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next")),
	Prev:    key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev")),
	Submit:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "add project")),
	Dismiss: key.NewBinding(key.WithKeys("enter", "esc"), key.WithHelp("enter", "dismiss")),
	Quit:    key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	Exit:    key.NewBinding(key.WithKeys("q")),
}

// Model represents the UI model
type Model struct {
	Input         *components.ProjectInputForm
	Active        *components.ProjectList
	Finished      *components.ProjectList
	Detail        viewport.Model
	Help          help.Model
	State         *models.ProjectState
	Config        *config.Config
	Logger        *zap.Logger
	Focus         int
	Alert         string
	StatusMessage string
	Width         int
	Height        int
	Ready         bool
}

// NewModel creates a new UI model. The project lists subscribe to state.
func NewModel(cfg *config.Config, state *models.ProjectState, logger *zap.Logger) Model {
	if cfg == nil {
		cfg = config.Default()
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return Model{
		Input:         components.NewProjectInputForm(),
		Active:        components.NewProjectList(components.ListActive, state, 40, 10),
		Finished:      components.NewProjectList(components.ListFinished, state, 40, 10),
		Detail:        viewport.New(40, 6),
		Help:          help.New(),
		State:         state,
		Config:        cfg,
		Logger:        logger,
		Focus:         focusTitle,
		StatusMessage: "Ready",
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return m.Input.FocusField(components.FieldTitle)
}

// Update handles UI updates
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, keys.Quit) {
			return m, tea.Quit
		}

		// The alert blocks every other key until dismissed
		if m.Alert != "" {
			if key.Matches(msg, keys.Dismiss) {
				m.Alert = ""
			}
			return m, nil
		}

		switch {
		case key.Matches(msg, keys.Next):
			return m, m.setFocus((m.Focus + 1) % focusCount)
		case key.Matches(msg, keys.Prev):
			return m, m.setFocus((m.Focus + focusCount - 1) % focusCount)
		case key.Matches(msg, keys.Submit) && m.Focus <= focusPeople:
			return m, m.submit()
		case key.Matches(msg, keys.Exit) && m.Focus > focusPeople:
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.resize()
		m.Ready = true
		return m, nil
	}

	var cmd tea.Cmd
	switch m.Focus {
	case focusActive:
		cmd = m.Active.Update(msg)
	case focusFinished:
		cmd = m.Finished.Update(msg)
	default:
		cmd = m.Input.Update(msg)
	}
	m.refreshDetail()

	return m, cmd
}

// submit validates the form, adds the project on success and clears the form
func (m *Model) submit() tea.Cmd {
	in := m.Input.Values()
	m.Logger.Debug("project form submitted",
		zap.String("title", in.Title),
		zap.String("description", in.Description),
		zap.String("people", in.People))

	title, description, people, err := in.Gather(m.Config)
	if err != nil {
		m.Logger.Info("project form rejected", zap.Error(err))
		m.Alert = InvalidInputMessage
		m.StatusMessage = "Error"
	} else {
		m.State.AddProject(title, description, people)
		m.StatusMessage = fmt.Sprintf("Added project %q", util.Truncate(title, 40))
	}

	m.Input.Clear()
	return m.setFocus(focusTitle)
}

func (m *Model) setFocus(focus int) tea.Cmd {
	m.Focus = focus
	m.refreshDetail()

	if focus <= focusPeople {
		return m.Input.FocusField(focus - focusTitle)
	}
	m.Input.Blur()
	return nil
}

// selected returns the project highlighted in the focused list, or in the
// active list when the form has focus
func (m Model) selected() *models.Project {
	if m.Focus == focusFinished {
		return m.Finished.Selected
	}
	return m.Active.Selected
}

func (m *Model) refreshDetail() {
	project := m.selected()
	if project == nil {
		m.Detail.SetContent("")
		return
	}

	header := lipgloss.NewStyle().Bold(true).Render(
		fmt.Sprintf("#%s %s · %s · %s", project.ID, project.Title, project.PeopleLabel(), project.Status))
	m.Detail.SetContent(lipgloss.JoinVertical(lipgloss.Left,
		header,
		components.RenderDescription(project.Description, m.Detail.Width),
	))
}

func (m *Model) resize() {
	listWidth := (m.Width - 2) / 2
	if listWidth < 20 {
		listWidth = 20
	}

	// Title, form, detail, status and help take roughly this many rows
	listHeight := m.Height - 20
	if listHeight < 6 {
		listHeight = 6
	}

	m.Active.SetSize(listWidth, listHeight)
	m.Finished.SetSize(listWidth, listHeight)
	m.Detail.Width = m.Width
	m.Detail.Height = 6
	m.Help.Width = m.Width
	m.refreshDetail()
}

// View renders the UI
func (m Model) View() string {
	if !m.Ready {
		return "Initializing..."
	}

	titleBar := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39")).
		Padding(0, 1).
		Render(fmt.Sprintf("prjdeck - %d projects", m.State.Len()))

	if m.Alert != "" {
		alert := lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("196")).
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("196")).
			Padding(1, 3).
			Render(m.Alert + "\n\n" + lipgloss.NewStyle().Faint(true).Render("press enter to continue"))

		return lipgloss.JoinVertical(lipgloss.Left,
			titleBar,
			lipgloss.Place(m.Width, m.Height-1, lipgloss.Center, lipgloss.Center, alert),
		)
	}

	lists := lipgloss.JoinHorizontal(lipgloss.Top,
		listFrame(m.Focus == focusActive).Render(m.Active.View()),
		listFrame(m.Focus == focusFinished).Render(m.Finished.View()),
	)

	statusBar := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Padding(0, 1).
		Render(m.StatusMessage)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		titleBar,
		m.Input.View(m.Width),
		lists,
		m.Detail.View(),
		statusBar,
		m.Help.View(keys),
	)
}

func listFrame(focused bool) lipgloss.Style {
	style := lipgloss.NewStyle().PaddingRight(1).BorderStyle(lipgloss.NormalBorder()).BorderLeft(true)
	if focused {
		return style.BorderForeground(lipgloss.Color("205"))
	}
	return style.BorderForeground(lipgloss.Color("236"))
}

// Run starts the interactive UI and blocks until it exits
func Run(cfg *config.Config, state *models.ProjectState, logger *zap.Logger) error {
	p := tea.NewProgram(NewModel(cfg, state, logger), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
