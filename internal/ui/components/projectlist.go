package components

import (
	"prjdeck/internal/models"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ListType tags a project list
type ListType string

const (
	ListActive   ListType = "active"
	ListFinished ListType = "finished"
)

// ProjectItem represents a project item in the list
type ProjectItem struct {
	Project models.Project
}

// FilterValue returns the filter value for the project item
func (i ProjectItem) FilterValue() string {
	return i.Project.Title
}

// Title returns the title for the project item
func (i ProjectItem) Title() string {
	return i.Project.Title
}

// Description returns the description for the project item
func (i ProjectItem) Description() string {
	return i.Project.PeopleLabel()
}

// ProjectList renders the projects of a ProjectState. It is refreshed
// by a listener, so it must be shared by pointer.
type ProjectList struct {
	Type     ListType
	List     list.Model
	Projects []models.Project
	Selected *models.Project
}

var (
	listTitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("39")).
			Bold(true).
			Padding(0, 1)

	finishedTitleStyle = listTitleStyle.
				Background(lipgloss.Color("241"))
)

// NewProjectList creates a project list and subscribes it to state
func NewProjectList(listType ListType, state *models.ProjectState, width, height int) *ProjectList {
	listModel := list.New([]list.Item{}, list.NewDefaultDelegate(), width, height)
	listModel.SetShowStatusBar(false)
	listModel.SetShowHelp(false)
	listModel.SetFilteringEnabled(false)
	listModel.Title = "ACTIVE PROJECTS"
	listModel.Styles.Title = listTitleStyle
	if listType == ListFinished {
		listModel.Title = "FINISHED PROJECTS"
		listModel.Styles.Title = finishedTitleStyle
	}

	l := &ProjectList{
		Type:     listType,
		List:     listModel,
		Projects: []models.Project{},
	}

	// Both lists currently show every project regardless of status
	state.AddListener(l.SetProjects)

	return l
}

// SetProjects replaces the rendered projects
func (l *ProjectList) SetProjects(projects []models.Project) {
	l.Projects = projects

	items := make([]list.Item, len(projects))
	for i, project := range projects {
		items[i] = ProjectItem{Project: project}
	}

	l.List.SetItems(items)
	l.updateSelected()
}

// SetSize resizes the list
func (l *ProjectList) SetSize(width, height int) {
	l.List.SetSize(width, height)
}

// Update handles project list updates
func (l *ProjectList) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	l.List, cmd = l.List.Update(msg)
	l.updateSelected()
	return cmd
}

func (l *ProjectList) updateSelected() {
	if item, ok := l.List.SelectedItem().(ProjectItem); ok {
		project := item.Project
		l.Selected = &project
	} else {
		l.Selected = nil
	}
}

// View renders the project list
func (l *ProjectList) View() string {
	if len(l.Projects) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left,
			l.List.Styles.Title.Render(l.List.Title),
			"",
			emptyStyle.Render("No projects yet."),
		)
	}
	return l.List.View()
}
