package components

import (
	"testing"

	"prjdeck/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectListFollowsState(t *testing.T) {
	state := models.NewProjectState(nil)
	active := NewProjectList(ListActive, state, 40, 20)
	finished := NewProjectList(ListFinished, state, 40, 20)

	assert.Empty(t, active.Projects)
	assert.Contains(t, active.View(), "ACTIVE PROJECTS")
	assert.Contains(t, finished.View(), "FINISHED PROJECTS")

	state.AddProject("one", "description", 3)
	state.AddProject("two", "description", 1)

	for _, l := range []*ProjectList{active, finished} {
		require.Len(t, l.Projects, 2)
		assert.Len(t, l.List.Items(), 2)
		assert.Equal(t, "1", l.Projects[0].ID)
		require.NotNil(t, l.Selected)
		assert.Equal(t, "one", l.Selected.Title)
	}
}

func TestProjectItem(t *testing.T) {
	item := ProjectItem{Project: models.Project{Title: "one", People: 1}}
	assert.Equal(t, "one", item.Title())
	assert.Equal(t, "one", item.FilterValue())
	assert.Equal(t, "1 person assigned", item.Description())
}

func TestProjectInputFormValuesAndClear(t *testing.T) {
	form := NewProjectInputForm()
	assert.True(t, form.Active)
	assert.Equal(t, FieldTitle, form.Focused)

	in := models.ProjectInput{Title: "one", Description: "description", People: "3"}
	form.SetValues(in)
	assert.Equal(t, in, form.Values())

	form.Clear()
	assert.Equal(t, models.ProjectInput{}, form.Values())
}

func TestProjectInputFormFocus(t *testing.T) {
	form := NewProjectInputForm()

	form.FocusField(FieldPeople)
	assert.True(t, form.Inputs[FieldPeople].Focused())
	assert.False(t, form.Inputs[FieldTitle].Focused())

	form.Blur()
	assert.False(t, form.Active)
	for _, input := range form.Inputs {
		assert.False(t, input.Focused())
	}
}

func TestRenderDescription(t *testing.T) {
	assert.Contains(t, RenderDescription("", 40), "No description")
	assert.Contains(t, RenderDescription("hello", 40), "hello")
}
