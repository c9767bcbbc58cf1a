package commands

import (
	"fmt"
	"io"
	"prjdeck/internal/models"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a project without the interactive form",
	Long: `Validate a project the same way the form does, add it to an empty
project list and print the active and finished lists.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		title, _ := cmd.Flags().GetString("title")
		description, _ := cmd.Flags().GetString("description")
		people, _ := cmd.Flags().GetString("people")

		logger.Debug("add requested",
			zap.String("title", title),
			zap.String("description", description),
			zap.String("people", people))

		in := models.ProjectInput{Title: title, Description: description, People: people}
		title, description, count, err := in.Gather(globalConfig)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		state := models.NewProjectState(logger)
		state.AddListener(func(projects []models.Project) {
			printProjects(out, "ACTIVE PROJECTS", projects)
		})
		state.AddListener(func(projects []models.Project) {
			printProjects(out, "FINISHED PROJECTS", projects)
		})

		state.AddProject(title, description, count)
		return nil
	},
}

func printProjects(w io.Writer, heading string, projects []models.Project) {
	color.New(color.Bold, color.FgCyan).Fprintln(w, heading)
	if len(projects) == 0 {
		color.New(color.Faint).Fprintln(w, "  (none)")
		return
	}

	for _, project := range projects {
		fmt.Fprintf(w, "  %s. %s ", project.ID, color.GreenString(project.Title))
		color.New(color.FgYellow).Fprintf(w, "(%s)\n", project.PeopleLabel())
		if project.Description != "" {
			fmt.Fprintf(w, "     %s\n", project.Description)
		}
	}
	fmt.Fprintln(w)
}

func init() {
	addCmd.Flags().String("title", "", "Project title")
	addCmd.Flags().String("description", "", "Project description")
	addCmd.Flags().String("people", "", "Number of people assigned")
}
