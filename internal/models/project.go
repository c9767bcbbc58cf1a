package models

import "fmt"

// ProjectStatus represents the status of a project
type ProjectStatus string

const (
	StatusActive   ProjectStatus = "active"   // Project is being worked on
	StatusFinished ProjectStatus = "finished" // Project is done
)

// Project represents a submitted project
type Project struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	People      int           `json:"people"`
	Status      ProjectStatus `json:"status"`
}

// PeopleLabel describes how many people are assigned to the project
func (p Project) PeopleLabel() string {
	if p.People == 1 {
		return "1 person assigned"
	}
	return fmt.Sprintf("%d persons assigned", p.People)
}
