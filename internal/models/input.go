package models

import (
	"math"
	"prjdeck/internal/config"
	"prjdeck/internal/validate"
)

// ProjectInput holds the raw field values of a project form submission
type ProjectInput struct {
	Title       string
	Description string
	People      string
}

// Gather validates the raw fields against the configured rules and returns
// the values to store. It returns ErrInvalidInput if any field fails.
func (in ProjectInput) Gather(cfg *config.Config) (title, description string, people int, err error) {
	if cfg == nil {
		cfg = config.Default()
	}

	peopleValue := validate.ParseNumber(in.People)

	titleValidatable := validate.Validatable{
		Value:    validate.Text(in.Title),
		Required: true,
	}
	descriptionValidatable := validate.Validatable{
		Value:     validate.Text(in.Description),
		Required:  true,
		MinLength: validate.Int(cfg.DescriptionMinLength),
	}
	peopleValidatable := validate.Validatable{
		Value:    validate.Number(peopleValue),
		Required: true,
		Min:      validate.Float(cfg.PeopleMin),
		Max:      validate.Float(cfg.PeopleMax),
	}

	if !validate.Validate(titleValidatable) ||
		!validate.Validate(descriptionValidatable) ||
		!validate.Validate(peopleValidatable) {
		return "", "", 0, ErrInvalidInput
	}

	// People is a head count
	if peopleValue != math.Trunc(peopleValue) {
		return "", "", 0, ErrInvalidInput
	}

	return in.Title, in.Description, int(peopleValue), nil
}
