package views

import (
	"fmt"
	"log/slog"
	"math"

	"board-cli/internal/component"
	"board-cli/internal/dom"
	"board-cli/internal/state"
	"board-cli/internal/validate"

	"golang.org/x/net/html"
)

// InvalidInputMessage is shown when the form does not validate.
const InvalidInputMessage = "Invalid input, please try again!"

// Alerter shows a message the user must acknowledge.
type Alerter interface {
	Alert(msg string)
}

// AlertFunc adapts a function to Alerter.
type AlertFunc func(msg string)

func (f AlertFunc) Alert(msg string) { f(msg) }

// ProjectInput is the project creation form.
type ProjectInput struct {
	*component.Base

	state   *state.ProjectState
	alerter Alerter
	logger  *slog.Logger

	titleInput       *html.Node
	descriptionInput *html.Node
	peopleInput      *html.Node
}

var _ component.Component = (*ProjectInput)(nil)

func NewProjectInput(doc *dom.Document, st *state.ProjectState, alerter Alerter, logger *slog.Logger) (*ProjectInput, error) {
	base, err := component.Attach(doc, component.Spec{
		TemplateID:    "project-input",
		HostID:        "app",
		InsertAtStart: true,
		NewElementID:  "user-input",
	})
	if err != nil {
		return nil, err
	}
	in := &ProjectInput{Base: base, state: st, alerter: alerter, logger: orDiscard(logger)}
	if in.titleInput, err = base.Find("#title"); err != nil {
		return nil, fmt.Errorf("project input: %w", err)
	}
	if in.descriptionInput, err = base.Find("#description"); err != nil {
		return nil, fmt.Errorf("project input: %w", err)
	}
	if in.peopleInput, err = base.Find("#people"); err != nil {
		return nil, fmt.Errorf("project input: %w", err)
	}
	in.Configure()
	return in, nil
}

// Field returns the form control for "title", "description" or "people".
func (in *ProjectInput) Field(name string) *html.Node {
	switch name {
	case "title":
		return in.titleInput
	case "description":
		return in.descriptionInput
	case "people":
		return in.peopleInput
	default:
		return nil
	}
}

// SetValues fills the three fields.
func (in *ProjectInput) SetValues(title, description, people string) {
	dom.SetValue(in.titleInput, title)
	dom.SetValue(in.descriptionInput, description)
	dom.SetValue(in.peopleInput, people)
}

// Submit dispatches a submit event at the form, as pressing its submit button would.
func (in *ProjectInput) Submit() {
	in.Doc.Dispatch(in.Element, dom.NewEvent(dom.EventSubmit))
}

func (in *ProjectInput) Configure() {
	in.On(dom.EventSubmit, in.submit)
}

// RenderContent has nothing to render; the form is static.
func (in *ProjectInput) RenderContent() {}

func (in *ProjectInput) gatherUserInput() (title, description string, people int, ok bool) {
	enteredTitle := dom.Value(in.titleInput)
	enteredDescription := dom.Value(in.descriptionInput)
	enteredPeople := validate.ParseNumber(dom.Value(in.peopleInput))

	titleRules := validate.Validatable{
		Value:    enteredTitle,
		Required: true,
	}
	descriptionRules := validate.Validatable{
		Value:     enteredDescription,
		Required:  true,
		MinLength: validate.Int(5),
	}
	peopleRules := validate.Validatable{
		Value:    enteredPeople,
		Required: true,
		Min:      validate.Float(1),
		Max:      validate.Float(5),
	}

	if !validate.Validate(titleRules) || !validate.Validate(descriptionRules) || !validate.Validate(peopleRules) {
		in.alerter.Alert(InvalidInputMessage)
		return "", "", 0, false
	}
	return enteredTitle, enteredDescription, int(math.Trunc(enteredPeople)), true
}

func (in *ProjectInput) clearInputs() {
	in.SetValues("", "", "")
}

func (in *ProjectInput) submit(ev *dom.Event) {
	ev.PreventDefault()
	title, description, people, ok := in.gatherUserInput()
	if !ok {
		in.logger.Debug("project input rejected")
		return
	}
	in.state.AddProject(title, description, people)
	in.clearInputs()
}
