// Package script replays board actions headlessly through the same views the terminal
// host drives, for `board render`.
package script

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"board-cli/internal/dom"
	"board-cli/internal/model"
	"board-cli/internal/state"
	"board-cli/internal/views"
)

// Script is an ordered list of actions. JSON is accepted too, as a YAML subset.
type Script struct {
	Actions []Action `yaml:"actions"`
}

// Action holds exactly one of Submit, Add or Move.
type Action struct {
	Submit *SubmitAction `yaml:"submit,omitempty"`
	Add    *AddAction    `yaml:"add,omitempty"`
	Move   *MoveAction   `yaml:"move,omitempty"`
}

// SubmitAction fills the form fields with raw text and submits it.
type SubmitAction struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	People      string `yaml:"people"`
}

// AddAction adds a project directly, bypassing validation.
type AddAction struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	People      int    `yaml:"people"`
}

// MoveAction drags a project onto the list for Status. Project is a project id or a
// 1-based creation index.
type MoveAction struct {
	Project string `yaml:"project"`
	Status  string `yaml:"status"`
}

// Result is the board after a replay.
type Result struct {
	Active   []model.Project `json:"active"`
	Finished []model.Project `json:"finished"`
	Alerts   []string        `json:"alerts"`
}

// Parse decodes a script and checks that every action names exactly one kind.
func Parse(r io.Reader) (Script, error) {
	var s Script
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return Script{}, nil
		}
		return Script{}, fmt.Errorf("parse script: %w", err)
	}
	for i, a := range s.Actions {
		n := 0
		for _, set := range []bool{a.Submit != nil, a.Add != nil, a.Move != nil} {
			if set {
				n++
			}
		}
		if n != 1 {
			return Script{}, fmt.Errorf("action %d: expected exactly one of submit, add, move", i+1)
		}
	}
	return s, nil
}

// Run mounts a fresh board from markup and applies each action in order. opts configure
// the board's state container.
func Run(markup string, s Script, logger *slog.Logger, opts ...state.Option) (Result, error) {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	doc, err := dom.ParseString(markup)
	if err != nil {
		return Result{}, err
	}
	res := Result{Alerts: []string{}}
	st := state.New(append([]state.Option{state.WithLogger(logger)}, opts...)...)
	app, err := views.NewApp(doc, st, views.AlertFunc(func(msg string) {
		res.Alerts = append(res.Alerts, msg)
	}), logger)
	if err != nil {
		return Result{}, err
	}

	for i, a := range s.Actions {
		switch {
		case a.Submit != nil:
			app.Input.SetValues(a.Submit.Title, a.Submit.Description, a.Submit.People)
			app.Input.Submit()
		case a.Add != nil:
			st.AddProject(a.Add.Title, a.Add.Description, a.Add.People)
		case a.Move != nil:
			if err := move(app, a.Move); err != nil {
				return Result{}, fmt.Errorf("action %d: %w", i+1, err)
			}
		}
		doc.Prune()
		logger.Debug("script action applied", "index", i+1)
	}

	res.Active = nonNil(app.Active.Projects())
	res.Finished = nonNil(app.Finished.Projects())
	return res, nil
}

func move(app *views.App, m *MoveAction) error {
	status, err := model.ParseProjectStatus(m.Status)
	if err != nil {
		return err
	}
	id, err := resolveProject(app.State.Projects(), m.Project)
	if err != nil {
		return err
	}
	app.DragProject(id, status)
	return nil
}

func resolveProject(projects []model.Project, ref string) (string, error) {
	ref = strings.TrimSpace(ref)
	for _, p := range projects {
		if p.ID == ref {
			return p.ID, nil
		}
	}
	if n, err := strconv.Atoi(ref); err == nil && n >= 1 && n <= len(projects) {
		return projects[n-1].ID, nil
	}
	return "", dom.NotFoundError{Kind: "project", ID: ref}
}

func nonNil(ps []model.Project) []model.Project {
	if ps == nil {
		return []model.Project{}
	}
	return ps
}
