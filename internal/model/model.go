package model

import (
	"fmt"
	"strings"
)

type ProjectStatus string

const (
	ProjectStatusActive   ProjectStatus = "active"
	ProjectStatusFinished ProjectStatus = "finished"
)

// ProjectStatuses lists every status in board order.
var ProjectStatuses = []ProjectStatus{ProjectStatusActive, ProjectStatusFinished}

func (s ProjectStatus) String() string { return string(s) }

// ParseProjectStatus accepts a status name in any case ("Active", "FINISHED", ...).
func ParseProjectStatus(s string) (ProjectStatus, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "active":
		return ProjectStatusActive, nil
	case "finished":
		return ProjectStatusFinished, nil
	default:
		return "", fmt.Errorf("invalid project status: %q (expected active|finished)", s)
	}
}

type Project struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	People      int           `json:"people"`
	Status      ProjectStatus `json:"status"`
}
