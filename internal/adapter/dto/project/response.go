package project

import "github.com/johnquangdev/project-hub/internal/domain/entities"

// ProjectListResponse represents the catalog list
type ProjectListResponse struct {
	Projects []*entities.ProjectListItem `json:"projects"`
	Total    int                         `json:"total"`
}

// TaskResponse represents one projected task
type TaskResponse struct {
	entities.ProjectTask
	StartDateLabel string `json:"start_date_label,omitempty"`
}

// TaskListResponse represents a flattened task list
type TaskListResponse struct {
	Tasks []TaskResponse `json:"tasks"`
	Total int            `json:"total"`
}
