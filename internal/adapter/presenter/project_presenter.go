package presenter

import (
	projectDTO "github.com/johnquangdev/project-hub/internal/adapter/dto/project"
	"github.com/johnquangdev/project-hub/internal/domain/entities"
)

// ToProjectListResponse converts catalog items
func ToProjectListResponse(items []*entities.ProjectListItem) *projectDTO.ProjectListResponse {
	if items == nil {
		items = []*entities.ProjectListItem{}
	}
	return &projectDTO.ProjectListResponse{
		Projects: items,
		Total:    len(items),
	}
}

// ToTaskListResponse converts projected tasks
func ToTaskListResponse(tasks []entities.ProjectTask, format DateFormatter) *projectDTO.TaskListResponse {
	out := make([]projectDTO.TaskResponse, len(tasks))
	for i, task := range tasks {
		out[i] = projectDTO.TaskResponse{ProjectTask: task}
		if task.StartDate != nil {
			out[i].StartDateLabel = format(*task.StartDate)
		}
	}
	return &projectDTO.TaskListResponse{
		Tasks: out,
		Total: len(out),
	}
}
