package project

import "github.com/johnquangdev/project-hub/internal/domain/entities"

// ProjectTasks flattens the workstreams of d into project-qualified tasks,
// walking groups and then tasks in stored order. Each task is copied.
func ProjectTasks(d *entities.ProjectDetails) []entities.ProjectTask {
	if d == nil {
		return []entities.ProjectTask{}
	}

	tasks := make([]entities.ProjectTask, 0, d.TaskCount())
	for _, group := range d.Workstreams {
		for _, task := range group.Tasks {
			tasks = append(tasks, entities.ProjectTask{
				WorkstreamTask: task.Clone(),
				ProjectID:      d.ID,
				ProjectName:    d.Name,
				WorkstreamID:   group.ID,
				WorkstreamName: group.Name,
			})
		}
	}
	return tasks
}
