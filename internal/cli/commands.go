package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/johnquangdev/project-hub/internal/domain/entities"
	"github.com/johnquangdev/project-hub/internal/usecase/note"
	"github.com/johnquangdev/project-hub/internal/usecase/project"
)

const dateLayout = "2006-01-02"

func formatter(opts *RootOptions, cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
}

// NewProjectsCommand creates the projects command.
func NewProjectsCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:          "projects",
		Short:        "List catalog projects",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := opts.workspace()
			if err != nil {
				return err
			}
			items, err := ws.projects.ListProjects(cmd.Context())
			if err != nil {
				return err
			}

			rows := make([][]string, 0, len(items))
			for _, p := range items {
				rows = append(rows, []string{
					p.ID,
					p.Name,
					string(p.Status),
					p.Priority,
					strconv.Itoa(p.Progress) + "%",
					strconv.Itoa(p.TaskCount),
				})
			}
			return formatter(opts, cmd).Write(items, []string{"ID", "NAME", "STATUS", "PRIORITY", "PROGRESS", "TASKS"}, rows)
		},
	}
}

// NewDetailsCommand creates the details command.
func NewDetailsCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:          "details <id>",
		Short:        "Print the synthesized details of a project",
		Long:         "Print the synthesized details of a project. Unknown ids resolve to a placeholder project.",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := opts.workspace()
			if err != nil {
				return err
			}
			d := ws.projects.GetProjectDetails(cmd.Context(), args[0])

			rows := [][]string{
				{"id", d.ID},
				{"name", d.Name},
				{"priority", d.Meta.PriorityLabel},
				{"location", d.Meta.LocationLabel},
				{"sprint", d.Meta.SprintLabel},
				{"workstreams", strconv.Itoa(len(d.Workstreams))},
				{"tasks", strconv.Itoa(d.TaskCount())},
				{"notes", strconv.Itoa(len(d.Notes))},
				{"quick links", strconv.Itoa(len(d.QuickLinks))},
			}
			return formatter(opts, cmd).Write(d, []string{"FIELD", "VALUE"}, rows)
		},
	}
}

// NewTasksCommand creates the tasks command.
func NewTasksCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:          "tasks [id]",
		Short:        "List the tasks of one project, or of every catalog project",
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := opts.workspace()
			if err != nil {
				return err
			}

			var tasks []entities.ProjectTask
			if len(args) == 1 {
				tasks = project.ProjectTasks(ws.projects.GetProjectDetails(cmd.Context(), args[0]))
			} else {
				tasks, err = ws.projects.ListAllTasks(cmd.Context())
				if err != nil {
					return err
				}
			}

			rows := make([][]string, 0, len(tasks))
			for _, t := range tasks {
				start := ""
				if t.StartDate != nil {
					start = t.StartDate.Format(dateLayout)
				}
				assignee := ""
				if t.Assignee != nil {
					assignee = t.Assignee.Name
				}
				rows = append(rows, []string{t.ProjectID, t.WorkstreamName, t.Name, string(t.Status), assignee, start})
			}
			if tasks == nil {
				tasks = []entities.ProjectTask{}
			}
			return formatter(opts, cmd).Write(tasks, []string{"PROJECT", "WORKSTREAM", "TASK", "STATUS", "ASSIGNEE", "START"}, rows)
		},
	}
}

// NewNotesCommand creates the notes command.
func NewNotesCommand(opts *RootOptions) *cobra.Command {
	var search string

	cmd := &cobra.Command{
		Use:          "notes <id>",
		Short:        "List the notes of a project",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := opts.workspace()
			if err != nil {
				return err
			}
			notes := ws.notes.ListNotes(cmd.Context(), args[0], search)

			rows := make([][]string, 0, len(notes))
			for _, n := range notes {
				rows = append(rows, []string{
					n.ID,
					n.Title,
					string(n.NoteType),
					string(n.Status),
					n.AddedDate.Format(dateLayout),
					n.AddedBy.Name,
				})
			}
			return formatter(opts, cmd).Write(notes, []string{"ID", "TITLE", "TYPE", "STATUS", "ADDED", "BY"}, rows)
		},
	}

	cmd.Flags().StringVarP(&search, "search", "s", "", "case-insensitive title filter")
	return cmd
}

// NewPreviewCommand creates the preview command.
func NewPreviewCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:          "preview <id> <noteId>",
		Short:        "Render one note as an audio or a text preview",
		Args:         cobra.ExactArgs(2),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := opts.workspace()
			if err != nil {
				return err
			}
			v, err := ws.notes.Render(cmd.Context(), args[0], args[1])
			if err != nil {
				return WrapExitError(ExitCommandError, fmt.Sprintf("cannot preview note %s of project %s", args[1], args[0]), err)
			}

			rows := [][]string{
				{"kind", string(v.Kind)},
				{"title", v.Note.Title},
				{"added by", v.Note.AddedBy.Name},
			}
			switch v.Kind {
			case note.KindAudio:
				rows = append(rows,
					[]string{"duration", v.Audio.Duration},
					[]string{"segments", strconv.Itoa(len(v.Audio.Transcript))},
				)
			default:
				rows = append(rows, []string{"content", v.Content})
			}
			return formatter(opts, cmd).Write(v, []string{"FIELD", "VALUE"}, rows)
		},
	}
}
