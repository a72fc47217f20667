package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/johnquangdev/project-hub/internal/adapter/repository"
	"github.com/johnquangdev/project-hub/internal/domain/repositories"
	"github.com/johnquangdev/project-hub/internal/usecase/note"
	"github.com/johnquangdev/project-hub/internal/usecase/project"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose  bool
	Format   string // "json" | "text"
	SeedPath string
	Timezone string

	now project.Clock
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"json", "text"}

// NewRootCommand creates the root command for projectctl.
func NewRootCommand() *cobra.Command {
	return newRootCommand(&RootOptions{})
}

func newRootCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "projectctl",
		Short: "Inspect the project workspace",
		Long:  "Reads the project catalog and prints synthesized project details, tasks and notes.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			if _, err := time.LoadLocation(opts.Timezone); err != nil {
				return fmt.Errorf("invalid timezone %q: %w", opts.Timezone, err)
			}
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "json", "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.SeedPath, "seed", "", "YAML catalog file (defaults to the built-in catalog)")
	cmd.PersistentFlags().StringVar(&opts.Timezone, "tz", "Local", "workspace time zone")

	cmd.AddCommand(NewProjectsCommand(opts))
	cmd.AddCommand(NewDetailsCommand(opts))
	cmd.AddCommand(NewTasksCommand(opts))
	cmd.AddCommand(NewNotesCommand(opts))
	cmd.AddCommand(NewPreviewCommand(opts))

	return cmd
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}

// workspace wires the read-only services the commands share
type workspace struct {
	projects *project.ProjectService
	notes    *note.Service
	logger   *zap.Logger
}

func (o *RootOptions) workspace() (*workspace, error) {
	logger := zap.NewNop()
	if o.Verbose {
		l, err := zap.NewDevelopment()
		if err != nil {
			return nil, fmt.Errorf("failed to initialize logger: %w", err)
		}
		logger = l
	}

	var catalog repositories.ProjectCatalog
	if o.SeedPath != "" {
		c, err := repository.LoadCatalogFile(o.SeedPath)
		if err != nil {
			return nil, WrapExitError(ExitCommandError, "failed to load catalog", err)
		}
		catalog = c
	} else {
		catalog = repository.NewSeedCatalogRepository()
	}

	now := o.now
	if now == nil {
		loc, err := time.LoadLocation(o.Timezone)
		if err != nil {
			return nil, err
		}
		now = func() time.Time { return time.Now().In(loc) }
	}

	synth := project.NewSynthesizer(project.DefaultSynthesizerConfig(), now, nil, project.DefaultOverrides())
	projects := project.NewProjectService(catalog, synth, logger)
	return &workspace{
		projects: projects,
		notes:    note.NewService(projects),
		logger:   logger,
	}, nil
}
