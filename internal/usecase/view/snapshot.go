package view

import (
	"context"
	"fmt"

	"github.com/johnquangdev/project-hub/internal/domain/entities"
	usecaseErrors "github.com/johnquangdev/project-hub/internal/usecase/errors"
	"github.com/johnquangdev/project-hub/internal/usecase/note"
)

// Snapshot is a view session together with the data it derives
type Snapshot struct {
	ID        string           `json:"id"`
	Kind      Kind             `json:"kind"`
	ProjectID string           `json:"project_id"`
	Table     *TableSnapshot   `json:"table,omitempty"`
	Preview   *PreviewSnapshot `json:"preview,omitempty"`
}

// TableSnapshot is the notes table as currently filtered and selected
type TableSnapshot struct {
	State       note.TableState        `json:"state"`
	Notes       []entities.ProjectNote `json:"notes"`
	AllSelected bool                   `json:"all_selected"`
}

// PreviewSnapshot is the rendered note with its panel and player state
type PreviewSnapshot struct {
	State note.PreviewState `json:"state"`
	View  note.View         `json:"view"`
}

func (s *Service) snapshot(ctx context.Context, rec *record) (*Snapshot, error) {
	snap := &Snapshot{ID: rec.ID, Kind: rec.Kind, ProjectID: rec.ProjectID}

	switch rec.Kind {
	case KindTable:
		filtered := rec.Table.Filtered(s.notes.ListNotes(ctx, rec.ProjectID, ""))
		snap.Table = &TableSnapshot{
			State:       *rec.Table,
			Notes:       filtered,
			AllSelected: rec.Table.Selected.AllSelected(filtered),
		}
	case KindPreview:
		v, err := s.notes.Render(ctx, rec.ProjectID, rec.NoteID)
		if err != nil {
			return nil, err
		}
		snap.Preview = &PreviewSnapshot{State: *rec.Preview, View: v}
	default:
		return nil, fmt.Errorf("%w: %s", usecaseErrors.ErrViewKind, rec.Kind)
	}
	return snap, nil
}
