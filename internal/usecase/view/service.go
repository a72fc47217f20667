package view

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/johnquangdev/project-hub/internal/domain/repositories"
	usecaseErrors "github.com/johnquangdev/project-hub/internal/usecase/errors"
	"github.com/johnquangdev/project-hub/internal/usecase/note"
)

// Kind is the component a view session belongs to
type Kind string

const (
	KindTable   Kind = "table"
	KindPreview Kind = "preview"
)

// DefaultTTL is how long an untouched view session is kept
const DefaultTTL = 30 * time.Minute

// Event is a user input on a view session. Table views read Query and
// NoteID, preview views read Section and SegmentID.
type Event struct {
	Type      string       `json:"type"`
	Query     string       `json:"query,omitempty"`
	NoteID    string       `json:"note_id,omitempty"`
	Section   note.Section `json:"section,omitempty"`
	SegmentID string       `json:"segment_id,omitempty"`
}

// record is the stored form of a view session
type record struct {
	ID        string             `json:"id"`
	Kind      Kind               `json:"kind"`
	ProjectID string             `json:"project_id"`
	NoteID    string             `json:"note_id,omitempty"`
	Table     *note.TableState   `json:"table,omitempty"`
	Preview   *note.PreviewState `json:"preview,omitempty"`
	CreatedAt time.Time          `json:"created_at"`
	UpdatedAt time.Time          `json:"updated_at"`
}

// Service manages ephemeral view sessions. Sessions never write back into
// the project aggregate.
type Service struct {
	notes  *note.Service
	store  repositories.StateStore
	ttl    time.Duration
	now    func() time.Time
	newID  func() string
	logger *zap.Logger
}

// NewService creates a new view service
func NewService(notes *note.Service, store repositories.StateStore, ttl time.Duration, logger *zap.Logger) *Service {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		notes:  notes,
		store:  store,
		ttl:    ttl,
		now:    time.Now,
		newID:  uuid.NewString,
		logger: logger,
	}
}

// OpenTable starts a notes table session for projectID
func (s *Service) OpenTable(ctx context.Context, projectID string) (*Snapshot, error) {
	state := note.NewTableState()
	rec := s.newRecord(KindTable, projectID, "")
	rec.Table = &state
	if err := s.save(ctx, rec); err != nil {
		return nil, err
	}
	return s.snapshot(ctx, rec)
}

// OpenPreview starts a preview session for one note
func (s *Service) OpenPreview(ctx context.Context, projectID, noteID string) (*Snapshot, error) {
	if _, err := s.notes.GetNote(ctx, projectID, noteID); err != nil {
		return nil, err
	}
	state := note.NewPreviewState()
	rec := s.newRecord(KindPreview, projectID, noteID)
	rec.Preview = &state
	if err := s.save(ctx, rec); err != nil {
		return nil, err
	}
	return s.snapshot(ctx, rec)
}

// Get returns the current snapshot of a session
func (s *Service) Get(ctx context.Context, viewID string) (*Snapshot, error) {
	rec, err := s.load(ctx, viewID)
	if err != nil {
		return nil, err
	}
	return s.snapshot(ctx, rec)
}

// ApplyTable transitions a table session by one event
func (s *Service) ApplyTable(ctx context.Context, viewID string, ev note.TableEvent) (*Snapshot, error) {
	rec, err := s.loadKind(ctx, viewID, KindTable)
	if err != nil {
		return nil, err
	}

	notes := s.notes.ListNotes(ctx, rec.ProjectID, "")
	next, err := rec.Table.Apply(notes, ev)
	if err != nil {
		return nil, err
	}
	rec.Table = &next

	return s.commit(ctx, rec)
}

// ApplyPreview transitions a preview session by one event
func (s *Service) ApplyPreview(ctx context.Context, viewID string, ev note.PreviewEvent) (*Snapshot, error) {
	rec, err := s.loadKind(ctx, viewID, KindPreview)
	if err != nil {
		return nil, err
	}

	n, err := s.notes.GetNote(ctx, rec.ProjectID, rec.NoteID)
	if err != nil {
		return nil, err
	}
	next, err := rec.Preview.Apply(n, ev)
	if err != nil {
		return nil, err
	}
	rec.Preview = &next

	return s.commit(ctx, rec)
}

// Apply dispatches a wire event by the kind of the stored session
func (s *Service) Apply(ctx context.Context, viewID string, ev Event) (*Snapshot, error) {
	rec, err := s.load(ctx, viewID)
	if err != nil {
		return nil, err
	}

	switch rec.Kind {
	case KindTable:
		return s.ApplyTable(ctx, viewID, note.TableEvent{
			Type:   note.TableEventType(ev.Type),
			Query:  ev.Query,
			NoteID: ev.NoteID,
		})
	case KindPreview:
		return s.ApplyPreview(ctx, viewID, note.PreviewEvent{
			Type:      note.PreviewEventType(ev.Type),
			Section:   ev.Section,
			SegmentID: ev.SegmentID,
		})
	default:
		return nil, fmt.Errorf("%w: %s", usecaseErrors.ErrViewKind, rec.Kind)
	}
}

// Close discards a session
func (s *Service) Close(ctx context.Context, viewID string) error {
	if _, err := s.load(ctx, viewID); err != nil {
		return err
	}
	if err := s.store.Delete(ctx, key(viewID)); err != nil {
		return fmt.Errorf("failed to delete view %s: %w", viewID, err)
	}
	return nil
}

func (s *Service) newRecord(kind Kind, projectID, noteID string) *record {
	now := s.now()
	return &record{
		ID:        s.newID(),
		Kind:      kind,
		ProjectID: projectID,
		NoteID:    noteID,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (s *Service) commit(ctx context.Context, rec *record) (*Snapshot, error) {
	rec.UpdatedAt = s.now()
	if err := s.save(ctx, rec); err != nil {
		return nil, err
	}
	return s.snapshot(ctx, rec)
}

func (s *Service) save(ctx context.Context, rec *record) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("%w: %v", usecaseErrors.ErrStateEncoding, err)
	}
	if err := s.store.Set(ctx, key(rec.ID), string(data), s.ttl); err != nil {
		return fmt.Errorf("failed to store view %s: %w", rec.ID, err)
	}
	s.logger.Debug("view state stored",
		zap.String("view_id", rec.ID),
		zap.String("kind", string(rec.Kind)),
	)
	return nil
}

func (s *Service) load(ctx context.Context, viewID string) (*record, error) {
	data, ok, err := s.store.Get(ctx, key(viewID))
	if err != nil {
		return nil, fmt.Errorf("failed to load view %s: %w", viewID, err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s", usecaseErrors.ErrViewNotFound, viewID)
	}
	var rec record
	if err := json.Unmarshal([]byte(data), &rec); err != nil {
		return nil, fmt.Errorf("%w: %v", usecaseErrors.ErrStateEncoding, err)
	}
	return &rec, nil
}

func (s *Service) loadKind(ctx context.Context, viewID string, kind Kind) (*record, error) {
	rec, err := s.load(ctx, viewID)
	if err != nil {
		return nil, err
	}
	if rec.Kind != kind {
		return nil, fmt.Errorf("%w: view %s is a %s view", usecaseErrors.ErrViewKind, viewID, rec.Kind)
	}
	return rec, nil
}

func key(viewID string) string {
	return fmt.Sprintf("view:%s", viewID)
}
