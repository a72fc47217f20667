package project

import (
	"context"
	"errors"
	"time"

	"github.com/johnquangdev/project-hub/internal/domain/entities"
	"github.com/johnquangdev/project-hub/internal/domain/repositories"
)

var fixedNow = time.Date(2026, time.January, 2, 10, 30, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

type mapCatalog struct {
	items []entities.ProjectListItem
	err   error
}

func (c mapCatalog) List(context.Context) ([]*entities.ProjectListItem, error) {
	if c.err != nil {
		return nil, c.err
	}
	out := make([]*entities.ProjectListItem, 0, len(c.items))
	for i := range c.items {
		item := c.items[i].Clone()
		out = append(out, &item)
	}
	return out, nil
}

func (c mapCatalog) FindByID(_ context.Context, id string) (*entities.ProjectListItem, error) {
	if c.err != nil {
		return nil, c.err
	}
	for _, item := range c.items {
		if item.ID == id {
			clone := item.Clone()
			return &clone, nil
		}
	}
	return nil, nil
}

var errCatalogDown = errors.New("catalog down")

func testCatalog() mapCatalog {
	return mapCatalog{items: []entities.ProjectListItem{
		{
			ID:            "1",
			Name:          "PM System Core Redesign",
			Status:        entities.ProjectStatusActive,
			Priority:      "high",
			Members:       []string{"Jason Duong"},
			TypeLabel:     "MVP",
			DurationLabel: "6 weeks",
		},
		{
			ID:       "2",
			Name:     "Mobile Banking Onboarding",
			Status:   entities.ProjectStatusActive,
			Priority: "urgent",
			Members:  []string{"Mia Tran", "Jason Duong"},
			Client:   "Acme Bank",
		},
	}}
}

func newTestSynthesizer(avatars repositories.AvatarDirectory) *Synthesizer {
	return NewSynthesizer(DefaultSynthesizerConfig(), fixedClock, avatars, DefaultOverrides())
}

func newTestService(catalog repositories.ProjectCatalog) *ProjectService {
	return NewProjectService(catalog, newTestSynthesizer(nil), nil)
}
