package repository

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnquangdev/project-hub/internal/domain/entities"
)

func TestSeedCatalog(t *testing.T) {
	ctx := context.Background()
	catalog := NewSeedCatalogRepository()

	items, err := catalog.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 6)
	assert.Equal(t, "1", items[0].ID)
	assert.Equal(t, 3, items[0].TaskCount)

	found, err := catalog.FindByID(ctx, "2")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "Mobile Banking Onboarding", found.Name)

	missing, err := catalog.FindByID(ctx, "42")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestCatalogReturnsCopies(t *testing.T) {
	ctx := context.Background()
	catalog := NewSeedCatalogRepository()

	first, err := catalog.FindByID(ctx, "1")
	require.NoError(t, err)
	first.Name = "changed"
	first.Members[0] = "someone else"

	again, err := catalog.FindByID(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "PM System Core Redesign", again.Name)
	assert.Equal(t, []string{"Jason Duong"}, again.Members)
}

func TestNewCatalogRepositoryValidation(t *testing.T) {
	_, err := NewCatalogRepository([]entities.ProjectListItem{{Name: "no id"}})
	require.ErrorIs(t, err, entities.ErrEmptyProjectID)

	_, err = NewCatalogRepository([]entities.ProjectListItem{{ID: "a"}, {ID: "a"}})
	require.ErrorIs(t, err, entities.ErrDuplicateProjectID)

	_, err = NewCatalogRepository([]entities.ProjectListItem{{ID: "a", Status: "paused"}})
	require.ErrorIs(t, err, entities.ErrInvalidProjectStatus)
}

func TestLoadCatalogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "projects.yaml")
	seed := `projects:
  - id: "7"
    name: Hero Campaign
    progress: 30
    start_date: 2026-01-05
    end_date: 2026-02-27
    status: active
    priority: high
    tags: [brand]
    members: [Jason Duong]
    tasks:
      - id: "7-1"
        name: Storyboard
        assignee: Jason Duong
        status: todo
`
	require.NoError(t, os.WriteFile(path, []byte(seed), 0o600))

	catalog, err := LoadCatalogFile(path)
	require.NoError(t, err)

	item, err := catalog.FindByID(context.Background(), "7")
	require.NoError(t, err)
	require.NotNil(t, item)
	assert.Equal(t, "Hero Campaign", item.Name)
	assert.Equal(t, 1, item.TaskCount)
	assert.Equal(t, time.Date(2026, time.January, 5, 0, 0, 0, 0, time.UTC), item.StartDate)
	assert.Equal(t, entities.ProjectStatusActive, item.Status)
}

func TestLoadCatalogFileMissing(t *testing.T) {
	_, err := LoadCatalogFile(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}
