package project

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetProjectDetailsNeverFails(t *testing.T) {
	ctx := context.Background()

	d := newTestService(testCatalog()).GetProjectDetails(ctx, "2")
	assert.Equal(t, "Mobile Banking Onboarding", d.Name)

	d = newTestService(testCatalog()).GetProjectDetails(ctx, "42")
	assert.Equal(t, "Untitled project 42", d.Name)

	d = newTestService(mapCatalog{err: errCatalogDown}).GetProjectDetails(ctx, "1")
	assert.Equal(t, "Untitled project 1", d.Name)
	assert.Len(t, d.Workstreams, 2)
}

func TestListProjects(t *testing.T) {
	ctx := context.Background()

	items, err := newTestService(testCatalog()).ListProjects(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "1", items[0].ID)

	_, err = newTestService(mapCatalog{err: errCatalogDown}).ListProjects(ctx)
	require.ErrorIs(t, err, errCatalogDown)
}

func TestListAllTasks(t *testing.T) {
	tasks, err := newTestService(testCatalog()).ListAllTasks(context.Background())
	require.NoError(t, err)

	// 11 fixture tasks for project 1 followed by 5 generic ones for project 2.
	require.Len(t, tasks, 16)
	assert.Equal(t, "1", tasks[0].ProjectID)
	assert.Equal(t, "2", tasks[11].ProjectID)
	assert.Equal(t, "2-ws-1-t1", tasks[11].ID)
}
