package project

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnquangdev/project-hub/internal/domain/entities"
	"github.com/johnquangdev/project-hub/internal/domain/repositories"
)

func TestSynthesizePlaceholder(t *testing.T) {
	d := newTestSynthesizer(nil).Synthesize("42", nil)

	assert.Equal(t, "42", d.ID)
	assert.Equal(t, "Untitled project 42", d.Name)
	assert.Equal(t, "Medium", d.Meta.PriorityLabel)
	assert.Equal(t, "MVP 2 weeks", d.Meta.SprintLabel)
	assert.Equal(t, "Australia", d.Meta.LocationLabel)
	assert.Equal(t, "Just now", d.Meta.LastSyncLabel)

	require.NotNil(t, d.Source)
	assert.Equal(t, entities.ProjectStatusPlanned, d.Source.Status)
	assert.Equal(t, fixedNow, d.Source.StartDate)

	require.Len(t, d.Backlog.PICUsers, 1)
	assert.Equal(t, "Jason Duong", d.Backlog.PICUsers[0].Name)
	assert.Equal(t, "jason-duong", d.Backlog.PICUsers[0].ID)
	require.Len(t, d.Backlog.SupportUsers, 1)
	assert.Equal(t, entities.UserRoleSupport, d.Backlog.SupportUsers[0].Role)
}

func TestSynthesizeGenericSkeleton(t *testing.T) {
	d := newTestSynthesizer(nil).Synthesize("42", nil)

	require.Len(t, d.Workstreams, 2)
	assert.Len(t, d.Workstreams[0].Tasks, 3)
	assert.Len(t, d.Workstreams[1].Tasks, 2)
	assert.Equal(t, 5, d.TaskCount())
	assert.Empty(t, d.QuickLinks)
	assert.Len(t, d.TimelineTasks, 4)
	assert.Len(t, d.Notes, 8)

	first := d.Workstreams[0].Tasks[0]
	require.NotNil(t, first.StartDate)
	assert.Equal(t, fixedNow, *first.StartDate)

	last := d.Workstreams[1].Tasks[1]
	require.NotNil(t, last.StartDate)
	assert.Equal(t, fixedNow.AddDate(0, 0, 4), *last.StartDate)

	assert.Equal(t, time.Date(2025, time.December, 26, 0, 0, 0, 0, time.UTC), d.TimelineTasks[0].StartDate)
	assert.Equal(t, "42-note-1", d.Notes[0].ID)
	assert.True(t, d.Notes[0].IsAudio())
}

func TestSynthesizeFromCatalogRecord(t *testing.T) {
	base := testCatalog().items[1]
	d := newTestSynthesizer(nil).Synthesize(base.ID, &base)

	assert.Equal(t, "Mobile Banking Onboarding", d.Name)
	assert.Equal(t, "Urgent", d.Meta.PriorityLabel)
	assert.Contains(t, d.Description, "Project for Acme Bank.")
	require.Len(t, d.Backlog.PICUsers, 2)
	assert.Equal(t, "Mia Tran", d.Backlog.PICUsers[0].Name)

	owner := d.Workstreams[0].Tasks[0].Assignee
	require.NotNil(t, owner)
	assert.Equal(t, "mia-tran", owner.ID)
}

func TestOverrideAppliesToCatalogRecordOnly(t *testing.T) {
	synth := newTestSynthesizer(nil)
	base := testCatalog().items[0]

	for i := 0; i < 2; i++ {
		d := synth.Synthesize("1", &base)
		require.Len(t, d.Workstreams, 5)
		assert.Equal(t, 11, d.TaskCount())
		assert.Len(t, d.QuickLinks, 3)
		assert.Equal(t, "MVP 6 weeks", d.Meta.SprintLabel)
	}

	placeholder := synth.Synthesize("1", nil)
	assert.Len(t, placeholder.Workstreams, 2)
	assert.Empty(t, placeholder.QuickLinks)
}

func TestSynthesizeDoesNotShareBase(t *testing.T) {
	base := testCatalog().items[1]
	d := newTestSynthesizer(nil).Synthesize(base.ID, &base)

	d.Source.Members[0] = "changed"
	assert.Equal(t, "Mia Tran", base.Members[0])
}

func TestSynthesizeResolvesAvatars(t *testing.T) {
	avatars := repositories.AvatarDirectoryFunc(func(name string) (string, bool) {
		if name == "Jason Duong" {
			return "https://cdn.example.com/jason.png", true
		}
		return "", false
	})

	d := newTestSynthesizer(avatars).Synthesize("42", nil)
	assert.Equal(t, "https://cdn.example.com/jason.png", d.Backlog.PICUsers[0].AvatarURL)
	assert.Empty(t, d.Backlog.SupportUsers[0].AvatarURL)
	assert.Equal(t, "https://cdn.example.com/jason.png", d.Notes[0].AddedBy.AvatarURL)
}

func TestSynthesizerConfigDefaults(t *testing.T) {
	synth := NewSynthesizer(SynthesizerConfig{SupportName: "Helpdesk"}, nil, nil, nil)
	d := synth.Synthesize("7", nil)

	assert.Equal(t, "Jason Duong", d.Backlog.PICUsers[0].Name)
	assert.Equal(t, "Helpdesk", d.Backlog.SupportUsers[0].Name)
	assert.Equal(t, "Australia", d.Meta.LocationLabel)
}

func TestCapitalize(t *testing.T) {
	assert.Equal(t, "High", capitalize("high"))
	assert.Equal(t, "No-priority", capitalize("no-priority"))
	assert.Equal(t, "", capitalize(""))
	assert.Equal(t, "Économie", capitalize("économie"))
}

func TestSprintLabel(t *testing.T) {
	assert.Equal(t, "MVP 2 weeks", sprintLabel("", ""))
	assert.Equal(t, "3 months", sprintLabel("", "3 months"))
	assert.Equal(t, "MVP 2 weeks", sprintLabel("Website", ""))
	assert.Equal(t, "Phase 1 10 weeks", sprintLabel("Phase 1", "10 weeks"))
}
