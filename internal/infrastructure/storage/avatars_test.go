package storage

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLister struct {
	keys     []string
	failures int
	calls    int
}

func (f *fakeLister) ListFiles(_ context.Context, prefix string) ([]string, error) {
	f.calls++
	if f.calls <= f.failures {
		return nil, errors.New("connection refused")
	}
	return f.keys, nil
}

func (f *fakeLister) ObjectURL(objectName string) string {
	return "https://cdn.example.com/hub/" + objectName
}

func TestLoadAvatarIndex(t *testing.T) {
	lister := &fakeLister{
		keys: []string{"avatars/jason-duong.png", "avatars/Support.JPG", "avatars/"},
	}

	index, err := LoadAvatarIndex(context.Background(), lister, "avatars/", time.Second, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, index.Len())

	url, ok := index.AvatarURL("Jason Duong")
	require.True(t, ok)
	assert.Equal(t, "https://cdn.example.com/hub/avatars/jason-duong.png", url)

	url, ok = index.AvatarURL("support")
	require.True(t, ok)
	assert.Equal(t, "https://cdn.example.com/hub/avatars/Support.JPG", url)

	_, ok = index.AvatarURL("Nobody")
	assert.False(t, ok)
}

func TestLoadAvatarIndexRetries(t *testing.T) {
	lister := &fakeLister{keys: []string{"avatars/ada.png"}, failures: 2}

	index, err := LoadAvatarIndex(context.Background(), lister, "avatars/", 10*time.Second, nil)
	require.NoError(t, err)
	assert.Equal(t, 3, lister.calls)
	assert.Equal(t, 1, index.Len())
}

func TestLoadAvatarIndexCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	lister := &fakeLister{failures: 100}
	_, err := LoadAvatarIndex(ctx, lister, "avatars/", time.Minute, nil)
	require.Error(t, err)
}

func TestNewAvatarIndex(t *testing.T) {
	index := NewAvatarIndex(map[string]string{"Jason Duong": "/a/jd.png"})

	url, ok := index.AvatarURL("  jason   DUONG ")
	require.True(t, ok)
	assert.Equal(t, "/a/jd.png", url)
}
