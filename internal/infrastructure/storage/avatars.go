package storage

import (
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/project-hub/internal/domain/entities"
)

// ObjectLister is the part of an object store an avatar index is built from
type ObjectLister interface {
	ListFiles(ctx context.Context, prefix string) ([]string, error)
	ObjectURL(objectName string) string
}

// AvatarIndex resolves avatar URLs by the slug of a display name. An object
// avatars/jason-duong.png serves the user named "Jason Duong".
type AvatarIndex struct {
	urls map[string]string
}

// NewAvatarIndex creates an index from display names to URLs
func NewAvatarIndex(byName map[string]string) *AvatarIndex {
	urls := make(map[string]string, len(byName))
	for name, u := range byName {
		urls[entities.Slugify(name)] = u
	}
	return &AvatarIndex{urls: urls}
}

// AvatarURL implements repositories.AvatarDirectory
func (a *AvatarIndex) AvatarURL(name string) (string, bool) {
	u, ok := a.urls[entities.Slugify(name)]
	return u, ok
}

// Len returns the number of indexed avatars
func (a *AvatarIndex) Len() int {
	return len(a.urls)
}

// LoadAvatarIndex lists the avatar objects under prefix once, retrying with
// exponential backoff until timeout elapses.
func LoadAvatarIndex(ctx context.Context, lister ObjectLister, prefix string, timeout time.Duration, logger *zap.Logger) (*AvatarIndex, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	var keys []string
	list := func() error {
		var err error
		keys, err = lister.ListFiles(ctx, prefix)
		if err != nil {
			logger.Warn("avatar listing failed, retrying", zap.Error(err))
		}
		return err
	}

	bo := backoff.NewExponentialBackOff()
	bo.MaxElapsedTime = timeout
	if err := backoff.Retry(list, backoff.WithContext(bo, ctx)); err != nil {
		return nil, fmt.Errorf("failed to list avatars under %q: %w", prefix, err)
	}

	urls := make(map[string]string, len(keys))
	for _, key := range keys {
		slug := avatarSlug(key)
		if slug == "" {
			continue
		}
		urls[slug] = lister.ObjectURL(key)
	}

	logger.Info("avatar index loaded",
		zap.String("prefix", prefix),
		zap.Int("count", len(urls)),
	)
	return &AvatarIndex{urls: urls}, nil
}

// avatarSlug derives the name slug from an object key
func avatarSlug(key string) string {
	base := path.Base(key)
	if base == "." || base == "/" || strings.HasSuffix(key, "/") {
		return ""
	}
	return entities.Slugify(strings.TrimSuffix(base, path.Ext(base)))
}
