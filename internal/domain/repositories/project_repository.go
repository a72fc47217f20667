package repositories

import (
	"context"

	"github.com/johnquangdev/project-hub/internal/domain/entities"
)

// ProjectCatalog provides the base project list records
type ProjectCatalog interface {
	// List returns every catalog project in display order
	List(ctx context.Context) ([]*entities.ProjectListItem, error)

	// FindByID returns the project with the given ID, or nil when absent
	FindByID(ctx context.Context, id string) (*entities.ProjectListItem, error)
}

// AvatarDirectory resolves an avatar URL from a display name
type AvatarDirectory interface {
	AvatarURL(name string) (string, bool)
}

// AvatarDirectoryFunc adapts a function to AvatarDirectory
type AvatarDirectoryFunc func(name string) (string, bool)

// AvatarURL implements AvatarDirectory
func (f AvatarDirectoryFunc) AvatarURL(name string) (string, bool) {
	return f(name)
}

// NoAvatars is an AvatarDirectory that never resolves a URL
var NoAvatars AvatarDirectory = AvatarDirectoryFunc(func(string) (string, bool) { return "", false })
