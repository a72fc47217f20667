package repository

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/johnquangdev/project-hub/internal/domain/entities"
	"github.com/johnquangdev/project-hub/internal/domain/repositories"
)

// catalogRepository implements the ProjectCatalog interface over an
// immutable in-memory list
type catalogRepository struct {
	items []entities.ProjectListItem
	byID  map[string]int
}

// catalogFile is the layout of a YAML seed file
type catalogFile struct {
	Projects []entities.ProjectListItem `yaml:"projects"`
}

// NewCatalogRepository creates a catalog from items. Ids must be unique and
// non-empty.
func NewCatalogRepository(items []entities.ProjectListItem) (repositories.ProjectCatalog, error) {
	repo := &catalogRepository{
		items: make([]entities.ProjectListItem, 0, len(items)),
		byID:  make(map[string]int, len(items)),
	}

	for i, item := range items {
		if item.ID == "" {
			return nil, fmt.Errorf("project #%d: %w", i, entities.ErrEmptyProjectID)
		}
		if _, exists := repo.byID[item.ID]; exists {
			return nil, fmt.Errorf("project %q: %w", item.ID, entities.ErrDuplicateProjectID)
		}
		if item.Status == "" {
			item.Status = entities.ProjectStatusPlanned
		}
		if !item.Status.IsValid() {
			return nil, fmt.Errorf("project %q: %w: %s", item.ID, entities.ErrInvalidProjectStatus, item.Status)
		}
		if item.TaskCount == 0 {
			item.TaskCount = len(item.Tasks)
		}

		repo.byID[item.ID] = len(repo.items)
		repo.items = append(repo.items, item.Clone())
	}

	return repo, nil
}

// NewSeedCatalogRepository creates the catalog shipped with the service
func NewSeedCatalogRepository() repositories.ProjectCatalog {
	repo, err := NewCatalogRepository(SeedProjects())
	if err != nil {
		panic(fmt.Sprintf("invalid seed catalog: %v", err))
	}
	return repo
}

// LoadCatalogFile reads a catalog from a YAML file
func LoadCatalogFile(path string) (repositories.ProjectCatalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog %s: %w", path, err)
	}

	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse catalog %s: %w", path, err)
	}

	return NewCatalogRepository(file.Projects)
}

// List returns copies of every project in catalog order
func (r *catalogRepository) List(_ context.Context) ([]*entities.ProjectListItem, error) {
	out := make([]*entities.ProjectListItem, 0, len(r.items))
	for _, item := range r.items {
		clone := item.Clone()
		out = append(out, &clone)
	}
	return out, nil
}

// FindByID returns a copy of the project with the given ID, or nil
func (r *catalogRepository) FindByID(_ context.Context, id string) (*entities.ProjectListItem, error) {
	idx, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	clone := r.items[idx].Clone()
	return &clone, nil
}
