package service

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/bau-builds/gallery-api/internal/gallery/domain"
	"github.com/bau-builds/gallery-api/internal/storage"
)

// Store is the relational half of the remote data gateway the service
// orchestrates against.
type Store interface {
	InsertProject(ctx context.Context, title string, description *string) (*domain.Project, error)
	ListProjects(ctx context.Context) ([]domain.Project, error)
	ListImages(ctx context.Context) ([]domain.ProjectImage, error)
	ImagesForProject(ctx context.Context, projectID string) ([]domain.ProjectImage, error)
	InsertImages(ctx context.Context, images []domain.ProjectImage) error
	DeleteProject(ctx context.Context, id string) error
}

// ListCache is an optional cache for the assembled gallery. Failures
// inside implementations must degrade to misses, never to errors.
type ListCache interface {
	Get(ctx context.Context) ([]domain.Project, bool)
	Set(ctx context.Context, projects []domain.Project)
	Invalidate(ctx context.Context)
}

// Service owns the project gallery pipeline: creation of a project with
// its ordered photo set, the nested read view, and whole-project deletion.
type Service struct {
	store   Store
	objects storage.ObjectStore
	cache   ListCache
}

// New builds a Service. cache may be nil.
func New(store Store, objects storage.ObjectStore, cache ListCache) *Service {
	return &Service{store: store, objects: objects, cache: cache}
}

// CreateProject inserts the project row, uploads every file in input
// order, then batch-inserts the image rows. There is no cross-call
// transaction, so a failure after the row insert triggers a compensating
// delete of the just-created project; if that delete itself fails the
// caller gets a *domain.CleanupFailedError naming the orphaned id.
func (s *Service) CreateProject(ctx context.Context, title string, description *string, files []domain.UploadFile) (string, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return "", fmt.Errorf("title required")
	}

	p, err := s.store.InsertProject(ctx, title, description)
	if err != nil {
		// Nothing has happened yet, no cleanup needed.
		return "", fmt.Errorf("create project: %w", err)
	}

	// Uploads run strictly one at a time so that on failure only a known
	// prefix of files exists remotely; the compensating delete plus the
	// cascade covers exactly that prefix.
	records := make([]domain.ProjectImage, 0, len(files))
	for i, f := range files {
		key := storage.ObjectKey(p.ID, f.Name)
		if err := s.objects.Upload(ctx, key, f.Data, f.ContentType); err != nil {
			return "", s.compensate(ctx, p.ID, fmt.Errorf("upload image %d: %w", i, err))
		}
		records = append(records, domain.ProjectImage{
			ProjectID:    p.ID,
			ImageURL:     s.objects.PublicURL(key),
			StorageKey:   key,
			DisplayOrder: i,
		})
	}

	if len(records) > 0 {
		if err := s.store.InsertImages(ctx, records); err != nil {
			return "", s.compensate(ctx, p.ID, fmt.Errorf("save image records: %w", err))
		}
	}

	s.invalidate(ctx)
	return p.ID, nil
}

// ListProjects returns every project newest-first with its images attached
// in display order. An empty gallery is an empty slice, not an error; a
// failed image fetch fails the whole read rather than silently returning
// image-less projects.
func (s *Service) ListProjects(ctx context.Context) ([]domain.Project, error) {
	if s.cache != nil {
		if cached, ok := s.cache.Get(ctx); ok {
			return cached, nil
		}
	}

	projects, err := s.store.ListProjects(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch projects: %w", err)
	}
	if len(projects) == 0 {
		return []domain.Project{}, nil
	}

	images, err := s.store.ListImages(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch project images: %w", err)
	}

	out := assemble(projects, images)
	if s.cache != nil {
		s.cache.Set(ctx, out)
	}
	return out, nil
}

// DeleteProject removes a project, its image rows (via cascade) and its
// stored objects. Losing the advisory steps is tolerated: a failed image
// fetch or object removal is logged and deletion proceeds, trading
// possible orphaned binaries for a guaranteed shot at the relational
// delete. Only the row delete failing is fatal.
func (s *Service) DeleteProject(ctx context.Context, id string) error {
	images, err := s.store.ImagesForProject(ctx, id)
	if err != nil {
		log.Printf("delete project %s: fetching image rows failed, skipping object cleanup: %v", id, err)
	}

	if len(images) > 0 {
		keys := make([]string, 0, len(images))
		for _, img := range images {
			key := img.StorageKey
			if key == "" {
				// Rows from before storage keys were persisted.
				key = storage.KeyFromURL(id, img.ImageURL)
			}
			keys = append(keys, key)
		}
		if err := s.objects.Remove(ctx, keys); err != nil {
			log.Printf("delete project %s: removing %d stored objects failed: %v", id, len(keys), err)
		}
	}

	if err := s.store.DeleteProject(ctx, id); err != nil {
		return fmt.Errorf("delete project: %w", err)
	}

	s.invalidate(ctx)
	return nil
}

func (s *Service) compensate(ctx context.Context, projectID string, cause error) error {
	if cleanupErr := s.DeleteProject(ctx, projectID); cleanupErr != nil {
		log.Printf("compensating delete of project %s failed, row and objects orphaned: %v", projectID, cleanupErr)
		return &domain.CleanupFailedError{
			ProjectID:  projectID,
			Cause:      cause,
			CleanupErr: cleanupErr,
		}
	}
	return cause
}

func (s *Service) invalidate(ctx context.Context) {
	if s.cache != nil {
		s.cache.Invalidate(ctx)
	}
}
