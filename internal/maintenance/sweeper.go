package maintenance

import (
	"context"
	"fmt"
	"log"

	"github.com/robfig/cron/v3"

	"github.com/bau-builds/gallery-api/internal/gallery/domain"
	"github.com/bau-builds/gallery-api/internal/storage"
)

// ProjectLister is the slice of the gallery store the sweeper needs.
type ProjectLister interface {
	ListProjects(ctx context.Context) ([]domain.Project, error)
}

// Sweeper removes stored objects whose owning project row is gone. A
// failed compensating delete during create can leave such orphans behind;
// the sweep is their eventual cleanup.
type Sweeper struct {
	store    ProjectLister
	objects  storage.ObjectStore
	schedule string
	cron     *cron.Cron
}

func NewSweeper(store ProjectLister, objects storage.ObjectStore, schedule string) *Sweeper {
	return &Sweeper{store: store, objects: objects, schedule: schedule}
}

// Start schedules the sweep. The schedule uses cron syntax with seconds,
// e.g. "0 0 3 * * *" for 3AM nightly.
func (s *Sweeper) Start() error {
	c := cron.New(cron.WithSeconds())

	_, err := c.AddFunc(s.schedule, func() {
		if err := s.Sweep(context.Background()); err != nil {
			log.Printf("orphan sweep failed: %v", err)
		}
	})
	if err != nil {
		return fmt.Errorf("schedule orphan sweep: %w", err)
	}

	log.Printf("orphan sweeper started (schedule %q)", s.schedule)
	s.cron = c
	c.Start()
	return nil
}

func (s *Sweeper) Stop() {
	if s.cron != nil {
		s.cron.Stop()
	}
}

// Sweep lists every stored object under the project prefix and removes the
// ones whose project id no longer has a row.
func (s *Sweeper) Sweep(ctx context.Context) error {
	projects, err := s.store.ListProjects(ctx)
	if err != nil {
		return fmt.Errorf("list projects: %w", err)
	}

	live := make(map[string]bool, len(projects))
	for _, p := range projects {
		live[p.ID] = true
	}

	keys, err := s.objects.ListKeys(ctx, "projects/")
	if err != nil {
		return fmt.Errorf("list stored objects: %w", err)
	}

	var orphans []string
	for _, key := range keys {
		id := storage.ProjectIDFromKey(key)
		if id != "" && !live[id] {
			orphans = append(orphans, key)
		}
	}

	if len(orphans) == 0 {
		return nil
	}

	log.Printf("orphan sweep: removing %d objects with no owning project", len(orphans))
	if err := s.objects.Remove(ctx, orphans); err != nil {
		return fmt.Errorf("remove orphaned objects: %w", err)
	}
	return nil
}
