package maintenance

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bau-builds/gallery-api/internal/gallery/domain"
)

type fakeLister struct {
	projects []domain.Project
	err      error
}

func (f *fakeLister) ListProjects(context.Context) ([]domain.Project, error) {
	return f.projects, f.err
}

type fakeObjects struct {
	keys      []string
	removed   [][]string
	listErr   error
	removeErr error
}

func (f *fakeObjects) Upload(context.Context, string, []byte, string) error { return nil }

func (f *fakeObjects) PublicURL(key string) string { return "https://cdn/" + key }

func (f *fakeObjects) Remove(_ context.Context, keys []string) error {
	if f.removeErr != nil {
		return f.removeErr
	}
	f.removed = append(f.removed, keys)
	return nil
}

func (f *fakeObjects) ListKeys(_ context.Context, prefix string) ([]string, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []string
	for _, k := range f.keys {
		if strings.HasPrefix(k, prefix) {
			out = append(out, k)
		}
	}
	return out, nil
}

func TestSweep_RemovesOrphanedObjects(t *testing.T) {
	store := &fakeLister{projects: []domain.Project{{ID: "live"}}}
	objects := &fakeObjects{keys: []string{
		"projects/live/a.jpg",
		"projects/live/b.jpg",
		"projects/orphan/c.jpg",
		"projects/orphan/d.jpg",
	}}
	s := NewSweeper(store, objects, "0 0 3 * * *")

	require.NoError(t, s.Sweep(context.Background()))

	require.Len(t, objects.removed, 1)
	assert.ElementsMatch(t,
		[]string{"projects/orphan/c.jpg", "projects/orphan/d.jpg"},
		objects.removed[0])
}

func TestSweep_NothingToDo(t *testing.T) {
	store := &fakeLister{projects: []domain.Project{{ID: "live"}}}
	objects := &fakeObjects{keys: []string{"projects/live/a.jpg"}}
	s := NewSweeper(store, objects, "0 0 3 * * *")

	require.NoError(t, s.Sweep(context.Background()))
	assert.Empty(t, objects.removed)
}

func TestSweep_ProjectListFailureAborts(t *testing.T) {
	store := &fakeLister{err: errors.New("db down")}
	objects := &fakeObjects{keys: []string{"projects/x/a.jpg"}}
	s := NewSweeper(store, objects, "0 0 3 * * *")

	require.Error(t, s.Sweep(context.Background()),
		"a failed project list must never be treated as an empty gallery")
	assert.Empty(t, objects.removed)
}

func TestSweep_IgnoresForeignKeys(t *testing.T) {
	store := &fakeLister{}
	objects := &fakeObjects{keys: []string{"projects/dangling-no-slash"}}
	s := NewSweeper(store, objects, "0 0 3 * * *")

	require.NoError(t, s.Sweep(context.Background()))
	assert.Empty(t, objects.removed)
}

func TestStart_BadSchedule(t *testing.T) {
	s := NewSweeper(&fakeLister{}, &fakeObjects{}, "not a schedule")
	assert.Error(t, s.Start())
}
