package http

import (
	"context"

	"github.com/bau-builds/gallery-api/internal/gallery/domain"
)

// Gallery is what the HTTP layer needs from the gallery service.
type Gallery interface {
	CreateProject(ctx context.Context, title string, description *string, files []domain.UploadFile) (string, error)
	ListProjects(ctx context.Context) ([]domain.Project, error)
	DeleteProject(ctx context.Context, id string) error
}

// Handler bundles the dependencies for gallery HTTP endpoints.
type Handler struct {
	svc Gallery
}

func New(svc Gallery) *Handler {
	return &Handler{svc: svc}
}
