package service

import (
	"context"

	"github.com/bau-builds/gallery-api/internal/gallery/domain"
)

// Disabled stands in for the gallery service when the database/storage
// settings are absent. The process still starts and serves health; every
// data operation fails with a configuration error without attempting a
// remote call.
type Disabled struct{}

func (Disabled) CreateProject(context.Context, string, *string, []domain.UploadFile) (string, error) {
	return "", domain.ErrNotConfigured
}

func (Disabled) ListProjects(context.Context) ([]domain.Project, error) {
	return nil, domain.ErrNotConfigured
}

func (Disabled) DeleteProject(context.Context, string) error {
	return domain.ErrNotConfigured
}
