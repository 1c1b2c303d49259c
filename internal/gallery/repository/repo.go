package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bau-builds/gallery-api/internal/gallery/domain"
)

// Repo provides the relational half of the remote data gateway: the
// projects and project_images collections.
type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{db: db}
}

// InsertProject creates one project row and returns it with the
// server-assigned id and timestamp.
func (r *Repo) InsertProject(ctx context.Context, title string, description *string) (*domain.Project, error) {
	const q = `
insert into projects (title, description)
values ($1, $2)
returning id, title, description, created_at;
`
	var p domain.Project
	err := r.db.QueryRow(ctx, q, title, description).
		Scan(&p.ID, &p.Title, &p.Description, &p.CreatedAt)
	if err != nil {
		return nil, mapPgError("insert project", err)
	}
	return &p, nil
}

// ListProjects returns all project rows, newest first, without images.
func (r *Repo) ListProjects(ctx context.Context) ([]domain.Project, error) {
	const q = `
select id, title, description, created_at
from projects
order by created_at desc;
`
	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, mapPgError("list projects", err)
	}
	defer rows.Close()

	out := make([]domain.Project, 0, 16)
	for rows.Next() {
		var p domain.Project
		if err := rows.Scan(&p.ID, &p.Title, &p.Description, &p.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, mapPgError("list projects", err)
	}
	return out, nil
}

// ListImages returns every image row ordered by display_order ascending.
// The fetch is global, not scoped per project; the service groups rows in
// memory, which is fine at the scale a single company gallery reaches.
func (r *Repo) ListImages(ctx context.Context) ([]domain.ProjectImage, error) {
	const q = `
select id, project_id, image_url, storage_key, display_order, created_at
from project_images
order by display_order asc;
`
	return r.queryImages(ctx, q)
}

// ImagesForProject returns the image rows owned by one project, ordered by
// display_order ascending.
func (r *Repo) ImagesForProject(ctx context.Context, projectID string) ([]domain.ProjectImage, error) {
	const q = `
select id, project_id, image_url, storage_key, display_order, created_at
from project_images
where project_id = $1
order by display_order asc;
`
	return r.queryImages(ctx, q, projectID)
}

func (r *Repo) queryImages(ctx context.Context, q string, args ...any) ([]domain.ProjectImage, error) {
	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, mapPgError("list project images", err)
	}
	defer rows.Close()

	out := make([]domain.ProjectImage, 0, 32)
	for rows.Next() {
		var img domain.ProjectImage
		err := rows.Scan(&img.ID, &img.ProjectID, &img.ImageURL,
			&img.StorageKey, &img.DisplayOrder, &img.CreatedAt)
		if err != nil {
			return nil, err
		}
		out = append(out, img)
	}
	if err := rows.Err(); err != nil {
		return nil, mapPgError("list project images", err)
	}
	return out, nil
}

// InsertImages batch-inserts one row per uploaded file. The caller passes
// rows with ProjectID, ImageURL, StorageKey and DisplayOrder set.
func (r *Repo) InsertImages(ctx context.Context, images []domain.ProjectImage) error {
	if len(images) == 0 {
		return nil
	}

	const q = `
insert into project_images (project_id, image_url, storage_key, display_order)
values ($1, $2, $3, $4);
`
	batch := &pgx.Batch{}
	for _, img := range images {
		batch.Queue(q, img.ProjectID, img.ImageURL, img.StorageKey, img.DisplayOrder)
	}

	br := r.db.SendBatch(ctx, batch)
	defer br.Close()

	for i := range images {
		if _, err := br.Exec(); err != nil {
			return mapPgError(fmt.Sprintf("insert image record %d", i), err)
		}
	}
	return nil
}

// DeleteProject removes the project row; the schema cascades deletion of
// its image rows. Returns domain.ErrNotFound if no row matched.
func (r *Repo) DeleteProject(ctx context.Context, id string) error {
	const q = `delete from projects where id = $1;`

	tag, err := r.db.Exec(ctx, q, id)
	if err != nil {
		return mapPgError("delete project", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Postgres error codes worth translating into the gateway taxonomy.
const (
	pgUndefinedTable      = "42P01"
	pgInsufficientPriv    = "42501"
	pgInvalidAuthPassword = "28P01"
	pgInvalidAuthRole     = "28000"
)

func mapPgError(op string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUndefinedTable:
			return fmt.Errorf("%s: %w", op, domain.ErrSchemaMissing)
		case pgInsufficientPriv, pgInvalidAuthPassword, pgInvalidAuthRole:
			return fmt.Errorf("%s: %w", op, domain.ErrPermission)
		}
	}
	return fmt.Errorf("%s: %w", op, err)
}
