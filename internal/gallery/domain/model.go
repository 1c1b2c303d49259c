package domain

import "time"

// Project is a single renovation job shown in the public gallery.
// Images is populated by the read path only; the projects row itself
// carries no image data.
type Project struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Description *string        `json:"description"`
	CreatedAt   time.Time      `json:"created_at"`
	Images      []ProjectImage `json:"images"`
}

// ProjectImage is one stored photograph belonging to exactly one project.
// StorageKey is the object-store key the binary lives under; it is kept
// alongside the public URL so deletion never has to re-derive the key by
// parsing the URL.
type ProjectImage struct {
	ID           string    `json:"id"`
	ProjectID    string    `json:"project_id"`
	ImageURL     string    `json:"image_url"`
	StorageKey   string    `json:"-"`
	DisplayOrder int       `json:"display_order"`
	CreatedAt    time.Time `json:"created_at"`
}

// UploadFile is one image payload submitted with a create request,
// carrying its original filename so the stored object keeps its extension.
type UploadFile struct {
	Name        string
	ContentType string
	Data        []byte
}
