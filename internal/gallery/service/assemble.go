package service

import "github.com/bau-builds/gallery-api/internal/gallery/domain"

// assemble joins flat project and image rows into nested aggregates. Both
// input orderings are preserved: projects keep their newest-first order,
// each project's images keep the ascending display_order from the fetch.
// Pure function, inputs are not mutated.
func assemble(projects []domain.Project, images []domain.ProjectImage) []domain.Project {
	byProject := make(map[string][]domain.ProjectImage, len(projects))
	for _, img := range images {
		byProject[img.ProjectID] = append(byProject[img.ProjectID], img)
	}

	out := make([]domain.Project, len(projects))
	for i, p := range projects {
		p.Images = byProject[p.ID]
		if p.Images == nil {
			p.Images = []domain.ProjectImage{}
		}
		out[i] = p
	}
	return out
}
