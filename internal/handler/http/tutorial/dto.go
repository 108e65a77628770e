package tutorial

import "tutorial-api/internal/domain/entity"

// DTO is the JSON representation of a tutorial.
type DTO struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Published   bool   `json:"published"`
}

// createRequest is the POST body. Unknown fields, including id, are ignored.
type createRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Published   *bool  `json:"published"`
}

// updateRequest is the PUT body. Absent fields leave the stored value unchanged.
type updateRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Published   *bool   `json:"published"`
}

func toDTO(t *entity.Tutorial) DTO {
	return DTO{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Published:   t.Published,
	}
}

// toDTOs never returns nil so empty results encode as [].
func toDTOs(list []*entity.Tutorial) []DTO {
	out := make([]DTO, 0, len(list))
	for _, t := range list {
		out = append(out, toDTO(t))
	}
	return out
}
