package entity

import (
	"fmt"
	"strings"
)

// ThumbnailStyle is one design and the prompts rendered with it.
type ThumbnailStyle struct {
	DesignID int64
	Prompts  []string
}

// ThumbnailRequest registers generated thumbnails of a category.
type ThumbnailRequest struct {
	CategoryID int64
	Styles     []ThumbnailStyle
}

// Thumbnail is a prompt with the path of its rendered image.
type Thumbnail struct {
	CategoryID int64
	DesignID   int64
	Prompt     string
	ImagePath  string
}

// Expand lists one thumbnail per prompt. File numbers restart at 1 for every design.
func (r ThumbnailRequest) Expand(baseURL string) []Thumbnail {
	base := strings.TrimRight(baseURL, "/")

	var out []Thumbnail
	for _, style := range r.Styles {
		for i, prompt := range style.Prompts {
			out = append(out, Thumbnail{
				CategoryID: r.CategoryID,
				DesignID:   style.DesignID,
				Prompt:     prompt,
				ImagePath:  fmt.Sprintf("%s/%d/%d/thumbnail_%d_thumb.jpg", base, r.CategoryID, style.DesignID, i+1),
			})
		}
	}

	return out
}
