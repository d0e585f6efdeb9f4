package entity

import "time"

// ContentStatus is the publication state of store content.
type ContentStatus string

// ContentStatusDeleted marks soft-deleted content. Other status values are opaque publication flags.
const ContentStatusDeleted ContentStatus = "D"

// Content is an editorial post attached to a store.
type Content struct {
	ID             int64         `json:"local_store_content_id"`
	BusinessNumber string        `json:"store_business_number"`
	Title          string        `json:"title"`
	Body           string        `json:"content"`
	Status         ContentStatus `json:"status"`
	CreatedAt      time.Time     `json:"created_at"`
}

// ContentListing is content joined with the report row of its store.
type ContentListing struct {
	Content
	StoreName *string `json:"store_name"`
	RoadName  *string `json:"road_name"`
}

// ContentDetail is content with its image urls.
type ContentDetail struct {
	Content
	Images []string `json:"images"`
}

// ContentUpdate replaces title and body and edits the image set.
type ContentUpdate struct {
	Title        string
	Body         string
	RemoveImages []string
	AddImages    []string
}
