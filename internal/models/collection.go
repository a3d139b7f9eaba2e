package models

import (
	"time"
)

// ContentType is the kind of content a collection holds
type ContentType string

const (
	ContentTypeComic ContentType = "comic"
	ContentTypeVideo ContentType = "video"
)

// Collection represents a comic or video collection
type Collection struct {
	ID        string      `json:"id" db:"id"`
	Name      string      `json:"name" db:"name"`
	Author    string      `json:"author" db:"author"`
	Type      ContentType `json:"type" db:"type"`
	Genre     []string    `json:"genre" db:"genre"`
	CreatedAt time.Time   `json:"created_at" db:"created_at"`
	UpdatedAt time.Time   `json:"updated_at" db:"updated_at"`
}

// Genres is the fixed genre vocabulary offered by the collection form.
// Both "superhero" and "super-hero" exist in stored data.
var Genres = []string{
	"action",
	"adventure",
	"comedy",
	"drama",
	"fantasy",
	"horror",
	"mystery",
	"romance",
	"sci-fi",
	"superhero",
	"thriller",
	"super-hero",
}

// ContentTypeOption is a selectable content type with its label
type ContentTypeOption struct {
	Value ContentType `json:"value"`
	Label string      `json:"label"`
}

// ContentTypes lists the allowed content types in display order
var ContentTypes = []ContentTypeOption{
	{Value: ContentTypeComic, Label: "Comic"},
	{Value: ContentTypeVideo, Label: "Video"},
}

var validGenres = func() map[string]bool {
	m := make(map[string]bool, len(Genres))
	for _, g := range Genres {
		m[g] = true
	}
	return m
}()

// ValidContentTypes defines allowed collection content types
var ValidContentTypes = map[ContentType]bool{
	ContentTypeComic: true,
	ContentTypeVideo: true,
}

// IsKnownGenre reports whether g belongs to the genre vocabulary
func IsKnownGenre(g string) bool {
	return validGenres[g]
}

// CollectionInput is the request body for creating or editing a collection
type CollectionInput struct {
	Name   string      `json:"name"`
	Author string      `json:"author"`
	Type   ContentType `json:"type"`
	Genre  []string    `json:"genre"`
}
