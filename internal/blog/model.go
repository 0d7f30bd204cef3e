package blog

import "time"

const (
	StatusDraft     = "draft"
	StatusPublished = "published"
)

type Section struct {
	Heading string `bson:"heading" json:"heading"`
	Body    string `bson:"body" json:"body"`
}

type Quote struct {
	Text        string `bson:"text" json:"text"`
	Attribution string `bson:"attribution,omitempty" json:"attribution,omitempty"`
}

type Content struct {
	Introduction string    `bson:"introduction" json:"introduction"`
	Sections     []Section `bson:"sections" json:"sections"`
	Quote        Quote     `bson:"quote" json:"quote"`
	Conclusion   string    `bson:"conclusion" json:"conclusion"`
}

type Author struct {
	Name      string    `bson:"name" json:"name"`
	Role      string    `bson:"role" json:"role"`
	Avatar    string    `bson:"avatar" json:"avatar"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

type Post struct {
	ID          string    `bson:"_id,omitempty" json:"id"`
	Slug        string    `bson:"slug" json:"slug"`
	Title       string    `bson:"title" json:"title"`
	Description string    `bson:"description" json:"description"`
	Tag         string    `bson:"tag" json:"tag"`
	Image       string    `bson:"image" json:"image"`
	Date        string    `bson:"date" json:"date"`
	ReadTime    string    `bson:"readTime" json:"readTime"`
	Featured    bool      `bson:"featured" json:"featured"`
	Status      string    `bson:"status" json:"status"`
	Content     Content   `bson:"content" json:"content"`
	Author      Author    `bson:"author" json:"author"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updatedAt" json:"updatedAt"`
}

type UpsertRequest struct {
	Slug        string  `json:"slug" validate:"omitempty,slug"`
	Title       string  `json:"title" validate:"required"`
	Description string  `json:"description"`
	Tag         string  `json:"tag"`
	Image       string  `json:"image"`
	Date        string  `json:"date" validate:"omitempty,date"`
	ReadTime    string  `json:"readTime"`
	Featured    *bool   `json:"featured"`
	Status      string  `json:"status" validate:"required,oneof=draft published"`
	Content     Content `json:"content"`
	Author      Author  `json:"author"`
}

type AdminListFilter struct {
	Status string
	Tag    string
}

// SlugEntry backs the static route pre-generation: the caller enumerates every
// published slug at build time.
type SlugEntry struct {
	Slug string `bson:"slug" json:"slug"`
	Date string `bson:"date" json:"date"`
}
