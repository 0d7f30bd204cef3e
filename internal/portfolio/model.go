package portfolio

import "time"

type Metric struct {
	Label string `bson:"label" json:"label"`
	Value string `bson:"value" json:"value"`
}

type Item struct {
	ID          string `bson:"_id,omitempty" json:"id"`
	Title       string `bson:"title" json:"title"`
	Category    string `bson:"category" json:"category"`
	Description string `bson:"description" json:"description"`
	ImageURL    string `bson:"imageUrl" json:"imageUrl"`
	// Detail-page fields are only populated for some records.
	Overview     string    `bson:"overview,omitempty" json:"overview,omitempty"`
	Client       string    `bson:"client,omitempty" json:"client,omitempty"`
	Highlights   []string  `bson:"highlights,omitempty" json:"highlights,omitempty"`
	Technologies []string  `bson:"technologies,omitempty" json:"technologies,omitempty"`
	Metrics      []Metric  `bson:"metrics,omitempty" json:"metrics,omitempty"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt"`
}

type UpsertRequest struct {
	Title        string   `json:"title" validate:"required"`
	Category     string   `json:"category" validate:"required"`
	Description  string   `json:"description"`
	ImageURL     string   `json:"imageUrl"`
	Overview     string   `json:"overview"`
	Client       string   `json:"client"`
	Highlights   []string `json:"highlights"`
	Technologies []string `json:"technologies"`
	Metrics      []Metric `json:"metrics"`
}

type ListFilter struct {
	Category string
}
