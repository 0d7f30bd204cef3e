package catalog

import "time"

const (
	StatusActive   = "Active"
	StatusInactive = "Inactive"
)

type Step struct {
	ID      string `bson:"id" json:"id"`
	Title   string `bson:"title" json:"title"`
	Content string `bson:"content" json:"content"`
}

type Package struct {
	Price       int    `bson:"price" json:"price"`
	Description string `bson:"description,omitempty" json:"description,omitempty"`
}

type Service struct {
	ID              string             `bson:"_id,omitempty" json:"id"`
	Name            string             `bson:"name" json:"name"`
	Description     string             `bson:"description" json:"description"`
	Image           string             `bson:"image" json:"image"`
	Video           string             `bson:"video" json:"video"`
	Skills          []string           `bson:"skills" json:"skills"`
	Pillars         []Step             `bson:"pillars" json:"pillars"`
	Approach        []Step             `bson:"approach" json:"approach"`
	PricingPackages map[string]Package `bson:"pricingPackages" json:"pricingPackages"`
	Status          string             `bson:"status" json:"status"`
	CreatedAt       time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// Work is a gallery item owned by one service. The set of works for a service
// is reconciled wholesale on every save, not patched.
type Work struct {
	ID        string    `bson:"_id,omitempty" json:"id"`
	ServiceID string    `bson:"serviceId" json:"serviceId"`
	MediaType string    `bson:"mediaType" json:"mediaType"`
	MediaPath string    `bson:"mediaPath" json:"mediaPath"`
	Title     string    `bson:"title" json:"title"`
	Link      string    `bson:"link" json:"link"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// WorkInput is one submitted gallery row. ID is empty for rows that have not
// been persisted yet.
type WorkInput struct {
	ID        string `json:"id"`
	MediaType string `json:"mediaType" validate:"omitempty,mediatype"`
	MediaPath string `json:"mediaPath"`
	Title     string `json:"title"`
	Link      string `json:"link"`
}

type UpsertRequest struct {
	Name            string             `json:"name" validate:"required"`
	Description     string             `json:"description"`
	Image           string             `json:"image"`
	Video           string             `json:"video"`
	Skills          []string           `json:"skills"`
	Pillars         []Step             `json:"pillars"`
	Approach        []Step             `json:"approach"`
	PricingPackages map[string]Package `json:"pricingPackages"`
	Status          string             `json:"status" validate:"required,oneof=Active Inactive"`
	Works           []WorkInput        `json:"works" validate:"dive"`
}

// ServiceDetail is the public read shape with the works gallery embedded.
type ServiceDetail struct {
	Service
	Works []Work `json:"works"`
}
