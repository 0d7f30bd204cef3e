package sitecontent

import "time"

// PartnerLogo is one entry in the "trusted by" strip.
type PartnerLogo struct {
	ID        string    `bson:"_id,omitempty" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Image     string    `bson:"image" json:"image"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

type LogoRequest struct {
	Name  string `json:"name" validate:"required"`
	Image string `json:"image" validate:"required"`
}

const (
	HeroTypeDefault = "default"
	HeroTypeSolid   = "solid"
	HeroTypeImage   = "image"
	HeroTypeVideo   = "video"
)

// HeroBackground is a singleton: the background behind the landing hero.
// Value holds a color for solid, a media path for image/video, and is empty
// for default.
type HeroBackground struct {
	ID        string    `bson:"_id,omitempty" json:"id"`
	Type      string    `bson:"type" json:"type"`
	Value     string    `bson:"value" json:"value"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

type HeroRequest struct {
	Type  string `json:"type" validate:"required,herotype"`
	Value string `json:"value"`
}
