package team

import "time"

type Member struct {
	ID       string `bson:"_id,omitempty" json:"id"`
	Name     string `bson:"name" json:"name"`
	Image    string `bson:"image" json:"image"`
	Role     string `bson:"role" json:"role"`
	Bio      string `bson:"bio" json:"bio"`
	LinkedIn string `bson:"linkedin" json:"linkedin"`
	// ParentRole references another member's role by value; chains are not
	// cycle-checked.
	ParentRole string    `bson:"parentRole,omitempty" json:"parentRole,omitempty"`
	CreatedAt  time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time `bson:"updatedAt" json:"updatedAt"`
}

type UpsertRequest struct {
	Name       string `json:"name" validate:"required"`
	Image      string `json:"image"`
	Role       string `json:"role" validate:"required"`
	Bio        string `json:"bio"`
	LinkedIn   string `json:"linkedin"`
	ParentRole string `json:"parentRole"`
}
