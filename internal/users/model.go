package users

import "time"

const (
	RoleAdmin  = "Admin"
	RoleEditor = "Editor"
	RoleViewer = "Viewer"

	StatusActive   = "Active"
	StatusInactive = "Inactive"
	StatusPending  = "Pending"
)

// User is a directory record managed from the back office, not an auth
// principal.
type User struct {
	ID        string    `bson:"_id,omitempty" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Email     string    `bson:"email" json:"email"`
	Role      string    `bson:"role" json:"role"`
	Status    string    `bson:"status" json:"status"`
	LastLogin string    `bson:"lastLogin" json:"lastLogin"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

type UpsertRequest struct {
	Name      string `json:"name" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Role      string `json:"role" validate:"required,userrole"`
	Status    string `json:"status" validate:"required,userstatus"`
	LastLogin string `json:"lastLogin"`
}

type ListFilter struct {
	Query  string
	Role   string
	Status string
}
