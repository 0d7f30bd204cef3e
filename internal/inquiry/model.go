package inquiry

import "time"

const (
	StatusNew        = "new"
	StatusInProgress = "in-progress"
	StatusResolved   = "resolved"
	StatusClosed     = "closed"
)

// Inquiry is one contact-form submission. Status transitions are not
// constrained; the back office may set any of the four values directly.
type Inquiry struct {
	ID          string    `bson:"_id,omitempty" json:"id"`
	Name        string    `bson:"name" json:"name"`
	Email       string    `bson:"email" json:"email"`
	InquiryType string    `bson:"inquiryType" json:"inquiryType"`
	Subject     string    `bson:"subject" json:"subject"`
	Message     string    `bson:"message" json:"message"`
	Timestamp   time.Time `bson:"timestamp" json:"timestamp"`
	Status      string    `bson:"status" json:"status"`
}

type CreateRequest struct {
	Name        string `json:"name" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	InquiryType string `json:"inquiryType" validate:"required"`
	Subject     string `json:"subject" validate:"required"`
	Message     string `json:"message" validate:"required"`
}

type StatusRequest struct {
	Status string `json:"status" validate:"required,inquirystatus"`
}

type ReplyRequest struct {
	Subject string `json:"subject" validate:"required"`
	Message string `json:"message" validate:"required"`
}

type ListFilter struct {
	Name   string
	Type   string
	Status string
}
