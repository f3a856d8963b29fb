package models

import "time"

// ContactRequest is what a visitor fills in on the contact page. It is
// accepted both as a JSON body on POST /api/contact and as an HTML form.
type ContactRequest struct {
	FullName    string `json:"fullName"    form:"fullName"    validate:"min=2"`
	Email       string `json:"email"       form:"email"       validate:"email"`
	Phone       string `json:"phone"       form:"phone"       validate:"phone_digits"`
	ServiceType string `json:"serviceType" form:"serviceType" validate:"required,catalog_service"`
	Details     string `json:"details"     form:"details"     validate:"min=10"`
}

// ContactSubmission is a stored contact request.
type ContactSubmission struct {
	ID          string    `json:"id"          bson:"_id"`
	FullName    string    `json:"fullName"    bson:"full_name"`
	Email       string    `json:"email"       bson:"email"`
	Phone       string    `json:"phone"       bson:"phone"`
	ServiceType string    `json:"serviceType" bson:"service_type"`
	Details     string    `json:"details"     bson:"details"`
	RemoteAddr  string    `json:"-"           bson:"remote_addr,omitempty"`
	CreatedAt   time.Time `json:"created_at"  bson:"created_at"`
}
