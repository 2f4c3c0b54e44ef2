package crm

import (
	"fmt"
	"net/mail"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
)

// Contact is the creation schema for records in the "contact" collection.
// Only first_name, last_name, and email are required; Status defaults to
// lead. CompanyID and OwnerID are soft references.
type Contact struct {
	FirstName string        `json:"first_name"`
	LastName  string        `json:"last_name"`
	Email     string        `json:"email"`
	Phone     string        `json:"phone"`
	CompanyID CompanyRef    `json:"company_id"`
	Status    ContactStatus `json:"status"`
	OwnerID   OwnerRef      `json:"owner_id"`
	Tags      []string      `json:"tags"`
	Notes     string        `json:"notes"`
}

// Collection returns the collection name contacts are stored in.
func (Contact) Collection() string { return "contact" }

// Validate checks required fields, the email format, and enum constraints.
func (c Contact) Validate() error {
	if c.FirstName == "" {
		return required("first_name")
	}
	if c.LastName == "" {
		return required("last_name")
	}
	if c.Email == "" {
		return required("email")
	}
	if err := validateEmail(c.Email); err != nil {
		return invalid("email", err)
	}
	if c.Status != "" {
		if err := c.Status.Validate(); err != nil {
			return invalid("status", err)
		}
	}
	return nil
}

// Document returns the stored shape with defaults applied.
func (c Contact) Document() bson.M {
	return bson.M{
		"first_name": c.FirstName,
		"last_name":  c.LastName,
		"email":      c.Email,
		"phone":      c.Phone,
		"company_id": string(c.CompanyID),
		"status":     string(orDefault(c.Status, ContactLead)),
		"owner_id":   string(c.OwnerID),
		"tags":       orEmpty(c.Tags),
		"notes":      c.Notes,
	}
}

func validateEmail(email string) error {
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email || !strings.Contains(email, "@") {
		return fmt.Errorf("not a valid email address: %q", email)
	}
	return nil
}
