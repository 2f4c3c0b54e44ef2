package crm

import "go.mongodb.org/mongo-driver/bson"

// Company is the creation schema for records in the "company" collection.
type Company struct {
	Name     string `json:"name"`
	Domain   string `json:"domain"`
	Industry string `json:"industry"`
	Size     string `json:"size"`
	Notes    string `json:"notes"`
}

// Collection returns the collection name companies are stored in.
func (Company) Collection() string { return "company" }

// Validate checks required fields.
func (c Company) Validate() error {
	if c.Name == "" {
		return required("name")
	}
	return nil
}

// Document returns the stored shape.
func (c Company) Document() bson.M {
	return bson.M{
		"name":     c.Name,
		"domain":   c.Domain,
		"industry": c.Industry,
		"size":     c.Size,
		"notes":    c.Notes,
	}
}
