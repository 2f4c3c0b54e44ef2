package crm

import "go.mongodb.org/mongo-driver/bson"

// Task is the creation schema for records in the "task" collection.
// Status defaults to open. ContactID and OwnerID are soft references.
type Task struct {
	Title     string     `json:"title"`
	DueDate   string     `json:"due_date"`
	Status    TaskStatus `json:"status"`
	ContactID ContactRef `json:"contact_id"`
	OwnerID   OwnerRef   `json:"owner_id"`
	Notes     string     `json:"notes"`
}

// Collection returns the collection name tasks are stored in.
func (Task) Collection() string { return "task" }

// Validate checks required fields and enum constraints.
func (t Task) Validate() error {
	if t.Title == "" {
		return required("title")
	}
	if t.Status != "" {
		if err := t.Status.Validate(); err != nil {
			return invalid("status", err)
		}
	}
	return nil
}

// Document returns the stored shape with defaults applied.
func (t Task) Document() bson.M {
	return bson.M{
		"title":      t.Title,
		"due_date":   t.DueDate,
		"status":     string(orDefault(t.Status, TaskOpen)),
		"contact_id": string(t.ContactID),
		"owner_id":   string(t.OwnerID),
		"notes":      t.Notes,
	}
}
