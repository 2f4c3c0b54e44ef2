package crm

import "go.mongodb.org/mongo-driver/bson"

// Knowledge is the creation schema for records in the "knowledge"
// collection. Entries reference nothing and nothing references them.
type Knowledge struct {
	Title   string   `json:"title"`
	Content string   `json:"content"`
	Tags    []string `json:"tags"`
}

// Collection returns the collection name knowledge entries are stored in.
func (Knowledge) Collection() string { return "knowledge" }

// Validate checks required fields.
func (k Knowledge) Validate() error {
	if k.Title == "" {
		return required("title")
	}
	if k.Content == "" {
		return required("content")
	}
	return nil
}

// Document returns the stored shape with defaults applied.
func (k Knowledge) Document() bson.M {
	return bson.M{
		"title":   k.Title,
		"content": k.Content,
		"tags":    orEmpty(k.Tags),
	}
}
