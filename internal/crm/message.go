package crm

import "go.mongodb.org/mongo-driver/bson"

// Message is the creation schema for records in the "message" collection.
// ConversationID and Text are required; Sender defaults to contact. Meta
// holds arbitrary per-message annotations.
type Message struct {
	ConversationID ConversationRef `json:"conversation_id"`
	Sender         Sender          `json:"sender"`
	Text           string          `json:"text"`
	Meta           map[string]any  `json:"meta"`
}

// Collection returns the collection name messages are stored in.
func (Message) Collection() string { return "message" }

// Validate checks required fields and enum constraints.
func (m Message) Validate() error {
	if m.ConversationID == "" {
		return required("conversation_id")
	}
	if m.Text == "" {
		return required("text")
	}
	if m.Sender != "" {
		if err := m.Sender.Validate(); err != nil {
			return invalid("sender", err)
		}
	}
	return nil
}

// Document returns the stored shape with defaults applied.
func (m Message) Document() bson.M {
	doc := bson.M{
		"conversation_id": string(m.ConversationID),
		"sender":          string(orDefault(m.Sender, SenderContact)),
		"text":            m.Text,
	}
	if m.Meta != nil {
		doc["meta"] = m.Meta
	}
	return doc
}
