package crm

import "go.mongodb.org/mongo-driver/bson"

// Conversation is the creation schema for records in the "conversation"
// collection. Channel defaults to chat and Status to open. AgentID and
// ContactID are soft references; a conversation may exist with neither.
type Conversation struct {
	AgentID   AgentRef            `json:"agent_id"`
	ContactID ContactRef          `json:"contact_id"`
	Channel   ConversationChannel `json:"channel"`
	Topic     string              `json:"topic"`
	Status    ConversationStatus  `json:"status"`
}

// Collection returns the collection name conversations are stored in.
func (Conversation) Collection() string { return "conversation" }

// Validate checks enum constraints. No field is required.
func (c Conversation) Validate() error {
	if c.Channel != "" {
		if err := c.Channel.Validate(); err != nil {
			return invalid("channel", err)
		}
	}
	if c.Status != "" {
		if err := c.Status.Validate(); err != nil {
			return invalid("status", err)
		}
	}
	return nil
}

// Document returns the stored shape with defaults applied.
func (c Conversation) Document() bson.M {
	return bson.M{
		"agent_id":   string(c.AgentID),
		"contact_id": string(c.ContactID),
		"channel":    string(orDefault(c.Channel, ConversationChat)),
		"topic":      c.Topic,
		"status":     string(orDefault(c.Status, ConversationOpen)),
	}
}
