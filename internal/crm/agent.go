package crm

import "go.mongodb.org/mongo-driver/bson"

// Agent is the creation schema for records in the "agent" collection.
// Name is required; Channel defaults to omni and Active to true.
type Agent struct {
	Name      string  `json:"name"`
	Role      string  `json:"role"`
	Channel   Channel `json:"channel"`
	ModelHint string  `json:"model_hint"`
	Persona   string  `json:"persona"`
	Active    *bool   `json:"active"`
}

// Collection returns the collection name agents are stored in.
func (Agent) Collection() string { return "agent" }

// Validate checks required fields and enum constraints.
func (a Agent) Validate() error {
	if a.Name == "" {
		return required("name")
	}
	if a.Channel != "" {
		if err := a.Channel.Validate(); err != nil {
			return invalid("channel", err)
		}
	}
	return nil
}

// Document returns the stored shape with defaults applied.
func (a Agent) Document() bson.M {
	return bson.M{
		"name":       a.Name,
		"role":       orDefault(a.Role, "AI Agent"),
		"channel":    string(orDefault(a.Channel, ChannelOmni)),
		"model_hint": a.ModelHint,
		"persona":    a.Persona,
		"active":     orTrue(a.Active),
	}
}
