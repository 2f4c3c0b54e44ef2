package crm_test

import (
	"errors"
	"testing"

	"github.com/flamescrm/agent-platform/internal/crm"
)

func TestAgent_Validate(t *testing.T) {
	tests := []struct {
		name      string
		agent     crm.Agent
		wantField string
	}{
		{"valid minimal", crm.Agent{Name: "Ava"}, ""},
		{"valid with channel", crm.Agent{Name: "Ava", Channel: crm.ChannelVoice}, ""},
		{"missing name", crm.Agent{Channel: crm.ChannelChat}, "name"},
		{"bad channel", crm.Agent{Name: "Ava", Channel: "carrier-pigeon"}, "channel"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.agent.Validate()
			checkValidation(t, err, tt.wantField)
		})
	}
}

func TestAgent_Defaults(t *testing.T) {
	doc := crm.Agent{Name: "Ava"}.Document()

	if doc["role"] != "AI Agent" {
		t.Errorf("role = %v, want %q", doc["role"], "AI Agent")
	}
	if doc["channel"] != "omni" {
		t.Errorf("channel = %v, want %q", doc["channel"], "omni")
	}
	if doc["active"] != true {
		t.Errorf("active = %v, want true", doc["active"])
	}
}

func TestAgent_ExplicitInactive(t *testing.T) {
	inactive := false
	doc := crm.Agent{Name: "Ava", Active: &inactive}.Document()

	if doc["active"] != false {
		t.Errorf("active = %v, want false", doc["active"])
	}
}

func TestContact_Validate(t *testing.T) {
	tests := []struct {
		name      string
		contact   crm.Contact
		wantField string
	}{
		{
			"valid minimal",
			crm.Contact{FirstName: "Dana", LastName: "Reyes", Email: "dana@example.com"},
			"",
		},
		{
			"missing first name",
			crm.Contact{LastName: "Reyes", Email: "dana@example.com"},
			"first_name",
		},
		{
			"missing last name",
			crm.Contact{FirstName: "Dana", Email: "dana@example.com"},
			"last_name",
		},
		{
			"missing email",
			crm.Contact{FirstName: "Dana", LastName: "Reyes"},
			"email",
		},
		{
			"malformed email",
			crm.Contact{FirstName: "Dana", LastName: "Reyes", Email: "not-an-address"},
			"email",
		},
		{
			"bad status",
			crm.Contact{FirstName: "Dana", LastName: "Reyes", Email: "dana@example.com", Status: "vip"},
			"status",
		},
		{
			"valid status",
			crm.Contact{FirstName: "Dana", LastName: "Reyes", Email: "dana@example.com", Status: crm.ContactCustomer},
			"",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.contact.Validate()
			checkValidation(t, err, tt.wantField)
		})
	}
}

func TestContact_Defaults(t *testing.T) {
	doc := crm.Contact{FirstName: "Dana", LastName: "Reyes", Email: "dana@example.com"}.Document()

	if doc["status"] != "lead" {
		t.Errorf("status = %v, want %q", doc["status"], "lead")
	}

	tags, ok := doc["tags"].([]string)
	if !ok || tags == nil {
		t.Errorf("tags = %v, want empty slice", doc["tags"])
	}
	if len(tags) != 0 {
		t.Errorf("tags = %v, want empty", tags)
	}
}

func TestDeal_Validate(t *testing.T) {
	tests := []struct {
		name      string
		deal      crm.Deal
		wantField string
	}{
		{"valid", crm.Deal{Title: "Renewal", Amount: 1200.50}, ""},
		{"missing title", crm.Deal{Amount: 10}, "title"},
		{"bad stage", crm.Deal{Title: "Renewal", Stage: "signed"}, "stage"},
		{"valid stage", crm.Deal{Title: "Renewal", Stage: crm.DealWon}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checkValidation(t, tt.deal.Validate(), tt.wantField)
		})
	}
}

func TestDeal_Defaults(t *testing.T) {
	doc := crm.Deal{Title: "Renewal"}.Document()

	if doc["stage"] != "new" {
		t.Errorf("stage = %v, want %q", doc["stage"], "new")
	}
	if doc["amount"] != 0.0 {
		t.Errorf("amount = %v, want 0", doc["amount"])
	}
}

func TestTask_Validate(t *testing.T) {
	tests := []struct {
		name      string
		task      crm.Task
		wantField string
	}{
		{"valid", crm.Task{Title: "Follow up"}, ""},
		{"missing title", crm.Task{Notes: "call back"}, "title"},
		{"bad status", crm.Task{Title: "Follow up", Status: "paused"}, "status"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checkValidation(t, tt.task.Validate(), tt.wantField)
		})
	}
}

func TestConversation_Validate(t *testing.T) {
	tests := []struct {
		name      string
		conv      crm.Conversation
		wantField string
	}{
		{"valid empty", crm.Conversation{}, ""},
		{"omni not allowed", crm.Conversation{Channel: "omni"}, "channel"},
		{"bad status", crm.Conversation{Status: "archived"}, "status"},
		{"valid full", crm.Conversation{AgentID: "a1", ContactID: "c1", Channel: crm.ConversationEmail, Status: crm.ConversationPending}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checkValidation(t, tt.conv.Validate(), tt.wantField)
		})
	}
}

func TestConversation_Defaults(t *testing.T) {
	doc := crm.Conversation{}.Document()

	if doc["channel"] != "chat" {
		t.Errorf("channel = %v, want %q", doc["channel"], "chat")
	}
	if doc["status"] != "open" {
		t.Errorf("status = %v, want %q", doc["status"], "open")
	}
}

func TestMessage_Validate(t *testing.T) {
	tests := []struct {
		name      string
		msg       crm.Message
		wantField string
	}{
		{"valid", crm.Message{ConversationID: "c1", Text: "hello"}, ""},
		{"missing conversation", crm.Message{Text: "hello"}, "conversation_id"},
		{"missing text", crm.Message{ConversationID: "c1"}, "text"},
		{"bad sender", crm.Message{ConversationID: "c1", Text: "hello", Sender: "bot"}, "sender"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checkValidation(t, tt.msg.Validate(), tt.wantField)
		})
	}
}

func TestMessage_Defaults(t *testing.T) {
	doc := crm.Message{ConversationID: "c1", Text: "hello"}.Document()

	if doc["sender"] != "contact" {
		t.Errorf("sender = %v, want %q", doc["sender"], "contact")
	}
	if _, present := doc["meta"]; present {
		t.Error("meta should be omitted when unset")
	}
}

func TestKnowledge_Validate(t *testing.T) {
	tests := []struct {
		name      string
		entry     crm.Knowledge
		wantField string
	}{
		{"valid", crm.Knowledge{Title: "Pricing", Content: "Tiered."}, ""},
		{"missing title", crm.Knowledge{Content: "Tiered."}, "title"},
		{"missing content", crm.Knowledge{Title: "Pricing"}, "content"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checkValidation(t, tt.entry.Validate(), tt.wantField)
		})
	}
}

func TestCollectionNames(t *testing.T) {
	tests := []struct {
		collection string
		want       string
	}{
		{crm.Agent{}.Collection(), "agent"},
		{crm.Company{}.Collection(), "company"},
		{crm.Contact{}.Collection(), "contact"},
		{crm.Deal{}.Collection(), "deal"},
		{crm.Task{}.Collection(), "task"},
		{crm.Conversation{}.Collection(), "conversation"},
		{crm.Message{}.Collection(), "message"},
		{crm.Knowledge{}.Collection(), "knowledge"},
	}

	for _, tt := range tests {
		if tt.collection != tt.want {
			t.Errorf("collection = %q, want %q", tt.collection, tt.want)
		}
	}
}

func checkValidation(t *testing.T, err error, wantField string) {
	t.Helper()

	if wantField == "" {
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		return
	}

	var verr *crm.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if verr.Field != wantField {
		t.Errorf("field = %q, want %q", verr.Field, wantField)
	}
}
