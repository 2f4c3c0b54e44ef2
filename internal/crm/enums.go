package crm

import "fmt"

// Channel is an agent's primary support channel.
type Channel string

// Channel values.
const (
	ChannelVoice Channel = "voice"
	ChannelChat  Channel = "chat"
	ChannelEmail Channel = "email"
	ChannelOmni  Channel = "omni"
)

// Validate checks the channel against its closed value set.
func (c Channel) Validate() error {
	switch c {
	case ChannelVoice, ChannelChat, ChannelEmail, ChannelOmni:
		return nil
	default:
		return fmt.Errorf("invalid channel: %q (must be voice, chat, email, or omni)", string(c))
	}
}

// ContactStatus is a contact's position in the sales funnel.
type ContactStatus string

// ContactStatus values.
const (
	ContactLead     ContactStatus = "lead"
	ContactProspect ContactStatus = "prospect"
	ContactCustomer ContactStatus = "customer"
)

// Validate checks the status against its closed value set.
func (s ContactStatus) Validate() error {
	switch s {
	case ContactLead, ContactProspect, ContactCustomer:
		return nil
	default:
		return fmt.Errorf("invalid status: %q (must be lead, prospect, or customer)", string(s))
	}
}

// DealStage is a deal's pipeline stage.
type DealStage string

// DealStage values.
const (
	DealNew       DealStage = "new"
	DealQualified DealStage = "qualified"
	DealProposal  DealStage = "proposal"
	DealWon       DealStage = "won"
	DealLost      DealStage = "lost"
)

// Validate checks the stage against its closed value set.
func (s DealStage) Validate() error {
	switch s {
	case DealNew, DealQualified, DealProposal, DealWon, DealLost:
		return nil
	default:
		return fmt.Errorf("invalid stage: %q (must be new, qualified, proposal, won, or lost)", string(s))
	}
}

// TaskStatus is a task's completion state.
type TaskStatus string

// TaskStatus values.
const (
	TaskOpen       TaskStatus = "open"
	TaskInProgress TaskStatus = "in_progress"
	TaskDone       TaskStatus = "done"
)

// Validate checks the status against its closed value set.
func (s TaskStatus) Validate() error {
	switch s {
	case TaskOpen, TaskInProgress, TaskDone:
		return nil
	default:
		return fmt.Errorf("invalid status: %q (must be open, in_progress, or done)", string(s))
	}
}

// ConversationChannel is the medium a conversation takes place on.
// Unlike an agent's Channel it has no "omni" value.
type ConversationChannel string

// ConversationChannel values.
const (
	ConversationVoice ConversationChannel = "voice"
	ConversationChat  ConversationChannel = "chat"
	ConversationEmail ConversationChannel = "email"
)

// Validate checks the channel against its closed value set.
func (c ConversationChannel) Validate() error {
	switch c {
	case ConversationVoice, ConversationChat, ConversationEmail:
		return nil
	default:
		return fmt.Errorf("invalid channel: %q (must be voice, chat, or email)", string(c))
	}
}

// ConversationStatus is a conversation's lifecycle state.
type ConversationStatus string

// ConversationStatus values.
const (
	ConversationOpen    ConversationStatus = "open"
	ConversationClosed  ConversationStatus = "closed"
	ConversationPending ConversationStatus = "pending"
)

// Validate checks the status against its closed value set.
func (s ConversationStatus) Validate() error {
	switch s {
	case ConversationOpen, ConversationClosed, ConversationPending:
		return nil
	default:
		return fmt.Errorf("invalid status: %q (must be open, closed, or pending)", string(s))
	}
}

// Sender identifies which party produced a message.
type Sender string

// Sender values.
const (
	SenderAgent   Sender = "agent"
	SenderContact Sender = "contact"
	SenderSystem  Sender = "system"
)

// Validate checks the sender against its closed value set.
func (s Sender) Validate() error {
	switch s {
	case SenderAgent, SenderContact, SenderSystem:
		return nil
	default:
		return fmt.Errorf("invalid sender: %q (must be agent, contact, or system)", string(s))
	}
}
