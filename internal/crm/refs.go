package crm

// Soft references between entities. Each type wraps the identifier string
// of the entity it points at. Referential integrity is NOT enforced
// anywhere: a dangling or malformed reference is accepted at creation and
// stored as-is. The distinct types exist so that a reference's target
// entity is visible in the schema rather than implied by a field name.

// AgentRef references an Agent record by identifier.
type AgentRef string

// CompanyRef references a Company record by identifier.
type CompanyRef string

// ContactRef references a Contact record by identifier.
type ContactRef string

// ConversationRef references a Conversation record by identifier.
type ConversationRef string

// OwnerRef references the agent or user that owns a record.
type OwnerRef string
