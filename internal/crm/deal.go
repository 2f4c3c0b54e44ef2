package crm

import "go.mongodb.org/mongo-driver/bson"

// Deal is the creation schema for records in the "deal" collection.
// Stage defaults to new and Amount to zero. ContactID, CompanyID, and
// OwnerID are soft references.
type Deal struct {
	Title     string     `json:"title"`
	Amount    float64    `json:"amount"`
	Stage     DealStage  `json:"stage"`
	ContactID ContactRef `json:"contact_id"`
	CompanyID CompanyRef `json:"company_id"`
	OwnerID   OwnerRef   `json:"owner_id"`
}

// Collection returns the collection name deals are stored in.
func (Deal) Collection() string { return "deal" }

// Validate checks required fields and enum constraints.
func (d Deal) Validate() error {
	if d.Title == "" {
		return required("title")
	}
	if d.Stage != "" {
		if err := d.Stage.Validate(); err != nil {
			return invalid("stage", err)
		}
	}
	return nil
}

// Document returns the stored shape with defaults applied.
func (d Deal) Document() bson.M {
	return bson.M{
		"title":      d.Title,
		"amount":     d.Amount,
		"stage":      string(orDefault(d.Stage, DealNew)),
		"contact_id": string(d.ContactID),
		"company_id": string(d.CompanyID),
		"owner_id":   string(d.OwnerID),
	}
}
