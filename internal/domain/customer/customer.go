package customer

// Status is the approval state of a customer account. Only StatusAccepted
// unlocks the customer price tier; every other value (including the zero
// value, meaning unauthenticated) is priced as a regular client.
type Status string

const (
	StatusPending  Status = "pending"
	StatusAccepted Status = "accepted"
	StatusRejected Status = "rejected"
)

// Customer is the authenticated account profile returned by the account/me
// endpoint.
type Customer struct {
	ID        string         `json:"id,omitempty"`
	Username  string         `json:"username"`
	Status    Status         `json:"status,omitempty"`
	Firstname string         `json:"firstname"`
	Lastname  string         `json:"lastname"`
	Phone     string         `json:"phone"`
	Email     string         `json:"email,omitempty"`
	MetaData  map[string]any `json:"metaData,omitempty"`
	CreatedAt int64          `json:"createdAt,omitempty"`
}
