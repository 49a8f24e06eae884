package entities

type AddressType string

const (
	AddressTypeBilling  AddressType = "billing"
	AddressTypeShipping AddressType = "shipping"
)

// Address is buyer profile data owned by an out-of-scope subsystem; the
// saga only reads default billing/shipping addresses during order creation.
type Address struct {
	ID         string
	UserID     string
	Type       AddressType
	IsDefault  bool
	Name       string
	Line1      string
	Line2      string
	City       string
	State      string
	PostalCode string
	Country    string
}

// Snapshot freezes the address into the shape embedded in orders.
func (a Address) Snapshot() AddressSnapshot {
	return AddressSnapshot{
		Line1:      a.Line1,
		Line2:      a.Line2,
		City:       a.City,
		State:      a.State,
		PostalCode: a.PostalCode,
		Country:    a.Country,
	}
}
