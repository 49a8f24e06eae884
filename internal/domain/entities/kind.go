package entities

// ItemKind separates the two parallel deal pipelines. Product and service
// deals share the same state shape and logic but live in separate
// quotation/invoice tables and route groups.
type ItemKind string

const (
	ItemKindProduct ItemKind = "product"
	ItemKindService ItemKind = "service"
)
