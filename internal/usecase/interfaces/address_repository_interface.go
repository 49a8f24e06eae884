package interfaces

import (
	"context"

	"sellerhub/internal/domain/entities"
)

// IAddressRepository is the read-only Address Resolver boundary. A missing
// default address is reported with a zero-value Address, not an error.
type IAddressRepository interface {
	FindDefault(ctx context.Context, userID string, addrType entities.AddressType) (entities.Address, error)
}
