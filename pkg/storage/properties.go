package storage

import (
	"context"

	"github.com/kodipay/rentledger/pkg/models"
)

// PropertyStore defines the interface for reading and registering properties.
// The ledger never mutates a property after creation.
type PropertyStore interface {
	// GetProperty retrieves a property by its ID.
	GetProperty(ctx context.Context, propertyID string) (*models.Property, error)

	// CreateProperty registers a new property.
	CreateProperty(ctx context.Context, property *models.Property) (*models.Property, error)

	// ListPropertiesByOwner retrieves all properties belonging to an owner.
	ListPropertiesByOwner(ctx context.Context, ownerID string) ([]models.Property, error)

	// ListProperties retrieves every property. Used by the sweep entrypoints.
	ListProperties(ctx context.Context) ([]models.Property, error)
}
