package repositories

import (
	"context"

	"github.com/dineforge/restalytics/internal/models"
)

// OrderRepository persists and retrieves the flat order-record data set.
type OrderRepository interface {
	BulkCreate(ctx context.Context, records []models.OrderRecord) error
	GetAll(ctx context.Context) ([]models.OrderRecord, error)
	Count(ctx context.Context) (int, error)
	DeleteAll(ctx context.Context) error
}
