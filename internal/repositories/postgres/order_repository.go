package postgres

import (
	"context"
	"time"

	"github.com/dineforge/restalytics/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type OrderRepository struct {
	pool *pgxpool.Pool
}

func NewOrderRepository(pool *pgxpool.Pool) *OrderRepository {
	return &OrderRepository{pool: pool}
}

func (r *OrderRepository) BulkCreate(ctx context.Context, records []models.OrderRecord) error {
	_, err := r.pool.CopyFrom(
		ctx,
		pgx.Identifier{"restaurant_orders"},
		[]string{
			"order_id", "customer_id", "outlet_id", "outlet_name", "borough",
			"capacity", "order_placed", "total_price", "payment_method",
			"item_name", "item_category", "item_price", "item_quantity",
			"is_vegetarian", "spice_level", "age", "gender", "loyalty_group",
			"estimated_total_spent",
		},
		pgx.CopyFromSlice(len(records), func(i int) ([]interface{}, error) {
			rec := records[i]
			var placed *time.Time
			if !rec.OrderPlacedAt.IsZero() {
				placed = &rec.OrderPlacedAt
			}
			var age *int
			if rec.AgeKnown {
				age = &rec.Age
			}
			return []interface{}{
				rec.OrderID,
				rec.CustomerID,
				rec.OutletID,
				rec.OutletName,
				rec.Borough,
				rec.Capacity,
				placed,
				rec.TotalPrice,
				rec.PaymentMethod,
				rec.ItemName,
				rec.ItemCategory,
				rec.ItemPrice,
				rec.ItemQuantity,
				rec.IsVegetarian,
				rec.SpiceLevel,
				age,
				rec.Gender,
				rec.LoyaltyGroup,
				rec.EstimatedTotalSpent,
			}, nil
		}),
	)
	return err
}

func (r *OrderRepository) GetAll(ctx context.Context) ([]models.OrderRecord, error) {
	query := `
        SELECT
            order_id,
            customer_id,
            outlet_id,
            outlet_name,
            borough,
            capacity,
            order_placed,
            total_price,
            payment_method,
            item_name,
            item_category,
            item_price,
            item_quantity,
            is_vegetarian,
            spice_level,
            age,
            gender,
            loyalty_group,
            estimated_total_spent
        FROM restaurant_orders
    `
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []models.OrderRecord
	for rows.Next() {
		var rec models.OrderRecord
		var placed *time.Time
		var age *int
		err := rows.Scan(
			&rec.OrderID,
			&rec.CustomerID,
			&rec.OutletID,
			&rec.OutletName,
			&rec.Borough,
			&rec.Capacity,
			&placed,
			&rec.TotalPrice,
			&rec.PaymentMethod,
			&rec.ItemName,
			&rec.ItemCategory,
			&rec.ItemPrice,
			&rec.ItemQuantity,
			&rec.IsVegetarian,
			&rec.SpiceLevel,
			&age,
			&rec.Gender,
			&rec.LoyaltyGroup,
			&rec.EstimatedTotalSpent,
		)
		if err != nil {
			return nil, err
		}
		if placed != nil {
			rec.OrderPlacedAt = *placed
		}
		if age != nil {
			rec.Age = *age
			rec.AgeKnown = true
		}
		rec.DeriveTime()
		records = append(records, rec)
	}
	return records, rows.Err()
}

func (r *OrderRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM restaurant_orders").Scan(&count)
	return count, err
}

func (r *OrderRepository) DeleteAll(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, "TRUNCATE TABLE restaurant_orders")
	return err
}
