package repository

import (
	"context"

	"github.com/akalomiris/reportly/internal/domain/model"
)

// OrderRepository describes persistence operations with orders.
type OrderRepository interface {
	Create(ctx context.Context, order *model.Order) (*model.Order, error)
	ListWithCustomers(ctx context.Context) ([]model.OrderView, error)
	Count(ctx context.Context) (int64, error)
}
