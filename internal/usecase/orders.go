package usecase

import (
	"context"

	"github.com/akalomiris/reportly/internal/domain/model"
	"github.com/akalomiris/reportly/internal/domain/repository"
)

// OrderUseCase projects stored orders into presentation-ready views.
type OrderUseCase struct {
	orders repository.OrderRepository
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(orders repository.OrderRepository) *OrderUseCase {
	return &OrderUseCase{orders: orders}
}

// GatherOrders returns every order joined with its customer, most recent
// first. Storage errors propagate; there are no partial results.
func (u *OrderUseCase) GatherOrders(ctx context.Context) ([]model.OrderView, error) {
	return u.orders.ListWithCustomers(ctx)
}
