package services

import (
	"context"
	"fmt"

	"anishop/internal/domain/order"
	"anishop/internal/shared/id"
)

// maxCodeAttempts bounds the retry loop against the astronomically unlikely
// streak of random collisions.
const maxCodeAttempts = 5

// OrderCodeGenerator produces order codes that are unique against the orders
// table at generation time. Uniqueness is still enforced by the database
// index; a concurrent insert between the check and the save surfaces as a
// conflict on save.
type OrderCodeGenerator struct {
	orders order.Repository
}

func NewOrderCodeGenerator(orders order.Repository) *OrderCodeGenerator {
	return &OrderCodeGenerator{orders: orders}
}

func (g *OrderCodeGenerator) Generate(ctx context.Context) (string, error) {
	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		code, err := id.NewOrderCode()
		if err != nil {
			return "", fmt.Errorf("failed to generate order code: %w", err)
		}

		exists, err := g.orders.ExistsByCode(ctx, code)
		if err != nil {
			return "", err
		}
		if !exists {
			return code, nil
		}
	}
	return "", fmt.Errorf("failed to generate a unique order code after %d attempts", maxCodeAttempts)
}
