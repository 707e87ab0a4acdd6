package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/akalomiris/reportly/internal/domain/model"
)

const seedOrderCount = 20

type sampleCustomer struct {
	name    string
	surname string
	email   string
}

var sampleCustomers = []sampleCustomer{
	{name: "Giorikas", surname: "Alpha", email: "giorikas@alpha.com"},
	{name: "Kostikas", surname: "Giota", email: "kostikas@giota.com"},
	{name: "Makis", surname: "Zita", email: "makis@zita.com"},
	{name: "Fotis", surname: "ParaPente", email: "fotis@parapente.com"},
}

// Seed writes sample customers and orders at startup. Customers are
// idempotent on their contact email; orders are only generated into an
// empty table. Everything runs in a single transaction that commits
// only on success.
func (s *Storage) Seed(ctx context.Context) error {
	return s.WithinTransaction(ctx, func(tx pgx.Tx) error {
		customerIDs, err := seedCustomers(ctx, tx)
		if err != nil {
			return fmt.Errorf("seed customers: %w", err)
		}

		var orderCount int64
		if err := tx.QueryRow(ctx, `SELECT COUNT(*) FROM orders`).Scan(&orderCount); err != nil {
			return fmt.Errorf("count orders: %w", err)
		}
		if orderCount > 0 {
			s.logger.Info("sample orders already present", slog.Int64("count", orderCount))
			return nil
		}

		if err := seedOrders(ctx, tx, customerIDs); err != nil {
			return fmt.Errorf("seed orders: %w", err)
		}

		s.logger.Info("sample data seeded",
			slog.Int("customers", len(customerIDs)),
			slog.Int("orders", seedOrderCount),
		)
		return nil
	})
}

func seedCustomers(ctx context.Context, tx pgx.Tx) ([]int64, error) {
	const query = `INSERT INTO customers (name, surname, contact_email)
                   VALUES ($1, $2, $3)
                   ON CONFLICT (contact_email) DO UPDATE SET name = EXCLUDED.name
                   RETURNING id`

	ids := make([]int64, 0, len(sampleCustomers))
	for _, c := range sampleCustomers {
		var id int64
		if err := tx.QueryRow(ctx, query, c.name, c.surname, c.email).Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func seedOrders(ctx context.Context, tx pgx.Tx, customerIDs []int64) error {
	const query = `INSERT INTO orders (customer_id, initialized, amount, currency, finalized)
                   VALUES ($1, $2, $3, $4, $5)`

	now := time.Now()
	currencies := model.Currencies()

	for i := 0; i < seedOrderCount; i++ {
		initialized := now.Add(-time.Duration(rand.Intn(50*24)) * time.Hour).Unix()

		var amount decimal.NullDecimal
		if rand.Intn(5) != 0 {
			amount = decimal.NullDecimal{Decimal: decimal.New(rand.Int63n(10000), -2), Valid: true}
		}

		var finalized *int64
		if rand.Intn(2) == 0 {
			done := initialized + int64(rand.Intn(72*3600))
			finalized = &done
		}

		currency := currencies[rand.Intn(len(currencies))]
		customerID := customerIDs[rand.Intn(len(customerIDs))]

		if _, err := tx.Exec(ctx, query, customerID, initialized, amount, string(currency), finalized); err != nil {
			return err
		}
	}
	return nil
}
