package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	domainErrors "github.com/akalomiris/reportly/internal/domain/errors"
	"github.com/akalomiris/reportly/internal/domain/model"
	"github.com/akalomiris/reportly/internal/domain/repository"
)

// DB is the subset of pgxpool.Pool the storage depends on. Mock pools
// satisfy it in tests.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
	Ping(ctx context.Context) error
	Close()
}

// Storage acts as repository facade backed by PostgreSQL.
type Storage struct {
	pool   DB
	logger *slog.Logger
}

type customerRepository struct {
	storage *Storage
}

type orderRepository struct {
	storage *Storage
}

type reportRepository struct {
	storage *Storage
}

// New creates storage with schema initialization.
func New(ctx context.Context, dsn string, logger *slog.Logger) (*Storage, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	storage := &Storage{pool: pool, logger: logger}
	if err := storage.initSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return storage, nil
}

// Close releases database resources.
func (s *Storage) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Factory methods for domain repositories.
func (s *Storage) Customers() repository.CustomerRepository {
	return &customerRepository{storage: s}
}

func (s *Storage) Orders() repository.OrderRepository {
	return &orderRepository{storage: s}
}

func (s *Storage) Reports() repository.ReportRepository {
	return &reportRepository{storage: s}
}

func (s *Storage) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS customers (
            id BIGSERIAL PRIMARY KEY,
            name TEXT NOT NULL,
            surname TEXT NOT NULL,
            contact_email TEXT UNIQUE,
            contact_phone TEXT UNIQUE
        )`,
		`CREATE TABLE IF NOT EXISTS orders (
            id BIGSERIAL PRIMARY KEY,
            customer_id BIGINT REFERENCES customers(id),
            initialized BIGINT NOT NULL,
            amount NUMERIC(6,2),
            currency TEXT NOT NULL DEFAULT '€',
            finalized BIGINT,
            CONSTRAINT orders_lifecycle CHECK (finalized IS NULL OR finalized >= initialized)
        )`,
		`CREATE TABLE IF NOT EXISTS reports (
            uid UUID PRIMARY KEY,
            customer_id BIGINT REFERENCES customers(id),
            status TEXT NOT NULL DEFAULT 'REQUESTED',
            requested_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE INDEX IF NOT EXISTS idx_orders_initialized ON orders(initialized DESC)`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	return nil
}

// --- CustomerRepository implementation ---

func (r *customerRepository) Create(ctx context.Context, customer *model.Customer) (*model.Customer, error) {
	const query = `INSERT INTO customers (name, surname, contact_email, contact_phone)
                   VALUES ($1, $2, $3, $4) RETURNING id`
	err := r.storage.pool.QueryRow(ctx, query, customer.Name, customer.Surname, customer.ContactEmail, customer.ContactPhone).Scan(&customer.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	return customer, nil
}

func (r *customerRepository) GetByID(ctx context.Context, id int64) (*model.Customer, error) {
	const query = `SELECT id, name, surname, contact_email, contact_phone FROM customers WHERE id=$1`
	var c model.Customer
	err := r.storage.pool.QueryRow(ctx, query, id).Scan(&c.ID, &c.Name, &c.Surname, &c.ContactEmail, &c.ContactPhone)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *customerRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.storage.pool.QueryRow(ctx, `SELECT COUNT(*) FROM customers`).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

// --- OrderRepository implementation ---

func (r *orderRepository) Create(ctx context.Context, order *model.Order) (*model.Order, error) {
	if err := order.Validate(); err != nil {
		return nil, err
	}

	const query = `INSERT INTO orders (customer_id, initialized, amount, currency, finalized)
                   VALUES ($1, $2, $3, $4, $5) RETURNING id`
	err := r.storage.pool.QueryRow(ctx, query,
		order.CustomerID, order.Initialized, nullDecimal(order.Amount), string(order.Currency), order.Finalized,
	).Scan(&order.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23514" {
			return nil, domainErrors.ErrInvalidLifecycle
		}
		return nil, err
	}
	return order, nil
}

func (r *orderRepository) ListWithCustomers(ctx context.Context) ([]model.OrderView, error) {
	const query = `SELECT o.id, c.name, c.surname, o.amount, o.currency, o.initialized, o.finalized
                   FROM orders o
                   JOIN customers c ON c.id = o.customer_id
                   ORDER BY o.initialized DESC`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.OrderView
	for rows.Next() {
		var (
			id       int64
			view     model.OrderView
			amount   decimal.NullDecimal
			currency string
		)
		if err := rows.Scan(&id, &view.CustomerName, &view.CustomerSurname, &amount, &currency, &view.InitializedAt, &view.FinalizedAt); err != nil {
			return nil, err
		}
		view.DisplayID = model.Order{ID: id}.DisplayID()
		if amount.Valid {
			view.Amount = &amount.Decimal
		}
		view.CurrencySymbol = model.Currency(currency).Symbol()
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *orderRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.storage.pool.QueryRow(ctx, `SELECT COUNT(*) FROM orders`).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

// --- ReportRepository implementation ---

func (r *reportRepository) Create(ctx context.Context, report *model.Report) (*model.Report, error) {
	const query = `INSERT INTO reports (uid, customer_id, status)
                   VALUES ($1, $2, $3) RETURNING requested_at, updated_at`
	err := r.storage.pool.QueryRow(ctx, query, report.UID, report.CustomerID, string(report.Status)).Scan(&report.RequestedAt, &report.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	return report, nil
}

func (r *reportRepository) GetByUID(ctx context.Context, uid uuid.UUID) (*model.Report, error) {
	const query = `SELECT uid, customer_id, status, requested_at, updated_at FROM reports WHERE uid=$1`
	var (
		report model.Report
		status string
	)
	err := r.storage.pool.QueryRow(ctx, query, uid).Scan(&report.UID, &report.CustomerID, &status, &report.RequestedAt, &report.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	report.Status = model.ReportStatus(status)
	return &report, nil
}

func (r *reportRepository) UpdateStatus(ctx context.Context, uid uuid.UUID, status model.ReportStatus) error {
	const query = `UPDATE reports SET status=$1, updated_at=NOW() WHERE uid=$2`
	tag, err := r.storage.pool.Exec(ctx, query, string(status), uid)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

// WithinTransaction executes function inside transaction boundary. The
// transaction commits only when fn succeeds; any error rolls it back.
func (s *Storage) WithinTransaction(ctx context.Context, fn func(pgx.Tx) error) (err error) {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	err = fn(tx)
	return err
}

// HealthCheck verifies database connectivity.
func (s *Storage) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.pool.Ping(ctx)
}

// Logger returns storage logger.
func (s *Storage) Logger() *slog.Logger {
	return s.logger
}

func nullDecimal(d *decimal.Decimal) decimal.NullDecimal {
	if d == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: *d, Valid: true}
}
