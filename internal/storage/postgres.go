package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/and161185/posloyalty/internal/errs"
	"github.com/and161185/posloyalty/internal/model"
	"github.com/and161185/posloyalty/internal/tier"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

const tierThresholdsKey = "tier_thresholds"

type PostgresStorage struct {
	db *pgxpool.Pool
}

func (store *PostgresStorage) initSchema(ctx context.Context) error {
	const initSchemaQuery = `
	CREATE TABLE IF NOT EXISTS users (
		id SERIAL PRIMARY KEY,
		login TEXT UNIQUE NOT NULL,
		password_hash TEXT NOT NULL,
		created_at TIMESTAMPTZ DEFAULT NOW()
	);
	CREATE TABLE IF NOT EXISTS customers (
		id UUID PRIMARY KEY,
		name TEXT NOT NULL,
		tier TEXT NOT NULL DEFAULT 'Bronze',
		total_spend NUMERIC NOT NULL DEFAULT 0,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);
	CREATE TABLE IF NOT EXISTS transactions (
		id UUID PRIMARY KEY,
		customer_id UUID REFERENCES customers(id),
		total NUMERIC,
		status TEXT NOT NULL DEFAULT 'completed',
		items TEXT NOT NULL DEFAULT '[]',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);
	CREATE INDEX IF NOT EXISTS idx_transactions_customer_id ON transactions(customer_id);
	CREATE INDEX IF NOT EXISTS idx_transactions_created_at ON transactions(created_at);
	CREATE TABLE IF NOT EXISTS settings (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`

	_, err := store.db.Exec(ctx, initSchemaQuery)
	return err
}

func NewPostgresStorage(ctx context.Context, databaseURI string) (*PostgresStorage, error) {
	db, err := pgxpool.New(ctx, databaseURI)
	if err != nil {
		return nil, err
	}

	storage := &PostgresStorage{db: db}

	if err := storage.Ping(ctx); err != nil {
		db.Close()
		return nil, err
	}

	if err := storage.initSchema(ctx); err != nil {
		db.Close()
		return nil, err
	}

	return storage, nil
}

func (store *PostgresStorage) Ping(ctx context.Context) error {
	return store.db.Ping(ctx)
}

func (store *PostgresStorage) Close() {
	store.db.Close()
}

func fetchErr(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", errs.ErrDataFetch, op, err)
}

func (store *PostgresStorage) CreateUser(ctx context.Context, login string, passwordHash string) error {
	const insertUserQuery = `INSERT INTO users (login, password_hash) VALUES ($1, $2)`

	_, err := store.db.Exec(ctx, insertUserQuery, login, passwordHash)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			// 23505 — уникальное ограничение нарушено
			return errs.ErrLoginAlreadyExists
		}
		return fmt.Errorf("insert user: %w", err)
	}

	return nil
}

func (store *PostgresStorage) GetUserByLogin(ctx context.Context, login string) (model.User, string, error) {
	const query = `SELECT id, login, password_hash FROM users WHERE login = $1`

	var user model.User
	var hash string

	err := store.db.QueryRow(ctx, query, login).Scan(&user.ID, &user.Login, &hash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, "", errs.ErrUserNotFound
		}
		return model.User{}, "", fetchErr("get user by login", err)
	}

	return user, hash, nil
}

func (store *PostgresStorage) GetUserByID(ctx context.Context, id int) (model.User, error) {
	const query = `SELECT id, login FROM users WHERE id = $1`

	var user model.User

	err := store.db.QueryRow(ctx, query, id).Scan(&user.ID, &user.Login)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, errs.ErrUserNotFound
		}
		return model.User{}, fetchErr("get user by id", err)
	}

	return user, nil
}

func (store *PostgresStorage) CreateCustomer(ctx context.Context, name string) (model.Customer, error) {
	const query = `
		INSERT INTO customers (id, name, tier, total_spend)
		VALUES ($1, $2, $3, 0)
		RETURNING created_at, updated_at`

	c := model.Customer{
		ID:         uuid.New(),
		Name:       name,
		Tier:       model.Bronze,
		TotalSpend: decimal.Zero,
	}

	err := store.db.QueryRow(ctx, query, c.ID, c.Name, string(c.Tier)).Scan(&c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return model.Customer{}, fmt.Errorf("insert customer: %w", err)
	}

	return c, nil
}

func (store *PostgresStorage) GetCustomer(ctx context.Context, id uuid.UUID) (model.Customer, error) {
	const query = `
		SELECT id, name, tier, total_spend::text, created_at, updated_at
		FROM customers
		WHERE id = $1`

	var c model.Customer
	var tierLabel, spend string

	err := store.db.QueryRow(ctx, query, id).Scan(&c.ID, &c.Name, &tierLabel, &spend, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Customer{}, errs.ErrCustomerNotFound
		}
		return model.Customer{}, fetchErr("get customer", err)
	}

	c.Tier = tier.ParseTier(tierLabel)
	c.TotalSpend, _ = decimal.NewFromString(spend)

	return c, nil
}

func (store *PostgresStorage) CountNewCustomers(ctx context.Context, from, to time.Time) (int, error) {
	const query = `SELECT COUNT(*) FROM customers WHERE created_at >= $1 AND created_at < $2`

	var n int
	if err := store.db.QueryRow(ctx, query, from, to).Scan(&n); err != nil {
		return 0, fetchErr("count new customers", err)
	}
	return n, nil
}

func scanTransactionRows(rows pgx.Rows) ([]model.TransactionRow, error) {
	defer rows.Close()

	var list []model.TransactionRow
	for rows.Next() {
		var r model.TransactionRow
		var status string
		err := rows.Scan(&r.ID, &r.CustomerID, &r.Total, &status, &r.Items, &r.CreatedAt)
		if err != nil {
			return nil, fetchErr("scan transaction", err)
		}
		r.Status = model.TransactionStatus(status)
		list = append(list, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fetchErr("rows error", err)
	}

	return list, nil
}

func (store *PostgresStorage) GetCustomerTransactions(ctx context.Context, customerID uuid.UUID, filter model.TransactionFilter) ([]model.TransactionRow, error) {
	var b strings.Builder
	b.WriteString(`
		SELECT id, customer_id, total::text, status, items, created_at
		FROM transactions
		WHERE customer_id = $1`)

	args := []any{customerID}
	if filter.Status != nil {
		args = append(args, string(*filter.Status))
		fmt.Fprintf(&b, " AND status = $%d", len(args))
	}
	if filter.From != nil {
		args = append(args, *filter.From)
		fmt.Fprintf(&b, " AND created_at >= $%d", len(args))
	}
	if filter.To != nil {
		args = append(args, *filter.To)
		fmt.Fprintf(&b, " AND created_at < $%d", len(args))
	}
	b.WriteString(" ORDER BY created_at ASC")

	rows, err := store.db.Query(ctx, b.String(), args...)
	if err != nil {
		return nil, fetchErr("get customer transactions", err)
	}

	return scanTransactionRows(rows)
}

func (store *PostgresStorage) GetTransactionsBetween(ctx context.Context, from, to time.Time) ([]model.TransactionRow, error) {
	const query = `
		SELECT id, customer_id, total::text, status, items, created_at
		FROM transactions
		WHERE created_at >= $1 AND created_at < $2
		ORDER BY created_at ASC`

	rows, err := store.db.Query(ctx, query, from, to)
	if err != nil {
		return nil, fetchErr("get transactions between", err)
	}

	return scanTransactionRows(rows)
}

func (store *PostgresStorage) AddTransaction(ctx context.Context, tx model.TransactionRecord) (model.TransactionRecord, error) {
	const query = `
		INSERT INTO transactions (id, customer_id, total, status, items)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at`

	if tx.ID == uuid.Nil {
		tx.ID = uuid.New()
	}
	if tx.Items == nil {
		tx.Items = []model.LineItem{}
	}

	items, err := json.Marshal(tx.Items)
	if err != nil {
		return model.TransactionRecord{}, fmt.Errorf("encode items: %w", err)
	}

	err = store.db.QueryRow(ctx, query, tx.ID, tx.CustomerID, tx.Total.String(), string(tx.Status), string(items)).Scan(&tx.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			// 23503 — нет такого покупателя
			return model.TransactionRecord{}, errs.ErrCustomerNotFound
		}
		return model.TransactionRecord{}, fmt.Errorf("insert transaction: %w", err)
	}

	return tx, nil
}

// CloseTab moves an open transaction to completed and returns its raw row.
func (store *PostgresStorage) CloseTab(ctx context.Context, id uuid.UUID) (model.TransactionRow, error) {
	const lockQuery = `SELECT status FROM transactions WHERE id = $1 FOR UPDATE`

	const closeQuery = `
		UPDATE transactions
		SET status = 'completed'
		WHERE id = $1
		RETURNING id, customer_id, total::text, status, items, created_at`

	tx, err := store.db.Begin(ctx)
	if err != nil {
		return model.TransactionRow{}, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	var status string
	err = tx.QueryRow(ctx, lockQuery, id).Scan(&status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.TransactionRow{}, errs.ErrTransactionNotFound
		}
		return model.TransactionRow{}, fmt.Errorf("lock transaction: %w", err)
	}

	if model.TransactionStatus(status) != model.Open {
		return model.TransactionRow{}, errs.ErrTabNotOpen
	}

	var r model.TransactionRow
	err = tx.QueryRow(ctx, closeQuery, id).Scan(&r.ID, &r.CustomerID, &r.Total, &status, &r.Items, &r.CreatedAt)
	if err != nil {
		return model.TransactionRow{}, fmt.Errorf("close tab: %w", err)
	}
	r.Status = model.TransactionStatus(status)

	if err := tx.Commit(ctx); err != nil {
		return model.TransactionRow{}, fmt.Errorf("commit: %w", err)
	}

	return r, nil
}

// GetTierThresholds never fails on a bad stored value; it falls back to the defaults.
func (store *PostgresStorage) GetTierThresholds(ctx context.Context) (model.TierThresholds, error) {
	const query = `SELECT value FROM settings WHERE key = $1`

	var raw string
	err := store.db.QueryRow(ctx, query, tierThresholdsKey).Scan(&raw)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return tier.DefaultThresholds(), nil
		}
		return model.TierThresholds{}, fetchErr("get tier thresholds", err)
	}

	thresholds, _ := tier.ThresholdsFromSetting([]byte(raw))
	return thresholds, nil
}

func (store *PostgresStorage) SaveTierThresholds(ctx context.Context, thresholds model.TierThresholds) error {
	const query = `
		INSERT INTO settings (key, value, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()`

	if err := tier.ValidateThresholds(thresholds); err != nil {
		return err
	}

	raw, err := json.Marshal(thresholds)
	if err != nil {
		return fmt.Errorf("encode thresholds: %w", err)
	}

	if _, err := store.db.Exec(ctx, query, tierThresholdsKey, string(raw)); err != nil {
		return fmt.Errorf("save tier thresholds: %w", err)
	}
	return nil
}

func (store *PostgresStorage) PersistTierUpgrade(ctx context.Context, customerID uuid.UUID, t model.Tier, totalSpend decimal.Decimal, updatedAt time.Time) error {
	const query = `
		UPDATE customers
		SET tier = $1, total_spend = $2, updated_at = $3
		WHERE id = $4`

	cmdTag, err := store.db.Exec(ctx, query, string(t), totalSpend.String(), updatedAt, customerID)
	if err != nil {
		return fmt.Errorf("update customer tier: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return errs.ErrCustomerNotFound
	}

	return nil
}
