package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"foodcart/order-svc/internal/domain"
)

type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

// EnsureSchema creates the write-side tables. orders.restaurant_id carries no
// foreign key; callers check the id before inserting.
func (r *PostgresRepository) EnsureSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS orders (
			id UUID PRIMARY KEY,
			user_id TEXT NOT NULL,
			restaurant_id INTEGER NOT NULL,
			items JSONB NOT NULL DEFAULT '[]',
			total_amount INTEGER NOT NULL,
			delivery_address TEXT NOT NULL,
			payment_method TEXT NOT NULL DEFAULT 'card',
			payment_status TEXT NOT NULL DEFAULT 'pending',
			status TEXT NOT NULL DEFAULT 'confirmed',
			qr_code BYTEA,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS contact_messages (
			id SERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			email TEXT NOT NULL,
			subject TEXT NOT NULL DEFAULT '',
			message TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS job_applications (
			id SERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			email TEXT NOT NULL,
			phone TEXT NOT NULL DEFAULT '',
			position TEXT NOT NULL,
			experience TEXT NOT NULL DEFAULT '',
			cover_letter TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
	}

	for _, stmt := range statements {
		if _, err := r.DB.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}

func (r *PostgresRepository) RestaurantExists(ctx context.Context, restaurantID int) (bool, error) {
	var exists bool
	err := r.DB.QueryRowContext(ctx,
		"SELECT EXISTS(SELECT 1 FROM restaurants WHERE id = $1)", restaurantID).Scan(&exists)
	return exists, err
}

// AnyRestaurantID returns the lowest restaurant id, or ok=false when the
// table is empty.
func (r *PostgresRepository) AnyRestaurantID(ctx context.Context) (int, bool, error) {
	var id int
	err := r.DB.QueryRowContext(ctx, "SELECT id FROM restaurants ORDER BY id LIMIT 1").Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return id, true, nil
}

func (r *PostgresRepository) InsertOrder(ctx context.Context, order *domain.Order) error {
	items, err := json.Marshal(order.Items)
	if err != nil {
		return err
	}

	_, err = r.DB.ExecContext(ctx, `
		INSERT INTO orders (id, user_id, restaurant_id, items, total_amount, delivery_address,
			payment_method, payment_status, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		order.ID, order.UserID, order.RestaurantID, items, order.TotalAmount, order.DeliveryAddress,
		order.PaymentMethod, order.PaymentStatus, order.Status, order.CreatedAt)
	return err
}

func (r *PostgresRepository) GetOrder(ctx context.Context, orderID string) (*domain.Order, error) {
	var order domain.Order
	var items []byte
	err := r.DB.QueryRowContext(ctx, `
		SELECT id, user_id, restaurant_id, items, total_amount, delivery_address,
			payment_method, payment_status, status, created_at
		FROM orders WHERE id = $1`, orderID).
		Scan(&order.ID, &order.UserID, &order.RestaurantID, &items, &order.TotalAmount, &order.DeliveryAddress,
			&order.PaymentMethod, &order.PaymentStatus, &order.Status, &order.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}

	order.Items = []domain.OrderItem{}
	if err := json.Unmarshal(items, &order.Items); err != nil {
		return nil, fmt.Errorf("decode order items: %w", err)
	}
	return &order, nil
}

func (r *PostgresRepository) SaveQRCode(ctx context.Context, orderID string, qr []byte) error {
	_, err := r.DB.ExecContext(ctx, "UPDATE orders SET qr_code = $1 WHERE id = $2", qr, orderID)
	return err
}

func (r *PostgresRepository) GetQRCode(ctx context.Context, orderID string) ([]byte, error) {
	var qr []byte
	err := r.DB.QueryRowContext(ctx, "SELECT qr_code FROM orders WHERE id = $1", orderID).Scan(&qr)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrOrderNotFound
	}
	return qr, err
}

func (r *PostgresRepository) InsertContactMessage(ctx context.Context, msg domain.ContactMessage) error {
	_, err := r.DB.ExecContext(ctx,
		"INSERT INTO contact_messages (name, email, subject, message) VALUES ($1, $2, $3, $4)",
		msg.Name, msg.Email, msg.Subject, msg.Message)
	return err
}

func (r *PostgresRepository) InsertJobApplication(ctx context.Context, app domain.JobApplication) error {
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO job_applications (name, email, phone, position, experience, cover_letter)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		app.Name, app.Email, app.Phone, app.Position, app.Experience, app.CoverLetter)
	return err
}
