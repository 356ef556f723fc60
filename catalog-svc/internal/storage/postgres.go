package storage

import (
	"context"
	"database/sql"
	"fmt"

	"foodcart/catalog-svc/internal/domain"

	"github.com/lib/pq"
)

type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

func (r *PostgresRepository) EnsureSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS restaurants (
			id SERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			image TEXT NOT NULL DEFAULT '',
			cuisine TEXT[] NOT NULL DEFAULT '{}',
			rating NUMERIC(2,1) NOT NULL DEFAULT 0,
			delivery_time TEXT NOT NULL DEFAULT '',
			distance TEXT NOT NULL DEFAULT '',
			offers TEXT[] NOT NULL DEFAULT '{}',
			cost_for_two INTEGER NOT NULL DEFAULT 0
		)`,
		`CREATE TABLE IF NOT EXISTS menu_items (
			id INTEGER PRIMARY KEY,
			restaurant_id INTEGER NOT NULL REFERENCES restaurants(id) ON DELETE CASCADE,
			name TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			price INTEGER NOT NULL CHECK (price > 0),
			image TEXT NOT NULL DEFAULT '',
			category TEXT NOT NULL DEFAULT '',
			is_veg BOOLEAN NOT NULL DEFAULT FALSE,
			rating NUMERIC(2,1) NOT NULL DEFAULT 0,
			bestseller BOOLEAN NOT NULL DEFAULT FALSE
		)`,
		"CREATE INDEX IF NOT EXISTS idx_menu_items_restaurant ON menu_items (restaurant_id)",
	}

	for _, stmt := range statements {
		if _, err := r.DB.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}

func (r *PostgresRepository) ListRestaurants(ctx context.Context) ([]domain.Restaurant, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, name, image, cuisine, rating, delivery_time, distance, offers, cost_for_two
		FROM restaurants
		ORDER BY rating DESC, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	restaurants := []domain.Restaurant{}
	for rows.Next() {
		var rest domain.Restaurant
		if err := rows.Scan(&rest.ID, &rest.Name, &rest.Image, pq.Array(&rest.Cuisine), &rest.Rating,
			&rest.DeliveryTime, &rest.Distance, pq.Array(&rest.Offers), &rest.CostForTwo); err != nil {
			return nil, fmt.Errorf("scan restaurant: %w", err)
		}
		restaurants = append(restaurants, rest)
	}
	return restaurants, rows.Err()
}

func (r *PostgresRepository) ListMenuItems(ctx context.Context, restaurantID int) ([]domain.MenuItem, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, name, description, price, image, category, is_veg, rating, bestseller
		FROM menu_items
		WHERE restaurant_id = $1
		ORDER BY category, id`, restaurantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []domain.MenuItem{}
	for rows.Next() {
		var item domain.MenuItem
		if err := rows.Scan(&item.ID, &item.Name, &item.Description, &item.Price, &item.Image,
			&item.Category, &item.IsVeg, &item.Rating, &item.Bestseller); err != nil {
			return nil, fmt.Errorf("scan menu item: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// SeedRestaurant writes a generated restaurant and its menu in one
// transaction, leaving existing rows untouched.
func (r *PostgresRepository) SeedRestaurant(ctx context.Context, rest domain.Restaurant, items []domain.MenuItem) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO restaurants (id, name, image, cuisine, rating, delivery_time, distance, offers, cost_for_two)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (id) DO NOTHING`,
		rest.ID, rest.Name, rest.Image, pq.Array(rest.Cuisine), rest.Rating,
		rest.DeliveryTime, rest.Distance, pq.Array(rest.Offers), rest.CostForTwo); err != nil {
		return fmt.Errorf("insert restaurant %d: %w", rest.ID, err)
	}

	for _, item := range items {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO menu_items (id, restaurant_id, name, description, price, image, category, is_veg, rating, bestseller)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			ON CONFLICT (id) DO NOTHING`,
			item.ID, rest.ID, item.Name, item.Description, item.Price, item.Image,
			item.Category, item.IsVeg, item.Rating, item.Bestseller); err != nil {
			return fmt.Errorf("insert menu item %d: %w", item.ID, err)
		}
	}

	return tx.Commit()
}
