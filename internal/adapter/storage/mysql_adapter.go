package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/go-sql-driver/mysql"

	"github.com/vqle/catalog-service/internal/core/domain"
	"github.com/vqle/catalog-service/internal/port"
)

const mysqlDuplicateEntry = 1062

type MySQLAdapter struct {
	db *sql.DB
}

func NewMySQLAdapter(db *sql.DB) *MySQLAdapter {
	return &MySQLAdapter{db: db}
}

// CreateOrder inserts the order with its items and decrements stock in one
// transaction. The decrement is a single conditional update, never a read
// followed by a write; RowsAffected == 0 means another transaction got the
// stock first and the whole unit of work rolls back.
func (m *MySQLAdapter) CreateOrder(ctx context.Context, order domain.Order) error {
	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO orders (id, order_no, status, total_cents, currency, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		order.ID, order.OrderNo, order.Status, order.TotalCents, order.Currency,
		order.CreatedAt, order.UpdatedAt,
	)
	if err != nil {
		if isDuplicateEntry(err) {
			return port.ErrDuplicateOrderNo
		}
		return fmt.Errorf("insert order: %w", err)
	}

	for _, item := range order.Items {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO order_items (order_id, product_id, quantity, unit_price_cents)
			VALUES (?, ?, ?, ?)`,
			order.ID, item.ProductID, item.Quantity, item.UnitPriceCents,
		)
		if err != nil {
			return fmt.Errorf("insert order item: %w", err)
		}

		result, err := tx.ExecContext(ctx, `
			UPDATE products
			SET stock = stock - ?, version = version + 1, updated_at = NOW()
			WHERE id = ? AND stock >= ?`,
			item.Quantity, item.ProductID, item.Quantity,
		)
		if err != nil {
			return fmt.Errorf("update stock: %w", err)
		}

		rows, _ := result.RowsAffected()
		if rows == 0 {
			return port.ErrInsufficientStock
		}
	}

	return tx.Commit()
}

func (m *MySQLAdapter) GetProduct(ctx context.Context, productID string) (*domain.Product, error) {
	var p domain.Product
	err := m.db.QueryRowContext(ctx, `
		SELECT id, title, genre, price_cents, currency, stock, version, created_at, updated_at
		FROM products WHERE id = ?`, productID,
	).Scan(&p.ID, &p.Title, &p.Genre, &p.PriceCents, &p.Currency, &p.Stock, &p.Version, &p.CreatedAt, &p.UpdatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query product: %w", err)
	}
	return &p, nil
}

func (m *MySQLAdapter) SearchProducts(ctx context.Context, filters domain.SearchFilters) ([]domain.Product, error) {
	var conditions []string
	var args []any

	query := `
		SELECT id, title, genre, price_cents, currency, stock, version, created_at, updated_at
		FROM products`

	if filters.Query != "" {
		conditions = append(conditions, "title LIKE ?")
		args = append(args, "%"+filters.Query+"%")
	}
	if filters.Genre != "" {
		conditions = append(conditions, "genre = ?")
		args = append(args, filters.Genre)
	}
	if filters.MaxPriceCents > 0 {
		conditions = append(conditions, "price_cents <= ?")
		args = append(args, filters.MaxPriceCents)
	}
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY title"

	rows, err := m.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("search products: %w", err)
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		var p domain.Product
		if err := rows.Scan(&p.ID, &p.Title, &p.Genre, &p.PriceCents, &p.Currency, &p.Stock, &p.Version, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

// UpsertProduct writes only the fields the mutation carries; absent fields
// keep their stored values on update.
func (m *MySQLAdapter) UpsertProduct(ctx context.Context, mut domain.ProductMutation) error {
	columns := []string{"id"}
	values := []any{mut.ID}

	if mut.Title != nil {
		columns = append(columns, "title")
		values = append(values, *mut.Title)
	}
	if mut.Genre != nil {
		columns = append(columns, "genre")
		values = append(values, *mut.Genre)
	}
	if mut.PriceCents != nil {
		columns = append(columns, "price_cents")
		values = append(values, *mut.PriceCents)
	}
	if mut.Currency != nil {
		columns = append(columns, "currency")
		values = append(values, *mut.Currency)
	}
	if mut.Stock != nil {
		columns = append(columns, "stock")
		values = append(values, *mut.Stock)
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(columns)), ", ")

	var updates []string
	for _, col := range columns[1:] {
		updates = append(updates, fmt.Sprintf("%s = VALUES(%s)", col, col))
	}
	if len(updates) == 0 {
		updates = append(updates, "id = id")
	}
	updates = append(updates, "version = version + 1", "updated_at = NOW()")

	query := fmt.Sprintf(
		"INSERT INTO products (%s) VALUES (%s) ON DUPLICATE KEY UPDATE %s",
		strings.Join(columns, ", "), placeholders, strings.Join(updates, ", "),
	)

	if _, err := m.db.ExecContext(ctx, query, values...); err != nil {
		return fmt.Errorf("upsert product: %w", err)
	}
	return nil
}

func (m *MySQLAdapter) GetOrder(ctx context.Context, orderNo string) (*domain.Order, error) {
	var o domain.Order
	err := m.db.QueryRowContext(ctx, `
		SELECT id, order_no, status, total_cents, currency, created_at, updated_at
		FROM orders WHERE order_no = ?`, orderNo,
	).Scan(&o.ID, &o.OrderNo, &o.Status, &o.TotalCents, &o.Currency, &o.CreatedAt, &o.UpdatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query order: %w", err)
	}

	rows, err := m.db.QueryContext(ctx, `
		SELECT product_id, quantity, unit_price_cents
		FROM order_items WHERE order_id = ?`, o.ID,
	)
	if err != nil {
		return nil, fmt.Errorf("query order items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var item domain.OrderItem
		if err := rows.Scan(&item.ProductID, &item.Quantity, &item.UnitPriceCents); err != nil {
			return nil, fmt.Errorf("scan order item: %w", err)
		}
		o.Items = append(o.Items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &o, nil
}

func isDuplicateEntry(err error) bool {
	var me *mysql.MySQLError
	return errors.As(err, &me) && me.Number == mysqlDuplicateEntry
}
