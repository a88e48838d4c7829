package repos

import (
	"database/sql"
	"time"

	"brushworks/internal/domain"

	"github.com/jmoiron/sqlx"
)

type OrderRepo struct{ db *sqlx.DB }

func NewOrderRepo(db *sqlx.DB) *OrderRepo { return &OrderRepo{db: db} }

const orderCols = `id, painting_id, painting_title, painting_price,
  customer_name, customer_email, customer_phone, customer_address, customer_message,
  status, payment_method, payment_reference, created_at, updated_at`

// Insert stores a new order snapshot and returns its generated id.
func (r *OrderRepo) Insert(o domain.Order) (int64, error) {
	now := time.Now().UTC().Format(time.RFC3339)
	res, err := r.db.Exec(`
	  INSERT INTO orders
	    (painting_id, painting_title, painting_price,
	     customer_name, customer_email, customer_phone, customer_address, customer_message,
	     status, payment_method, payment_reference, created_at, updated_at)
	  VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?)
	`, o.PaintingID, o.PaintingTitle, o.PaintingPrice,
		o.CustomerName, o.CustomerEmail, o.CustomerPhone, o.CustomerAddress, o.CustomerMessage,
		o.Status, o.PaymentMethod, o.PaymentReference, now, now)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r *OrderRepo) Get(id int64) (domain.Order, error) {
	var o domain.Order
	err := r.db.Get(&o, `SELECT `+orderCols+` FROM orders WHERE id = ?`, id)
	return o, err
}

// ListLatest returns the newest orders first for the admin page.
func (r *OrderRepo) ListLatest(limit int) ([]domain.Order, error) {
	if limit <= 0 {
		limit = 100
	}
	var out []domain.Order
	err := r.db.Select(&out, `
		SELECT `+orderCols+` FROM orders
		ORDER BY datetime(created_at) DESC, id DESC
		LIMIT ?
	`, limit)
	return out, err
}

// UpdateStatus writes the new status and refreshes updated_at.
func (r *OrderRepo) UpdateStatus(id int64, status domain.Status) error {
	res, err := r.db.Exec(`UPDATE orders SET status = ?, updated_at = ? WHERE id = ?`,
		status, time.Now().UTC().Format(time.RFC3339), id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func requireRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
