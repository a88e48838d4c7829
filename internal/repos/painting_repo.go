package repos

import (
	"time"

	"brushworks/internal/domain"

	"github.com/jmoiron/sqlx"
)

type PaintingRepo struct{ db *sqlx.DB }

func NewPaintingRepo(db *sqlx.DB) *PaintingRepo { return &PaintingRepo{db: db} }

const paintingCols = `id, title, description, dimensions, price, image_url, is_sold, sold_at, created_at`

// ListLatest returns the newest paintings first, capped at limit.
// limit <= 0 fetches the whole table (the gallery page does).
func (r *PaintingRepo) ListLatest(limit int) ([]domain.Painting, error) {
	q := `SELECT ` + paintingCols + ` FROM paintings ORDER BY datetime(created_at) DESC, id DESC`
	var out []domain.Painting
	if limit > 0 {
		return out, r.db.Select(&out, q+` LIMIT ?`, limit)
	}
	return out, r.db.Select(&out, q)
}

func (r *PaintingRepo) Get(id int64) (domain.Painting, error) {
	var p domain.Painting
	err := r.db.Get(&p, `SELECT `+paintingCols+` FROM paintings WHERE id = ?`, id)
	return p, err
}

// Insert stores a new painting and returns its generated id.
func (r *PaintingRepo) Insert(p domain.Painting) (int64, error) {
	res, err := r.db.Exec(`
		INSERT INTO paintings(title, description, dimensions, price, image_url, is_sold, sold_at, created_at)
		VALUES(?, ?, ?, ?, ?, 0, NULL, ?)
	`, p.Title, p.Description, p.Dimensions, p.Price, p.ImageURL, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// SetSold flips availability. Marking sold stamps sold_at; marking
// available clears it, keeping the sold_at/is_sold invariant in one write.
func (r *PaintingRepo) SetSold(id int64, sold bool) error {
	var soldAt any
	if sold {
		soldAt = time.Now().UTC().Format(time.RFC3339)
	}
	res, err := r.db.Exec(`UPDATE paintings SET is_sold = ?, sold_at = ? WHERE id = ?`, sold, soldAt, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *PaintingRepo) Delete(id int64) error {
	res, err := r.db.Exec(`DELETE FROM paintings WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}
