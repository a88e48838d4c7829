package repos

import (
	"log"
	"time"

	"github.com/jmoiron/sqlx"
	"golang.org/x/crypto/bcrypt"
	_ "modernc.org/sqlite"
)

func OpenDB(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err = db.Ping(); err != nil {
		return nil, err
	}

	if err := ensureSchema(db); err != nil {
		return nil, err
	}
	// Seed demo paintings if the table is empty (safe to run every start)
	if err := seedIfEmpty(db); err != nil {
		return nil, err
	}
	// Ensure the artist's admin account exists (idempotent)
	if err := seedAdmin(db); err != nil {
		return nil, err
	}

	return db, nil
}

func ensureSchema(db *sqlx.DB) error {
	schema := `
PRAGMA foreign_keys = ON;

-- Paintings
CREATE TABLE IF NOT EXISTS paintings(
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  title TEXT NOT NULL,
  description TEXT NOT NULL DEFAULT '',
  dimensions TEXT NOT NULL DEFAULT '',
  price NUMERIC NOT NULL CHECK (price >= 0),
  image_url TEXT NOT NULL DEFAULT '',
  is_sold INTEGER NOT NULL DEFAULT 0,
  sold_at TEXT,
  created_at TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_paintings_created_at ON paintings(created_at);
CREATE INDEX IF NOT EXISTS idx_paintings_is_sold    ON paintings(is_sold);

-- Orders (never deleted; cancelled orders are kept for audit)
CREATE TABLE IF NOT EXISTS orders(
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  painting_id INTEGER NOT NULL,
  painting_title TEXT NOT NULL,
  painting_price NUMERIC NOT NULL,
  customer_name TEXT NOT NULL,
  customer_email TEXT NOT NULL,
  customer_phone TEXT NOT NULL,
  customer_address TEXT NOT NULL,
  customer_message TEXT NOT NULL DEFAULT '',
  status TEXT NOT NULL DEFAULT 'pending_payment'
    CHECK (status IN ('pending_payment','payment_received','processing','shipped','delivered','cancelled')),
  payment_method TEXT NOT NULL DEFAULT 'bank_transfer',
  payment_reference TEXT NOT NULL DEFAULT '',
  created_at TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP,
  updated_at TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_orders_created_at ON orders(created_at);
CREATE INDEX IF NOT EXISTS idx_orders_status     ON orders(status);

-- Users & Sessions
CREATE TABLE IF NOT EXISTS users(
  id TEXT PRIMARY KEY,
  email TEXT NOT NULL UNIQUE,
  name TEXT NOT NULL,
  password_hash TEXT NOT NULL,
  role TEXT NOT NULL CHECK (role IN ('ADMIN')),
  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
  updated_at TEXT
);
CREATE UNIQUE INDEX IF NOT EXISTS idx_users_email ON users(LOWER(email));

CREATE TABLE IF NOT EXISTS sessions(
  id TEXT PRIMARY KEY,               -- same value as the 'sid' cookie
  user_id TEXT NULL REFERENCES users(id) ON DELETE SET NULL,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
  last_seen  TEXT
);
CREATE INDEX IF NOT EXISTS idx_sessions_user ON sessions(user_id);
`
	_, err := db.Exec(schema)
	return err
}

func seedIfEmpty(db *sqlx.DB) error {
	var n int
	if err := db.Get(&n, `SELECT COUNT(*) FROM paintings`); err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	log.Println("[seed] inserting demo paintings")

	now := time.Now().UTC().Format(time.RFC3339)
	tx := db.MustBegin()
	tx.MustExec(`INSERT INTO paintings(title,description,dimensions,price,image_url,is_sold,sold_at,created_at) VALUES
	  ('Monsoon Over the Ghats','Acrylic on canvas, deep blues and slate greys.','24 x 36 in',5500,'/media/paintings/seed_monsoon.jpg',0,NULL,?),
	  ('Marigold Morning','Still life with marigold garlands.','18 x 24 in',3200,'/media/paintings/seed_marigold.jpg',0,NULL,?),
	  ('Old City Lanes','Ink and wash of the walled city at dusk.','12 x 16 in',2100,'/media/paintings/seed_lanes.jpg',1,?,?)`,
		now, now, now, now)
	return tx.Commit()
}

// seedAdmin ensures the artist's ADMIN account exists (idempotent).
func seedAdmin(db *sqlx.DB) error {
	hash, err := bcrypt.GenerateFromPassword([]byte("Brush&Canvas1"), 12)
	if err != nil {
		return err
	}
	_, err = db.Exec(`
		INSERT INTO users(id,email,name,password_hash,role)
		VALUES(?,?,?,?,?)
		ON CONFLICT(email) DO NOTHING
	`, "u-artist", "artist@brushworks.test", "Artist", string(hash), "ADMIN")
	return err
}
