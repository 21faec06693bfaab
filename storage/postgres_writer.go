package storage

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/Danik911/dublin-accommodation-bot/models"
)

const migrationSQL = `
CREATE TABLE IF NOT EXISTS listings(
  id UUID PRIMARY KEY,
  title TEXT NOT NULL,
  price DOUBLE PRECISION,
  location TEXT,
  link TEXT,
  source TEXT,
  is_free_accommodation BOOLEAN DEFAULT FALSE,
  extracted_at TIMESTAMP
);

CREATE TABLE IF NOT EXISTS messages(
  listing_id UUID REFERENCES listings(id),
  listing_title TEXT,
  message_type TEXT,
  message TEXT,
  generated_at TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_listings_free ON listings(is_free_accommodation);
CREATE INDEX IF NOT EXISTS idx_listings_extracted ON listings(extracted_at);
`

// PostgresWriter stores listings and composed messages in PostgreSQL.
type PostgresWriter struct {
	db *sqlx.DB
}

// NewPostgresWriter connects to PostgreSQL and runs the schema migrations.
func NewPostgresWriter(dsn string) (*PostgresWriter, error) {
	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("connect to postgres: %w", err)
	}
	if _, err := db.Exec(migrationSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &PostgresWriter{db: db}, nil
}

// Write stores the run's listings and messages in one transaction.
func (w *PostgresWriter) Write(result *models.RunResult) error {
	tx, err := w.db.Beginx()
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	const listingStmt = `
INSERT INTO listings (id, title, price, location, link, source, is_free_accommodation, extracted_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
ON CONFLICT (id) DO NOTHING`

	for _, l := range result.Listings {
		free := l.Classification != nil && l.Classification.IsFreeAccommodation
		if _, err := tx.Exec(listingStmt,
			l.ID, l.Title, l.Price, l.Location, l.Link, l.Source, free, l.ExtractedAt); err != nil {
			return fmt.Errorf("insert listing %s: %w", l.ID, err)
		}
	}

	const messageStmt = `
INSERT INTO messages (listing_id, listing_title, message_type, message, generated_at)
VALUES ($1,$2,$3,$4,$5)`

	for _, m := range result.Messages {
		if _, err := tx.Exec(messageStmt,
			m.ListingID, m.ListingTitle, m.MessageType, m.Text, m.GeneratedAt); err != nil {
			return fmt.Errorf("insert message for %s: %w", m.ListingID, err)
		}
	}

	return tx.Commit()
}

// Close closes the database connection.
func (w *PostgresWriter) Close() error {
	return w.db.Close()
}
