package store

import "fmt"

// ensureSchema creates the two collections if they do not exist yet.
func (s *PostgresStore) ensureSchema() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS stocks (
            id TEXT PRIMARY KEY,
            name TEXT NOT NULL,
            quantity DOUBLE PRECISION NOT NULL,
            buy_price DOUBLE PRECISION NOT NULL,
            buy_date TEXT NOT NULL,
            is_active BOOLEAN NOT NULL,
            exit_price DOUBLE PRECISION,
            exit_date TEXT,
            exit_quantity DOUBLE PRECISION,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS assets (
            id TEXT PRIMARY KEY,
            type TEXT NOT NULL,
            name TEXT NOT NULL,
            invested_amount DOUBLE PRECISION NOT NULL,
            current_gain DOUBLE PRECISION,
            commodity_type TEXT,
            monthly_amount DOUBLE PRECISION,
            number_of_months INTEGER,
            bond_type TEXT,
            return_rate DOUBLE PRECISION,
            maturity_date TEXT,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE INDEX IF NOT EXISTS idx_stocks_is_active ON stocks (is_active)`,
		`CREATE INDEX IF NOT EXISTS idx_assets_type ON assets (type)`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
