package store

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/atharvakonge/investment-tracker/internal/models"
	"github.com/google/uuid"
	_ "github.com/lib/pq" // PostgreSQL driver
)

// PostgresStore backs the two collections with Postgres tables.
// Scans read rows in insertion order (created_at) and filter in Go,
// which is fine at this app's data volumes.
type PostgresStore struct {
	db *sql.DB
}

// OpenPostgres connects using DB_* environment variables.
func OpenPostgres() (*PostgresStore, error) {
	connStr := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		getEnv("DB_HOST", "localhost"),
		getEnv("DB_PORT", "5432"),
		getEnv("DB_USER", "tracker"),
		getEnv("DB_PASSWORD", "tracker123"),
		getEnv("DB_NAME", "investments"),
	)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}
	if err = db.Ping(); err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	s := &PostgresStore{db: db}
	if err = s.ensureSchema(); err != nil {
		db.Close()
		return nil, err
	}

	log.Println("Database connected successfully")
	return s, nil
}

// Close closes the underlying connection pool.
func (s *PostgresStore) Close() {
	if s.db != nil {
		s.db.Close()
		log.Println("Database connection closed")
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func (s *PostgresStore) InsertStock(st models.StockPosition) (string, error) {
	st.ID = uuid.NewString()
	_, err := s.db.Exec(`
        INSERT INTO stocks (id, name, quantity, buy_price, buy_date, is_active, exit_price, exit_date, exit_quantity)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
    `, st.ID, st.Name, st.Quantity, st.BuyPrice, st.BuyDate, st.IsActive, st.ExitPrice, st.ExitDate, st.ExitQuantity)
	if err != nil {
		return "", fmt.Errorf("insert stock: %w", err)
	}
	return st.ID, nil
}

func (s *PostgresStore) GetStock(id string) (models.StockPosition, error) {
	row := s.db.QueryRow(`
        SELECT id, name, quantity, buy_price, buy_date, is_active, exit_price, exit_date, exit_quantity
        FROM stocks WHERE id = $1
    `, id)
	return scanStock(row)
}

func (s *PostgresStore) PatchStock(id string, p models.StockPatch) error {
	sets, args := stockPatchClauses(p)
	if len(sets) == 0 {
		// Nothing to change; still report missing rows.
		_, err := s.GetStock(id)
		return err
	}
	args = append(args, id)
	query := fmt.Sprintf("UPDATE stocks SET %s WHERE id = $%d", strings.Join(sets, ", "), len(args))
	res, err := s.db.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("patch stock: %w", err)
	}
	return checkAffected(res)
}

func (s *PostgresStore) DeleteStock(id string) error {
	res, err := s.db.Exec("DELETE FROM stocks WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("delete stock: %w", err)
	}
	return checkAffected(res)
}

func (s *PostgresStore) ScanStocks(keep func(models.StockPosition) bool) ([]models.StockPosition, error) {
	rows, err := s.db.Query(`
        SELECT id, name, quantity, buy_price, buy_date, is_active, exit_price, exit_date, exit_quantity
        FROM stocks ORDER BY created_at, id
    `)
	if err != nil {
		return nil, fmt.Errorf("scan stocks: %w", err)
	}
	defer rows.Close()

	out := make([]models.StockPosition, 0)
	for rows.Next() {
		st, err := scanStock(rows)
		if err != nil {
			return nil, err
		}
		if keep == nil || keep(st) {
			out = append(out, st)
		}
	}
	return out, rows.Err()
}

// ApplyExit wraps the exited-sibling insert and the quantity patch of
// the original row in one transaction.
func (s *PostgresStore) ApplyExit(originalID string, remainingQuantity float64, exited models.StockPosition) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin exit: %w", err)
	}
	defer tx.Rollback()

	exited.ID = uuid.NewString()
	_, err = tx.Exec(`
        INSERT INTO stocks (id, name, quantity, buy_price, buy_date, is_active, exit_price, exit_date, exit_quantity)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
    `, exited.ID, exited.Name, exited.Quantity, exited.BuyPrice, exited.BuyDate, exited.IsActive,
		exited.ExitPrice, exited.ExitDate, exited.ExitQuantity)
	if err != nil {
		return fmt.Errorf("insert exited sibling: %w", err)
	}

	res, err := tx.Exec("UPDATE stocks SET quantity = $1 WHERE id = $2", remainingQuantity, originalID)
	if err != nil {
		return fmt.Errorf("reduce original quantity: %w", err)
	}
	if err = checkAffected(res); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit exit: %w", err)
	}
	return nil
}

func (s *PostgresStore) InsertAsset(a models.Asset) (string, error) {
	a.ID = uuid.NewString()
	_, err := s.db.Exec(`
        INSERT INTO assets (id, type, name, invested_amount, current_gain, commodity_type,
                            monthly_amount, number_of_months, bond_type, return_rate, maturity_date)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
    `, a.ID, string(a.Type), a.Name, a.InvestedAmount, a.CurrentGain, a.CommodityType,
		a.MonthlyAmount, a.NumberOfMonths, a.BondType, a.ReturnRate, a.MaturityDate)
	if err != nil {
		return "", fmt.Errorf("insert asset: %w", err)
	}
	return a.ID, nil
}

func (s *PostgresStore) GetAsset(id string) (models.Asset, error) {
	row := s.db.QueryRow(`
        SELECT id, type, name, invested_amount, current_gain, commodity_type,
               monthly_amount, number_of_months, bond_type, return_rate, maturity_date
        FROM assets WHERE id = $1
    `, id)
	return scanAsset(row)
}

func (s *PostgresStore) PatchAsset(id string, p models.AssetPatch) error {
	sets, args := assetPatchClauses(p)
	if len(sets) == 0 {
		_, err := s.GetAsset(id)
		return err
	}
	args = append(args, id)
	query := fmt.Sprintf("UPDATE assets SET %s WHERE id = $%d", strings.Join(sets, ", "), len(args))
	res, err := s.db.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("patch asset: %w", err)
	}
	return checkAffected(res)
}

func (s *PostgresStore) DeleteAsset(id string) error {
	res, err := s.db.Exec("DELETE FROM assets WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("delete asset: %w", err)
	}
	return checkAffected(res)
}

func (s *PostgresStore) ScanAssets(keep func(models.Asset) bool) ([]models.Asset, error) {
	rows, err := s.db.Query(`
        SELECT id, type, name, invested_amount, current_gain, commodity_type,
               monthly_amount, number_of_months, bond_type, return_rate, maturity_date
        FROM assets ORDER BY created_at, id
    `)
	if err != nil {
		return nil, fmt.Errorf("scan assets: %w", err)
	}
	defer rows.Close()

	out := make([]models.Asset, 0)
	for rows.Next() {
		a, err := scanAsset(rows)
		if err != nil {
			return nil, err
		}
		if keep == nil || keep(a) {
			out = append(out, a)
		}
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanStock(r rowScanner) (models.StockPosition, error) {
	var st models.StockPosition
	err := r.Scan(&st.ID, &st.Name, &st.Quantity, &st.BuyPrice, &st.BuyDate, &st.IsActive,
		&st.ExitPrice, &st.ExitDate, &st.ExitQuantity)
	if err == sql.ErrNoRows {
		return models.StockPosition{}, ErrNotFound
	}
	if err != nil {
		return models.StockPosition{}, fmt.Errorf("scan stock row: %w", err)
	}
	return st, nil
}

func scanAsset(r rowScanner) (models.Asset, error) {
	var a models.Asset
	var typ string
	err := r.Scan(&a.ID, &typ, &a.Name, &a.InvestedAmount, &a.CurrentGain, &a.CommodityType,
		&a.MonthlyAmount, &a.NumberOfMonths, &a.BondType, &a.ReturnRate, &a.MaturityDate)
	if err == sql.ErrNoRows {
		return models.Asset{}, ErrNotFound
	}
	if err != nil {
		return models.Asset{}, fmt.Errorf("scan asset row: %w", err)
	}
	a.Type = models.AssetType(typ)
	return a, nil
}

func checkAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func stockPatchClauses(p models.StockPatch) ([]string, []any) {
	var sets []string
	var args []any
	add := func(col string, v any) {
		args = append(args, v)
		sets = append(sets, fmt.Sprintf("%s = $%d", col, len(args)))
	}
	if p.Name != nil {
		add("name", *p.Name)
	}
	if p.Quantity != nil {
		add("quantity", *p.Quantity)
	}
	if p.BuyPrice != nil {
		add("buy_price", *p.BuyPrice)
	}
	if p.BuyDate != nil {
		add("buy_date", *p.BuyDate)
	}
	if p.IsActive != nil {
		add("is_active", *p.IsActive)
	}
	if p.ExitPrice != nil {
		add("exit_price", *p.ExitPrice)
	}
	if p.ExitDate != nil {
		add("exit_date", *p.ExitDate)
	}
	if p.ExitQuantity != nil {
		add("exit_quantity", *p.ExitQuantity)
	}
	return sets, args
}

func assetPatchClauses(p models.AssetPatch) ([]string, []any) {
	var sets []string
	var args []any
	add := func(col string, v any) {
		args = append(args, v)
		sets = append(sets, fmt.Sprintf("%s = $%d", col, len(args)))
	}
	if p.Type != nil {
		add("type", string(*p.Type))
	}
	if p.Name != nil {
		add("name", *p.Name)
	}
	if p.InvestedAmount != nil {
		add("invested_amount", *p.InvestedAmount)
	}
	if p.CurrentGain != nil {
		add("current_gain", *p.CurrentGain)
	}
	if p.CommodityType != nil {
		add("commodity_type", *p.CommodityType)
	}
	if p.MonthlyAmount != nil {
		add("monthly_amount", *p.MonthlyAmount)
	}
	if p.NumberOfMonths != nil {
		add("number_of_months", *p.NumberOfMonths)
	}
	if p.BondType != nil {
		add("bond_type", *p.BondType)
	}
	if p.ReturnRate != nil {
		add("return_rate", *p.ReturnRate)
	}
	if p.MaturityDate != nil {
		add("maturity_date", *p.MaturityDate)
	}
	return sets, args
}
