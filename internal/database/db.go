package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
)

// Open connects to MySQL and verifies the connection.
func Open(user, pass, host, port, name string) (*sql.DB, error) {
	auth := user
	if pass != "" {
		auth = fmt.Sprintf("%s:%s", user, pass)
	}
	// parseTime=true -> DATETIME -> time.Time | loc=UTC keeps times consistent
	dsn := fmt.Sprintf("%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=true&loc=UTC",
		auth, host, port, name)

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, err
	}

	// Pool settings
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(30 * time.Minute)

	// Ping with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		return nil, err
	}
	return db, nil
}

// schema holds one CREATE TABLE IF NOT EXISTS statement per entity.
// Reference columns carry no FOREIGN KEY constraints: deleting a
// customer, vehicle or salesperson leaves dangling references that
// are resolved lazily by the join-based list queries.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS vehicles (
		id BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
		brand VARCHAR(80) NOT NULL,
		model VARCHAR(80) NOT NULL,
		year INT NOT NULL,
		available TINYINT(1) NOT NULL DEFAULT 1
	)`,
	`CREATE TABLE IF NOT EXISTS customers (
		id BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
		name VARCHAR(120) NOT NULL,
		email VARCHAR(190) NOT NULL UNIQUE
	)`,
	`CREATE TABLE IF NOT EXISTS salespeople (
		id BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
		name VARCHAR(120) NOT NULL,
		department VARCHAR(80) NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS sales (
		id BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
		customer_id BIGINT UNSIGNED NOT NULL,
		vehicle_id BIGINT UNSIGNED NOT NULL,
		salesperson_id BIGINT UNSIGNED NOT NULL,
		sold_at DATETIME NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS financing_plans (
		id BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
		sale_id BIGINT UNSIGNED NOT NULL,
		total_amount DECIMAL(12,2) NOT NULL,
		installments INT NOT NULL,
		installment_amount DECIMAL(12,2) NOT NULL,
		interest_rate DECIMAL(5,2) NOT NULL,
		bank VARCHAR(80) NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS maintenance_records (
		id BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
		vehicle_id BIGINT UNSIGNED NOT NULL,
		customer_id BIGINT UNSIGNED NOT NULL,
		service_type VARCHAR(80) NOT NULL,
		description TEXT NOT NULL,
		amount DECIMAL(12,2) NOT NULL,
		performed_at DATETIME NOT NULL,
		status VARCHAR(20) NOT NULL DEFAULT 'Pending'
	)`,
	`CREATE TABLE IF NOT EXISTS test_drives (
		id BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
		customer_id BIGINT UNSIGNED NOT NULL,
		vehicle_id BIGINT UNSIGNED NOT NULL,
		salesperson_id BIGINT UNSIGNED NOT NULL,
		scheduled_at DATETIME NOT NULL,
		status VARCHAR(20) NOT NULL DEFAULT 'Scheduled',
		notes TEXT NULL
	)`,
}

// EnsureSchema creates every table the service needs if it does not
// exist yet.  It runs once at startup so a fresh database is usable
// without a separate migration step.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
