package db

import (
	"fmt"
	"os"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/frameslife/kadry_bot/internal/config"
)

type DB struct {
	Conn *sqlx.DB
}

func New(cfg *config.Config) (*DB, error) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName)

	dbConn, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("db.New: cannot connect to database: %w", err)
	}

	dbConn.SetMaxOpenConns(20)
	dbConn.SetMaxIdleConns(5)
	dbConn.SetConnMaxLifetime(60 * time.Minute)

	return &DB{Conn: dbConn}, nil
}

func (db *DB) Close() error {
	return db.Conn.Close()
}

func RunMigrations(conn *sqlx.DB, scripts ...string) error {
	for _, script := range scripts {
		content, err := os.ReadFile(script)
		if err != nil {
			return fmt.Errorf("db.RunMigrations: cannot read %s: %w", script, err)
		}

		if _, err := conn.Exec(string(content)); err != nil {
			return fmt.Errorf("db.RunMigrations: cannot execute %s: %w", script, err)
		}
	}

	return nil
}
