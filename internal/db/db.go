package db

import (
	"context"
	"crypto/tls"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/rs/zerolog"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/beanflow-api/internal/config"
	"github.com/BruksfildServices01/beanflow-api/internal/logger"
	"github.com/BruksfildServices01/beanflow-api/internal/models"
)

const pingTimeout = 5 * time.Second

// NewDB opens the shared connection pool. An unreachable database is logged
// but does not stop startup; requests fail individually until it recovers.
func NewDB(cfg *config.Config, log zerolog.Logger) (*gorm.DB, error) {
	connCfg, err := pgx.ParseConfig(cfg.DBUrl)
	if err != nil {
		return nil, fmt.Errorf("parse DATABASE_URL: %w", err)
	}

	if cfg.DBInsecureSkipVerify {
		relaxTLS(connCfg)
		log.Warn().Msg("database TLS certificate verification is disabled (DB_INSECURE_SKIP_VERIFY=true)")
	}

	sqlDB := stdlib.OpenDB(*connCfg)

	sqlDB.SetMaxOpenConns(cfg.DBMaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.DBMaxIdleConns)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		PrepareStmt:    true,
		TranslateError: true,
		Logger:         logger.NewGormLogger(log),
	})
	if err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("open gorm: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		log.Error().Err(err).Msg("database unreachable at startup")
	} else {
		log.Info().Str("host", connCfg.Host).Str("database", connCfg.Database).Msg("connected to PostgreSQL")
	}

	if cfg.DBAutoMigrate {
		if err := migrateOrClose(db); err != nil {
			return nil, err
		}
	}

	return db, nil
}

// relaxTLS keeps TLS on but skips certificate verification, for the primary
// host and every fallback.
func relaxTLS(connCfg *pgx.ConnConfig) {
	skipVerify(connCfg.TLSConfig)
	for _, fb := range connCfg.Fallbacks {
		skipVerify(fb.TLSConfig)
	}
}

func skipVerify(t *tls.Config) {
	if t == nil {
		return
	}
	t.InsecureSkipVerify = true
	t.VerifyPeerCertificate = nil
	t.VerifyConnection = nil
}

// Migrate aligns the entity tables with the models.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.Client{},
		&models.Quote{},
		&models.Invoice{},
		&models.Task{},
	); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}

// migrateOrClose runs Migrate and releases the pool when it fails.
func migrateOrClose(db *gorm.DB) error {
	if err := Migrate(db); err != nil {
		_ = Close(db)
		return err
	}
	return nil
}

// Close releases the pool.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
