package db

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"github.com/yungbote/commissioning-backend/internal/platform/logger"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Options struct {
	Driver        string
	DSN           string
	SlowThreshold time.Duration
	Silent        bool
}

type DatabaseService struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewDatabaseService(logg *logger.Logger, opts Options) (*DatabaseService, error) {
	serviceLog := logg.With("service", "DatabaseService", "driver", opts.Driver)

	dialector, err := dialectorFor(opts)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, gormConfig(opts))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", opts.Driver, err)
	}

	serviceLog.Info("Database connection opened")
	return &DatabaseService{db: db, log: serviceLog}, nil
}

func dialectorFor(opts Options) (gorm.Dialector, error) {
	dsn := strings.TrimSpace(opts.DSN)
	if dsn == "" {
		return nil, fmt.Errorf("empty database dsn")
	}
	switch strings.ToLower(strings.TrimSpace(opts.Driver)) {
	case "", DriverPostgres:
		return postgres.Open(dsn), nil
	case DriverSQLite:
		return sqlite.Open(dsn), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", opts.Driver)
	}
}

func gormConfig(opts Options) *gorm.Config {
	level := gormLogger.Warn
	if opts.Silent {
		level = gormLogger.Silent
	}
	slow := opts.SlowThreshold
	if slow <= 0 {
		slow = 1 * time.Second
	}
	return &gorm.Config{
		TranslateError: true,
		Logger: gormLogger.New(
			log.New(os.Stdout, "\r\n", log.LstdFlags),
			gormLogger.Config{
				SlowThreshold:             slow,
				LogLevel:                  level,
				IgnoreRecordNotFoundError: true,
				Colorful:                  false,
			},
		),
	}
}

func (s *DatabaseService) DB() *gorm.DB { return s.db }

func (s *DatabaseService) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Open is a shortcut for callers that only need the handle.
func Open(opts Options) (*gorm.DB, error) {
	dialector, err := dialectorFor(opts)
	if err != nil {
		return nil, err
	}
	return gorm.Open(dialector, gormConfig(opts))
}
