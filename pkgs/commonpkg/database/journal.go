package database

import (
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/WangWilly/xRest/pkgs/commonpkg/utils"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"

	log "github.com/sirupsen/logrus"
)

////////////////////////////////////////////////////////////////////////////////

const (
	DATABASE_TYPE_SQLITE   = "sqlite"
	DATABASE_TYPE_POSTGRES = "postgres"
)

const (
	SQLITE_BUSY_TIMEOUT_MS = 5000

	DEFAULT_PG_PORT           = "5432"
	DEFAULT_PG_SSLMODE        = "disable"
	DEFAULT_PG_MAX_OPEN_CONNS = 4
	PG_CONN_MAX_IDLE_TIME     = 5 * time.Minute
)

// DatabaseConfig locates the call journal. An empty Type is sqlite; an empty
// sqlite Path is filled in by WithDefaultPath before opening.
type DatabaseConfig struct {
	Type string `yaml:"type" envconfig:"DRIVER"`

	Host     string `yaml:"host" envconfig:"PG_HOST"`
	Port     string `yaml:"port" envconfig:"PG_PORT"`
	User     string `yaml:"user" envconfig:"PG_USER"`
	Password string `yaml:"password" envconfig:"PG_PASSWORD"`
	DBName   string `yaml:"dbname" envconfig:"PG_DBNAME"`
	SslMode  string `yaml:"sslmode,omitempty" envconfig:"PG_SSLMODE"`

	// postgres only; sqlite always writes through a single connection
	MaxOpenConns int `yaml:"max_open_conns,omitempty" envconfig:"MAX_OPEN_CONNS"`

	Path string `yaml:"path" envconfig:"SQLITE_PATH"`
}

func (c DatabaseConfig) Driver() string {
	if c.Type == "" {
		return DATABASE_TYPE_SQLITE
	}
	return c.Type
}

func (c DatabaseConfig) Validate() error {
	if c.MaxOpenConns < 0 {
		return errors.New("journal: max_open_conns must not be negative")
	}
	switch c.Driver() {
	case DATABASE_TYPE_SQLITE:
		return nil
	case DATABASE_TYPE_POSTGRES:
		if c.Host == "" || c.DBName == "" {
			return errors.New("journal: postgres host and dbname are required")
		}
		return nil
	default:
		return fmt.Errorf("journal: unsupported database type %q", c.Type)
	}
}

// WithDefaultPath returns a copy with Type set and, for sqlite, Path set to
// path when none was configured.
func (c DatabaseConfig) WithDefaultPath(path string) DatabaseConfig {
	c.Type = c.Driver()
	if c.Type == DATABASE_TYPE_SQLITE && c.Path == "" {
		c.Path = path
	}
	return c
}

// dsn returns the sql driver name and data source for c
func (c DatabaseConfig) dsn() (string, string, error) {
	switch c.Driver() {
	case DATABASE_TYPE_SQLITE:
		if c.Path == "" {
			return "", "", errors.New("journal: sqlite path is required")
		}
		q := url.Values{}
		q.Set("_journal_mode", "WAL")
		q.Set("_busy_timeout", fmt.Sprint(SQLITE_BUSY_TIMEOUT_MS))
		q.Set("_txlock", "immediate")
		return "sqlite3", "file:" + c.Path + "?" + q.Encode(), nil

	case DATABASE_TYPE_POSTGRES:
		u := url.URL{
			Scheme: "postgres",
			User:   url.UserPassword(c.User, c.Password),
			Host:   c.Host + ":" + orDefault(c.Port, DEFAULT_PG_PORT),
			Path:   "/" + c.DBName,
		}
		q := url.Values{}
		q.Set("sslmode", orDefault(c.SslMode, DEFAULT_PG_SSLMODE))
		q.Set("application_name", "xrest")
		u.RawQuery = q.Encode()
		return "postgres", u.String(), nil

	default:
		return "", "", fmt.Errorf("journal: unsupported database type %q", c.Type)
	}
}

////////////////////////////////////////////////////////////////////////////////

// Open connects to the journal database and sizes the pool for its driver
func Open(cfg DatabaseConfig) (*sqlx.DB, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	driverName, dsn, err := cfg.dsn()
	if err != nil {
		return nil, err
	}

	db, err := sqlx.Connect(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s journal: %w", cfg.Driver(), err)
	}
	configurePool(db, cfg)
	return db, nil
}

// OpenJournal opens the journal and migrates it to the latest schema
func OpenJournal(cfg DatabaseConfig) (*sqlx.DB, error) {
	logger := log.WithFields(log.Fields{
		"caller": "database.OpenJournal",
		"type":   cfg.Driver(),
	})
	if cfg.Driver() == DATABASE_TYPE_SQLITE && cfg.Path != "" {
		if ok, err := utils.PathExists(cfg.Path); err == nil && !ok {
			logger.WithField("path", cfg.Path).Infoln("creating call journal")
		}
	}

	db, err := Open(cfg)
	if err != nil {
		return nil, err
	}
	if err := MigrateUp(db); err != nil {
		db.Close()
		return nil, err
	}

	logger.Debugln("call journal ready")
	return db, nil
}

func configurePool(db *sqlx.DB, cfg DatabaseConfig) {
	if cfg.Driver() == DATABASE_TYPE_SQLITE {
		// one writer at a time; batch workers queue on the pool instead of
		// failing with SQLITE_BUSY
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
		db.SetConnMaxIdleTime(0)
		return
	}

	maxOpen := cfg.MaxOpenConns
	if maxOpen == 0 {
		maxOpen = DEFAULT_PG_MAX_OPEN_CONNS
	}
	db.SetMaxOpenConns(maxOpen)
	db.SetMaxIdleConns(maxOpen)
	db.SetConnMaxIdleTime(PG_CONN_MAX_IDLE_TIME)
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
