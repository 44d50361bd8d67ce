package syscfghelper

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/WangWilly/xRest/pkgs/commonpkg/clients/asyncclient"
	"github.com/WangWilly/xRest/pkgs/commonpkg/database"
	"github.com/WangWilly/xRest/pkgs/commonpkg/repos/calllogrepo"
	"github.com/WangWilly/xRest/pkgs/commonpkg/services"
	"github.com/jmoiron/sqlx"
)

// GetDatabaseConfig resolves the journal location, defaulting sqlite to
// journal.db in the state dir.
func (h *helper) GetDatabaseConfig() (database.DatabaseConfig, error) {
	dbConf := h.sysConfig.Journal.Database.WithDefaultPath(
		filepath.Join(h.sysStateDir, JOURNAL_DB_FILE),
	)
	if dbConf.Type == database.DATABASE_TYPE_SQLITE {
		if err := os.MkdirAll(filepath.Dir(dbConf.Path), 0755); err != nil {
			return dbConf, err
		}
	}
	return dbConf, nil
}

// GetJournalDB returns nil without error when the journal is disabled
func (h *helper) GetJournalDB() (*sqlx.DB, error) {
	if !h.sysConfig.Journal.Enabled {
		return nil, nil
	}
	if h.journalDB != nil {
		return h.journalDB, nil
	}

	dbConf, err := h.GetDatabaseConfig()
	if err != nil {
		return nil, err
	}
	db, err := database.OpenJournal(dbConf)
	if err != nil {
		return nil, fmt.Errorf("failed to open call journal: %w", err)
	}

	h.journalDB = db
	return db, nil
}

func (h *helper) GetCallService(client *asyncclient.Client) (*services.CallService, error) {
	db, err := h.GetJournalDB()
	if err != nil {
		return nil, err
	}
	if db == nil {
		return services.NewCallService(client, nil, nil), nil
	}
	return services.NewCallService(client, db, calllogrepo.New()), nil
}
