package syscfghelper

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/WangWilly/xRest/pkgs/clipkg/config"
	"github.com/WangWilly/xRest/pkgs/commonpkg/logging"
	"github.com/jmoiron/sqlx"
)

type CliParams struct {
	IsDebug       bool
	ConfOverWrite bool

	// defaults to ~/.x_rest
	StateDir string
	Stdin    io.Reader
	Stdout   io.Writer
}

type helper struct {
	cliParams CliParams

	sysStateDir   string
	logFile       *os.File
	clientLogFile *os.File
	journalDB     *sqlx.DB

	sysConfig *config.Config
}

func New(cliParams CliParams) (*helper, error) {
	h := &helper{
		cliParams: cliParams,
	}
	if h.cliParams.Stdin == nil {
		h.cliParams.Stdin = os.Stdin
	}
	if h.cliParams.Stdout == nil {
		h.cliParams.Stdout = os.Stdout
	}

	if err := h.init(); err != nil {
		h.Close()
		return nil, err
	}
	return h, nil
}

func (h *helper) init() error {
	sysStateDir := h.cliParams.StateDir
	if sysStateDir == "" {
		home, err := getHomePath()
		if err != nil {
			return err
		}
		sysStateDir = filepath.Join(home, SYS_STATE_DIR)
	}
	if err := os.MkdirAll(sysStateDir, 0755); err != nil {
		return fmt.Errorf("failed to make app dir: %w", err)
	}
	h.sysStateDir = sysStateDir

	////////////////////////////////////////////////////////////////////////////

	confPath := filepath.Join(sysStateDir, SYS_CONF_FILE)
	if ok, err := fileExists(confPath); err != nil {
		return fmt.Errorf("failed to check config file existence: %w", err)
	} else if !ok || h.cliParams.ConfOverWrite {
		conf, err := config.PromptConfig(
			h.cliParams.Stdin,
			h.cliParams.Stdout,
			confPath,
			filepath.Join(sysStateDir, JOURNAL_DB_FILE),
		)
		if err != nil {
			return fmt.Errorf("failed to prompt config: %w", err)
		}
		h.sysConfig = conf
	} else {
		conf, err := config.ParseConfigFromFile(confPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		h.sysConfig = conf
	}

	err := config.LoadEnv(
		h.sysConfig,
		SYS_DOTENV_FILE,
		filepath.Join(sysStateDir, SYS_DOTENV_FILE),
	)
	if err != nil {
		return err
	}

	////////////////////////////////////////////////////////////////////////////

	logPath := filepath.Join(sysStateDir, SYS_LOG_FILE)
	logFile, err := os.OpenFile(logPath, os.O_TRUNC|os.O_WRONLY|os.O_CREATE, 0644)
	if err != nil {
		return fmt.Errorf("failed to create log file: %w", err)
	}
	logging.InitLogger(h.cliParams.IsDebug, h.sysConfig.LogLevel, logFile)
	h.logFile = logFile

	return h.sysConfig.Validate()
}

////////////////////////////////////////////////////////////////////////////////

func (h *helper) Config() *config.Config {
	return h.sysConfig
}

func (h *helper) StateDir() string {
	return h.sysStateDir
}

func (h *helper) Close() {
	if h.journalDB != nil {
		h.journalDB.Close()
	}
	if h.clientLogFile != nil {
		h.clientLogFile.Close()
	}
	if h.logFile != nil {
		h.logFile.Close()
	}
}
