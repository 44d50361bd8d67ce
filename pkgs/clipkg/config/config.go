package config

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/WangWilly/xRest/pkgs/commonpkg/clients/twitterclient"
	"github.com/WangWilly/xRest/pkgs/commonpkg/database"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// environment overrides are read as XREST_<SECTION>_<KEY>
const ENV_PREFIX = "XREST"

// Config represents the main application configuration
type Config struct {
	Auth     Auth          `yaml:"auth" envconfig:"AUTH"`
	Api      ApiConfig     `yaml:"api" envconfig:"API"`
	Journal  JournalConfig `yaml:"journal" envconfig:"JOURNAL"`
	LogLevel string        `yaml:"log_level" envconfig:"LOG_LEVEL"`
}

////////////////////////////////////////////////////////////////////////////////

// Auth holds either an app bearer token or a browser session
type Auth struct {
	BearerToken string `yaml:"bearer_token" envconfig:"BEARER_TOKEN"`
	AuthToken   string `yaml:"auth_token" envconfig:"AUTH_TOKEN"`
	Ct0         string `yaml:"ct0" envconfig:"CT0"`
}

type ApiConfig struct {
	BaseUrl           string `yaml:"base_url" envconfig:"BASE_URL"`
	UploadUrl         string `yaml:"upload_url" envconfig:"UPLOAD_URL"`
	TimeoutSec        int    `yaml:"timeout_sec" envconfig:"TIMEOUT_SEC"`
	RetryCount        int    `yaml:"retry_count" envconfig:"RETRY_COUNT"`
	RateLimitFailFast bool   `yaml:"rate_limit_fail_fast" envconfig:"RATE_LIMIT_FAIL_FAST"`
}

// JournalConfig switches the call journal on. An empty sqlite path means
// journal.db in the state dir.
type JournalConfig struct {
	Enabled  bool                    `yaml:"enabled" envconfig:"ENABLED"`
	Database database.DatabaseConfig `yaml:"database" envconfig:"DB"`
}

////////////////////////////////////////////////////////////////////////////////

// ParseConfigFromFile reads configuration from the specified path
func ParseConfigFromFile(path string) (*Config, error) {
	file, err := os.OpenFile(path, os.O_RDONLY, 0)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, err
	}

	var result Config
	err = yaml.Unmarshal(data, &result)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &result, nil
}

// LoadEnv loads the given dotenv files, missing ones are skipped, then
// applies XREST_* variables on top of conf.
func LoadEnv(conf *Config, dotenvPaths ...string) error {
	for _, p := range dotenvPaths {
		err := godotenv.Load(p)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("error loading %s: %w", p, err)
		}
	}
	if err := envconfig.Process(ENV_PREFIX, conf); err != nil {
		return fmt.Errorf("env overrides: %w", err)
	}
	return nil
}

// PromptConfig interactively prompts user for configuration and saves it
func PromptConfig(in io.Reader, out io.Writer, saveto, defaultDBPath string) (*Config, error) {
	conf := Config{}
	scan := bufio.NewScanner(in)
	ask := func(prompt string) string {
		fmt.Fprint(out, prompt)
		scan.Scan()
		return strings.TrimSpace(scan.Text())
	}

	////////////////////////////////////////////////////////////////////////////

	conf.Auth.BearerToken = ask("enter bearer token (empty to use a browser session): ")
	if conf.Auth.BearerToken == "" {
		conf.Auth.AuthToken = ask("enter auth_token: ")
		conf.Auth.Ct0 = ask("enter ct0: ")
	}

	////////////////////////////////////////////////////////////////////////////

	if timeout := ask("enter request timeout in seconds [default: 30]: "); timeout != "" {
		sec, err := strconv.Atoi(timeout)
		if err != nil {
			return nil, err
		}
		conf.Api.TimeoutSec = sec
	}

	////////////////////////////////////////////////////////////////////////////

	journal := ask("keep a call journal? (y/N): ")
	conf.Journal.Enabled = strings.EqualFold(journal, "y") || strings.EqualFold(journal, "yes")

	if conf.Journal.Enabled {
		dbType := ask("enter database type (sqlite/postgres) [default: sqlite]: ")

		switch dbType {
		case database.DATABASE_TYPE_POSTGRES:
			conf.Journal.Database.Type = database.DATABASE_TYPE_POSTGRES
			conf.Journal.Database.Host = orDefault(ask("enter postgres host [default: localhost]: "), "localhost")
			conf.Journal.Database.Port = orDefault(ask("enter postgres port [default: 5432]: "), "5432")
			conf.Journal.Database.User = ask("enter postgres username: ")
			conf.Journal.Database.Password = ask("enter postgres password: ")
			conf.Journal.Database.DBName = ask("enter postgres database name: ")
		default:
			conf.Journal.Database.Type = database.DATABASE_TYPE_SQLITE
			conf.Journal.Database.Path = defaultDBPath
		}
	}

	if err := scan.Err(); err != nil {
		return nil, err
	}
	return &conf, WriteConfig(saveto, &conf)
}

// WriteConfig writes configuration to the specified path
func WriteConfig(path string, conf *Config) error {
	file, err := os.OpenFile(path, os.O_TRUNC|os.O_WRONLY|os.O_CREATE, 0600)
	if err != nil {
		return err
	}
	defer file.Close()

	data, err := yaml.Marshal(conf)
	if err != nil {
		return err
	}
	_, err = io.Copy(file, bytes.NewReader(data))
	return err
}

////////////////////////////////////////////////////////////////////////////////

func (c *Config) Validate() error {
	if c.Auth.BearerToken == "" && (c.Auth.AuthToken == "" || c.Auth.Ct0 == "") {
		return errors.New("config: bearer_token or both auth_token and ct0 are required")
	}
	if c.Api.TimeoutSec < 0 {
		return errors.New("config: timeout_sec must not be negative")
	}
	if c.Api.RetryCount < 0 {
		return errors.New("config: retry_count must not be negative")
	}
	if !c.Journal.Enabled {
		return nil
	}
	if err := c.Journal.Database.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

func (c *Config) TwitterClientConfig() twitterclient.Config {
	return twitterclient.Config{
		ApiHost:           c.Api.BaseUrl,
		UploadHost:        c.Api.UploadUrl,
		BearerToken:       c.Auth.BearerToken,
		AuthToken:         c.Auth.AuthToken,
		Ct0:               c.Auth.Ct0,
		Timeout:           time.Duration(c.Api.TimeoutSec) * time.Second,
		RetryCount:        c.Api.RetryCount,
		RateLimitFailFast: c.Api.RateLimitFailFast,
	}
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
