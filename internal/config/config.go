package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	contractFileName = "specialpricing.csv"
	salesFileName    = "sales.for.period.csv"
	fallbackFileName = "contracts_config.yaml"
)

// Config is the resolved settings for one run. It is built once at startup
// and handed to the components that need it; nothing reads settings after
// that point.
type Config struct {
	// MongoURI is the connection string for the enrichment store.
	MongoURI string
	// Database is the enrichment store database name.
	Database string
	// BaseDir is where the contract and sales exports are dropped.
	BaseDir string
	// SaveDir is where generated workbooks are written.
	SaveDir string
	LogLevel string
}

// NotFoundError reports that no settings file exists at any candidate path.
type NotFoundError struct {
	Candidates []string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("could not find a settings file at %s", strings.Join(e.Candidates, " or "))
}

// Load resolves and reads the YAML settings file. When path is empty the
// working directory's config.yaml is tried first, then the shared fallback
// under the system temp directory. Environment variables override file
// values, and a .env file is applied first when present.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	candidates := []string{path}
	if path == "" {
		candidates = []string{
			"config.yaml",
			filepath.Join(os.TempDir(), fallbackFileName),
		}
	}

	found := ""
	for _, candidate := range candidates {
		if _, err := os.Stat(candidate); err == nil {
			found = candidate
			break
		}
	}
	if found == "" {
		return nil, &NotFoundError{Candidates: candidates}
	}

	v := viper.New()
	v.SetConfigFile(found)
	v.SetConfigType("yaml")

	v.SetDefault("DATABASE", "bussepricing")
	v.SetDefault("BASE_DIR", os.TempDir())
	v.SetDefault("SAVE_DIR", defaultSaveDir())
	v.SetDefault("LOG_LEVEL", "info")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read settings file %s: %w", found, err)
	}

	uri := v.GetString("MONGODB_URI")
	if uri == "" {
		return nil, fmt.Errorf("settings file %s is missing MONGODB_URI", found)
	}

	return &Config{
		MongoURI: uri,
		Database: v.GetString("DATABASE"),
		BaseDir:  v.GetString("BASE_DIR"),
		SaveDir:  v.GetString("SAVE_DIR"),
		LogLevel: v.GetString("LOG_LEVEL"),
	}, nil
}

// ContractPath is the fixed location of the contract export.
func (c *Config) ContractPath() string {
	return filepath.Join(c.BaseDir, contractFileName)
}

// SalesPath is the fixed location of the sales-history export.
func (c *Config) SalesPath() string {
	return filepath.Join(c.BaseDir, salesFileName)
}

func defaultSaveDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "Converted Contracts")
	}
	return filepath.Join(home, "Documents", "Converted Contracts")
}
