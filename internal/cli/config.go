package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrNoTable is returned when a command needs a table and none is selected
var ErrNoTable = errors.New("no table selected: pass --table, set KPOOL_TABLE or run 'kpool table create'")

// Config holds CLI configuration
type Config struct {
	ServerURL string
	Table     string
	TableFile string
	Output    string
	Verbose   bool
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		ServerURL: getEnvOrDefault("KPOOL_SERVER", "http://localhost:8080"),
		Table:     os.Getenv("KPOOL_TABLE"),
		TableFile: getEnvOrDefault("KPOOL_TABLE_FILE", defaultTableFile()),
		Output:    "text",
		Verbose:   false,
	}
}

// Validate checks the configured values
func (c *Config) Validate() error {
	switch c.Output {
	case "text", "json":
		return nil
	default:
		return fmt.Errorf("invalid output format %q: must be text or json", c.Output)
	}
}

// LoadTable loads the current table from file if not already set
func (c *Config) LoadTable() error {
	if c.Table != "" {
		return nil
	}

	data, err := os.ReadFile(c.TableFile)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // No table file is fine
		}
		return err
	}

	c.Table = strings.TrimSpace(string(data))
	return nil
}

// SaveTable remembers the table in the table file
func (c *Config) SaveTable(id string) error {
	c.Table = id

	dir := filepath.Dir(c.TableFile)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return err
	}

	return os.WriteFile(c.TableFile, []byte(id), 0600)
}

// ForgetTable removes the table file if it names the given table
func (c *Config) ForgetTable(id string) error {
	data, err := os.ReadFile(c.TableFile)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	if strings.TrimSpace(string(data)) != id {
		return nil
	}
	return os.Remove(c.TableFile)
}

// ResolveTable picks the table a command acts on: an explicit argument
// wins over the configured table
func (c *Config) ResolveTable(args []string) (string, error) {
	if len(args) > 0 && args[0] != "" {
		return args[0], nil
	}
	if c.Table == "" {
		return "", ErrNoTable
	}
	return c.Table, nil
}

func defaultTableFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".kpool/table"
	}
	return filepath.Join(home, ".kpool", "table")
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
