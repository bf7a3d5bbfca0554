package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Config holds CLI configuration
type Config struct {
	ServerURL   string
	UserID      string
	SessionFile string
	Output      string
	Verbose     bool
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		ServerURL:   getEnvOrDefault("EOPGAME_SERVER", "http://localhost:8080"),
		UserID:      getEnvOrDefault("EOPGAME_USER", defaultUserID()),
		SessionFile: getEnvOrDefault("EOPGAME_SESSION_FILE", defaultSessionFile()),
		Output:      "text",
		Verbose:     false,
	}
}

// LoadAttributes reads the session attributes left by the previous turn.
// A missing file means there is no open session.
func (c *Config) LoadAttributes() (map[string]any, error) {
	data, err := os.ReadFile(c.SessionFile)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var attrs map[string]any
	if err := json.Unmarshal(data, &attrs); err != nil {
		return nil, err
	}
	return attrs, nil
}

// SaveAttributes keeps the session open by storing its attributes
func (c *Config) SaveAttributes(attrs map[string]any) error {
	data, err := json.Marshal(attrs)
	if err != nil {
		return err
	}

	dir := filepath.Dir(c.SessionFile)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return err
	}

	return os.WriteFile(c.SessionFile, data, 0600)
}

// ClearAttributes ends the session
func (c *Config) ClearAttributes() error {
	err := os.Remove(c.SessionFile)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func defaultSessionFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".eopgame/session.json"
	}
	return filepath.Join(home, ".eopgame", "session.json")
}

func defaultUserID() string {
	if user := os.Getenv("USER"); user != "" {
		return "cli:" + user
	}
	return "cli:anonymous"
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
