package app

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// EnvPrefix prefixes every environment variable the app reads.
const EnvPrefix = "NOTES_"

// Env holds NOTES_* variables from a .env file and the process environment.
type Env map[string]string

// LoadEnv reads dotenvPath, if it exists, then overlays the process
// environment, which wins on conflicts.
func LoadEnv(dotenvPath string) (Env, error) {
	env := Env{}
	if dotenvPath != "" {
		fileEnv, err := godotenv.Read(dotenvPath)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to read %s: %w", dotenvPath, err)
		}
		for k, v := range fileEnv {
			if strings.HasPrefix(k, EnvPrefix) {
				env[k] = v
			}
		}
	}
	for _, kv := range os.Environ() {
		k, v, _ := strings.Cut(kv, "=")
		if strings.HasPrefix(k, EnvPrefix) {
			env[k] = v
		}
	}
	return env, nil
}

// envFields maps variables to the Config field they override, keyed by the
// flag name that sets the same field.
var envFields = map[string]struct {
	flag string
	set  func(c *Config, v string)
}{
	EnvPrefix + "DATA_DIR":   {"data-dir", func(c *Config, v string) { c.DataDir = v }},
	EnvPrefix + "CONFIG":     {"config", func(c *Config, v string) { c.ConfigPath = v }},
	EnvPrefix + "STRATEGY":   {"strategy", func(c *Config, v string) { c.Strategy = strings.ToLower(v) }},
	EnvPrefix + "OUTPUT":     {"output", func(c *Config, v string) { c.Output = v }},
	EnvPrefix + "FORMAT":     {"format", func(c *Config, v string) { c.Format = strings.ToLower(v) }},
	EnvPrefix + "ENCODING":   {"encoding", func(c *Config, v string) { c.Encoding = v }},
	EnvPrefix + "LOG_LEVEL":  {"log-level", func(c *Config, v string) { c.LogLevel = strings.ToLower(v) }},
	EnvPrefix + "LOG_FORMAT": {"log-format", func(c *Config, v string) { c.LogFormat = strings.ToLower(v) }},
}

// Apply copies env values into cfg for every field whose flag is not in
// explicit.
func (e Env) Apply(cfg *Config, explicit map[string]bool) {
	for key, field := range envFields {
		v, ok := e[key]
		if !ok || v == "" || explicit[field.flag] {
			continue
		}
		field.set(cfg, v)
	}
}
