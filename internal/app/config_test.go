package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() Config {
	return Config{
		DataDir:   DefaultDataDir,
		Courses:   []string{"maths"},
		LogFormat: "text",
		LogLevel:  "info",
	}
}

func TestNewConfig(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{name: "valid", mutate: func(c *Config) {}},
		{name: "all without courses", mutate: func(c *Config) { c.Courses = nil; c.All = true }},
		{name: "no courses", mutate: func(c *Config) { c.Courses = []string{} }, wantErr: "at least one course"},
		{name: "empty course", mutate: func(c *Config) { c.Courses = []string{""} }, wantErr: "courses[0] is a required field"},
		{name: "missing data dir", mutate: func(c *Config) { c.DataDir = "" }, wantErr: "data-dir is a required field"},
		{name: "bad strategy", mutate: func(c *Config) { c.Strategy = "sorted" }, wantErr: "strategy must be one of [linear binary merge hash]"},
		{name: "bad format", mutate: func(c *Config) { c.Format = "pdf" }, wantErr: "format must be one of [csv xlsx]"},
		{name: "wide separator", mutate: func(c *Config) { c.Separator = ";;" }, wantErr: "separator must be 1 character in length"},
		{name: "bad log level", mutate: func(c *Config) { c.LogLevel = "trace" }, wantErr: "log-level must be one of"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			// --- Arrange ---
			cfg := validConfig()
			tc.mutate(&cfg)

			// --- Act ---
			got, err := NewConfig(cfg)

			// --- Assert ---
			if tc.wantErr == "" {
				require.NoError(t, err)
				assert.Equal(t, cfg, *got)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestEnv_Apply(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	cfg := validConfig()
	env := Env{
		"NOTES_DATA_DIR":  "/srv/notes",
		"NOTES_STRATEGY":  "merge",
		"NOTES_LOG_LEVEL": "DEBUG",
		"NOTES_FORMAT":    "XLSX",
		"NOTES_OUTPUT":    "",
	}

	// --- Act ---
	env.Apply(&cfg, map[string]bool{"strategy": true})

	// --- Assert ---
	assert.Equal(t, "/srv/notes", cfg.DataDir)
	assert.Empty(t, cfg.Strategy, "explicit flags win over the environment")
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "xlsx", cfg.Format)
	assert.Empty(t, cfg.Output)
}

func TestLoadEnv_ReadsDotenvFile(t *testing.T) {
	// --- Arrange ---
	path := filepath.Join(t.TempDir(), ".env")
	content := "NOTES_FORMAT=xlsx\nNOTES_ENCODING=latin-1\nOTHER=ignored\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	t.Setenv("NOTES_ENCODING", "utf-8")

	// --- Act ---
	env, err := LoadEnv(path)

	// --- Assert ---
	require.NoError(t, err)
	assert.Equal(t, "xlsx", env["NOTES_FORMAT"])
	assert.Equal(t, "utf-8", env["NOTES_ENCODING"], "process environment wins over .env")
	assert.NotContains(t, env, "OTHER")
}

func TestLoadEnv_MissingDotenvIsFine(t *testing.T) {
	t.Parallel()

	_, err := LoadEnv(filepath.Join(t.TempDir(), ".env"))

	require.NoError(t, err)
}

func TestResolveCourses(t *testing.T) {
	t.Parallel()

	got := resolveCourses([]string{"maths", "info"}, []string{"phys", "maths"}, nil, []string{"info", "chem"})

	assert.Equal(t, []string{"maths", "info", "phys", "chem"}, got)
	assert.Empty(t, resolveCourses(nil))
}

func TestEnv_ApplyLowercasesStrategy(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	cfg := validConfig()

	// --- Act ---
	Env{"NOTES_STRATEGY": "HASH"}.Apply(&cfg, nil)
	got, err := NewConfig(cfg)

	// --- Assert ---
	require.NoError(t, err)
	assert.Equal(t, "hash", got.Strategy)
}
