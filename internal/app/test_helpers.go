package app

import (
	"bytes"
	"os"
	"sync"
	"testing"

	"github.com/vk/notesmerge/internal/config"
)

// SafeBuffer is a thread-safe buffer for capturing log output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// SetupAppTest creates a new app instance for pipeline testing, logging at
// debug level into the returned buffer. Set NOTES_TEST_LOGS=true to print the
// log of each test.
func SetupAppTest(t *testing.T, cfg *Config, loader config.Loader) (*App, *SafeBuffer) {
	t.Helper()

	logBuffer := &SafeBuffer{}
	cfg.LogLevel = "debug"
	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}
	testApp, err := NewApp(logBuffer, cfg, loader)
	if err != nil {
		t.Fatalf("failed to create app: %v", err)
	}

	t.Cleanup(func() {
		if os.Getenv("NOTES_TEST_LOGS") == "true" {
			t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logBuffer.String())
		}
	})

	return testApp, logBuffer
}
