package testutil

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/specialistvlad/eventbinder/internal/app"
	"github.com/specialistvlad/eventbinder/internal/hcl"
	"github.com/specialistvlad/eventbinder/internal/registry"
	"github.com/stretchr/testify/require"
)

// SafeBuffer is a thread-safe buffer for capturing log output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

// Write implements the io.Writer interface for SafeBuffer.
func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

// String implements the fmt.Stringer interface for SafeBuffer.
func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// HarnessResult holds the outcomes of an integration test run.
type HarnessResult struct {
	LogOutput string
	Err       error
	App       *app.App
}

// HarnessOption adjusts the app configuration before startup.
type HarnessOption func(cfg *app.Config)

// WithStrict enables strict mode.
func WithStrict() HarnessOption {
	return func(cfg *app.Config) { cfg.Strict = true }
}

// WithTriggers sets the events fired by Run.
func WithTriggers(triggers ...app.Trigger) HarnessOption {
	return func(cfg *app.Config) { cfg.Triggers = triggers }
}

// RunIntegrationTest provides a standardized harness for running integration tests
// using a default background context.
func RunIntegrationTest(t *testing.T, files map[string]string, modules []registry.Module, opts ...HarnessOption) *HarnessResult {
	t.Helper()
	return RunIntegrationTestWithContext(context.Background(), t, files, modules, opts...)
}

// RunIntegrationTestWithContext writes files into a temporary directory,
// starts an App on that directory with the core kinds plus modules, and runs
// it. Startup and run errors are both reported in Err.
func RunIntegrationTestWithContext(ctx context.Context, t *testing.T, files map[string]string, modules []registry.Module, opts ...HarnessOption) *HarnessResult {
	t.Helper()

	tmpDir := t.TempDir()
	for name, content := range files {
		filePath := filepath.Join(tmpDir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(filePath), 0755))
		require.NoError(t, os.WriteFile(filePath, []byte(content), 0644))
	}

	appConfig := &app.Config{
		ConfigPath: tmpDir,
		LogLevel:   "debug",
		LogFormat:  "text",
	}
	for _, opt := range opts {
		opt(appConfig)
	}

	logBuffer := &SafeBuffer{}
	testApp, err := app.NewApp(ctx, logBuffer, appConfig, hcl.NewLoader(), append(app.CoreModules(), modules...)...)
	if err == nil {
		t.Cleanup(func() { testApp.Close() })
		err = testApp.Run(ctx)
	}

	if os.Getenv("EB_TEST_LOGS") == "true" {
		t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logBuffer.String())
	}

	return &HarnessResult{
		LogOutput: logBuffer.String(),
		Err:       err,
		App:       testApp,
	}
}
