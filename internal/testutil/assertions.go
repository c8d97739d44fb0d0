package testutil

import (
	"testing"

	"github.com/specialistvlad/eventbinder/internal/binding"
	"github.com/stretchr/testify/require"
)

// AssertBindings checks the installation report of a successful run.
func AssertBindings(t *testing.T, result *HarnessResult, installed, skipped int) {
	t.Helper()

	require.NoError(t, result.Err)
	require.NotNil(t, result.App)
	report := result.App.Binder().Report()
	require.Equal(t, binding.StateInstalled, result.App.Binder().State())
	require.Equal(t, installed, report.Installed, "installed rule count")
	require.Len(t, report.Skipped, skipped, "skipped rule count")
}
