package integration_tests

import (
	"testing"

	"github.com/specialistvlad/eventbinder/internal/app"
	"github.com/specialistvlad/eventbinder/internal/registry"
	"github.com/specialistvlad/eventbinder/internal/testutil"
	"github.com/stretchr/testify/require"
)

// TestHCL_SymbolicAndNumericEventIDs checks that named event references and
// plain numbers resolve to the same ids.
func TestHCL_SymbolicAndNumericEventIDs(t *testing.T) {
	t.Parallel()

	files := map[string]string{"main.hcl": `
		module "dr16" { kind = "dr16" }
		module "sink" { kind = "recorder" }

		rule {
			source       = "dr16"
			source_event = events.dr16.sw_l_pos_bot
			target       = "sink"
			target_event = 100
		}
		rule {
			source       = "dr16"
			source_event = 3
			target       = "sink"
			target_event = 1 + 2
		}
	`}
	rec := &testutil.Recorder{}

	result := testutil.RunIntegrationTest(t, files,
		[]registry.Module{&testutil.RecordingModule{Kind: "recorder", Recorder: rec}},
		testutil.WithTriggers(
			app.Trigger{Module: "dr16", Event: "1"},
			app.Trigger{Module: "dr16", Event: "sw_r_pos_top"},
		),
	)

	testutil.AssertBindings(t, result, 2, 0)
	require.Equal(t, []testutil.Activation{
		{Module: "sink", ID: 100},
		{Module: "sink", ID: 3},
	}, rec.Activations())
}

// TestHCL_DisabledModuleIsNotInstantiated checks the enabled attribute.
func TestHCL_DisabledModuleIsNotInstantiated(t *testing.T) {
	t.Parallel()

	files := map[string]string{"main.hcl": `
		module "dr16" { kind = "dr16" }
		module "sink" {
			kind    = "recorder"
			enabled = false
		}
		rule {
			source       = "dr16"
			source_event = events.dr16.sw_l_pos_top
			target       = "sink"
			target_event = 1
		}
	`}
	rec := &testutil.Recorder{}

	result := testutil.RunIntegrationTest(t, files,
		[]registry.Module{&testutil.RecordingModule{Kind: "recorder", Recorder: rec}},
		testutil.WithTriggers(app.Trigger{Module: "dr16", Event: "sw_l_pos_top"}),
	)

	testutil.AssertBindings(t, result, 0, 1)
	require.Empty(t, rec.Activations())
	require.Contains(t, result.LogOutput, "Module disabled, not instantiated.")
}
