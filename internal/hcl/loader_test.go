package hcl

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/specialistvlad/eventbinder/internal/config"
	"github.com/stretchr/testify/require"
)

var testCatalog = config.EventCatalog{
	"dr16": {
		"sw_l_pos_top": 0,
		"sw_r_pos_mid": 5,
	},
	"cmd": {
		"op_ctrl":   0,
		"auto_ctrl": 1,
	},
	"event": {},
}

func loadString(t *testing.T, src string) (*config.Model, config.Converter, error) {
	t.Helper()
	return NewLoader().LoadSource(context.Background(), testCatalog, "test.hcl", []byte(src))
}

func TestLoadSource_ModulesAndGroups(t *testing.T) {
	t.Parallel()

	model, conv, err := loadString(t, `
		module "dr16" {
			kind = "dr16"
		}
		module "cmd" {
			kind    = "cmd"
			enabled = false
		}

		rule {
			source       = "dr16"
			source_event = 42
			target       = "cmd"
			target_event = 7
		}

		binding_group "cmd_mode" {
			rule {
				source       = "dr16"
				source_event = events.dr16.sw_r_pos_mid
				target       = "cmd"
				target_event = events.cmd.auto_ctrl
			}
			rule {
				source       = "dr16"
				source_event = events.dr16.sw_l_pos_top + 1
				target       = "cmd"
				target_event = "1"
			}
		}
	`)
	require.NoError(t, err)
	require.NotNil(t, conv)

	require.Len(t, model.Modules, 2)
	require.Equal(t, "dr16", model.Modules[0].Name)
	require.True(t, model.Modules[0].Enabled, "modules are enabled by default")
	require.False(t, model.Modules[1].Enabled)
	require.Equal(t, "test.hcl", model.Modules[1].Origin)

	want := []*config.BindingGroup{
		{Name: "", Origin: "test.hcl", Rules: []*config.BindingRule{
			{Source: "dr16", SourceEvent: 42, Target: "cmd", TargetEvent: 7},
		}},
		{Name: "cmd_mode", Origin: "test.hcl", Rules: []*config.BindingRule{
			{Source: "dr16", SourceEvent: 5, Target: "cmd", TargetEvent: 1},
			{Source: "dr16", SourceEvent: 1, Target: "cmd", TargetEvent: 1},
		}},
	}
	if diff := cmp.Diff(want, model.Groups); diff != "" {
		t.Errorf("groups mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadSource_Errors(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		src     string
		wantErr string
	}{
		{
			name:    "syntax error",
			src:     `module "dr16" {`,
			wantErr: "failed to parse HCL file test.hcl",
		},
		{
			name:    "unknown block",
			src:     `launcher "x" {}`,
			wantErr: "failed to decode HCL file test.hcl",
		},
		{
			name:    "missing kind",
			src:     `module "dr16" {}`,
			wantErr: "failed to decode HCL file test.hcl",
		},
		{
			name: "nested block inside arguments",
			src: `module "monitor" {
				kind = "relay"
				arguments {
					url = "http://localhost:3000/socket.io/"
					tls {
						insecure = true
					}
				}
			}`,
			wantErr: `module "monitor" arguments`,
		},
		{
			name: "unknown event constant",
			src: `rule {
				source       = "dr16"
				source_event = events.dr16.nope
				target       = "cmd"
				target_event = 0
			}`,
			wantErr: "source_event",
		},
		{
			name: "negative event id",
			src: `rule {
				source       = "dr16"
				source_event = 1
				target       = "cmd"
				target_event = -1
			}`,
			wantErr: "invalid event id",
		},
		{
			name: "event id out of range",
			src: `rule {
				source       = "dr16"
				source_event = 4294967296
				target       = "cmd"
				target_event = 0
			}`,
			wantErr: "invalid event id",
		},
		{
			name: "fractional event id",
			src: `rule {
				source       = "dr16"
				source_event = 1.5
				target       = "cmd"
				target_event = 0
			}`,
			wantErr: "invalid event id",
		},
		{
			name: "non numeric event id",
			src: `rule {
				source       = "dr16"
				source_event = true
				target       = "cmd"
				target_event = 0
			}`,
			wantErr: "event id must be a number",
		},
		{
			name: "null event id",
			src: `rule {
				source       = "dr16"
				source_event = null
				target       = "cmd"
				target_event = 0
			}`,
			wantErr: "non-null",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, _, err := loadString(t, tc.src)
			require.Error(t, err)
			require.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestLoad_MergesFilesInWalkOrder(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	files := map[string]string{
		"10-modules.hcl": `
			module "dr16" { kind = "dr16" }
			module "cmd" { kind = "cmd" }
		`,
		"20-bindings.hcl": `
			binding_group "cmd_mode" {
				rule {
					source       = "dr16"
					source_event = events.dr16.sw_r_pos_mid
					target       = "cmd"
					target_event = events.cmd.op_ctrl
				}
			}
		`,
		"README.md": "not hcl",
	}
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}

	model, _, err := NewLoader().Load(context.Background(), testCatalog, dir)
	require.NoError(t, err)
	require.Len(t, model.Modules, 2)
	require.Len(t, model.Groups, 1)
	require.Equal(t, filepath.Join(dir, "20-bindings.hcl"), model.Groups[0].Origin)
	require.Equal(t, uint32(5), model.Groups[0].Rules[0].SourceEvent)
	require.Equal(t, 1, model.RuleCount())
}

func TestLoad_MissingPath(t *testing.T) {
	t.Parallel()

	_, _, err := NewLoader().Load(context.Background(), testCatalog, filepath.Join(t.TempDir(), "missing.hcl"))
	require.Error(t, err)
}
