package cmd

import (
	"context"
	"testing"

	"github.com/specialistvlad/eventbinder/internal/registry"
	"github.com/specialistvlad/eventbinder/modules/dr16"
	"github.com/stretchr/testify/require"
)

func TestSelector_Modes(t *testing.T) {
	t.Parallel()

	remote := dr16.NewReceiver(context.Background())
	s := NewSelector(nil)
	require.Equal(t, OpCtrl, s.Mode())

	require.NoError(t, s.Bind(remote, uint32(dr16.SwRPosBot), uint32(AutoCtrl)))
	require.NoError(t, s.Bind(remote, uint32(dr16.SwRPosMid), uint32(OpCtrl)))

	remote.Switch(dr16.SwRPosBot)
	require.Equal(t, AutoCtrl, s.Mode())
	require.Equal(t, "auto", s.Mode().String())

	remote.Switch(dr16.SwRPosMid)
	require.Equal(t, OpCtrl, s.Mode())
}

func TestModule_Register(t *testing.T) {
	t.Parallel()

	r := registry.New()
	(&Module{}).Register(r)
	(&dr16.Module{}).Register(r)

	catalog := r.Catalog()
	require.Equal(t, uint32(AutoCtrl), catalog["cmd"]["auto_ctrl"])
	require.Equal(t, uint32(dr16.SwRPosMid), catalog["dr16"]["sw_r_pos_mid"])
	require.Len(t, catalog["dr16"], 6)
}
