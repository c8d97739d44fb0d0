package dr16

import (
	"context"
	"testing"

	"github.com/specialistvlad/eventbinder/internal/registry"
	"github.com/stretchr/testify/require"
)

func TestReceiver_SwitchFiresPositionEvent(t *testing.T) {
	t.Parallel()

	r := NewReceiver(context.Background())
	var got []uint32
	r.OnAny(func(id uint32) { got = append(got, id) })

	r.Switch(SwLPosMid)
	r.Switch(SwRPosTop)

	require.Equal(t, []uint32{2, 3}, got)
}

func TestModule_Register(t *testing.T) {
	t.Parallel()

	r := registry.New()
	(&Module{}).Register(r)

	kind, ok := r.KindRegistry["dr16"]
	require.True(t, ok)
	require.Nil(t, kind.NewInput, "dr16 takes no arguments")

	ep, err := kind.New(context.Background(), "remote", nil)
	require.NoError(t, err)
	require.IsType(t, &Receiver{}, ep)

	id, ok := r.EventID("dr16", "sw_r_pos_mid")
	require.True(t, ok)
	require.Equal(t, uint32(SwRPosMid), id)
}
