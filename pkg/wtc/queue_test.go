package wtc_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/messagenet/bannerd/ent/wtccommand"
	"github.com/messagenet/bannerd/pkg/wtc"
	util "github.com/messagenet/bannerd/test/util"
)

func testQueue(t *testing.T, node string) *wtc.Queue {
	t.Helper()
	entClient, _ := util.SetupTestDatabase(t)
	return wtc.NewQueue(entClient, node, 10*time.Millisecond)
}

func TestQueueWriteRead(t *testing.T) {
	q := testQueue(t, "testnode")
	ctx := context.Background()

	want := wtc.Envelope{
		Command:       wtccommand.CommandNewMessage,
		Source:        wtccommand.SourceBannerMsg,
		Destination:   wtccommand.DestinationBannerBoard,
		PID:           1234,
		HardwareRecno: 363,
		StreamRecno:   345,
		TemplateRecno: 305,
		Sequence:      "A",
		ReturnNode:    "node1",
	}
	require.NoError(t, q.Write(ctx, want))

	got, err := q.Read(ctx, wtc.Filter{
		Destination:   wtccommand.DestinationBannerBoard,
		HardwareRecno: 363,
	})
	require.NoError(t, err)

	want.NodeName = "testnode" // stamped by Write
	assert.Equal(t, &want, got)
}

func TestQueueReadEmpty(t *testing.T) {
	q := testQueue(t, "testnode")
	_, err := q.Read(context.Background(), wtc.Filter{})
	assert.ErrorIs(t, err, wtc.ErrNoCommands)
}

func TestQueueReadConsumesRow(t *testing.T) {
	q := testQueue(t, "testnode")
	ctx := context.Background()

	require.NoError(t, q.Write(ctx, wtc.Envelope{
		Command:     wtccommand.CommandClearSign,
		Destination: wtccommand.DestinationBannerBoard,
	}))

	_, err := q.Read(ctx, wtc.Filter{})
	require.NoError(t, err)

	// A second read finds nothing: the claim deleted the row.
	_, err = q.Read(ctx, wtc.Filter{})
	assert.ErrorIs(t, err, wtc.ErrNoCommands)
}

func TestQueueFIFOPerFilter(t *testing.T) {
	q := testQueue(t, "testnode")
	ctx := context.Background()

	for _, recno := range []int{345, 350, 360} {
		require.NoError(t, q.Write(ctx, wtc.Envelope{
			Command:       wtccommand.CommandNewMessage,
			Destination:   wtccommand.DestinationBannerBoard,
			HardwareRecno: 363,
			StreamRecno:   recno,
		}))
	}

	f := wtc.Filter{Destination: wtccommand.DestinationBannerBoard, HardwareRecno: 363}
	for _, want := range []int{345, 350, 360} {
		env, err := q.Read(ctx, f)
		require.NoError(t, err)
		assert.Equal(t, want, env.StreamRecno)
	}
}

func TestQueueFilterIsolatesDevices(t *testing.T) {
	q := testQueue(t, "testnode")
	ctx := context.Background()

	require.NoError(t, q.Write(ctx, wtc.Envelope{
		Command:       wtccommand.CommandNewMessage,
		Destination:   wtccommand.DestinationBannerBoard,
		HardwareRecno: 363,
	}))
	require.NoError(t, q.Write(ctx, wtc.Envelope{
		Command:       wtccommand.CommandNewMessage,
		Destination:   wtccommand.DestinationBannerBoard,
		HardwareRecno: 364,
	}))

	env, err := q.Read(ctx, wtc.Filter{
		Destination:   wtccommand.DestinationBannerBoard,
		HardwareRecno: 364,
	})
	require.NoError(t, err)
	assert.Equal(t, 364, env.HardwareRecno)

	// Device 363's envelope is untouched.
	env, err = q.Read(ctx, wtc.Filter{HardwareRecno: 363})
	require.NoError(t, err)
	assert.Equal(t, 363, env.HardwareRecno)
}

func TestQueueZeroFilterMatchesAll(t *testing.T) {
	q := testQueue(t, "testnode")
	ctx := context.Background()

	require.NoError(t, q.Write(ctx, wtc.Envelope{
		Command:     wtccommand.CommandHardwareUpdate,
		Source:      wtccommand.SourceScheduler,
		Destination: wtccommand.DestinationBannerBoard,
	}))

	env, err := q.Read(ctx, wtc.Filter{})
	require.NoError(t, err)
	assert.Equal(t, wtccommand.CommandHardwareUpdate, env.Command)
}

func TestQueueReadResponses(t *testing.T) {
	q := testQueue(t, "testnode")
	ctx := context.Background()

	base := wtc.Envelope{
		Command:       wtccommand.CommandSignMessages,
		Source:        wtccommand.SourceBannerBoard,
		Destination:   wtccommand.DestinationBrowser,
		PID:           1234,
		HardwareRecno: 363,
	}

	first := base
	first.StreamRecno = 345
	first.MessageType = wtc.MessageTypeActive
	require.NoError(t, q.Write(ctx, first))

	second := base
	second.StreamRecno = 350
	second.MessageType = wtc.MessageTypeWaiting
	require.NoError(t, q.Write(ctx, second))

	require.NoError(t, q.WriteEnd(ctx, base))

	got, err := q.ReadResponses(ctx, wtc.Filter{
		Command:       wtccommand.CommandSignMessages,
		Destination:   wtccommand.DestinationBrowser,
		HardwareRecno: 363,
	}, time.Second)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, 345, got[0].StreamRecno)
	assert.Equal(t, wtc.MessageTypeActive, got[0].MessageType)
	assert.Equal(t, 350, got[1].StreamRecno)
	assert.Equal(t, wtc.MessageTypeWaiting, got[1].MessageType)

	// The sentinel was consumed along with the stream.
	_, err = q.Read(ctx, wtc.Filter{})
	assert.ErrorIs(t, err, wtc.ErrNoCommands)
}

func TestQueueReadResponsesCancelSentinel(t *testing.T) {
	q := testQueue(t, "testnode")
	ctx := context.Background()

	base := wtc.Envelope{
		Command:     wtccommand.CommandSignMessages,
		Destination: wtccommand.DestinationBrowser,
	}
	require.NoError(t, q.WriteCancel(ctx, base))

	got, err := q.ReadResponses(ctx, wtc.Filter{
		Destination: wtccommand.DestinationBrowser,
	}, time.Second)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestQueueReadResponsesTimeout(t *testing.T) {
	q := testQueue(t, "testnode")
	ctx := context.Background()

	// One data envelope, no sentinel: the reader keeps what it got.
	require.NoError(t, q.Write(ctx, wtc.Envelope{
		Command:     wtccommand.CommandSignMessages,
		Destination: wtccommand.DestinationBrowser,
		StreamRecno: 345,
	}))

	got, err := q.ReadResponses(ctx, wtc.Filter{
		Destination: wtccommand.DestinationBrowser,
	}, 50*time.Millisecond)
	assert.ErrorIs(t, err, wtc.ErrResponseTimeout)
	require.Len(t, got, 1)
	assert.Equal(t, 345, got[0].StreamRecno)
}

func TestQueuePurgeNode(t *testing.T) {
	entClient, _ := util.SetupTestDatabase(t)
	ours := wtc.NewQueue(entClient, "node1", 10*time.Millisecond)
	theirs := wtc.NewQueue(entClient, "node2", 10*time.Millisecond)
	ctx := context.Background()

	require.NoError(t, ours.Write(ctx, wtc.Envelope{Command: wtccommand.CommandClearSign}))
	require.NoError(t, ours.Write(ctx, wtc.Envelope{Command: wtccommand.CommandClearSign}))
	require.NoError(t, theirs.Write(ctx, wtc.Envelope{Command: wtccommand.CommandClearSign}))

	n, err := ours.PurgeNode(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	// node2's row survives.
	env, err := ours.Read(ctx, wtc.Filter{})
	require.NoError(t, err)
	assert.Equal(t, "node2", env.NodeName)
}
