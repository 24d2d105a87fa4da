package notify

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestDispatcherPushAfterCloseDrops(t *testing.T) {
	d := NewDispatcher(New(nil), zerolog.Nop())
	d.Close()

	require.NotPanics(t, func() {
		d.Push(Message{UserID: 1, Title: "Upcoming Booking", Type: TypeReminder})
	})
}

func TestDispatcherCloseIsIdempotent(t *testing.T) {
	d := NewDispatcher(New(nil), zerolog.Nop())

	require.NotPanics(t, func() {
		d.Close()
		d.Close()
	})
}
