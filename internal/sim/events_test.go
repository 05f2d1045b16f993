package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEventBusDeliversInOrder(t *testing.T) {
	bus := NewEventBus()
	var got []string
	bus.Subscribe(EventWin, func(e Event) { got = append(got, "first") })
	bus.Subscribe(EventWin, func(e Event) { got = append(got, "second") })
	bus.Subscribe(EventReset, func(e Event) { got = append(got, "reset") })

	bus.Emit(Event{Type: EventWin, Score: 50})

	assert.Equal(t, []string{"first", "second"}, got)
}

func TestEventBusNilIsNoop(t *testing.T) {
	var bus *EventBus
	assert.NotPanics(t, func() { bus.Emit(Event{Type: EventScore}) })
}

func TestEventTypeString(t *testing.T) {
	assert.Equal(t, "drift_start", EventDriftStart.String())
	assert.Equal(t, "unknown", EventType(99).String())
}
