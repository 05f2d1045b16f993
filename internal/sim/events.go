package sim

type EventType int

const (
	EventCollision EventType = iota
	EventReset
	EventDriftStart
	EventDriftEnd
	EventScore
	EventWinScheduled
	EventWin
)

func (t EventType) String() string {
	switch t {
	case EventCollision:
		return "collision"
	case EventReset:
		return "reset"
	case EventDriftStart:
		return "drift_start"
	case EventDriftEnd:
		return "drift_end"
	case EventScore:
		return "score"
	case EventWinScheduled:
		return "win_scheduled"
	case EventWin:
		return "win"
	}
	return "unknown"
}

type Event struct {
	Type  EventType
	X, Y  float64
	Angle float64
	Score int
}

type EventHandler func(Event)

type EventBus struct {
	handlers map[EventType][]EventHandler
}

func NewEventBus() *EventBus {
	return &EventBus{
		handlers: make(map[EventType][]EventHandler),
	}
}

func (eb *EventBus) Subscribe(t EventType, fn EventHandler) {
	eb.handlers[t] = append(eb.handlers[t], fn)
}

func (eb *EventBus) Emit(e Event) {
	if eb == nil {
		return
	}
	for _, fn := range eb.handlers[e.Type] {
		fn(e)
	}
}
