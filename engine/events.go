// Package engine provides the session state, play field, event queue and the
// session controller that drives registered systems on each tick.
//
// Systems communicate by pushing events to the context's EventQueue; the
// session dispatches them through an EventRouter after every tick and every
// keystroke. All of it runs on the single game goroutine.
package engine

import "time"

// EventType represents the type of game event
type EventType int

const (
	// EventWordSpawned is pushed by the spawner after a word joins the field
	EventWordSpawned EventType = iota

	// EventWordCompleted is pushed by the typing system for every completed word
	// Payload: WordID, Text, Points
	EventWordCompleted

	// EventWordMissed is pushed by the motion system when a word leaves the field untyped
	// Payload: WordID, Text
	EventWordMissed

	// EventInputRejected is pushed when a keystroke extends no active word
	EventInputRejected

	// EventStageAdvanced is pushed when the difficulty stage increases
	// Payload: Stage
	EventStageAdvanced

	EventSessionStarted
	EventSessionPaused
	EventSessionResumed

	// EventSessionEnded is pushed when health is depleted
	// Payload: Points holds the final score
	EventSessionEnded
)

var eventNames = map[EventType]string{
	EventWordSpawned:    "word_spawned",
	EventWordCompleted:  "word_completed",
	EventWordMissed:     "word_missed",
	EventInputRejected:  "input_rejected",
	EventStageAdvanced:  "stage_advanced",
	EventSessionStarted: "session_started",
	EventSessionPaused:  "session_paused",
	EventSessionResumed: "session_resumed",
	EventSessionEnded:   "session_ended",
}

// String returns the event name
func (t EventType) String() string {
	if name, ok := eventNames[t]; ok {
		return name
	}
	return "unknown"
}

// GameEvent is a single queued event
type GameEvent struct {
	Type   EventType
	Time   time.Time
	WordID uint64
	Text   string
	Points int
	Stage  int
}

// EventQueue is a FIFO of pending events, single producer/consumer goroutine
type EventQueue struct {
	events []GameEvent
}

// NewEventQueue creates an empty queue
func NewEventQueue() *EventQueue {
	return &EventQueue{events: make([]GameEvent, 0, 16)}
}

// Push appends an event
func (q *EventQueue) Push(ev GameEvent) {
	q.events = append(q.events, ev)
}

// Consume returns all pending events and empties the queue
func (q *EventQueue) Consume() []GameEvent {
	if len(q.events) == 0 {
		return nil
	}
	out := q.events
	q.events = make([]GameEvent, 0, cap(out))
	return out
}

// Len returns the number of pending events
func (q *EventQueue) Len() int {
	return len(q.events)
}

// Clear drops all pending events
func (q *EventQueue) Clear() {
	q.events = q.events[:0]
}
