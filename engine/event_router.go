package engine

// EventHandler processes specific event types
type EventHandler interface {
	// HandleEvent processes a single event
	// Called synchronously during dispatch on the game goroutine
	HandleEvent(ctx *GameContext, event GameEvent)

	// EventTypes returns the event types this handler processes
	EventTypes() []EventType
}

// EventRouter dispatches queued events to registered handlers
// Handlers are invoked in registration order; events in FIFO order
type EventRouter struct {
	handlers map[EventType][]EventHandler
	queue    *EventQueue
}

// NewEventRouter creates a router attached to the given queue
func NewEventRouter(queue *EventQueue) *EventRouter {
	return &EventRouter{
		handlers: make(map[EventType][]EventHandler),
		queue:    queue,
	}
}

// Register adds a handler for its declared event types
func (r *EventRouter) Register(handler EventHandler) {
	for _, t := range handler.EventTypes() {
		r.handlers[t] = append(r.handlers[t], handler)
	}
}

// DispatchAll consumes all pending events and routes them to handlers
// Events pushed by handlers are dispatched in the same call
func (r *EventRouter) DispatchAll(ctx *GameContext) int {
	dispatched := 0
	for r.queue.Len() > 0 {
		for _, ev := range r.queue.Consume() {
			for _, h := range r.handlers[ev.Type] {
				h.HandleEvent(ctx, ev)
			}
			dispatched++
		}
	}
	return dispatched
}

// HandlerCount returns the number of handlers registered for the given type
func (r *EventRouter) HandlerCount(t EventType) int {
	return len(r.handlers[t])
}
