package device

// Event is one item of the inbound event stream produced by the
// protocol layer and consumed by the UI through the event bridge.
//
// The variant set is closed: OpenWindowRequested, Connected,
// Disconnected, StatusEvent, and the NoOp sentinel emitted when the
// stream has terminated.
type Event interface {
	isEvent()
}

// OpenWindowRequested asks the UI to create or focus the main window.
type OpenWindowRequested struct{}

// Connected reports that the device with the given address connected.
type Connected struct {
	Addr string
}

// Disconnected reports that the device with the given address
// disconnected.
type Disconnected struct {
	Addr string
}

// StatusEvent carries a status update for a connected device.
type StatusEvent struct {
	Addr   string
	Update StatusUpdate
}

// NoOp is the sentinel delivered when the producer side has closed the
// queue. It carries no state change; consumers treat the stream as a
// permanent NoOp source from then on.
type NoOp struct{}

func (OpenWindowRequested) isEvent() {}
func (Connected) isEvent()           {}
func (Disconnected) isEvent()        {}
func (StatusEvent) isEvent()         {}
func (NoOp) isEvent()                {}
