package device

// CommandID identifies an outbound control command understood by the
// protocol daemon.
type CommandID string

const (
	// CmdListeningMode sets the listening mode. Payload: one byte,
	// see the ListeningMode* codes.
	CmdListeningMode CommandID = "listening_mode"
	// CmdConversationDetect enables or disables conversation
	// detection. Payload: one byte, ConversationDetectOn or
	// ConversationDetectOff.
	CmdConversationDetect CommandID = "conversation_detect"
)

// Listening mode codes. The values are defined by the accessory
// protocol and must be sent bit-exact.
const (
	ListeningModeOff          uint8 = 0x01
	ListeningModeANC          uint8 = 0x02
	ListeningModeTransparency uint8 = 0x03
	ListeningModeAdaptive     uint8 = 0x04
)

// Conversation detection codes, likewise protocol-defined.
const (
	ConversationDetectOn  uint8 = 0x01
	ConversationDetectOff uint8 = 0x02
)

// ListeningModeOptions returns the selectable mode codes in menu
// order. Off leads the list and appears only when the device allows
// powering the mode off.
func ListeningModeOptions(allowOff bool) []uint8 {
	modes := []uint8{ListeningModeANC, ListeningModeTransparency, ListeningModeAdaptive}
	if allowOff {
		return append([]uint8{ListeningModeOff}, modes...)
	}
	return modes
}

// Command is an outbound control message: an identifier plus its raw
// byte payload. Delivery is fire-and-forget; no acknowledgment is
// expected.
type Command struct {
	ID      CommandID
	Payload []byte
}
