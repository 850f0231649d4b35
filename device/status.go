package device

import (
	"fmt"
	"strings"
)

// BatteryState tags the charging state of one battery channel.
type BatteryState string

const (
	BatteryCharging    BatteryState = "Charging"
	BatteryDischarging BatteryState = "Discharging"
	BatteryFull        BatteryState = "Full"
)

// StatusSnapshot is the tray-facing view of the connected accessory.
//
// Pointer fields are tri-state: nil means the capability is unknown or
// unsupported, a non-nil value is the last known reading. Rendering
// must keep the distinction; nil is never coerced to a zero value.
type StatusSnapshot struct {
	Connected bool

	BatteryLeft       *uint8
	BatteryLeftState  *BatteryState
	BatteryRight      *uint8
	BatteryRightState *BatteryState
	BatteryCase       *uint8
	BatteryCaseState  *BatteryState

	ListeningMode      *uint8
	ConversationDetect *bool
	AllowOffOption     bool
}

// IconText returns the text handed to the rasterizer: the minimum of
// the known left/right percentages, "?" when neither is known, or the
// disconnected marker.
func (s StatusSnapshot) IconText() string {
	if !s.Connected {
		return "D"
	}
	switch {
	case s.BatteryLeft != nil && s.BatteryRight != nil:
		min := *s.BatteryLeft
		if *s.BatteryRight < min {
			min = *s.BatteryRight
		}
		return fmt.Sprintf("%d", min)
	case s.BatteryLeft != nil:
		return fmt.Sprintf("%d", *s.BatteryLeft)
	case s.BatteryRight != nil:
		return fmt.Sprintf("%d", *s.BatteryRight)
	default:
		return "?"
	}
}

// TooltipTitle returns the tooltip heading for the tray icon.
func (s StatusSnapshot) TooltipTitle() string {
	if s.Connected {
		return "Battery Status"
	}
	return "Not Connected"
}

// TooltipBody returns the tooltip description: one segment per channel
// in L, R, C order, "?" for unknown readings, with the charging state
// in parentheses when known. Disconnected devices get a fixed message.
func (s StatusSnapshot) TooltipBody() string {
	if !s.Connected {
		return "Device is not connected."
	}

	var b strings.Builder
	b.WriteString(channelText("L", s.BatteryLeft, s.BatteryLeftState))
	b.WriteString(" ")
	b.WriteString(channelText("R", s.BatteryRight, s.BatteryRightState))
	b.WriteString(" ")
	b.WriteString(channelText("C", s.BatteryCase, s.BatteryCaseState))
	return b.String()
}

func channelText(label string, percent *uint8, state *BatteryState) string {
	text := label + ": ?"
	if percent != nil {
		text = fmt.Sprintf("%s: %d%%", label, *percent)
	}
	if state != nil {
		text += fmt.Sprintf(" (%s)", *state)
	}
	return text
}

// StatusUpdate is the payload of a DeviceStatusEvent. Nil fields leave
// the corresponding snapshot field untouched.
type StatusUpdate struct {
	BatteryLeft       *uint8
	BatteryLeftState  *BatteryState
	BatteryRight      *uint8
	BatteryRightState *BatteryState
	BatteryCase       *uint8
	BatteryCaseState  *BatteryState

	ListeningMode      *uint8
	ConversationDetect *bool
	AllowOffOption     *bool
}

// Apply merges the update into the snapshot.
func (s *StatusSnapshot) Apply(u StatusUpdate) {
	if u.BatteryLeft != nil {
		s.BatteryLeft = u.BatteryLeft
	}
	if u.BatteryLeftState != nil {
		s.BatteryLeftState = u.BatteryLeftState
	}
	if u.BatteryRight != nil {
		s.BatteryRight = u.BatteryRight
	}
	if u.BatteryRightState != nil {
		s.BatteryRightState = u.BatteryRightState
	}
	if u.BatteryCase != nil {
		s.BatteryCase = u.BatteryCase
	}
	if u.BatteryCaseState != nil {
		s.BatteryCaseState = u.BatteryCaseState
	}
	if u.ListeningMode != nil {
		s.ListeningMode = u.ListeningMode
	}
	if u.ConversationDetect != nil {
		s.ConversationDetect = u.ConversationDetect
	}
	if u.AllowOffOption != nil {
		s.AllowOffOption = *u.AllowOffOption
	}
}
