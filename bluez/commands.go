package bluez

import (
	"encoding/json"
	"fmt"
	"net"

	"github.com/dcampos/buds-manager/bridge"
	"github.com/dcampos/buds-manager/common"
	"github.com/dcampos/buds-manager/device"
)

// commandRequest is the wire form of an outbound control command, one
// JSON object per daemon connection.
type commandRequest struct {
	Command string `json:"command"`
	Payload []byte `json:"payload"`
}

// CommandSink drains the command queue and delivers each command to
// the protocol daemon over its unix socket. Delivery is
// fire-and-forget: a dead daemon costs a log line, never a stall.
type CommandSink struct {
	socketPath string
}

// NewCommandSink creates a sink targeting the default daemon socket.
func NewCommandSink() *CommandSink {
	return &CommandSink{socketPath: common.CommandSocketPath()}
}

// Run consumes commands until the queue is closed. Call it from its
// own goroutine.
func (s *CommandSink) Run(queue *bridge.CommandQueue) {
	for cmd := range queue.Receive() {
		if err := s.deliver(cmd); err != nil {
			common.LogWarn("Command %s not delivered: %v", cmd.ID, err)
		}
	}
}

func (s *CommandSink) deliver(cmd device.Command) error {
	conn, err := net.Dial("unix", s.socketPath)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrDaemonUnavailable, err)
	}
	defer conn.Close()

	req := commandRequest{Command: string(cmd.ID), Payload: cmd.Payload}
	if err := json.NewEncoder(conn).Encode(req); err != nil {
		return common.WrapError(err, "failed to send command")
	}
	return nil
}
