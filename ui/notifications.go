// Package ui provides the graphical user interface for Buds Manager.
// This file contains the notification system for device events.
package ui

import (
	"os/exec"

	"github.com/dcampos/buds-manager/common"
)

// NotificationType represents the type of notification
type NotificationType int

const (
	NotificationInfo NotificationType = iota
	NotificationWarning
	NotificationError
)

// Notification represents a system notification
type Notification struct {
	Title   string
	Message string
	Type    NotificationType
	Icon    string
}

// ShowNotification displays a system notification using notify-send
func ShowNotification(n Notification) {
	icon := n.Icon
	if icon == "" {
		switch n.Type {
		case NotificationWarning:
			icon = "dialog-warning"
		case NotificationError:
			icon = "dialog-error"
		default:
			icon = "audio-headphones"
		}
	}

	urgency := "low"
	if n.Type == NotificationError {
		urgency = "critical"
	}

	cmd := exec.Command("notify-send",
		"--app-name="+common.AppName,
		"--icon="+icon,
		"--urgency="+urgency,
		n.Title,
		n.Message,
	)

	if err := cmd.Run(); err != nil {
		common.LogWarn("Error showing notification: %v", err)
	}
}
