package utils

import (
	"fmt"
	"path/filepath"
	"time"
)

// MessageType selects the color of a status line.
type MessageType int

// Message types printed by the processing status lines.
const (
	DefaultMessage MessageType = iota
	SuccessMessage
	ErrorMessage
	StatusMessage
)

// ANSI colors of the message types.
const (
	DefaultColor = "\x1b[0m"
	StatusColor  = "\x1b[36m"
	SuccessColor = "\x1b[32m"
	ErrorColor   = "\x1b[31m"
)

var messageColors = map[MessageType]string{
	DefaultMessage: DefaultColor,
	SuccessMessage: SuccessColor,
	ErrorMessage:   ErrorColor,
	StatusMessage:  StatusColor,
}

// DecorateText wraps s in the color of the message type and resets the
// color afterwards. Unknown message types are returned unchanged.
func DecorateText(s string, msgType MessageType) string {
	color, ok := messageColors[msgType]
	if !ok {
		return s
	}
	return color + s + DefaultColor
}

// FailureMessage reports an image which could not be processed.
// Only the base name of the path is shown.
func FailureMessage(path string, err error) string {
	return DecorateText("Error processing the image: "+filepath.Base(path), ErrorMessage) +
		DecorateText(fmt.Sprintf("\n\tReason: %v", err), DefaultMessage)
}

// SavedMessage reports the file the processed image has been written to.
func SavedMessage(path string) string {
	return "The image has been saved as: " + DecorateText(filepath.Base(path), SuccessMessage)
}

// FormatDuration formats the running time of a processing job as seconds,
// minutes and seconds, or hours, minutes and seconds.
func FormatDuration(d time.Duration) string {
	switch {
	case d < time.Minute:
		return fmt.Sprintf("%.2fs", d.Seconds())
	case d < time.Hour:
		return fmt.Sprintf("%dm %.2fs", int(d/time.Minute), (d % time.Minute).Seconds())
	}
	return fmt.Sprintf("%dh %dm %.2fs",
		int(d/time.Hour), int(d%time.Hour/time.Minute), (d % time.Minute).Seconds())
}
