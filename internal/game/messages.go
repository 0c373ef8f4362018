package game

import "strings"

// MsgPriority controls the color of a message in the comms log.
type MsgPriority uint8

const (
	MsgInfo     MsgPriority = iota // cyan
	MsgWarning                     // yellow
	MsgCritical                    // red
	MsgSuccess                     // green
)

// Message is a single line in the comms log.
type Message struct {
	Text     string
	Priority MsgPriority
	Tick     uint64
}

// MessageLog is a bounded FIFO of comms lines.
type MessageLog struct {
	Messages []Message
	maxSize  int
	width    int
}

// NewMessageLog keeps the most recent maxSize lines, wrapping text at width
// columns.
func NewMessageLog(maxSize, width int) *MessageLog {
	return &MessageLog{
		Messages: make([]Message, 0, maxSize),
		maxSize:  maxSize,
		width:    width,
	}
}

// Add appends text, evicting the oldest lines once full.
func (l *MessageLog) Add(tick uint64, text string, priority MsgPriority) {
	for _, line := range wrapText(text, l.width) {
		msg := Message{Text: line, Priority: priority, Tick: tick}
		if len(l.Messages) >= l.maxSize {
			copy(l.Messages, l.Messages[1:])
			l.Messages[len(l.Messages)-1] = msg
		} else {
			l.Messages = append(l.Messages, msg)
		}
	}
}

// wrapText splits s on whitespace into lines no longer than width. A single
// word longer than width gets a line of its own.
func wrapText(s string, width int) []string {
	if width <= 0 || len(s) <= width {
		return []string{s}
	}
	words := strings.Fields(s)
	if len(words) == 0 {
		return []string{""}
	}
	var lines []string
	line := words[0]
	for _, w := range words[1:] {
		if len(line)+1+len(w) > width {
			lines = append(lines, line)
			line = w
			continue
		}
		line += " " + w
	}
	return append(lines, line)
}

// Recent returns the last n lines, or fewer if the log is shorter.
func (l *MessageLog) Recent(n int) []Message {
	n = min(n, len(l.Messages))
	return l.Messages[len(l.Messages)-n:]
}
