package session

import "time"

// timerTickMsg is sent every second to refresh the elapsed-time display.
type timerTickMsg time.Time

// finishedMsg is sent when the batch is exhausted and the session
// should be finalized.
type finishedMsg struct{}

// resultSavedMsg confirms result persistence, successful or not.
type resultSavedMsg struct {
	Err error
}
