package question

import "github.com/abstractlab/yayi/internal/flow"

// evaluatedMsg carries the finished evaluation back to the screen.
type evaluatedMsg struct {
	SessionID string
	Result    flow.Result
}
