package loop

import "time"

// UpdateFrame carries the per-frame inputs shared by every system.
type UpdateFrame struct {
	// DeltaTime is the time since the previous frame, in seconds.
	DeltaTime float64
	// Elapsed is the total simulated time including this frame.
	Elapsed  time.Duration
	Commands *Commands
}

func newUpdateFrame(dt float64, elapsed time.Duration) *UpdateFrame {
	return &UpdateFrame{
		DeltaTime: dt,
		Elapsed:   elapsed,
		Commands:  newCommands(),
	}
}
