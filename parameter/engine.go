package parameter

import "time"

// Frame Clock
const (
	// FrameRate is the nominal simulation rate used by the commands
	FrameRate = 60

	// FrameInterval is one nominal frame
	FrameInterval = time.Second / FrameRate

	// MaxFrameDelta clamps a single tick after a stall (debugger, suspend)
	MaxFrameDelta = 100 * time.Millisecond
)

// Randomness
const (
	// DefaultSeed is used when the caller passes zero
	DefaultSeed uint64 = 0x5EED_F1A2_E000_0001
)
