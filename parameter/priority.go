package parameter

// System Execution Priorities (lower runs first)
const (
	// PriorityProjectile runs motion, collision and contact bursts
	PriorityProjectile = 10
	// PriorityParticle ages pools after every burst of the frame has spawned
	PriorityParticle = 20
	// PriorityStatus publishes counters once the frame has settled
	PriorityStatus = 1000
)
