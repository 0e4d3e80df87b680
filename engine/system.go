package engine

// System is one stage of a World tick
type System interface {
	Update(w *World, dt float64)
	Priority() int // Lower values run first
}
