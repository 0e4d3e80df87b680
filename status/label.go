package status

import "sync/atomic"

// MaxLabelLen bounds stored label text
const MaxLabelLen = 32

// Label is an atomically swapped short string, such as the last burst kind
type Label struct {
	ptr atomic.Pointer[string]
}

// Store replaces the label, truncating past MaxLabelLen bytes
func (l *Label) Store(val string) {
	if len(val) > MaxLabelLen {
		val = val[:MaxLabelLen]
	}
	l.ptr.Store(&val)
}

func (l *Label) Load() string {
	if p := l.ptr.Load(); p != nil {
		return *p
	}
	return ""
}
