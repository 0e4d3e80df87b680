// Package level is a reference world for projectile contact queries: a floor
// plane, static boxes indexed in an R-tree, and spherical agents.
package level

import (
	"github.com/dhconnelly/rtreego"
	"github.com/pkg/errors"
	uuid "github.com/satori/go.uuid"

	"github.com/lixenwraith/flare/vmath"
)

// R-tree branching, same heuristic range the arena server used
const (
	treeMinChildren = 25
	treeMaxChildren = 50

	// pointTolerance stands in for a zero query radius
	pointTolerance = 1e-6
)

// Box is an axis aligned obstacle
type Box struct {
	Min, Max vmath.Vec3F
}

type obstacle struct {
	box  Box
	rect rtreego.Rect
}

func (o *obstacle) Bounds() rtreego.Rect {
	return o.rect
}

// Agent is a spherical creature projectiles can hit
type Agent struct {
	ID       uuid.UUID
	Position vmath.Vec3F
	Radius   float64
	Health   int
}

// NewAgent creates an agent with a random ID
func NewAgent(position vmath.Vec3F, radius float64, health int) *Agent {
	return &Agent{
		ID:       uuid.NewV4(),
		Position: position,
		Radius:   radius,
		Health:   health,
	}
}

func (a *Agent) Alive() bool {
	return a.Health > 0
}

// Level answers CollidesWith for projectiles
type Level struct {
	floor  float64
	tree   *rtreego.Rtree
	boxes  int
	agents []*Agent
}

// New indexes boxes; every box must have positive extent on all axes
func New(floor float64, boxes []Box) (*Level, error) {
	l := &Level{
		floor: floor,
		tree:  rtreego.NewTree(3, treeMinChildren, treeMaxChildren),
	}
	for i, b := range boxes {
		if err := l.AddBox(b); err != nil {
			return nil, errors.Wrapf(err, "box %d", i)
		}
	}
	return l, nil
}

// AddBox indexes one more obstacle
func (l *Level) AddBox(b Box) error {
	size := vmath.V3FSub(b.Max, b.Min)
	rect, err := rtreego.NewRect(
		rtreego.Point{b.Min.X, b.Min.Y, b.Min.Z},
		[]float64{size.X, size.Y, size.Z},
	)
	if err != nil {
		return errors.Wrapf(err, "box %+v", b)
	}
	l.tree.Insert(&obstacle{box: b, rect: rect})
	l.boxes++
	return nil
}

// Floor returns the ground height
func (l *Level) Floor() float64 {
	return l.floor
}

// Boxes returns the number of indexed obstacles
func (l *Level) Boxes() int {
	return l.boxes
}

// AddAgent places an agent in the level
func (l *Level) AddAgent(a *Agent) {
	l.agents = append(l.agents, a)
}

// Agents returns the live agent list by reference, as combat code mutates it
func (l *Level) Agents() *[]*Agent {
	return &l.agents
}

// RemoveDead drops agents without health and returns how many were removed
func (l *Level) RemoveDead() int {
	write := 0
	for _, a := range l.agents {
		if a.Alive() {
			l.agents[write] = a
			write++
		}
	}
	removed := len(l.agents) - write
	for i := write; i < len(l.agents); i++ {
		l.agents[i] = nil
	}
	l.agents = l.agents[:write]
	return removed
}

// CollidesWith reports whether a sphere at position touches the floor, an
// obstacle or a living agent
// Velocity is part of the query contract but this level resolves contact from
// position alone
func (l *Level) CollidesWith(position, _ vmath.Vec3F, radius float64) bool {
	if position.Y-radius <= l.floor {
		return true
	}

	tol := radius
	if tol < pointTolerance {
		tol = pointTolerance
	}
	query := rtreego.Point{position.X, position.Y, position.Z}.ToRect(tol)
	radiusSq := radius * radius

	for _, sp := range l.tree.SearchIntersect(query) {
		o := sp.(*obstacle)
		closest := vmath.V3FClampBox(position, o.box.Min, o.box.Max)
		if vmath.V3FDistSq(position, closest) <= radiusSq {
			return true
		}
	}

	for _, a := range l.agents {
		if !a.Alive() {
			continue
		}
		reach := radius + a.Radius
		if vmath.V3FDistSq(position, a.Position) <= reach*reach {
			return true
		}
	}
	return false
}
