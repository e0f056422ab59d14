// Package event implements the sweep's event queue: a max-heap of site and
// circle events keyed by the y-coordinate at which they fire, with lazy
// cancellation for circle events that are invalidated before they are
// popped.
//
// The heap itself is backed by github.com/emirpasic/gods's binaryheap
// container, and cancelled ids are tracked in a gods hashset — the same
// ordered-container package used elsewhere in this module's ancestry for
// sweepline bookkeeping, here applied to the priority-queue need a
// max-heap is the natural fit for.
package event

import (
	"fmt"

	"github.com/emirpasic/gods/sets/hashset"
	"github.com/emirpasic/gods/trees/binaryheap"

	"github.com/fortunevoronoi/voronoi2d/point"
)

// Kind distinguishes a site event from a circle event.
type Kind int

const (
	// Site is an input site becoming active on the sweepline.
	Site Kind = iota
	// Circle is an arc scheduled to disappear from the beachline.
	Circle
)

// Event is a sum of a site event (carrying the site point) and a circle
// event (carrying the circumcenter, radius, the beachline arc it would
// delete, and its own id, assigned on push).
type Event struct {
	Kind Kind

	// Site is populated when Kind == Site.
	SitePoint point.Point

	// The following are populated when Kind == Circle.
	Center  point.Point
	Radius  float64
	ArcNode int
	ID      int
}

// Key returns the y-coordinate the event queue orders by: the site's own
// y for a site event, or the circle's bottom (center.Y - radius, the same
// quantity geometry.CircleBottom computes) for a circle event — the
// height at which the sweepline actually reaches the disappearing arc.
func (e Event) Key() float64 {
	if e.Kind == Site {
		return e.SitePoint.Y()
	}
	return e.Center.Y() - e.Radius
}

func (e Event) String() string {
	if e.Kind == Site {
		return fmt.Sprintf("site at %s", e.SitePoint)
	}
	return fmt.Sprintf("circle for arc %d, center %s, radius %g", e.ArcNode, e.Center, e.Radius)
}

// NewSiteEvent returns a site event for pt.
func NewSiteEvent(pt point.Point) Event {
	return Event{Kind: Site, SitePoint: pt}
}

// NewCircleEvent returns a circle event for the arc at arcNode, with the
// given circumcenter and radius. Its ID is assigned by Queue.Push.
func NewCircleEvent(center point.Point, radius float64, arcNode int) Event {
	return Event{Kind: Circle, Center: center, Radius: radius, ArcNode: arcNode}
}

// comparator orders events for a max-heap: the event with the larger key
// comes first. Ties between two site events are broken using the point
// total order on their sites, again greater first (so at equal y the
// smaller x is popped first and the larger x later), so that two
// horizontally-collinear site events produce identical ordering
// regardless of push order.
func comparator(a, b interface{}) int {
	ea, eb := a.(Event), b.(Event)
	ka, kb := ea.Key(), eb.Key()

	if ka != kb {
		if ka > kb {
			return -1
		}
		return 1
	}

	if ea.Kind == Site && eb.Kind == Site {
		switch {
		case eb.SitePoint.Less(ea.SitePoint):
			return -1
		case ea.SitePoint.Less(eb.SitePoint):
			return 1
		default:
			return 0
		}
	}

	return 0
}

// Queue is the sweep's event queue.
type Queue struct {
	heap        *binaryheap.Heap
	cancelled   *hashset.Set
	nextEventID int
}

// New returns an empty event queue.
func New() *Queue {
	return &Queue{
		heap:      binaryheap.NewWith(comparator),
		cancelled: hashset.New(),
	}
}

// Push adds event to the queue and, if it is a circle event, assigns it a
// fresh monotonically-increasing id (returned, and also stored on the
// event's ID field for the caller's convenience).
func (q *Queue) Push(e Event) int {
	id := q.nextEventID
	q.nextEventID++
	if e.Kind == Circle {
		e.ID = id
	}
	q.heap.Push(e)
	return id
}

// Pop removes and returns the highest-priority (largest key) event, and
// true if the queue was non-empty. Circle events whose id has been
// cancelled are discarded silently and the next event is tried instead;
// site events are never cancelled.
func (q *Queue) Pop() (Event, bool) {
	for {
		raw, ok := q.heap.Pop()
		if !ok {
			return Event{}, false
		}
		e := raw.(Event)
		if e.Kind == Circle && q.cancelled.Contains(e.ID) {
			q.cancelled.Remove(e.ID)
			continue
		}
		return e, true
	}
}

// Cancel marks the circle event with the given id as cancelled; it will
// be silently discarded the next time Pop encounters it.
func (q *Queue) Cancel(eventID int) {
	q.cancelled.Add(eventID)
}

// Empty reports whether the queue has no more live events to pop. This is
// approximate when cancelled circle events are still sitting in the heap
// (they keep the heap non-empty but will be skipped by Pop); Pop itself is the
// authoritative way to drain the queue.
func (q *Queue) Empty() bool {
	return q.heap.Empty()
}
