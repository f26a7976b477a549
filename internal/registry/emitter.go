package registry

import (
	"sync"

	"github.com/saulo-duarte/rpm-planner/internal/planning"
)

// Listener receives the full sorted schedule list after every mutation.
type Listener func([]planning.ScheduleRecord)

// Emitter fans a schedule list out to its listeners. Each Subscribe call is
// its own registration, even for the same function.
type Emitter struct {
	mu        sync.Mutex
	nextID    int
	order     []int
	listeners map[int]Listener
}

func NewEmitter() *Emitter {
	return &Emitter{listeners: make(map[int]Listener)}
}

// Subscribe registers fn and returns a function removing that registration.
// Calling the returned function more than once is harmless.
func (e *Emitter) Subscribe(fn Listener) (unsubscribe func()) {
	e.mu.Lock()
	id := e.nextID
	e.nextID++
	e.listeners[id] = fn
	e.order = append(e.order, id)
	e.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() { e.remove(id) })
	}
}

func (e *Emitter) remove(id int) {
	e.mu.Lock()
	defer e.mu.Unlock()

	delete(e.listeners, id)
	for i, v := range e.order {
		if v == id {
			e.order = append(e.order[:i], e.order[i+1:]...)
			break
		}
	}
}

// Len returns the number of live registrations.
func (e *Emitter) Len() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.listeners)
}

// Emit calls every listener in subscription order. Listeners run outside the
// lock so they may subscribe or unsubscribe.
func (e *Emitter) Emit(records []planning.ScheduleRecord) {
	e.mu.Lock()
	fns := make([]Listener, 0, len(e.order))
	for _, id := range e.order {
		fns = append(fns, e.listeners[id])
	}
	e.mu.Unlock()

	for _, fn := range fns {
		out := make([]planning.ScheduleRecord, len(records))
		copy(out, records)
		fn(out)
	}
}
