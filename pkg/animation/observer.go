package animation

import "time"

// Observer receives time ticks from a [Clock].
type Observer interface {
	// Tick is called with the clock's current time.
	Tick(t time.Duration)
	// Done is called once when the clock is torn down.
	Done()
}

// ObserverFunc adapts a plain function to an [Observer]. Done is a no-op.
type ObserverFunc func(t time.Duration)

// Tick calls f(t).
func (f ObserverFunc) Tick(t time.Duration) { f(t) }

// Done does nothing.
func (ObserverFunc) Done() {}

// Subscription is the handle returned by [Clock.Subscribe]. Disposing it
// removes the observer. Dispose may be called any number of times, also
// after the clock itself has been torn down.
type Subscription struct {
	unsubscribe func()
	disposed    bool
}

// NewSubscription returns a subscription that calls fn on first disposal.
func NewSubscription(fn func()) *Subscription {
	return &Subscription{unsubscribe: fn}
}

// Dispose removes the observer. Calls after the first are no-ops.
func (s *Subscription) Dispose() {
	if s == nil || s.disposed {
		return
	}
	s.disposed = true
	if s.unsubscribe != nil {
		s.unsubscribe()
		s.unsubscribe = nil
	}
}

// Disposed reports whether Dispose has been called.
func (s *Subscription) Disposed() bool {
	return s == nil || s.disposed
}

// observers is an insertion-ordered registry of subscribers.
type observers struct {
	byID   map[int]Observer
	order  []int
	nextID int
}

func (o *observers) add(obs Observer) *Subscription {
	if o.byID == nil {
		o.byID = make(map[int]Observer)
	}
	id := o.nextID
	o.nextID++
	o.byID[id] = obs
	o.order = append(o.order, id)
	return NewSubscription(func() { o.remove(id) })
}

func (o *observers) remove(id int) {
	if _, ok := o.byID[id]; !ok {
		return
	}
	delete(o.byID, id)
	for i, v := range o.order {
		if v == id {
			o.order = append(o.order[:i], o.order[i+1:]...)
			break
		}
	}
}

// snapshot returns the observers in subscription order. Emitting over a
// snapshot lets observers unsubscribe from inside Tick.
func (o *observers) snapshot() []Observer {
	if len(o.order) == 0 {
		return nil
	}
	out := make([]Observer, 0, len(o.order))
	for _, id := range o.order {
		out = append(out, o.byID[id])
	}
	return out
}

func (o *observers) emit(t time.Duration) {
	for _, obs := range o.snapshot() {
		obs.Tick(t)
	}
}

func (o *observers) done() {
	for _, obs := range o.snapshot() {
		obs.Done()
	}
}

func (o *observers) len() int {
	return len(o.order)
}
