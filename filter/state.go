package filter

// Action is a state replacement accepted by a Setter: either a full value
// (Value) or an updater from the previous value (Func).
type Action interface {
	apply(prev Filter) Filter
}

type valueAction struct{ next Filter }

func (a valueAction) apply(Filter) Filter { return a.next }

type funcAction struct{ fn func(prev Filter) Filter }

func (a funcAction) apply(prev Filter) Filter { return a.fn(prev) }

// Value replaces the current filter with next.
func Value(next Filter) Action { return valueAction{next: next} }

// Func replaces the current filter with fn(prev).
func Func(fn func(prev Filter) Filter) Action { return funcAction{fn: fn} }

// Resolve returns the filter a applies to prev. A nil action keeps prev.
func Resolve(a Action, prev Filter) Filter {
	if a == nil {
		return prev
	}
	return a.apply(prev)
}

// Setter replaces the host's current filter.
type Setter func(Action)

// State owns the host's current Filter.
//
// State is not safe for concurrent use; hosts mutate it from their update
// loop only.
type State struct {
	cur Filter

	nextSubID int
	subs      map[int]func(prev, next Filter)
}

func NewState(initial Filter) *State {
	return &State{cur: initial}
}

// Current returns the current filter.
func (s *State) Current() Filter { return s.cur }

// Set applies a and notifies subscribers in subscription order.
func (s *State) Set(a Action) {
	prev := s.cur
	s.cur = Resolve(a, prev)
	for id := 0; id < s.nextSubID; id++ {
		if fn, ok := s.subs[id]; ok {
			fn(prev, s.cur)
		}
	}
}

// Setter returns s.Set as a Setter.
func (s *State) Setter() Setter { return s.Set }

// Subscribe registers fn to run after every Set. The returned func removes it.
func (s *State) Subscribe(fn func(prev, next Filter)) (cancel func()) {
	if fn == nil {
		return func() {}
	}
	if s.subs == nil {
		s.subs = make(map[int]func(prev, next Filter))
	}
	id := s.nextSubID
	s.nextSubID++
	s.subs[id] = fn
	return func() { delete(s.subs, id) }
}
