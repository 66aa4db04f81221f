package anubis

// FocusState holds the single currently-focused identifier and notifies
// subscribers synchronously on every write. It is the one source of truth
// for "what is focused"; every element decides its highlighted appearance
// by comparing its own id against this value.
//
// Set performs no validation: pointing the state at an identifier with no
// matching element simply means nothing is focused. There is no history —
// moving focus discards the previous value.
type FocusState struct {
	current   FocusID
	listeners []func(FocusID)
}

// NewFocusState creates an empty focus state (nothing focused).
func NewFocusState() *FocusState {
	return &FocusState{}
}

// Set overwrites the focused identifier and notifies subscribers.
func (f *FocusState) Set(id FocusID) {
	f.current = id
	f.notify()
}

// Clear resets to the nothing-focused state.
func (f *FocusState) Clear() {
	f.Set("")
}

// Current returns the focused identifier, "" when nothing is focused.
func (f *FocusState) Current() FocusID {
	return f.current
}

// IsFocused reports whether id is the focused identifier. An empty id
// never matches.
func (f *FocusState) IsFocused(id FocusID) bool {
	return id != "" && f.current == id
}

// Subscribe adds a change listener and returns an unsubscribe function.
// Listeners run synchronously, in registration order, on every Set.
func (f *FocusState) Subscribe(fn func(FocusID)) func() {
	f.listeners = append(f.listeners, fn)
	idx := len(f.listeners) - 1
	return func() {
		// Zero out to allow GC, don't reorder
		f.listeners[idx] = nil
	}
}

func (f *FocusState) notify() {
	for _, fn := range f.listeners {
		if fn != nil {
			fn(f.current)
		}
	}
}
