package localize

import "sync"

// StyleSink is the narrow surface the DirectionAdaptor pushes layout
// changes through. The hosting UI supplies a concrete implementation;
// headless contexts pass nil and the adaptor tracks state internally.
type StyleSink interface {
	SetDocumentDirection(dir Direction)
	ApplyClassMapping(mapping map[string]string)
}

// DirectionState is a read-only snapshot of the adaptor.
type DirectionState struct {
	Enabled          bool
	CurrentDirection Direction
	MirrorIcons      bool
	MirrorNumbers    bool
}

// ListenerHandle identifies a registered direction listener so it can
// be removed later.
type ListenerHandle int

// ltrToRTL pairs every layout-affecting class with its mirrored
// counterpart. The table is total: each LTR entry has exactly one RTL
// entry and applying it twice restores the original class.
var ltrToRTL = map[string]string{
	"pad-left":         "pad-right",
	"pad-right":        "pad-left",
	"margin-left":      "margin-right",
	"margin-right":     "margin-left",
	"border-left":      "border-right",
	"border-right":     "border-left",
	"pos-left":         "pos-right",
	"pos-right":        "pos-left",
	"float-left":       "float-right",
	"float-right":      "float-left",
	"align-left":       "align-right",
	"align-right":      "align-left",
	"flex-row":         "flex-row-reverse",
	"flex-row-reverse": "flex-row",
}

// mirrorExcludedIcons are directionally meaningful glyphs that keep
// their orientation in RTL contexts.
var mirrorExcludedIcons = map[string]struct{}{
	"arrow-forward": {},
	"arrow-back":    {},
	"chevron-next":  {},
	"chevron-prev":  {},
	"redo":          {},
	"undo":          {},
}

// DirectionAdaptor tracks the active writing direction and pushes
// layout changes to a StyleSink when the direction flips. Listeners
// are notified on every transition.
type DirectionAdaptor struct {
	mu            sync.Mutex
	enabled       bool
	direction     Direction
	sink          StyleSink
	mirrorNumbers bool

	listeners  map[ListenerHandle]func()
	nextHandle ListenerHandle

	mirrored map[string]struct{}
}

// DirectionOption configures a DirectionAdaptor.
type DirectionOption func(*DirectionAdaptor)

// WithDirectionSink attaches the hosting UI's style sink.
func WithDirectionSink(sink StyleSink) DirectionOption {
	return func(a *DirectionAdaptor) {
		a.sink = sink
	}
}

// WithDirectionDisabled keeps the adaptor in LTR regardless of the
// active language.
func WithDirectionDisabled() DirectionOption {
	return func(a *DirectionAdaptor) {
		a.enabled = false
	}
}

// WithNumberMirroring renders numerals in the script-native form of RTL
// contexts. Off by default: Western digits are the common convention
// even in Arabic UIs.
func WithNumberMirroring() DirectionOption {
	return func(a *DirectionAdaptor) {
		a.mirrorNumbers = true
	}
}

// NewDirectionAdaptor builds an adaptor starting in LTR.
func NewDirectionAdaptor(opts ...DirectionOption) *DirectionAdaptor {
	a := &DirectionAdaptor{
		enabled:   true,
		direction: DirectionLTR,
		listeners: map[ListenerHandle]func(){},
		mirrored:  map[string]struct{}{},
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Apply transitions the adaptor to dir. Re-applying the current
// direction is a no-op and does not notify listeners.
func (a *DirectionAdaptor) Apply(dir Direction) {
	a.mu.Lock()
	if !a.enabled {
		dir = DirectionLTR
	}
	if dir == a.direction {
		a.mu.Unlock()
		return
	}
	a.direction = dir
	if dir == DirectionLTR {
		a.mirrored = map[string]struct{}{}
	}
	sink := a.sink
	callbacks := a.listenerSnapshot()
	a.mu.Unlock()

	if sink != nil {
		sink.SetDocumentDirection(dir)
		sink.ApplyClassMapping(ltrToRTL)
	}
	for _, cb := range callbacks {
		cb()
	}
}

// Direction reports the current direction.
func (a *DirectionAdaptor) Direction() Direction {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.direction
}

// IsRTL reports whether the adaptor is in RTL.
func (a *DirectionAdaptor) IsRTL() bool {
	return a.Direction() == DirectionRTL
}

// State returns a snapshot for the hosting UI to re-query after a
// listener fires.
func (a *DirectionAdaptor) State() DirectionState {
	a.mu.Lock()
	defer a.mu.Unlock()
	return DirectionState{
		Enabled:          a.enabled,
		CurrentDirection: a.direction,
		MirrorIcons:      len(a.mirrored) > 0,
		MirrorNumbers:    a.mirrorNumbers && a.direction == DirectionRTL,
	}
}

// MapClass returns the mirrored counterpart of class under the current
// direction. In LTR, or for classes outside the table, the input is
// returned unchanged.
func (a *DirectionAdaptor) MapClass(class string) string {
	if !a.IsRTL() {
		return class
	}
	if mapped, ok := ltrToRTL[class]; ok {
		return mapped
	}
	return class
}

// MapClasses adapts the classes of newly mounted content. The hosting
// UI calls this whenever it inserts elements after a transition.
func (a *DirectionAdaptor) MapClasses(classes []string) []string {
	mapped := make([]string, len(classes))
	for i, class := range classes {
		mapped[i] = a.MapClass(class)
	}
	return mapped
}

// MirrorIcon marks icon for horizontal mirroring. Directionally
// meaningful icons are never mirrored, and nothing is mirrored in LTR.
// Reports whether the icon entered the mirror set.
func (a *DirectionAdaptor) MirrorIcon(icon string) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.direction != DirectionRTL {
		return false
	}
	if _, excluded := mirrorExcludedIcons[icon]; excluded {
		return false
	}
	a.mirrored[icon] = struct{}{}
	return true
}

// IsMirrored reports whether icon is currently in the mirror set.
func (a *DirectionAdaptor) IsMirrored(icon string) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	_, ok := a.mirrored[icon]
	return ok
}

// AddListener registers cb and invokes it once immediately so the
// caller observes the current direction. Returns a handle for removal.
func (a *DirectionAdaptor) AddListener(cb func()) ListenerHandle {
	a.mu.Lock()
	handle := a.nextHandle
	a.nextHandle++
	a.listeners[handle] = cb
	a.mu.Unlock()

	cb()
	return handle
}

// RemoveListener unregisters the listener for handle. Unknown handles
// are ignored.
func (a *DirectionAdaptor) RemoveListener(handle ListenerHandle) {
	a.mu.Lock()
	defer a.mu.Unlock()
	delete(a.listeners, handle)
}

// listenerSnapshot copies the callbacks so a listener may remove
// itself while the adaptor is notifying. Caller holds the lock.
func (a *DirectionAdaptor) listenerSnapshot() []func() {
	callbacks := make([]func(), 0, len(a.listeners))
	for _, cb := range a.listeners {
		callbacks = append(callbacks, cb)
	}
	return callbacks
}
