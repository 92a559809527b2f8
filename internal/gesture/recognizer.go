package gesture

import "math"

// CorePointer is the device id reported for core protocol pointer events
// (the XInput2 virtual core pointer).
const CorePointer = 2

// ClickRecognizer counts consecutive presses of the same button. A press
// continues the sequence when it comes within Timeout milliseconds and
// Distance pixels of the previous press.
type ClickRecognizer struct {
	Button    uint // AnyButton matches every button
	Timeout   uint32
	Distance  float64
	OnPressed func(g ClickGesture, nPress int, x, y float64)

	last    *Event
	count   int
	current *Event
}

func NewClickRecognizer(button uint, timeoutMS uint32, distance float64) *ClickRecognizer {
	return &ClickRecognizer{
		Button:   button,
		Timeout:  timeoutMS,
		Distance: distance,
	}
}

func (r *ClickRecognizer) matches(button uint) bool {
	return r.Button == AnyButton || r.Button == button
}

// Press feeds a button press.
func (r *ClickRecognizer) Press(ev *Event) {
	if ev == nil || !r.matches(ev.Button) {
		return
	}

	if r.last != nil && r.last.Button == ev.Button &&
		ev.Time-r.last.Time <= r.Timeout &&
		distance(r.last.X, r.last.Y, ev.X, ev.Y) <= r.Distance {
		r.count++
	} else {
		r.count = 1
	}
	saved := *ev
	r.last = &saved

	if r.OnPressed == nil {
		return
	}
	r.current = ev
	defer func() { r.current = nil }()
	r.OnPressed(r, r.count, ev.X, ev.Y)
}

// Reset forgets the press sequence.
func (r *ClickRecognizer) Reset() {
	r.last = nil
	r.count = 0
}

func (r *ClickRecognizer) CurrentButton() uint {
	if r.current == nil {
		return 0
	}
	return r.current.Button
}

func (r *ClickRecognizer) CurrentEvent() *Event { return r.current }

// DragRecognizer tracks a press of Button followed by motion. Updates start
// once the pointer has travelled beyond Threshold and continue on every
// motion after that until release or cancel.
type DragRecognizer struct {
	Button    uint
	Threshold float64
	OnUpdate  func(g DragGesture, offsetX, offsetY float64)

	active         bool
	started        bool
	startX, startY float64
	device         int
	button         uint
	current        *Event
}

func NewDragRecognizer(button uint, threshold float64) *DragRecognizer {
	return &DragRecognizer{Button: button, Threshold: threshold}
}

func (r *DragRecognizer) Press(ev *Event) {
	if ev == nil || (r.Button != AnyButton && ev.Button != r.Button) {
		return
	}
	r.active = true
	r.started = false
	r.startX, r.startY = ev.X, ev.Y
	r.device = ev.Device
	r.button = ev.Button
}

func (r *DragRecognizer) Motion(ev *Event) {
	if !r.active || ev == nil {
		return
	}
	offsetX := ev.X - r.startX
	offsetY := ev.Y - r.startY
	if !r.started {
		if math.Hypot(offsetX, offsetY) <= r.Threshold {
			return
		}
		r.started = true
	}

	if r.OnUpdate == nil {
		return
	}
	r.current = ev
	defer func() { r.current = nil }()
	r.OnUpdate(r, offsetX, offsetY)
}

func (r *DragRecognizer) Release(ev *Event) {
	if ev != nil && ev.Button != r.button {
		return
	}
	r.Cancel()
}

// Cancel ends the gesture without further updates.
func (r *DragRecognizer) Cancel() {
	r.active = false
	r.started = false
	r.button = 0
}

// Active reports whether a press is being tracked.
func (r *DragRecognizer) Active() bool { return r.active }

func (r *DragRecognizer) StartPoint() (float64, float64, bool) {
	if !r.active {
		return 0, 0, false
	}
	return r.startX, r.startY, true
}

func (r *DragRecognizer) Device() (int, bool) {
	if !r.active {
		return 0, false
	}
	return r.device, true
}

func (r *DragRecognizer) CurrentButton() uint {
	if !r.active {
		return 0
	}
	return r.button
}

func (r *DragRecognizer) CurrentEvent() *Event { return r.current }

func distance(x0, y0, x1, y1 float64) float64 {
	return math.Hypot(x1-x0, y1-y0)
}
