package canvasutils

import (
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// offscreen is the pointer position reported before any pointer input.
const offscreen = -100

// InputState is a snapshot of aggregated mouse, touch and keyboard input.
// Touch input is folded into the mouse fields: the first active touch moves
// the pointer and holds the left button.
type InputState struct {
	MouseX, MouseY float64
	LeftPressed    bool
	RightPressed   bool

	// KeysDown holds the lowercased names of pressed keys, e.g. "a",
	// "arrowleft", "space".
	KeysDown map[string]struct{}
}

// IsKeyDown reports whether the named key is held. Names are case-insensitive.
func (st InputState) IsKeyDown(name string) bool {
	_, ok := st.KeysDown[strings.ToLower(name)]
	return ok
}

func (st InputState) clone() InputState {
	keys := make(map[string]struct{}, len(st.KeysDown))
	for k := range st.KeysDown {
		keys[k] = struct{}{}
	}
	st.KeysDown = keys
	return st
}

// inputSource is the slice of the Ebitengine input API that Input polls.
type inputSource interface {
	CursorPosition() (int, int)
	IsMouseButtonPressed(button ebiten.MouseButton) bool
	AppendTouchIDs(ids []ebiten.TouchID) []ebiten.TouchID
	TouchPosition(id ebiten.TouchID) (int, int)
	AppendPressedKeys(keys []ebiten.Key) []ebiten.Key
}

type ebitenSource struct{}

func (ebitenSource) CursorPosition() (int, int) { return ebiten.CursorPosition() }

func (ebitenSource) IsMouseButtonPressed(b ebiten.MouseButton) bool {
	return ebiten.IsMouseButtonPressed(b)
}

func (ebitenSource) AppendTouchIDs(ids []ebiten.TouchID) []ebiten.TouchID {
	return ebiten.AppendTouchIDs(ids)
}

func (ebitenSource) TouchPosition(id ebiten.TouchID) (int, int) { return ebiten.TouchPosition(id) }

func (ebitenSource) AppendPressedKeys(keys []ebiten.Key) []ebiten.Key {
	return inpututil.AppendPressedKeys(keys)
}

// --- Synthetic events ---

type syntheticKind uint8

const (
	syntheticPointer syntheticKind = iota
	syntheticKeyDown
	syntheticKeyUp
)

// syntheticEvent is one queued injected event.
type syntheticEvent struct {
	kind    syntheticKind
	x, y    float64
	pressed bool
	key     string
}

// Input polls Ebitengine once per tick and keeps the aggregated InputState.
// A Scene owns one and polls it at the start of Update.
type Input struct {
	source inputSource
	state  InputState

	injectQueue []syntheticEvent

	touchBuf []ebiten.TouchID
	keyBuf   []ebiten.Key
}

// NewInput creates an Input that reads from Ebitengine.
func NewInput() *Input {
	return newInputFrom(ebitenSource{})
}

func newInputFrom(src inputSource) *Input {
	return &Input{
		source: src,
		state: InputState{
			MouseX:   offscreen,
			MouseY:   offscreen,
			KeysDown: make(map[string]struct{}),
		},
	}
}

// State returns a snapshot of the current input. The returned KeysDown map is
// a copy and may be modified freely.
func (in *Input) State() InputState {
	return in.state.clone()
}

// Poll refreshes the state. When injected events are queued, exactly one is
// applied and real input is ignored for this tick.
func (in *Input) Poll() {
	if in.pollInjected() {
		return
	}

	src := in.source
	in.touchBuf = src.AppendTouchIDs(in.touchBuf[:0])
	if len(in.touchBuf) > 0 {
		tx, ty := src.TouchPosition(in.touchBuf[0])
		in.state.MouseX, in.state.MouseY = float64(tx), float64(ty)
		in.state.LeftPressed = true
	} else {
		mx, my := src.CursorPosition()
		in.state.MouseX, in.state.MouseY = float64(mx), float64(my)
		in.state.LeftPressed = src.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	}
	in.state.RightPressed = src.IsMouseButtonPressed(ebiten.MouseButtonRight)

	in.keyBuf = src.AppendPressedKeys(in.keyBuf[:0])
	clear(in.state.KeysDown)
	for _, k := range in.keyBuf {
		in.state.KeysDown[strings.ToLower(k.String())] = struct{}{}
	}
}

// InjectPress queues a left-button press at (x, y).
func (in *Input) InjectPress(x, y float64) {
	in.injectQueue = append(in.injectQueue, syntheticEvent{kind: syntheticPointer, x: x, y: y, pressed: true})
}

// InjectMove queues a pointer move to (x, y) with the left button held.
// Use it between InjectPress and InjectRelease to simulate a drag.
func (in *Input) InjectMove(x, y float64) {
	in.injectQueue = append(in.injectQueue, syntheticEvent{kind: syntheticPointer, x: x, y: y, pressed: true})
}

// InjectRelease queues a left-button release at (x, y).
func (in *Input) InjectRelease(x, y float64) {
	in.injectQueue = append(in.injectQueue, syntheticEvent{kind: syntheticPointer, x: x, y: y})
}

// InjectClick queues a press followed by a release at (x, y). Consumes two polls.
func (in *Input) InjectClick(x, y float64) {
	in.InjectPress(x, y)
	in.InjectRelease(x, y)
}

// InjectKeyDown queues a key press by name.
func (in *Input) InjectKeyDown(name string) {
	in.injectQueue = append(in.injectQueue, syntheticEvent{kind: syntheticKeyDown, key: strings.ToLower(name)})
}

// InjectKeyUp queues a key release by name.
func (in *Input) InjectKeyUp(name string) {
	in.injectQueue = append(in.injectQueue, syntheticEvent{kind: syntheticKeyUp, key: strings.ToLower(name)})
}

// Pending returns the number of injected events not yet applied.
func (in *Input) Pending() int {
	return len(in.injectQueue)
}

// pollInjected pops and applies one queued event. Returns true if one was
// consumed.
func (in *Input) pollInjected() bool {
	if len(in.injectQueue) == 0 {
		return false
	}
	evt := in.injectQueue[0]
	copy(in.injectQueue, in.injectQueue[1:])
	in.injectQueue = in.injectQueue[:len(in.injectQueue)-1]

	switch evt.kind {
	case syntheticPointer:
		in.state.MouseX, in.state.MouseY = evt.x, evt.y
		in.state.LeftPressed = evt.pressed
	case syntheticKeyDown:
		in.state.KeysDown[evt.key] = struct{}{}
	case syntheticKeyUp:
		delete(in.state.KeysDown, evt.key)
	}
	return true
}
