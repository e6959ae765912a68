package canvasutils

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

// fakeSource is a scripted inputSource.
type fakeSource struct {
	cursorX, cursorY int
	buttons          map[ebiten.MouseButton]bool
	touches          map[ebiten.TouchID][2]int
	touchOrder       []ebiten.TouchID
	keys             []ebiten.Key
}

func newFakeSource() *fakeSource {
	return &fakeSource{
		buttons: make(map[ebiten.MouseButton]bool),
		touches: make(map[ebiten.TouchID][2]int),
	}
}

func (f *fakeSource) CursorPosition() (int, int) { return f.cursorX, f.cursorY }

func (f *fakeSource) IsMouseButtonPressed(b ebiten.MouseButton) bool { return f.buttons[b] }

func (f *fakeSource) AppendTouchIDs(ids []ebiten.TouchID) []ebiten.TouchID {
	return append(ids, f.touchOrder...)
}

func (f *fakeSource) TouchPosition(id ebiten.TouchID) (int, int) {
	p := f.touches[id]
	return p[0], p[1]
}

func (f *fakeSource) AppendPressedKeys(keys []ebiten.Key) []ebiten.Key {
	return append(keys, f.keys...)
}

func (f *fakeSource) touch(id ebiten.TouchID, x, y int) {
	f.touches[id] = [2]int{x, y}
	f.touchOrder = append(f.touchOrder, id)
}

// --- Initial state ---

func TestInputInitialState(t *testing.T) {
	in := newInputFrom(newFakeSource())
	st := in.State()
	if st.MouseX != -100 || st.MouseY != -100 {
		t.Errorf("initial mouse = (%v, %v), want (-100, -100)", st.MouseX, st.MouseY)
	}
	if st.LeftPressed || st.RightPressed {
		t.Error("no button should be pressed initially")
	}
	if len(st.KeysDown) != 0 {
		t.Errorf("KeysDown = %v, want empty", st.KeysDown)
	}
}

// --- Mouse ---

func TestInputPollMouse(t *testing.T) {
	src := newFakeSource()
	src.cursorX, src.cursorY = 40, 25
	src.buttons[ebiten.MouseButtonLeft] = true
	in := newInputFrom(src)

	in.Poll()
	st := in.State()
	if st.MouseX != 40 || st.MouseY != 25 {
		t.Errorf("mouse = (%v, %v), want (40, 25)", st.MouseX, st.MouseY)
	}
	if !st.LeftPressed || st.RightPressed {
		t.Errorf("Left=%v Right=%v, want true false", st.LeftPressed, st.RightPressed)
	}

	src.buttons[ebiten.MouseButtonLeft] = false
	src.buttons[ebiten.MouseButtonRight] = true
	in.Poll()
	st = in.State()
	if st.LeftPressed || !st.RightPressed {
		t.Errorf("Left=%v Right=%v, want false true", st.LeftPressed, st.RightPressed)
	}
}

// --- Touch ---

func TestInputTouchActsAsLeftButton(t *testing.T) {
	src := newFakeSource()
	src.cursorX, src.cursorY = 1, 1
	src.touch(7, 120, 80)
	src.touch(8, 5, 5)
	in := newInputFrom(src)

	in.Poll()
	st := in.State()
	if st.MouseX != 120 || st.MouseY != 80 {
		t.Errorf("pointer = (%v, %v), want first touch (120, 80)", st.MouseX, st.MouseY)
	}
	if !st.LeftPressed {
		t.Error("touch should hold the left button")
	}

	// Lifting the finger falls back to the mouse.
	src.touchOrder = nil
	in.Poll()
	st = in.State()
	if st.LeftPressed {
		t.Error("left button should be released when touches end")
	}
	if st.MouseX != 1 || st.MouseY != 1 {
		t.Errorf("pointer = (%v, %v), want cursor (1, 1)", st.MouseX, st.MouseY)
	}
}

// --- Keyboard ---

func TestInputKeysLowercased(t *testing.T) {
	src := newFakeSource()
	src.keys = []ebiten.Key{ebiten.KeyA, ebiten.KeyArrowLeft, ebiten.KeySpace}
	in := newInputFrom(src)

	in.Poll()
	st := in.State()
	for _, name := range []string{"a", "arrowleft", "space"} {
		if _, ok := st.KeysDown[name]; !ok {
			t.Errorf("KeysDown missing %q: %v", name, st.KeysDown)
		}
	}
	if !st.IsKeyDown("ArrowLeft") {
		t.Error("IsKeyDown should be case-insensitive")
	}

	src.keys = nil
	in.Poll()
	if len(in.State().KeysDown) != 0 {
		t.Error("released keys should be cleared on the next poll")
	}
}

func TestInputStateIsSnapshot(t *testing.T) {
	src := newFakeSource()
	src.keys = []ebiten.Key{ebiten.KeyA}
	in := newInputFrom(src)
	in.Poll()

	st := in.State()
	delete(st.KeysDown, "a")
	st.KeysDown["z"] = struct{}{}

	if !in.State().IsKeyDown("a") || in.State().IsKeyDown("z") {
		t.Error("mutating a snapshot should not affect Input")
	}
}

// --- Injection ---

func TestInputInjectClick(t *testing.T) {
	src := newFakeSource()
	src.cursorX, src.cursorY = 3, 3
	in := newInputFrom(src)
	in.InjectClick(50, 60)

	if in.Pending() != 2 {
		t.Fatalf("Pending = %d, want 2", in.Pending())
	}

	in.Poll()
	st := in.State()
	if !st.LeftPressed || st.MouseX != 50 || st.MouseY != 60 {
		t.Errorf("after press: %+v", st)
	}

	in.Poll()
	st = in.State()
	if st.LeftPressed || st.MouseX != 50 {
		t.Errorf("after release: %+v", st)
	}
	if in.Pending() != 0 {
		t.Errorf("Pending = %d, want 0", in.Pending())
	}

	// Queue drained, real input again.
	in.Poll()
	if st := in.State(); st.MouseX != 3 || st.MouseY != 3 {
		t.Errorf("pointer = (%v, %v), want real cursor (3, 3)", st.MouseX, st.MouseY)
	}
}

func TestInputInjectDrag(t *testing.T) {
	in := newInputFrom(newFakeSource())
	in.InjectPress(0, 0)
	in.InjectMove(10, 0)
	in.InjectMove(20, 0)
	in.InjectRelease(20, 0)

	wantX := []float64{0, 10, 20, 20}
	wantPressed := []bool{true, true, true, false}
	for i := range wantX {
		in.Poll()
		st := in.State()
		if st.MouseX != wantX[i] || st.LeftPressed != wantPressed[i] {
			t.Errorf("step %d: x=%v pressed=%v, want x=%v pressed=%v",
				i, st.MouseX, st.LeftPressed, wantX[i], wantPressed[i])
		}
	}
}

func TestInputInjectKeys(t *testing.T) {
	in := newInputFrom(newFakeSource())
	in.InjectKeyDown("Shift")
	in.InjectKeyUp("SHIFT")

	in.Poll()
	if !in.State().IsKeyDown("shift") {
		t.Error("shift should be down after InjectKeyDown")
	}
	in.Poll()
	if in.State().IsKeyDown("shift") {
		t.Error("shift should be up after InjectKeyUp")
	}
}
