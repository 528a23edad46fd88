package control

// Hotpress records one Hotkey invocation.
type Hotpress struct {
	Key       string
	Modifiers []string
}

// MockSink is a test implementation of Sink that records every call.
// Setting Err makes all subsequent calls fail with that error.
type MockSink struct {
	Width  int
	Height int
	Err    error

	Moves        [][2]int
	Clicks       []Button
	DoubleClicks int
	Presses      []Button
	Releases     []Button
	Scrolls      []int
	Hotkeys      []Hotpress
	Typed        []string
}

// NewMockSink creates a MockSink with a 1920x1080 screen.
func NewMockSink() *MockSink {
	return &MockSink{Width: 1920, Height: 1080}
}

func (s *MockSink) ScreenSize() (int, int) {
	return s.Width, s.Height
}

func (s *MockSink) MoveCursor(x, y int) error {
	if s.Err != nil {
		return s.Err
	}
	s.Moves = append(s.Moves, [2]int{x, y})
	return nil
}

func (s *MockSink) Click(b Button) error {
	if s.Err != nil {
		return s.Err
	}
	s.Clicks = append(s.Clicks, b)
	return nil
}

func (s *MockSink) DoubleClick() error {
	if s.Err != nil {
		return s.Err
	}
	s.DoubleClicks++
	return nil
}

func (s *MockSink) PressButton(b Button) error {
	if s.Err != nil {
		return s.Err
	}
	s.Presses = append(s.Presses, b)
	return nil
}

func (s *MockSink) ReleaseButton(b Button) error {
	if s.Err != nil {
		return s.Err
	}
	s.Releases = append(s.Releases, b)
	return nil
}

func (s *MockSink) Scroll(amount int) error {
	if s.Err != nil {
		return s.Err
	}
	s.Scrolls = append(s.Scrolls, amount)
	return nil
}

func (s *MockSink) Hotkey(key string, modifiers ...string) error {
	if s.Err != nil {
		return s.Err
	}
	s.Hotkeys = append(s.Hotkeys, Hotpress{Key: key, Modifiers: modifiers})
	return nil
}

func (s *MockSink) TypeText(text string) error {
	if s.Err != nil {
		return s.Err
	}
	s.Typed = append(s.Typed, text)
	return nil
}
