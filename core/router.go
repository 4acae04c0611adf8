package core

// ScreenStack holds the screens drawn over the active panel. The shell only
// ever pushes the transport sheet, so the stack is empty or one deep.
type ScreenStack struct {
	items []Screen
}

func (s *ScreenStack) Push(screen Screen) {
	if screen == nil {
		return
	}
	s.items = append(s.items, screen)
}

func (s *ScreenStack) Pop() Screen {
	if len(s.items) == 0 {
		return nil
	}
	last := s.items[len(s.items)-1]
	s.items = s.items[:len(s.items)-1]
	return last
}

// Replace swaps the top screen for next. Screens return themselves from
// Update, so next may be the same value.
func (s *ScreenStack) Replace(next Screen) {
	if next == nil || len(s.items) == 0 {
		return
	}
	s.items[len(s.items)-1] = next
}

func (s ScreenStack) Top() Screen {
	if len(s.items) == 0 {
		return nil
	}
	return s.items[len(s.items)-1]
}

func (s ScreenStack) Len() int {
	return len(s.items)
}
