package presence

// Selection is the carousel cursor over a displayable activity sequence.
// Navigation wraps at both ends; replacing the sequence resets the cursor.
// Not safe for concurrent use; callers hold their own lock.
type Selection struct {
	items []Activity
	index int
}

func NewSelection(items []Activity) *Selection {
	return &Selection{items: items}
}

// Replace swaps in a freshly aggregated sequence and resets to the first
// entry.
func (s *Selection) Replace(items []Activity) {
	s.items = items
	s.index = 0
}

func (s *Selection) Len() int {
	return len(s.items)
}

func (s *Selection) Index() int {
	return s.index
}

func (s *Selection) Items() []Activity {
	return s.items
}

// Current returns the selected activity, or false when the sequence is
// empty.
func (s *Selection) Current() (Activity, bool) {
	if len(s.items) == 0 {
		return Activity{}, false
	}

	return s.items[s.index], true
}

func (s *Selection) Next() {
	if len(s.items) == 0 {
		return
	}

	s.index = (s.index + 1) % len(s.items)
}

func (s *Selection) Previous() {
	if len(s.items) == 0 {
		return
	}

	s.index = (s.index - 1 + len(s.items)) % len(s.items)
}
