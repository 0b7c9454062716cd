package presence

import (
	"testing"

	"github.com/delciak/biolink/internal/testutil"
)

func TestSelectionWraparound(t *testing.T) {
	t.Parallel()

	s := NewSelection([]Activity{
		{Name: "a"},
		{Name: "b"},
		{Name: "c"},
	})

	testutil.Assert(t, 0, s.Index(), "starts at 0")

	s.Next()
	s.Next()
	testutil.Assert(t, 2, s.Index(), "advanced to last")

	s.Next()
	testutil.Assert(t, 0, s.Index(), "next from last wraps to 0")

	s.Previous()
	testutil.Assert(t, 2, s.Index(), "previous from 0 wraps to last")
}

func TestSelectionEmptyIsNoop(t *testing.T) {
	t.Parallel()

	s := NewSelection(nil)

	_, ok := s.Current()
	testutil.Assert(t, false, ok, "no current activity on empty sequence")

	s.Next()
	s.Previous()
	testutil.Assert(t, 0, s.Index(), "navigation is a no-op on empty sequence")
}

func TestSelectionReplaceResets(t *testing.T) {
	t.Parallel()

	s := NewSelection([]Activity{{Name: "a"}, {Name: "b"}})
	s.Next()
	testutil.Assert(t, 1, s.Index(), "moved")

	s.Replace([]Activity{{Name: "x"}, {Name: "y"}, {Name: "z"}})
	testutil.Assert(t, 0, s.Index(), "replace resets the cursor")

	cur, ok := s.Current()
	testutil.Assert(t, true, ok, "current exists after replace")
	testutil.Assert(t, "x", cur.Name, "current is the new first entry")
}
