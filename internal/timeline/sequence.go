package timeline

// Entry is one element of a reveal sequence. Item is opaque to the engine.
type Entry struct {
	List        string
	SourceIndex int
	Item        any
}

// List is a labeled input list for the sequence builder.
type List struct {
	Label string
	Items []any
}

// Sequence is the immutable display order of a render job.
type Sequence struct {
	entries []Entry
}

// BuildSingle keeps the input order of one list.
func BuildSingle(l List) (*Sequence, error) {
	if len(l.Items) == 0 {
		return nil, ErrEmptySequence
	}
	entries := make([]Entry, 0, len(l.Items))
	for i, it := range l.Items {
		entries = append(entries, Entry{List: l.Label, SourceIndex: i, Item: it})
	}
	return &Sequence{entries: entries}, nil
}

// BuildDual interleaves two lists by rank: a0, b0, a1, b1, ...
// A list that runs out is skipped, the tail of the longer one is kept.
func BuildDual(a, b List) (*Sequence, error) {
	n := max(len(a.Items), len(b.Items))
	if n == 0 {
		return nil, ErrEmptySequence
	}
	entries := make([]Entry, 0, len(a.Items)+len(b.Items))
	for i := 0; i < n; i++ {
		if i < len(a.Items) {
			entries = append(entries, Entry{List: a.Label, SourceIndex: i, Item: a.Items[i]})
		}
		if i < len(b.Items) {
			entries = append(entries, Entry{List: b.Label, SourceIndex: i, Item: b.Items[i]})
		}
	}
	return &Sequence{entries: entries}, nil
}

// Reversed returns the sequence in countdown order. Source indices are kept,
// so "#N" badges still refer to the original ranking.
func (s *Sequence) Reversed() *Sequence {
	out := make([]Entry, len(s.entries))
	for i, e := range s.entries {
		out[len(s.entries)-1-i] = e
	}
	return &Sequence{entries: out}
}

func (s *Sequence) Len() int {
	return len(s.entries)
}

// At returns the entry at display position i.
func (s *Sequence) At(i int) Entry {
	return s.entries[i]
}

// Entries returns a copy of the display order.
func (s *Sequence) Entries() []Entry {
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// IndexOf returns the display position of (list, sourceIndex), or -1.
func (s *Sequence) IndexOf(list string, sourceIndex int) int {
	for i, e := range s.entries {
		if e.List == list && e.SourceIndex == sourceIndex {
			return i
		}
	}
	return -1
}
