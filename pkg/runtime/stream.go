package runtime

import "iter"

// Kind tells a presenter which of its two calls an Item maps to.
type Kind int

const (
	// KindRecord is an entity or primitive value (write-record).
	KindRecord Kind = iota
	// KindLine is a text header (write-line).
	KindLine
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindRecord:
		return "record"
	case KindLine:
		return "line"
	default:
		return "unknown"
	}
}

// Item is one element of a sample's output.
type Item struct {
	Kind  Kind
	Value any
}

// Record wraps a value as a record item.
func Record(v any) Item {
	return Item{Kind: KindRecord, Value: v}
}

// Line wraps text as a header item.
func Line(text string) Item {
	return Item{Kind: KindLine, Value: text}
}

// Text returns the text of a line item, or "" for records.
func (i Item) Text() string {
	if s, ok := i.Value.(string); ok && i.Kind == KindLine {
		return s
	}
	return ""
}

// Undefined is emitted in place of an aggregate that has no value,
// such as the mean of an empty sequence.
type Undefined struct {
	Reason error
}

// String renders the marker.
func (u Undefined) String() string {
	return "undefined"
}

// Stream is the lazy, restartable output of a sample. A non-nil error
// is yielded at most once and terminates the stream.
type Stream = iter.Seq2[Item, error]

// Fail returns a stream that only yields err.
func Fail(err error) Stream {
	return func(yield func(Item, error) bool) {
		yield(Item{}, err)
	}
}

// Collect drains a stream into a slice, stopping at the first error.
func Collect(s Stream) ([]Item, error) {
	var items []Item
	for item, err := range s {
		if err != nil {
			return items, err
		}
		items = append(items, item)
	}
	return items, nil
}
