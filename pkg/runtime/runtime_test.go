package runtime

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingPresenter struct {
	calls   []string
	values  []any
	failing bool
}

func (p *recordingPresenter) WriteRecord(v any) error {
	if p.failing {
		return errors.New("sink closed")
	}
	p.calls = append(p.calls, "record")
	p.values = append(p.values, v)
	return nil
}

func (p *recordingPresenter) WriteLine(text string) error {
	if p.failing {
		return errors.New("sink closed")
	}
	p.calls = append(p.calls, "line")
	p.values = append(p.values, text)
	return nil
}

func streamOf(items ...Item) Stream {
	return func(yield func(Item, error) bool) {
		for _, it := range items {
			if !yield(it, nil) {
				return
			}
		}
	}
}

func TestItem(t *testing.T) {
	assert.Equal(t, KindLine, Line("Month").Kind)
	assert.Equal(t, "Month", Line("Month").Text())
	assert.Equal(t, KindRecord, Record(42).Kind)
	assert.Equal(t, "", Record("x").Text())
	assert.Equal(t, "record", KindRecord.String())
	assert.Equal(t, "line", KindLine.String())
	assert.Equal(t, "undefined", Undefined{}.String())
}

func TestCollect(t *testing.T) {
	items, err := Collect(streamOf(Line("a"), Record(1)))
	require.NoError(t, err)
	assert.Len(t, items, 2)

	items, err = Collect(Fail(ErrNumericOverflow))
	assert.ErrorIs(t, err, ErrNumericOverflow)
	assert.Empty(t, items)
}

func TestRunner_Run(t *testing.T) {
	t.Run("dispatches items", func(t *testing.T) {
		p := &recordingPresenter{}
		r := NewRunner(p, zerolog.Nop())

		summary, err := r.Run("Q0", streamOf(Line("header"), Record(1), Record("two")))
		require.NoError(t, err)

		assert.Equal(t, []string{"line", "record", "record"}, p.calls)
		assert.Equal(t, []any{"header", 1, "two"}, p.values)
		assert.Equal(t, "Q0", summary.Sample)
		assert.Equal(t, 2, summary.Records)
		assert.Equal(t, 1, summary.Lines)
		assert.NotEqual(t, uuid.Nil, summary.RunID)
	})

	t.Run("wraps stream errors", func(t *testing.T) {
		p := &recordingPresenter{}
		r := NewRunner(p, zerolog.Nop())

		stream := func(yield func(Item, error) bool) {
			if !yield(Record(1), nil) {
				return
			}
			yield(Item{}, &DataShapeError{Entity: "Customer", Field: "CompanyName", Message: "is required"})
		}

		summary, err := r.Run("Q1", stream)
		require.Error(t, err)

		var sampleErr *SampleError
		require.ErrorAs(t, err, &sampleErr)
		assert.Equal(t, "Q1", sampleErr.Sample)

		var shapeErr *DataShapeError
		require.ErrorAs(t, err, &shapeErr)
		assert.Equal(t, "CompanyName", shapeErr.Field)
		assert.Equal(t, 1, summary.Records)
	})

	t.Run("presenter failure", func(t *testing.T) {
		r := NewRunner(&recordingPresenter{failing: true}, zerolog.Nop())

		_, err := r.Run("Q1", streamOf(Record(1)))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to write record")
	})
}

func TestErrors(t *testing.T) {
	err := &DataShapeError{Entity: "Product", Index: 3, Field: "Category", Message: "is required"}
	assert.Equal(t, "data shape error on Product[3].Category: is required", err.Error())

	wrapped := &SampleError{Sample: "Q9", Err: ErrEmptyAggregate}
	assert.ErrorIs(t, wrapped, ErrEmptyAggregate)
	assert.Equal(t, "sample Q9: empty aggregate", wrapped.Error())
}
