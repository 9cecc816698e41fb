package output

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/marshallshelly/northwind-samples/pkg/model"
	"github.com/marshallshelly/northwind-samples/pkg/runtime"
	"github.com/shopspring/decimal"
)

// jsonItem is one line of JSON output.
type jsonItem struct {
	Sample string `json:"sample,omitempty"`
	Kind   string `json:"kind"`
	Type   string `json:"type,omitempty"`
	Text   string `json:"text,omitempty"`
	Value  any    `json:"value,omitempty"`
}

// JSONWriter writes sample output as JSON lines.
type JSONWriter struct {
	enc    *json.Encoder
	sample string
}

// NewJSONWriter creates a JSON lines presenter writing to w.
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{enc: json.NewEncoder(w)}
}

// SetSample tags the following items with a sample name.
func (j *JSONWriter) SetSample(name string) {
	j.sample = name
}

// WriteRecord encodes one record.
func (j *JSONWriter) WriteRecord(v any) error {
	item := jsonItem{
		Sample: j.sample,
		Kind:   runtime.KindRecord.String(),
		Type:   typeName(v),
		Value:  v,
	}
	switch v := v.(type) {
	case time.Time:
		item.Value = v.Format(DateLayout)
	case runtime.Undefined:
		item.Value = nil
	case fmt.Stringer:
		if _, ok := v.(decimal.Decimal); !ok {
			item.Value = v.String()
		}
	}
	if err := j.enc.Encode(item); err != nil {
		return fmt.Errorf("failed to encode record: %w", err)
	}
	return nil
}

// WriteLine encodes one header.
func (j *JSONWriter) WriteLine(text string) error {
	item := jsonItem{
		Sample: j.sample,
		Kind:   runtime.KindLine.String(),
		Text:   text,
	}
	if err := j.enc.Encode(item); err != nil {
		return fmt.Errorf("failed to encode line: %w", err)
	}
	return nil
}

func typeName(v any) string {
	switch v.(type) {
	case model.Customer:
		return "customer"
	case model.Order:
		return "order"
	case model.Supplier:
		return "supplier"
	case model.Product:
		return "product"
	case time.Time:
		return "date"
	case decimal.Decimal:
		return "decimal"
	case runtime.Undefined:
		return "undefined"
	case string:
		return "text"
	default:
		return fmt.Sprintf("%T", v)
	}
}
