package pricing

import (
	"encoding/json"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

// CellKind discriminates the two shapes a comparison cell can take.
type CellKind string

const (
	CellBool CellKind = "bool"
	CellText CellKind = "text"
)

// Cell is a tagged variant: a comparison cell is either a boolean checkmark
// or a free-text value. On the wire and in storage it is the raw bool or
// string, never an object.
type Cell struct {
	Kind CellKind
	Bool bool
	Text string
}

func BoolCell(v bool) Cell {
	return Cell{Kind: CellBool, Bool: v}
}

func TextCell(v string) Cell {
	return Cell{Kind: CellText, Text: v}
}

func (c Cell) MarshalJSON() ([]byte, error) {
	if c.Kind == CellText {
		return json.Marshal(c.Text)
	}
	return json.Marshal(c.Bool)
}

func (c *Cell) UnmarshalJSON(data []byte) error {
	var b bool
	if err := json.Unmarshal(data, &b); err == nil {
		*c = BoolCell(b)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*c = TextCell(s)
		return nil
	}
	return fmt.Errorf("cell must be a boolean or a string, got %s", string(data))
}

func (c Cell) MarshalBSONValue() (bsontype.Type, []byte, error) {
	if c.Kind == CellText {
		return bson.MarshalValue(c.Text)
	}
	return bson.MarshalValue(c.Bool)
}

func (c *Cell) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	raw := bson.RawValue{Type: t, Value: data}
	switch t {
	case bsontype.Boolean:
		*c = BoolCell(raw.Boolean())
		return nil
	case bsontype.String:
		*c = TextCell(raw.StringValue())
		return nil
	default:
		return fmt.Errorf("cell must be a boolean or a string, got bson type %s", t)
	}
}
