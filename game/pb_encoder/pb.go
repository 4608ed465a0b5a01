package pb

import (
	"errors"

	"github.com/roxymeskell/mdmaze/game"
	"github.com/roxymeskell/mdmaze/view"
	"google.golang.org/protobuf/encoding/protowire"
)

var _ game.Encoder = &Protobuf{}

var ErrNilGrid = errors.New("nil grid")

// Protobuf encodes runner state in the protobuf wire format. Messages are
// written field by field with protowire:
//
//	message Grid   { uint32 width = 1; uint32 height = 2; bytes slots = 3; }
//	message State  { repeated uint32 position = 1; uint32 x = 2; uint32 y = 3;
//	                 uint32 z = 4; bool finished = 5; uint32 moves = 6; Grid view = 7; }
//	message Action { string kind = 1; uint32 axis = 2; sint32 dir = 3; }
type Protobuf struct{}

// MarshalGrid implements game.Encoder.
func (p *Protobuf) MarshalGrid(g *view.Grid) ([]byte, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	return appendGrid(nil, g), nil
}

// UnmarshalGrid implements game.Encoder.
func (p *Protobuf) UnmarshalGrid(b []byte) (*view.Grid, error) {
	return consumeGrid(b)
}

// MarshalState implements game.Encoder.
func (p *Protobuf) MarshalState(s game.State) ([]byte, error) {
	return appendState(nil, s), nil
}

// UnmarshalState implements game.Encoder.
func (p *Protobuf) UnmarshalState(b []byte) (game.State, error) {
	return consumeState(b)
}

// MarshalAction implements game.Encoder.
func (p *Protobuf) MarshalAction(a game.Action) ([]byte, error) {
	return appendAction(nil, a), nil
}

// UnmarshalAction implements game.Encoder.
func (p *Protobuf) UnmarshalAction(b []byte) (game.Action, error) {
	return consumeAction(b)
}

// field is one decoded field: a varint value or a length-delimited payload.
type field struct {
	num   protowire.Number
	typ   protowire.Type
	value uint64
	bytes []byte
}

// eachField walks every field of a message. Fields of other wire types are skipped.
func eachField(b []byte, fn func(f field) error) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return protowire.ParseError(n)
		}
		b = b[n:]

		f := field{num: num, typ: typ}
		switch typ {
		case protowire.VarintType:
			f.value, n = protowire.ConsumeVarint(b)
		case protowire.BytesType:
			f.bytes, n = protowire.ConsumeBytes(b)
		default:
			n = protowire.ConsumeFieldValue(num, typ, b)
		}
		if n < 0 {
			return protowire.ParseError(n)
		}
		b = b[n:]

		if typ != protowire.VarintType && typ != protowire.BytesType {
			continue
		}
		if err := fn(f); err != nil {
			return err
		}
	}
	return nil
}

func appendUint(b []byte, num protowire.Number, v uint64) []byte {
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, v)
}

func appendBytes(b []byte, num protowire.Number, v []byte) []byte {
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, v)
}
