package pb

import (
	"fmt"

	"github.com/roxymeskell/mdmaze/game"
	"github.com/roxymeskell/mdmaze/view"
	"google.golang.org/protobuf/encoding/protowire"
)

const (
	gridWidth  protowire.Number = 1
	gridHeight protowire.Number = 2
	gridSlots  protowire.Number = 3

	statePosition protowire.Number = 1
	stateX        protowire.Number = 2
	stateY        protowire.Number = 3
	stateZ        protowire.Number = 4
	stateFinished protowire.Number = 5
	stateMoves    protowire.Number = 6
	stateView     protowire.Number = 7
)

func appendGrid(b []byte, g *view.Grid) []byte {
	slots := g.Slots()
	raw := make([]byte, len(slots))
	for i, s := range slots {
		raw[i] = byte(s)
	}
	b = appendUint(b, gridWidth, uint64(g.Width))
	b = appendUint(b, gridHeight, uint64(g.Height))
	return appendBytes(b, gridSlots, raw)
}

func consumeGrid(b []byte) (*view.Grid, error) {
	var width, height uint64
	var raw []byte
	err := eachField(b, func(f field) error {
		switch f.num {
		case gridWidth:
			width = f.value
		case gridHeight:
			height = f.value
		case gridSlots:
			raw = f.bytes
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("decoding grid: %w", err)
	}

	slots := make([]view.Slot, len(raw))
	for i, v := range raw {
		slots[i] = view.Slot(v)
	}
	return view.NewGrid(int(width), int(height), slots)
}

func appendState(b []byte, s game.State) []byte {
	var packed []byte
	for _, c := range s.Position {
		packed = protowire.AppendVarint(packed, uint64(c))
	}
	b = appendBytes(b, statePosition, packed)
	b = appendUint(b, stateX, uint64(s.Spec.X))
	b = appendUint(b, stateY, uint64(s.Spec.Y))
	b = appendUint(b, stateZ, uint64(s.Spec.Z))
	b = appendUint(b, stateFinished, protowire.EncodeBool(s.Finished))
	b = appendUint(b, stateMoves, uint64(s.Moves))
	if s.View != nil {
		b = appendBytes(b, stateView, appendGrid(nil, s.View))
	}
	return b
}

func consumeState(b []byte) (game.State, error) {
	var s game.State
	err := eachField(b, func(f field) error {
		switch f.num {
		case statePosition:
			if f.typ == protowire.VarintType {
				s.Position = append(s.Position, int(f.value))
				return nil
			}
			for packed := f.bytes; len(packed) > 0; {
				v, n := protowire.ConsumeVarint(packed)
				if n < 0 {
					return protowire.ParseError(n)
				}
				s.Position = append(s.Position, int(v))
				packed = packed[n:]
			}
		case stateX:
			s.Spec.X = int(f.value)
		case stateY:
			s.Spec.Y = int(f.value)
		case stateZ:
			s.Spec.Z = int(f.value)
		case stateFinished:
			s.Finished = protowire.DecodeBool(f.value)
		case stateMoves:
			s.Moves = int(f.value)
		case stateView:
			g, err := consumeGrid(f.bytes)
			if err != nil {
				return err
			}
			s.View = g
		}
		return nil
	})
	if err != nil {
		return game.State{}, fmt.Errorf("decoding state: %w", err)
	}
	return s, nil
}
