package pb

import (
	"fmt"

	"github.com/roxymeskell/mdmaze/game"
	"github.com/roxymeskell/mdmaze/view"
	"google.golang.org/protobuf/encoding/protowire"
)

const (
	actionKind protowire.Number = 1
	actionAxis protowire.Number = 2
	actionDir  protowire.Number = 3
)

func appendAction(b []byte, a game.Action) []byte {
	b = appendBytes(b, actionKind, []byte(a.Kind))
	b = appendUint(b, actionAxis, uint64(a.Axis))
	return appendUint(b, actionDir, protowire.EncodeZigZag(int64(a.Dir)))
}

func consumeAction(b []byte) (game.Action, error) {
	var a game.Action
	err := eachField(b, func(f field) error {
		switch f.num {
		case actionKind:
			a.Kind = game.ActionKind(f.bytes)
		case actionAxis:
			a.Axis = view.Axis(f.value)
		case actionDir:
			a.Dir = int(protowire.DecodeZigZag(f.value))
		}
		return nil
	})
	if err != nil {
		return game.Action{}, fmt.Errorf("decoding action: %w", err)
	}
	return a, nil
}
