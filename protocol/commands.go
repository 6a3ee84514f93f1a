package protocol

import (
	"encoding/json"
	"errors"
	"fmt"
)

var (
	ErrEmptyMessage   = errors.New("empty message")
	ErrMissingID      = errors.New("command without body id")
	ErrUnknownType    = errors.New("unknown command type")
	ErrMissingPointer = errors.New("drag without x/y")
)

// Command is one of DragStart, Drag or DragEnd.
type Command interface {
	BodyID() int
	command()
}

type DragStart struct {
	ID int
}

type Drag struct {
	ID   int
	X, Y float64
}

type DragEnd struct {
	ID int
}

func (c DragStart) BodyID() int { return c.ID }
func (c Drag) BodyID() int      { return c.ID }
func (c DragEnd) BodyID() int   { return c.ID }

func (DragStart) command() {}
func (Drag) command()      {}
func (DragEnd) command()   {}

// DecodeCommand parses a viewer frame. The id is checked before the type so
// that id-less frames of any type fail with ErrMissingID.
func DecodeCommand(b []byte) (Command, error) {
	if len(b) == 0 {
		return nil, ErrEmptyMessage
	}
	var in Inbound
	if err := json.Unmarshal(b, &in); err != nil {
		return nil, fmt.Errorf("decode command: %w", err)
	}
	if in.ID == nil {
		return nil, ErrMissingID
	}

	switch in.Type {
	case MsgDragStart:
		return DragStart{ID: *in.ID}, nil
	case MsgDrag:
		if in.X == nil || in.Y == nil {
			return nil, ErrMissingPointer
		}
		return Drag{ID: *in.ID, X: *in.X, Y: *in.Y}, nil
	case MsgDragEnd:
		return DragEnd{ID: *in.ID}, nil
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownType, in.Type)
	}
}

// EncodeCommand is the inverse of DecodeCommand, used by viewers and tests.
func EncodeCommand(c Command) ([]byte, error) {
	id := c.BodyID()
	in := Inbound{ID: &id}
	switch c := c.(type) {
	case DragStart:
		in.Type = MsgDragStart
	case Drag:
		in.Type = MsgDrag
		in.X, in.Y = &c.X, &c.Y
	case DragEnd:
		in.Type = MsgDragEnd
	default:
		return nil, fmt.Errorf("%w %T", ErrUnknownType, c)
	}
	return json.Marshal(in)
}
