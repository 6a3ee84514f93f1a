package protocol

// inbound command types sent by viewers
const (
	MsgDragStart = "dragStart"
	MsgDrag      = "drag"
	MsgDragEnd   = "dragEnd"
)

const (
	SimTickHz   = 60
	BroadcastHz = 60
)

// Inbound is the wire shape of a viewer command. Pointers tell a missing
// field apart from a zero one.
type Inbound struct {
	Type string   `json:"type"`
	ID   *int     `json:"id"`
	X    *float64 `json:"x,omitempty"`
	Y    *float64 `json:"y,omitempty"`
}

// BodySnapshot is what a viewer needs to draw one body. A state frame is a
// []BodySnapshot with one entry per body, in id order.
type BodySnapshot struct {
	ID     int     `json:"id" msgpack:"id"`
	X      float64 `json:"x" msgpack:"x"`
	Y      float64 `json:"y" msgpack:"y"`
	Radius float64 `json:"radius" msgpack:"radius"`
	Color  string  `json:"color" msgpack:"color"`
}
