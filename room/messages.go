package room

import "circlesim/protocol"

// Conn is a viewer connection. Send must not block; a frame that cannot be
// queued right away is reported as an error and dropped.
type Conn interface {
	Send([]byte) error
	Close() error
}

// Join: issued once when a viewer connects
type Join struct {
	Conn  Conn
	Codec protocol.Codec // nil means JSON
	Reply chan<- JoinResult
}

type JoinResult struct {
	ViewerID string
}

// Command: a decoded drag command from any viewer
type Command struct {
	ViewerID string
	Cmd      protocol.Command
}

// Leave: issued on disconnect
type Leave struct {
	ViewerID string
}

// StatsRequest asks the loop for a Stats copy.
type StatsRequest struct {
	Reply chan<- Stats
}

type Stats struct {
	Tick          int    `json:"tick"`
	Viewers       int    `json:"viewers"`
	Bodies        int    `json:"bodies"`
	Dragged       int    `json:"dragged"`
	DroppedFrames uint64 `json:"droppedFrames"`
}
