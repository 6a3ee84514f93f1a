package room

import (
	"fmt"
	"log"
	"sync"
	"time"

	"circlesim/game"
	"circlesim/protocol"
)

const defaultInboxSize = 256

type Options struct {
	TickHz      int
	BroadcastHz int
	InboxSize   int
}

func DefaultOptions() Options {
	return Options{
		TickHz:      protocol.SimTickHz,
		BroadcastHz: protocol.BroadcastHz,
		InboxSize:   defaultInboxSize,
	}
}

type viewer struct {
	conn  Conn
	codec protocol.Codec
}

// Room owns the world. Everything that touches it, ticks and viewer
// commands alike, runs on the Run goroutine.
type Room struct {
	Inbox          chan any
	tickHz         int
	broadcastEvery int
	world          *game.World
	viewers        map[string]viewer
	nextID         int
	dropped        uint64
	quit           chan struct{}
	stopOnce       sync.Once
}

func New(world *game.World, opts Options) *Room {
	if opts.TickHz <= 0 {
		opts.TickHz = protocol.SimTickHz
	}
	if opts.BroadcastHz <= 0 {
		opts.BroadcastHz = opts.TickHz
	}
	if opts.InboxSize <= 0 {
		opts.InboxSize = defaultInboxSize
	}
	broadcastEvery := opts.TickHz / opts.BroadcastHz
	if broadcastEvery <= 0 {
		broadcastEvery = 1
	}
	return &Room{
		Inbox:          make(chan any, opts.InboxSize),
		tickHz:         opts.TickHz,
		broadcastEvery: broadcastEvery,
		world:          world,
		viewers:        make(map[string]viewer),
		nextID:         1,
		quit:           make(chan struct{}),
	}
}

func (r *Room) Stop() {
	r.stopOnce.Do(func() { close(r.quit) })
}

// Done is closed once the room stops.
func (r *Room) Done() <-chan struct{} {
	return r.quit
}

// Post hands a message to the loop. It reports false once the room is stopped.
func (r *Room) Post(msg any) bool {
	select {
	case r.Inbox <- msg:
		return true
	case <-r.quit:
		return false
	}
}

// Stats asks the running loop for a snapshot of its counters.
func (r *Room) Stats() (Stats, bool) {
	reply := make(chan Stats, 1)
	if !r.Post(StatsRequest{Reply: reply}) {
		return Stats{}, false
	}
	select {
	case s := <-reply:
		return s, true
	case <-r.quit:
		return Stats{}, false
	}
}

func (r *Room) Run() {
	ticker := time.NewTicker(time.Second / time.Duration(r.tickHz))
	defer ticker.Stop()

	for {
		select {
		case <-r.quit:
			return
		case cmd := <-r.Inbox:
			r.handleCommand(cmd)
		case <-ticker.C:
			r.tick()
		}
	}
}

func (r *Room) tick() {
	r.world.Step()
	if r.world.Tick%r.broadcastEvery == 0 {
		r.broadcastState()
	}
}

func (r *Room) handleCommand(cmd any) {
	switch c := cmd.(type) {
	case Join:
		viewerID := fmt.Sprintf("v%d", r.nextID)
		r.nextID++
		codec := c.Codec
		if codec == nil {
			codec = protocol.JSON
		}
		r.viewers[viewerID] = viewer{conn: c.Conn, codec: codec}
		log.Printf("room: viewer %s joined (%s), %d connected", viewerID, codec.Name(), len(r.viewers))
		if c.Reply != nil {
			c.Reply <- JoinResult{ViewerID: viewerID}
		}
	case Command:
		r.applyDrag(c.Cmd)
	case Leave:
		r.handleLeave(c.ViewerID)
	case StatsRequest:
		c.Reply <- r.stats()
	}
}

// applyDrag ignores ids that do not name a body.
func (r *Room) applyDrag(cmd protocol.Command) {
	switch c := cmd.(type) {
	case protocol.DragStart:
		r.world.StartDrag(c.ID)
	case protocol.Drag:
		r.world.DragTo(c.ID, c.X, c.Y)
	case protocol.DragEnd:
		r.world.EndDrag(c.ID)
	}
}

// handleLeave forgets the viewer only. A body it was dragging stays dragged.
func (r *Room) handleLeave(viewerID string) {
	v, ok := r.viewers[viewerID]
	if !ok {
		return
	}
	_ = v.conn.Close()
	delete(r.viewers, viewerID)
	log.Printf("room: viewer %s left, %d connected", viewerID, len(r.viewers))
}

func (r *Room) broadcastState() {
	if len(r.viewers) == 0 {
		return
	}
	snapshot := r.buildSnapshot()

	frames := make(map[protocol.Codec][]byte, 2)
	for _, v := range r.viewers {
		b, ok := frames[v.codec]
		if !ok {
			var err error
			b, err = protocol.EncodeState(v.codec, snapshot)
			if err != nil {
				log.Printf("room: encode %s state: %v", v.codec.Name(), err)
				continue
			}
			frames[v.codec] = b
		}
		if err := v.conn.Send(b); err != nil {
			r.dropped++
		}
	}
}

func (r *Room) buildSnapshot() []protocol.BodySnapshot {
	snapshot := make([]protocol.BodySnapshot, 0, len(r.world.Bodies))
	for _, b := range r.world.Bodies {
		snapshot = append(snapshot, protocol.BodySnapshot{
			ID:     b.ID,
			X:      b.X,
			Y:      b.Y,
			Radius: b.Radius,
			Color:  b.Color,
		})
	}
	return snapshot
}

func (r *Room) stats() Stats {
	return Stats{
		Tick:          r.world.Tick,
		Viewers:       len(r.viewers),
		Bodies:        len(r.world.Bodies),
		Dragged:       r.world.NumDragged(),
		DroppedFrames: r.dropped,
	}
}
