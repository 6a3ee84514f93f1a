package protocol

import "testing"

func TestMessageConstants(t *testing.T) {
	if MsgDragStart != "dragStart" {
		t.Fatalf("MsgDragStart = %q, want %q", MsgDragStart, "dragStart")
	}
	if MsgDrag != "drag" {
		t.Fatalf("MsgDrag = %q, want %q", MsgDrag, "drag")
	}
	if MsgDragEnd != "dragEnd" {
		t.Fatalf("MsgDragEnd = %q, want %q", MsgDragEnd, "dragEnd")
	}
}

func TestTimingConstants(t *testing.T) {
	if SimTickHz != 60 {
		t.Fatalf("SimTickHz = %d, want %d", SimTickHz, 60)
	}
	if BroadcastHz != 60 {
		t.Fatalf("BroadcastHz = %d, want %d", BroadcastHz, 60)
	}
}

func TestTimingSanity(t *testing.T) {
	if SimTickHz <= 0 || BroadcastHz <= 0 {
		t.Fatalf("timing constants must be > 0")
	}
	if SimTickHz%BroadcastHz != 0 {
		t.Fatalf("SimTickHz %% BroadcastHz != 0 (%d %% %d)", SimTickHz, BroadcastHz)
	}
}
