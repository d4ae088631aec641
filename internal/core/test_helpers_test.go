package core

import (
	"testing"
	"time"
)

func mustEvent(t *testing.T, ch <-chan *Event, kind EventKind) *Event {
	t.Helper()

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		select {
		case ev := <-ch:
			if ev == nil {
				continue
			}
			if ev.Kind == kind {
				return ev
			}
		default:
			time.Sleep(10 * time.Millisecond)
		}
	}
	t.Fatalf("expected event kind %v not received", kind)
	return nil
}

// collectUntilProbe sends a requestRizz probe and returns every event the
// client received before the probe's reply. Because the hub serializes all
// commands, the returned slice contains the complete fallout of everything
// submitted before the probe.
func collectUntilProbe(t *testing.T, c *Client) []*Event {
	t.Helper()

	const probeID = "__probe__"
	c.Commands <- &Command{Kind: CommandRequestRizz, VisibleID: probeID}

	var events []*Event
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		select {
		case ev := <-c.Events:
			if ev == nil {
				continue
			}
			if ev.Kind == EventRizzUpdate && ev.VisibleID == probeID {
				return events
			}
			events = append(events, ev)
		default:
			time.Sleep(5 * time.Millisecond)
		}
	}
	t.Fatalf("probe reply not received")
	return nil
}

func countKind(events []*Event, kind EventKind) int {
	n := 0
	for _, ev := range events {
		if ev.Kind == kind {
			n++
		}
	}
	return n
}

func joinCommand(channel, visibleID, color string) *Command {
	return &Command{
		Kind:     CommandJoinChannel,
		Channel:  channel,
		Identity: Identity{VisibleID: visibleID, Color: color},
	}
}
