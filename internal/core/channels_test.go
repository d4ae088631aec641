package core

import "testing"

func TestChannelIndexJoinLeave(t *testing.T) {
	ci := NewChannelIndex()

	ci.Join("general", "c1")
	ci.Join("general", "c2")
	if ci.Count("general") != 2 {
		t.Fatalf("count = %d, want 2", ci.Count("general"))
	}

	ci.Leave("general", "c1")
	if ci.Count("general") != 1 {
		t.Fatalf("count after leave = %d, want 1", ci.Count("general"))
	}

	// Unknown channel and absent member are both no-ops.
	ci.Leave("ghost-town", "c1")
	ci.Leave("general", "c1")
	if ci.Count("general") != 1 {
		t.Fatalf("no-op leave changed count to %d", ci.Count("general"))
	}

	if got := ci.Members("ghost-town"); len(got) != 0 {
		t.Fatalf("unknown channel members = %v, want empty", got)
	}
}

func TestChannelIndexGarbageCollectsEmpty(t *testing.T) {
	ci := NewChannelIndex()

	ci.Join("general", "c1")
	ci.Leave("general", "c1")

	if got := ci.Channels(); len(got) != 0 {
		t.Fatalf("empty channel not collected: %v", got)
	}
}

func TestPresenceRegistryReplaceAndUnregister(t *testing.T) {
	p := NewPresenceRegistry()

	p.Register("c1", Identity{VisibleID: "alice", Color: "#f00"}, "alpha")
	p.Register("c1", Identity{VisibleID: "alice", Color: "#f00"}, "beta")

	identity, channel, ok := p.Lookup("c1")
	if !ok || identity.VisibleID != "alice" || channel != "beta" {
		t.Fatalf("lookup after replace = %v %q %v", identity, channel, ok)
	}

	channel, ok = p.Unregister("c1")
	if !ok || channel != "beta" {
		t.Fatalf("unregister = %q %v, want beta true", channel, ok)
	}
	if _, _, ok := p.Lookup("c1"); ok {
		t.Fatal("lookup should miss after unregister")
	}
	if _, ok := p.Unregister("c1"); ok {
		t.Fatal("double unregister should report false")
	}
}

func TestPresenceRegistryAllowsSharedHandles(t *testing.T) {
	p := NewPresenceRegistry()

	// Two connections with the same visible id are two presences.
	p.Register("c1", Identity{VisibleID: "alice"}, "alpha")
	p.Register("c2", Identity{VisibleID: "alice"}, "alpha")

	if _, _, ok := p.Lookup("c1"); !ok {
		t.Fatal("first presence lost")
	}
	if _, _, ok := p.Lookup("c2"); !ok {
		t.Fatal("second presence lost")
	}
}
