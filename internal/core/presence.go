package core

// Identity is the display pair a connection presents at join time.
// It is caller-supplied and never authenticated; the core trusts the
// visible id as the key for reputation and presence.
type Identity struct {
	VisibleID string
	Color     string
}

type presenceEntry struct {
	identity Identity
	channel  string
}

// PresenceRegistry maps each live connection to its identity and current
// channel. It is the source of truth for "who is online where".
//
// Two connections may register the same visible id; they are treated as two
// independent presences of the same display name, not rejected.
type PresenceRegistry struct {
	entries map[string]presenceEntry
}

// NewPresenceRegistry constructs an empty registry.
func NewPresenceRegistry() *PresenceRegistry {
	return &PresenceRegistry{entries: make(map[string]presenceEntry)}
}

// Register associates an identity and channel with a connection, replacing
// any prior association.
func (p *PresenceRegistry) Register(connID string, identity Identity, channel string) {
	p.entries[connID] = presenceEntry{identity: identity, channel: channel}
}

// Unregister removes a connection and returns its last known channel.
func (p *PresenceRegistry) Unregister(connID string) (channel string, ok bool) {
	entry, ok := p.entries[connID]
	if !ok {
		return "", false
	}
	delete(p.entries, connID)
	return entry.channel, true
}

// Lookup returns the identity and channel registered for a connection.
func (p *PresenceRegistry) Lookup(connID string) (Identity, string, bool) {
	entry, ok := p.entries[connID]
	if !ok {
		return Identity{}, "", false
	}
	return entry.identity, entry.channel, true
}
