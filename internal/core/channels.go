package core

// ChannelIndex maps channel names to the set of connections currently
// joined. Any string is a valid channel key; the index does not validate
// names. A channel with zero members is garbage-collected.
type ChannelIndex struct {
	channels map[string]map[string]struct{}
}

// NewChannelIndex constructs an empty index.
func NewChannelIndex() *ChannelIndex {
	return &ChannelIndex{channels: make(map[string]map[string]struct{})}
}

// Join adds a connection to a channel's member set, creating the channel
// entry on first use.
func (ci *ChannelIndex) Join(channel, connID string) {
	members, ok := ci.channels[channel]
	if !ok {
		members = make(map[string]struct{})
		ci.channels[channel] = members
	}
	members[connID] = struct{}{}
}

// Leave removes a connection from a channel. No-op if the connection or
// channel is unknown.
func (ci *ChannelIndex) Leave(channel, connID string) {
	members, ok := ci.channels[channel]
	if !ok {
		return
	}
	delete(members, connID)
	if len(members) == 0 {
		delete(ci.channels, channel)
	}
}

// Members returns the connection ids currently in a channel. The returned
// slice is a copy; an unknown channel yields an empty slice.
func (ci *ChannelIndex) Members(channel string) []string {
	members := ci.channels[channel]
	out := make([]string, 0, len(members))
	for id := range members {
		out = append(out, id)
	}
	return out
}

// Count returns the current membership size of a channel.
func (ci *ChannelIndex) Count(channel string) int {
	return len(ci.channels[channel])
}

// Channels returns the names of all channels with at least one member.
func (ci *ChannelIndex) Channels() []string {
	out := make([]string, 0, len(ci.channels))
	for name := range ci.channels {
		out = append(out, name)
	}
	return out
}
