package nats

// Servers provides the seed addresses a client may dial. The list is fixed
// at connect time: this client performs no cluster discovery.
type Servers interface {
	List() []string
}

// StaticServers is a fixed address list.
type StaticServers []string

// NewStaticServers builds a seed list from host:port addresses.
func NewStaticServers(addrs ...string) StaticServers {
	return StaticServers(addrs)
}

func (s StaticServers) List() []string {
	return s
}
