package nats

import (
	"github.com/embedq/nats/internal"
	"github.com/zeebo/xxh3"
)

// SelectServer picks the dial target for a named client from the seed list
// using Jump consistent hashing, so clients sharing a name stick to the same
// address and adding a seed moves as few clients as possible.
func SelectServer(name string, servers []string) (string, error) {
	if len(servers) == 0 {
		return "", ErrNoServers
	}
	if len(servers) == 1 {
		return servers[0], nil
	}
	return servers[internal.JumpHash(xxh3.HashString(name), len(servers))], nil
}
