// Package nats is a small publish/subscribe client for the NATS text
// protocol, built for callers that want direct control over the transport.
//
// A Client owns one connection and one line reassembler. Inbound frames are
// decoded and delivered through the callbacks in Config; outbound operations
// (Subscribe, Unsubscribe, Publish) validate their arguments and emit wire
// frames as vectored writes.
//
//	client := nats.NewClient(nats.Config{
//		Name: "worker-7",
//		OnMessage: func(c *nats.Client, msg *nats.Message) error {
//			fmt.Printf("%s: %s\n", msg.Subject, msg.Payload)
//			return nil
//		},
//	})
//	if err := client.Connect(ctx, nats.NewStaticServers("127.0.0.1:4222")); err != nil {
//		return err
//	}
//	defer client.Close()
//
//	client.Subscribe("updates.>", "", "1")
//	client.Publish("updates.eu", "", []byte("hello"))
//
// A Client does not synchronize concurrent use; applications publishing from
// many goroutines should use ClientPool, which keeps a bounded set of
// connected clients.
//
// TLS is not supported: connecting to a server that requires it fails with
// ErrTLSRequired.
package nats
