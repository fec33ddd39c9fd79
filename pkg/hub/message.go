// Package hub provides a thread-safe websocket broadcast hub using the
// channel-based fan-out pattern: one goroutine owns the client set,
// writers hand it messages over a buffered channel.
package hub

// MessageType indicates the websocket message format.
type MessageType int

const (
	// JSONMessage is a JSON-encoded message (status and progress events).
	JSONMessage MessageType = iota
	// BinaryMessage is raw binary data (JPEG frames).
	BinaryMessage
)

// Message is a payload to broadcast to every connected client.
type Message struct {
	Type MessageType
	Data []byte
}
