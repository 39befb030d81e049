package demo

import (
	"fmt"

	"github.com/gorilla/websocket"
)

// Client is a viewer connected to a session via websockets
type Client struct {
	// Conn is the underlying websocket connection
	Conn *websocket.Conn

	// send is a channel for sending messages to the client
	send chan interface{}

	// Close is a channel for closing the client
	Close chan string

	// CloseError contains the reason why the connection was closed
	CloseError error

	sessionID  string
	remoteAddr string
}

// NewClient returns a new client object
func NewClient(conn *websocket.Conn, sessionID, remoteAddr string) *Client {
	return &Client{
		send:       make(chan interface{}, 256),
		Close:      make(chan string),
		Conn:       conn,
		sessionID:  sessionID,
		remoteAddr: remoteAddr,
	}
}

// Send send a message to the web client
// Returns false if the client's buffer is full.
func (c *Client) Send(msg interface{}) bool {
	select {
	case c.send <- msg:
		return true
	default:
		return false
	}
}

// SendChan returns a read-only channel
func (c *Client) SendChan() <-chan interface{} {
	return c.send
}

// String returns a traceable identifier for the client and session
func (c *Client) String() string {
	return fmt.Sprintf("%s:%s", c.remoteAddr, c.sessionID)
}
