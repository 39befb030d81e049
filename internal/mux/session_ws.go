package mux

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"pokerdemo/pkg/demo"
)

const writeWait = time.Second * 10
const pongWait = time.Second * 60
const pingPeriod = pongWait * 9 / 10

// payloadIn is a message sent by a websocket client
type payloadIn struct {
	Action string `json:"action"`
}

func (m *Mux) getSessionUUIDWS() http.HandlerFunc {
	upgrader := &websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool {
			return true
		},
	}

	return func(w http.ResponseWriter, r *http.Request) {
		id := sessionID(r)

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			m.logger.WithError(err).Error("could not upgrade connection")
			return
		}

		_ = conn.SetReadDeadline(time.Now().Add(pongWait))
		conn.SetPongHandler(func(string) error {
			_ = conn.SetReadDeadline(time.Now().Add(pongWait))
			return nil
		})

		client := demo.NewClient(conn, id, remoteAddr(r))
		if err := m.registry.Do(id, func(s *demo.Session) error {
			s.AddClient(client)
			return nil
		}); err != nil {
			_ = conn.Close()
			return
		}

		m.logger.WithField("client", client.String()).Debug("client connected")

		waitForCloseFrame := make(chan bool)
		defer func() {
			_ = m.registry.Do(id, func(s *demo.Session) error {
				s.RemoveClient(client)
				return nil
			})

			m.logger.WithField("client", client.String()).Debug("client disconnected")
			_ = conn.Close()
			close(waitForCloseFrame)
		}()

		go m.webSocketWriteLoop(client, waitForCloseFrame)
		m.webSocketReadLoop(client, id)
	}
}

func (m *Mux) webSocketWriteLoop(client *demo.Client, waitForCloseFrame chan bool) {
	log := m.logger.WithField("client", client.String())

	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = client.Conn.Close()
	}()

	for {
		select {
		case <-ticker.C:
			_ = client.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := client.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case reason := <-client.Close:
			_ = client.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			_ = client.Conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, reason))

			// wait for the close frame
			select {
			case <-waitForCloseFrame:
			case <-time.After(time.Second):
			}
			return
		case msg, ok := <-client.SendChan():
			if !ok {
				return
			}

			if log.Logger.IsLevelEnabled(logrus.TraceLevel) {
				msgBytes, _ := json.Marshal(msg)
				log.WithField("message", string(msgBytes)).Trace("sending message to client")
			}

			_ = client.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := client.Conn.WriteJSON(msg); err != nil {
				log.WithError(err).Error("could not write message")
				return
			}
		}
	}
}

func (m *Mux) webSocketReadLoop(client *demo.Client, id string) {
	for {
		var msg payloadIn
		if err := client.Conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				m.logger.WithError(err).WithField("client", client.String()).Error("could not read message")
			}

			client.CloseError = err
			return
		}

		if err := m.receivedMessage(client, id, msg); err != nil {
			client.Send(errorResponse{
				Message:    err.Error(),
				StatusCode: http.StatusBadRequest,
			})
		}
	}
}

// receivedMessage applies an action sent over the websocket
// Sessions broadcast their view to every client when an action changes something. When nothing
// changed, the sender still gets the current view.
func (m *Mux) receivedMessage(client *demo.Client, id string, msg payloadIn) error {
	action, err := demo.ParseAction(msg.Action)
	if err != nil {
		return err
	}

	return m.registry.Do(id, func(s *demo.Session) error {
		changed, err := s.Apply(action)
		if err != nil {
			return err
		}

		if !changed {
			client.Send(s.View())
		}

		return nil
	})
}
