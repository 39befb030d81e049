package mux

import (
	"net/http"

	"pokerdemo/pkg/demo"
)

func (m *Mux) postSession() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, err := m.registry.Create(m.sessionOptions)
		if err != nil {
			writeSessionError(w, err)
			return
		}

		var view *demo.View
		_ = m.registry.Do(session.ID, func(s *demo.Session) error {
			view = s.View()
			return nil
		})

		writeJSON(w, http.StatusCreated, view)
	}
}

func (m *Mux) getSessionUUID() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var view *demo.View
		if err := m.registry.Do(sessionID(r), func(s *demo.Session) error {
			view = s.View()
			return nil
		}); err != nil {
			writeSessionError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, view)
	}
}

func (m *Mux) deleteSessionUUID() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := sessionID(r)

		// close any websocket viewers before forgetting the session
		_ = m.registry.Do(id, func(s *demo.Session) error {
			for _, c := range s.Clients() {
				select {
				case c.Close <- "session deleted":
				default:
				}
			}

			return nil
		})

		if !m.registry.Delete(id) {
			writeJSONError(w, http.StatusNotFound, nil)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

type postSessionActionPayload struct {
	Action string `json:"action"`
}

func (m *Mux) postSessionUUIDAction() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var pp postSessionActionPayload
		if !decodeRequest(w, r, &pp) {
			return
		}

		view, err := m.applyAction(sessionID(r), pp.Action)
		if err != nil {
			writeSessionError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, view)
	}
}

// applyAction applies a named action to a session and returns the resulting view
func (m *Mux) applyAction(id, name string) (*demo.View, error) {
	action, err := demo.ParseAction(name)
	if err != nil {
		return nil, err
	}

	var view *demo.View
	err = m.registry.Do(id, func(s *demo.Session) error {
		if _, err := s.Apply(action); err != nil {
			return err
		}

		view = s.View()
		return nil
	})

	return view, err
}
