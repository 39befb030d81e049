package mux

import (
	"context"
	"net/http"

	gmux "github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"pokerdemo/pkg/demo"
)

type ctxKey int

const (
	ctxSessionKey ctxKey = iota
)

// Mux handles HTTP requests
type Mux struct {
	*gmux.Router
	version        string
	registry       *demo.Registry
	sessionOptions demo.Options
	logger         logrus.FieldLogger
}

// NewMux returns a new HTTP mux
// sessionOptions are used for every session created through POST /session.
func NewMux(version string, sessionOptions demo.Options) *Mux {
	logger := logrus.StandardLogger()

	this := &Mux{
		Router:         gmux.NewRouter(),
		version:        version,
		registry:       demo.NewRegistry(logger),
		sessionOptions: sessionOptions,
		logger:         logger,
	}

	{
		r := this.Router
		r.Methods(http.MethodGet).Path("/health").Handler(this.getHealth())
		r.Methods(http.MethodPost).Path("/evaluate").Handler(this.postEvaluate())
		r.Methods(http.MethodPost).Path("/showdown").Handler(this.postShowdown())
		r.Methods(http.MethodPost).Path("/session").Handler(this.postSession())

		sr := r.PathPrefix("/session/{uuid:(?i)[a-f0-9]{8}(?:-[a-f0-9]{4}){3}-[a-f0-9]{12}}").Subrouter()
		sr.Use(this.sessionMiddleware)

		sr.Methods(http.MethodGet).Path("").Handler(this.getSessionUUID())
		sr.Methods(http.MethodDelete).Path("").Handler(this.deleteSessionUUID())
		sr.Methods(http.MethodPost).Path("/action").Handler(this.postSessionUUIDAction())
		sr.Methods(http.MethodGet).Path("/ws").Handler(this.getSessionUUIDWS())
	}

	return this
}

func (m *Mux) sessionMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := gmux.Vars(r)["uuid"]
		session, err := m.registry.Get(id)
		if err != nil {
			writeSessionError(w, err)
			return
		}

		newCtx := context.WithValue(r.Context(), ctxSessionKey, session.ID)
		next.ServeHTTP(w, r.WithContext(newCtx))
	})
}

func sessionID(r *http.Request) string {
	return r.Context().Value(ctxSessionKey).(string)
}
