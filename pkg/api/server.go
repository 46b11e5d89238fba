// NOW Core
// Copyright (c) 2026 The Project NOW Contributors.
// SPDX-License-Identifier: GPL-3.0-or-later
//
// This file is part of NOW Core.
//
// NOW Core is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// NOW Core is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with NOW Core.  If not, see <http://www.gnu.org/licenses/>.

// Package api exposes the local HTTP and websocket surface the overlay UI
// talks to. The server binds loopback only; it is a private control channel,
// not a network service.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/oaojfr/now-core/pkg/api/methods"
	"github.com/oaojfr/now-core/pkg/api/models"
	"github.com/oaojfr/now-core/pkg/config"
	"github.com/oaojfr/now-core/pkg/platforms"
	"github.com/oaojfr/now-core/pkg/shortcuts"
	"github.com/oaojfr/now-core/pkg/updater"
	"github.com/olahol/melody"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

// Deps collects everything the server routes to.
type Deps struct {
	Platform   platforms.Platform
	Cfg        *config.Instance
	Fs         afero.Fs
	Shortcuts  *shortcuts.Service
	Updater    *updater.Updater
	MediaRoots []string
}

// Server owns the overlay API and its notification fanout.
type Server struct {
	deps          Deps
	notifications chan models.Notification
}

func NewServer(deps Deps) *Server {
	return &Server{
		deps:          deps,
		notifications: make(chan models.Notification, 16),
	}
}

// Notify queues a notification for every connected overlay session. Drops
// the message when the queue is full rather than blocking the caller.
func (s *Server) Notify(n models.Notification) {
	select {
	case s.notifications <- n:
	default:
		log.Warn().Str("method", n.Method).Msg("notification queue full, dropping")
	}
}

func broadcastNotifications(
	ctx context.Context,
	session *melody.Melody,
	notifications <-chan models.Notification,
) {
	for {
		select {
		case <-ctx.Done():
			log.Debug().Msg("closing notification broadcast via context cancellation")
			return
		case notif := <-notifications:
			data, err := json.Marshal(notif)
			if err != nil {
				log.Error().Err(err).Msg("marshalling notification")
				continue
			}

			err = session.Broadcast(data)
			if err != nil {
				log.Error().Err(err).Msg("broadcasting notification")
			}
		}
	}
}

// Router builds the route tree. Split out from Start so tests can drive it
// through httptest without binding a port.
func (s *Server) Router(ctx context.Context) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(middleware.NoCache)
	r.Use(middleware.Timeout(config.APIRequestTimeout))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"https://*", "http://*"},
		AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		ExposedHeaders: []string{},
	}))

	session := melody.New()
	session.Upgrader.CheckOrigin = func(_ *http.Request) bool { return true }
	go broadcastNotifications(ctx, session, s.notifications)

	// ping command for heartbeat operation
	session.HandleMessage(func(ms *melody.Session, msg []byte) {
		if bytes.Equal(msg, []byte("ping")) {
			if err := ms.Write([]byte("pong")); err != nil {
				log.Error().Err(err).Msg("sending pong")
			}
		}
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/events", func(w http.ResponseWriter, r *http.Request) {
			if err := session.HandleRequest(w, r); err != nil {
				log.Error().Err(err).Msg("handling websocket request")
			}
		})

		r.Route("/shortcuts", func(r chi.Router) {
			r.Get("/", methods.HandleListShortcuts(s.deps.Shortcuts))
			r.Post("/", methods.HandleCreateShortcut(s.deps.Shortcuts, s.Notify))
			r.Delete("/{id}", methods.HandleDeleteShortcut(s.deps.Shortcuts, s.Notify))
			r.Patch("/{id}", methods.HandleEditShortcut(s.deps.Shortcuts, s.Notify))
		})

		r.Get("/platform", methods.HandlePlatform(s.deps.Platform))
		r.Get("/version", methods.HandleVersion())
		r.Get("/gameid", methods.HandleExtractGameID())
		r.Get("/media", methods.HandleReadMedia(s.deps.Fs, s.deps.MediaRoots...))

		r.Get("/settings", methods.HandleSettings(s.deps.Cfg))
		r.Put("/settings", methods.HandleSettingsUpdate(s.deps.Cfg))

		if s.deps.Updater != nil {
			r.Post("/updates/check", methods.HandleUpdateCheck(s.deps.Updater))
			r.Post("/updates/open", methods.HandleOpenReleases())
		}
	})

	return r
}

// Start serves the API on loopback until ctx is cancelled.
func (s *Server) Start(ctx context.Context) error {
	srv := &http.Server{
		Addr:              "127.0.0.1:" + strconv.Itoa(config.APIPort),
		Handler:           s.Router(ctx),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("error shutting down http server")
		}
	}()

	log.Info().Str("addr", srv.Addr).Msg("starting overlay api server")
	err := srv.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err //nolint:wrapcheck // listener error is self-describing
	}
	return nil
}
