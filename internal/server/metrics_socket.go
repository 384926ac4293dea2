/*
 * Metrics socket - Open Metrics and health endpoints.
 *
 * Copyright 2026 Marco Confalonieri.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *   http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */
package server

import (
	"context"
	"errors"
	"net"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
)

// MetricsSocket represents the socket that serves the Open Metrics, as well as
// the liveness and readiness checks.
type MetricsSocket struct {
	status *Status
	reg    *prometheus.Registry
	srv    *http.Server
}

// NewMetricsSocket initializes a new MetricsSocket instance.
func NewMetricsSocket(status *Status, reg *prometheus.Registry, options SocketOptions) *MetricsSocket {
	s := &MetricsSocket{
		status: status,
		reg:    reg,
	}
	s.srv = &http.Server{
		Addr:         options.GetMetricsAddress(),
		Handler:      s.router(),
		ReadTimeout:  options.GetReadTimeout(),
		WriteTimeout: options.GetWriteTimeout(),
	}
	return s
}

// writeCheck writes 200/OK if ok is true and 503/Service Unavailable otherwise.
func writeCheck(w http.ResponseWriter, ok bool, check string) {
	code := http.StatusOK
	if !ok {
		code = http.StatusServiceUnavailable
		w.WriteHeader(code)
	}
	if _, err := w.Write([]byte(http.StatusText(code))); err != nil {
		log.Warnf("Could not answer to a %s check: %s", check, err.Error())
	}
}

// livenessHandler checks if the process is healthy.
func (s MetricsSocket) livenessHandler(w http.ResponseWriter, r *http.Request) {
	writeCheck(w, s.status.IsHealthy(), "liveness")
}

// readinessHandler checks if a migration is in progress.
func (s MetricsSocket) readinessHandler(w http.ResponseWriter, r *http.Request) {
	writeCheck(w, s.status.IsReady(), "readiness")
}

// healthzHandler checks if the process is live AND ready.
func (s MetricsSocket) healthzHandler(w http.ResponseWriter, r *http.Request) {
	writeCheck(w, s.status.IsHealthy() && s.status.IsReady(), "healthz")
}

// stageHandler writes the workflow step being executed.
func (s MetricsSocket) stageHandler(w http.ResponseWriter, r *http.Request) {
	if _, err := w.Write([]byte(s.status.Stage())); err != nil {
		log.Warnf("Could not answer to a stage request: %s", err.Error())
	}
}

// router builds the routes of the socket.
func (s *MetricsSocket) router() http.Handler {
	r := chi.NewRouter()
	r.Get("/", s.readinessHandler)
	r.Get("/ready", s.readinessHandler)
	r.Get("/health", s.livenessHandler)
	r.Get("/healthz", s.healthzHandler)
	r.Get("/stage", s.stageHandler)
	r.Handle("/metrics", promhttp.HandlerFor(s.reg, promhttp.HandlerOpts{Registry: s.reg}))
	return r
}

// Start starts the exposed endpoints server and blocks until it is shut
// down. The started channel, if not nil, is notified once the socket is
// listening.
func (s *MetricsSocket) Start(startedChan chan struct{}) error {
	address := s.srv.Addr
	l, err := net.Listen("tcp", address)
	if err != nil {
		return err
	}

	log.Infof("Serving metrics on %s", address)
	if startedChan != nil {
		startedChan <- struct{}{}
	}

	if err := s.srv.Serve(l); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops the server started by Start.
func (s *MetricsSocket) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}
