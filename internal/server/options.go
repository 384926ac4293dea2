/*
 * Options - metrics socket options.
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
	"fmt"
	"time"
)

// SocketOptions contains the arguments passed as environment variables that
// influence the metrics socket.
type SocketOptions struct {
	// Metrics host
	MetricsHost string `env:"METRICS_HOST" envDefault:"localhost"`
	// Metrics port, 0 disables the socket
	MetricsPort uint16 `env:"METRICS_PORT" envDefault:"0"`
	// Read timeout in milliseconds
	ReadTimeout int `env:"METRICS_READ_TIMEOUT" envDefault:"60000"`
	// Write timeout in milliseconds
	WriteTimeout int `env:"METRICS_WRITE_TIMEOUT" envDefault:"60000"`
}

// Enabled returns true if a metrics port has been configured.
func (o SocketOptions) Enabled() bool {
	return o.MetricsPort != 0
}

// GetMetricsAddress returns the metrics address as "host:port".
func (o SocketOptions) GetMetricsAddress() string {
	return fmt.Sprintf("%s:%d", o.MetricsHost, o.MetricsPort)
}

// GetReadTimeout returns the read timeout.
func (o SocketOptions) GetReadTimeout() time.Duration {
	return time.Duration(o.ReadTimeout) * time.Millisecond
}

// GetWriteTimeout returns the write timeout.
func (o SocketOptions) GetWriteTimeout() time.Duration {
	return time.Duration(o.WriteTimeout) * time.Millisecond
}
