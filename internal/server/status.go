/*
 * Status - migration run status.
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

// StageIdle is reported before the workflow enters its first state.
const StageIdle = "Idle"

// Status contains the state of a migration run as seen by the socket. The
// run is healthy while the process is serving and ready while a migration
// is in progress; the stage names the workflow step being executed.
type Status struct {
	healthy mutexed[bool]
	ready   mutexed[bool]
	stage   mutexed[string]
}

// SetHealthy sets the health status.
func (s *Status) SetHealthy(v bool) {
	s.healthy.Set(v)
}

// SetReady sets the readiness status.
func (s *Status) SetReady(v bool) {
	s.ready.Set(v)
}

// SetStage records the workflow step being executed.
func (s *Status) SetStage(stage string) {
	s.stage.Set(stage)
}

// IsHealthy returns the healthy flag.
func (s *Status) IsHealthy() bool {
	return s.healthy.Get()
}

// IsReady returns the readiness status.
func (s *Status) IsReady() bool {
	return s.ready.Get()
}

// Stage returns the workflow step being executed, or StageIdle.
func (s *Status) Stage() string {
	if stage := s.stage.Get(); stage != "" {
		return stage
	}
	return StageIdle
}
