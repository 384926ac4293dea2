/*
 * Mutexed - concurrency-safe values.
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

import "sync"

// mutexed is a mutex-protected value.
type mutexed[T any] struct {
	m sync.Mutex
	v T
}

// Set sets the value for this instance.
func (x *mutexed[T]) Set(v T) {
	x.m.Lock()
	x.v = v
	x.m.Unlock()
}

// Get gets the value from this instance.
func (x *mutexed[T]) Get() T {
	x.m.Lock()
	defer x.m.Unlock()
	return x.v
}
