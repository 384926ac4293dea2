/*
 * Gate - decision point before the registrar transfer.
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
package migrator

import (
	"route53-zone-migrator/internal/model"
)

// Outcome is the result of the transfer gate.
type Outcome int

const (
	// Abort stops the run before any registrar action.
	Abort Outcome = iota
	// Proceed continues with the registrar transfer.
	Proceed
)

// String returns a readable form of the outcome.
func (o Outcome) String() string {
	if o == Proceed {
		return "proceed"
	}
	return "abort"
}

// Decision is the outcome of the transfer gate. ManualInstructions lists the
// destination name servers the operator has to set at the registrar when the
// transfer is not performed.
type Decision struct {
	Outcome            Outcome
	ManualInstructions []string
}

// Decide returns Proceed only if the operator confirmed the transfer.
// Otherwise it returns Abort with the destination name server host names, in
// the order given.
func Decide(confirmed bool, nameServers []model.NameServer) Decision {
	if confirmed {
		return Decision{Outcome: Proceed}
	}
	return Decision{
		Outcome:            Abort,
		ManualInstructions: model.Hostnames(nameServers),
	}
}
