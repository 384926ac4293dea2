/*
 * Domain - registrar-side types.
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

package model

// ExtraParam is an additional, TLD-specific contact parameter.
type ExtraParam struct {
	Name  string
	Value string
}

// Contact holds the registrar contact details of a domain. The values are
// copied from the source registration without interpretation.
type Contact struct {
	FirstName        string
	LastName         string
	ContactType      string
	OrganizationName string
	AddressLine1     string
	AddressLine2     string
	City             string
	State            string
	CountryCode      string
	ZipCode          string
	PhoneNumber      string
	Email            string
	Fax              string
	ExtraParams      []ExtraParam
}

// ContactSet groups the three contacts of a domain registration.
type ContactSet struct {
	Admin      Contact
	Registrant Contact
	Tech       Contact
}

// PrivacyProtection holds the privacy flags of each contact.
type PrivacyProtection struct {
	Admin      bool
	Registrant bool
	Tech       bool
}

// DomainTransferRequest is the registrar transfer submitted to the
// destination account.
type DomainTransferRequest struct {
	DomainName      string
	DurationInYears int
	NameServers     []NameServer
	AuthCode        string
	AutoRenew       bool
	Contacts        ContactSet
	PrivacyProtect  PrivacyProtection
}
