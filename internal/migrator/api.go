/*
 * API - abstractions of the DNS hosting and registrar APIs of one account.
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

//go:generate mockgen -destination=mock_api_test.go -package=migrator route53-zone-migrator/internal/migrator Connector,ProfileLister,Prompter,Snapshotter

import (
	"context"

	"route53-zone-migrator/internal/model"
)

// DNSAPI is an abstraction of the DNS hosting API. Every failure is returned
// as a *model.APIError.
type DNSAPI interface {
	// ListHostedZones returns one page of hosted zones.
	ListHostedZones(ctx context.Context, opts model.ZoneListOpts) (model.ZonePage, error)
	// ListHostedZonesByName returns the zones whose names sort at or after
	// opts.DNSName. The provider does not filter by equality.
	ListHostedZonesByName(ctx context.Context, opts model.ZoneByNameOpts) ([]model.HostedZone, error)
	// ListResourceRecordSets returns one page of record sets of a zone.
	ListResourceRecordSets(ctx context.Context, opts model.RecordListOpts) (model.RecordSetPage, error)
	// CreateHostedZone creates a new hosted zone.
	CreateHostedZone(ctx context.Context, opts model.CreateZoneOpts) (model.HostedZone, error)
	// ChangeResourceRecordSets applies a change batch atomically.
	ChangeResourceRecordSets(ctx context.Context, zoneID string, batch model.ChangeBatch) (model.ChangeInfo, error)
}

// DomainsAPI is an abstraction of the domain registrar API. Every failure is
// returned as a *model.APIError.
type DomainsAPI interface {
	// RetrieveDomainAuthCode returns the transfer authorization code.
	RetrieveDomainAuthCode(ctx context.Context, domainName string) (string, error)
	// GetDomainContacts returns the contacts of a registered domain.
	GetDomainContacts(ctx context.Context, domainName string) (model.ContactSet, error)
	// TransferDomain submits a transfer of a domain to this account.
	TransferDomain(ctx context.Context, request model.DomainTransferRequest) (model.TransferTicket, error)
}

// Account is the pair of API clients scoped to one credential profile. It is
// built once when the profile is selected and never changes afterwards.
type Account struct {
	Profile string
	DNS     DNSAPI
	Domains DomainsAPI
}

// Connector builds an Account for a credential profile.
type Connector interface {
	Connect(ctx context.Context, profile string) (*Account, error)
}

// ProfileLister returns the names of the available credential profiles.
type ProfileLister interface {
	ListProfiles() ([]string, error)
}

// Prompter asks the operator to pick from a list or to confirm an action.
// Both calls block until the operator answers.
type Prompter interface {
	Choose(message string, choices []string) (string, error)
	Confirm(message string) (bool, error)
}

// Snapshotter stores a copy of a zone before it is migrated and returns
// where it was written.
type Snapshotter interface {
	Snapshot(zone model.HostedZone, recordSets []model.RecordSet) (string, error)
}
