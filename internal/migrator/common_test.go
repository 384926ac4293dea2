/*
 * Common - mock clients and fixtures shared by the unit tests.
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
	"context"
	"errors"
	"testing"

	"route53-zone-migrator/internal/model"

	"github.com/stretchr/testify/assert"
)

// zonesResponse simulates a response that returns one page of zones.
type zonesResponse struct {
	page model.ZonePage
	err  error
}

// zonesByNameResponse simulates a response to a zone lookup by name.
type zonesByNameResponse struct {
	zones []model.HostedZone
	err   error
}

// recordsResponse simulates a response that returns one page of record sets.
type recordsResponse struct {
	page model.RecordSetPage
	err  error
}

// createZoneResponse simulates a response to a zone creation request.
type createZoneResponse struct {
	zone model.HostedZone
	err  error
}

// changeResponse simulates a response to a change batch submission.
type changeResponse struct {
	info model.ChangeInfo
	err  error
}

// mockDNSState keeps track of which methods were called and with which
// arguments.
type mockDNSState struct {
	ListHostedZonesCalls        int
	ListHostedZonesByNameCalls  int
	ListResourceRecordSetsCalls int
	CreateHostedZoneCalls       int
	ChangeResourceRecordSets    int

	zoneOpts    []model.ZoneListOpts
	byNameOpts  []model.ZoneByNameOpts
	recordOpts  []model.RecordListOpts
	createOpts  []model.CreateZoneOpts
	changedZone string
	batch       model.ChangeBatch
}

// mockDNSClient represents the mock client used to simulate calls to the
// DNS API. Paged responses are returned in order, one per call; record pages
// are kept per zone ID.
type mockDNSClient struct {
	listZones   []zonesResponse
	zonesByName zonesByNameResponse
	records     map[string][]recordsResponse
	createZone  createZoneResponse
	change      changeResponse
	state       mockDNSState
}

// ListHostedZones simulates a request to list the zones.
func (m *mockDNSClient) ListHostedZones(ctx context.Context, opts model.ZoneListOpts) (model.ZonePage, error) {
	idx := m.state.ListHostedZonesCalls
	m.state.ListHostedZonesCalls++
	m.state.zoneOpts = append(m.state.zoneOpts, opts)
	if idx >= len(m.listZones) {
		return model.ZonePage{}, nil
	}
	r := m.listZones[idx]
	return r.page, r.err
}

// ListHostedZonesByName simulates a request to list the zones by name.
func (m *mockDNSClient) ListHostedZonesByName(ctx context.Context, opts model.ZoneByNameOpts) ([]model.HostedZone, error) {
	m.state.ListHostedZonesByNameCalls++
	m.state.byNameOpts = append(m.state.byNameOpts, opts)
	r := m.zonesByName
	return r.zones, r.err
}

// ListResourceRecordSets simulates a request to list the record sets of a
// zone.
func (m *mockDNSClient) ListResourceRecordSets(ctx context.Context, opts model.RecordListOpts) (model.RecordSetPage, error) {
	m.state.ListResourceRecordSetsCalls++
	m.state.recordOpts = append(m.state.recordOpts, opts)
	pages := m.records[opts.ZoneID]
	if len(pages) == 0 {
		return model.RecordSetPage{}, nil
	}
	r := pages[0]
	m.records[opts.ZoneID] = pages[1:]
	return r.page, r.err
}

// CreateHostedZone simulates a request to create a zone.
func (m *mockDNSClient) CreateHostedZone(ctx context.Context, opts model.CreateZoneOpts) (model.HostedZone, error) {
	m.state.CreateHostedZoneCalls++
	m.state.createOpts = append(m.state.createOpts, opts)
	r := m.createZone
	return r.zone, r.err
}

// ChangeResourceRecordSets simulates a change batch submission.
func (m *mockDNSClient) ChangeResourceRecordSets(ctx context.Context, zoneID string, batch model.ChangeBatch) (model.ChangeInfo, error) {
	m.state.ChangeResourceRecordSets++
	m.state.changedZone = zoneID
	m.state.batch = batch
	r := m.change
	return r.info, r.err
}

// mockDomainsState keeps track of the registrar calls.
type mockDomainsState struct {
	RetrieveDomainAuthCodeCalls int
	GetDomainContactsCalls      int
	TransferDomainCalls         int

	request model.DomainTransferRequest
}

// mockDomainsClient represents the mock client used to simulate calls to
// the registrar API.
type mockDomainsClient struct {
	authCode    string
	authCodeErr error
	contacts    model.ContactSet
	contactsErr error
	ticket      model.TransferTicket
	transferErr error
	state       mockDomainsState
}

// RetrieveDomainAuthCode simulates the auth code request.
func (m *mockDomainsClient) RetrieveDomainAuthCode(ctx context.Context, domainName string) (string, error) {
	m.state.RetrieveDomainAuthCodeCalls++
	return m.authCode, m.authCodeErr
}

// GetDomainContacts simulates the domain detail request.
func (m *mockDomainsClient) GetDomainContacts(ctx context.Context, domainName string) (model.ContactSet, error) {
	m.state.GetDomainContactsCalls++
	return m.contacts, m.contactsErr
}

// TransferDomain simulates the transfer request.
func (m *mockDomainsClient) TransferDomain(ctx context.Context, request model.DomainTransferRequest) (model.TransferTicket, error) {
	m.state.TransferDomainCalls++
	m.state.request = request
	return m.ticket, m.transferErr
}

// testAccount builds an account backed by the given mock clients.
func testAccount(profile string, dns *mockDNSClient, domains *mockDomainsClient) *Account {
	if dns == nil {
		dns = &mockDNSClient{}
	}
	if domains == nil {
		domains = &mockDomainsClient{}
	}
	return &Account{
		Profile: profile,
		DNS:     dns,
		Domains: domains,
	}
}

// testConfiguration returns the default configuration used in the tests.
func testConfiguration() Configuration {
	return Configuration{
		Transfer:    TransferAsk,
		Region:      "us-east-1",
		BatchSize:   100,
		MatchPolicy: MatchExact,
	}
}

// testAPIError builds a provider error.
func testAPIError(op, code string) error {
	return &model.APIError{
		Operation: op,
		Code:      code,
		Message:   "test error",
		Err:       errors.New(code),
	}
}

// assertError checks if an error is thrown when expected. It returns true if
// an error was expected.
func assertError(t *testing.T, expected, actual error) bool {
	if expected == nil {
		assert.NoError(t, actual)
		return false
	}
	if assert.Error(t, actual) {
		assert.Contains(t, actual.Error(), expected.Error())
	}
	return true
}

// testNameServers returns the name servers of the destination fixtures.
func testNameServers() []model.NameServer {
	return []model.NameServer{
		{Hostname: "ns-1.awsdns-01.org", GlueIPs: []string{}},
		{Hostname: "ns-2.awsdns-02.com", GlueIPs: []string{}},
	}
}

// testContacts returns a contact set fixture.
func testContacts() model.ContactSet {
	contact := model.Contact{
		FirstName:   "Jane",
		LastName:    "Doe",
		ContactType: "PERSON",
		Email:       "jane@example.com",
		CountryCode: "IT",
	}
	return model.ContactSet{
		Admin:      contact,
		Registrant: contact,
		Tech:       contact,
	}
}
