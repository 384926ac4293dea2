/*
 * Common - mock SDK clients shared by the unit tests.
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
package awsapi

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/route53"
	"github.com/aws/aws-sdk-go-v2/service/route53domains"
	"github.com/stretchr/testify/assert"
)

// mockRoute53State keeps the inputs received by the mock client.
type mockRoute53State struct {
	listZonesInput  *route53.ListHostedZonesInput
	byNameInput     *route53.ListHostedZonesByNameInput
	recordsInput    *route53.ListResourceRecordSetsInput
	createZoneInput *route53.CreateHostedZoneInput
	changeInput     *route53.ChangeResourceRecordSetsInput
}

// mockRoute53Client simulates the Route 53 SDK client.
type mockRoute53Client struct {
	listZones  *route53.ListHostedZonesOutput
	byName     *route53.ListHostedZonesByNameOutput
	records    *route53.ListResourceRecordSetsOutput
	createZone *route53.CreateHostedZoneOutput
	change     *route53.ChangeResourceRecordSetsOutput
	err        error
	state      mockRoute53State
}

func (m *mockRoute53Client) ListHostedZones(ctx context.Context, params *route53.ListHostedZonesInput, optFns ...func(*route53.Options)) (*route53.ListHostedZonesOutput, error) {
	m.state.listZonesInput = params
	return m.listZones, m.err
}

func (m *mockRoute53Client) ListHostedZonesByName(ctx context.Context, params *route53.ListHostedZonesByNameInput, optFns ...func(*route53.Options)) (*route53.ListHostedZonesByNameOutput, error) {
	m.state.byNameInput = params
	return m.byName, m.err
}

func (m *mockRoute53Client) ListResourceRecordSets(ctx context.Context, params *route53.ListResourceRecordSetsInput, optFns ...func(*route53.Options)) (*route53.ListResourceRecordSetsOutput, error) {
	m.state.recordsInput = params
	return m.records, m.err
}

func (m *mockRoute53Client) CreateHostedZone(ctx context.Context, params *route53.CreateHostedZoneInput, optFns ...func(*route53.Options)) (*route53.CreateHostedZoneOutput, error) {
	m.state.createZoneInput = params
	return m.createZone, m.err
}

func (m *mockRoute53Client) ChangeResourceRecordSets(ctx context.Context, params *route53.ChangeResourceRecordSetsInput, optFns ...func(*route53.Options)) (*route53.ChangeResourceRecordSetsOutput, error) {
	m.state.changeInput = params
	return m.change, m.err
}

// mockDomainsState keeps the inputs received by the mock client.
type mockDomainsState struct {
	authCodeInput *route53domains.RetrieveDomainAuthCodeInput
	detailInput   *route53domains.GetDomainDetailInput
	transferInput *route53domains.TransferDomainInput
}

// mockDomainsClient simulates the Route 53 Domains SDK client.
type mockDomainsClient struct {
	authCode *route53domains.RetrieveDomainAuthCodeOutput
	detail   *route53domains.GetDomainDetailOutput
	transfer *route53domains.TransferDomainOutput
	err      error
	state    mockDomainsState
}

func (m *mockDomainsClient) RetrieveDomainAuthCode(ctx context.Context, params *route53domains.RetrieveDomainAuthCodeInput, optFns ...func(*route53domains.Options)) (*route53domains.RetrieveDomainAuthCodeOutput, error) {
	m.state.authCodeInput = params
	return m.authCode, m.err
}

func (m *mockDomainsClient) GetDomainDetail(ctx context.Context, params *route53domains.GetDomainDetailInput, optFns ...func(*route53domains.Options)) (*route53domains.GetDomainDetailOutput, error) {
	m.state.detailInput = params
	return m.detail, m.err
}

func (m *mockDomainsClient) TransferDomain(ctx context.Context, params *route53domains.TransferDomainInput, optFns ...func(*route53domains.Options)) (*route53domains.TransferDomainOutput, error) {
	m.state.transferInput = params
	return m.transfer, m.err
}

// assertError checks if an error is thrown when expected. It returns true if
// an error was expected.
func assertError(t *testing.T, expected, actual error) bool {
	if expected == nil {
		assert.NoError(t, actual)
		return false
	}
	if assert.Error(t, actual) {
		assert.Equal(t, expected.Error(), actual.Error())
	}
	return true
}
