/*
 * Domains - This handles API calls towards the Route 53 Domains API.
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
	"time"

	"route53-zone-migrator/internal/metrics"
	"route53-zone-migrator/internal/model"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/route53domains"
)

const (
	// DomainsRegion is the only region serving the Route 53 Domains API.
	DomainsRegion = "us-east-1"

	actRetrieveDomainAuthCode = "RetrieveDomainAuthCode"
	actGetDomainDetail        = "GetDomainDetail"
	actTransferDomain         = "TransferDomain"
)

// DomainsClient is the subset of the Route 53 Domains SDK client used by the
// migration.
type DomainsClient interface {
	RetrieveDomainAuthCode(ctx context.Context, params *route53domains.RetrieveDomainAuthCodeInput, optFns ...func(*route53domains.Options)) (*route53domains.RetrieveDomainAuthCodeOutput, error)
	GetDomainDetail(ctx context.Context, params *route53domains.GetDomainDetailInput, optFns ...func(*route53domains.Options)) (*route53domains.GetDomainDetailOutput, error)
	TransferDomain(ctx context.Context, params *route53domains.TransferDomainInput, optFns ...func(*route53domains.Options)) (*route53domains.TransferDomainOutput, error)
}

// Domains is the registrar API of one account.
type Domains struct {
	client  DomainsClient
	metrics *metrics.OpenMetrics
}

// NewDomains returns a new registrar API wrapping the SDK client.
func NewDomains(client DomainsClient) *Domains {
	return &Domains{
		client:  client,
		metrics: metrics.GetOpenMetricsInstance(),
	}
}

// RetrieveDomainAuthCode returns the transfer authorization code.
func (d Domains) RetrieveDomainAuthCode(ctx context.Context, domainName string) (string, error) {
	start := time.Now()
	out, err := d.client.RetrieveDomainAuthCode(ctx, &route53domains.RetrieveDomainAuthCodeInput{
		DomainName: aws.String(domainName),
	})
	observe(d.metrics, actRetrieveDomainAuthCode, start, err)
	if err != nil {
		return "", translateError(actRetrieveDomainAuthCode, err)
	}
	return aws.ToString(out.AuthCode), nil
}

// GetDomainContacts returns the admin, registrant and tech contacts.
func (d Domains) GetDomainContacts(ctx context.Context, domainName string) (model.ContactSet, error) {
	start := time.Now()
	out, err := d.client.GetDomainDetail(ctx, &route53domains.GetDomainDetailInput{
		DomainName: aws.String(domainName),
	})
	observe(d.metrics, actGetDomainDetail, start, err)
	if err != nil {
		return model.ContactSet{}, translateError(actGetDomainDetail, err)
	}
	return model.ContactSet{
		Admin:      getContact(out.AdminContact),
		Registrant: getContact(out.RegistrantContact),
		Tech:       getContact(out.TechContact),
	}, nil
}

// TransferDomain submits the transfer of a domain to this account.
func (d Domains) TransferDomain(ctx context.Context, request model.DomainTransferRequest) (model.TransferTicket, error) {
	input := &route53domains.TransferDomainInput{
		DomainName:                      aws.String(request.DomainName),
		DurationInYears:                 aws.Int32(int32(request.DurationInYears)),
		Nameservers:                     getAWSNameservers(request.NameServers),
		AuthCode:                        aws.String(request.AuthCode),
		AutoRenew:                       aws.Bool(request.AutoRenew),
		AdminContact:                    getAWSContact(request.Contacts.Admin),
		RegistrantContact:               getAWSContact(request.Contacts.Registrant),
		TechContact:                     getAWSContact(request.Contacts.Tech),
		PrivacyProtectAdminContact:      aws.Bool(request.PrivacyProtect.Admin),
		PrivacyProtectRegistrantContact: aws.Bool(request.PrivacyProtect.Registrant),
		PrivacyProtectTechContact:       aws.Bool(request.PrivacyProtect.Tech),
	}

	start := time.Now()
	out, err := d.client.TransferDomain(ctx, input)
	observe(d.metrics, actTransferDomain, start, err)
	if err != nil {
		return model.TransferTicket{}, translateError(actTransferDomain, err)
	}
	return model.TransferTicket{OperationID: aws.ToString(out.OperationId)}, nil
}
