/*
 * Route53 - This handles API calls towards the Route 53 API.
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
	"github.com/aws/aws-sdk-go-v2/service/route53"
	r53types "github.com/aws/aws-sdk-go-v2/service/route53/types"
)

const (
	// Action constants used for metrics and errors.
	actListHostedZones        = "ListHostedZones"
	actListHostedZonesByName  = "ListHostedZonesByName"
	actListResourceRecordSets = "ListResourceRecordSets"
	actCreateHostedZone       = "CreateHostedZone"
	actChangeResourceRecords  = "ChangeResourceRecordSets"
)

// Route53Client is the subset of the Route 53 SDK client used by the
// migration.
type Route53Client interface {
	ListHostedZones(ctx context.Context, params *route53.ListHostedZonesInput, optFns ...func(*route53.Options)) (*route53.ListHostedZonesOutput, error)
	ListHostedZonesByName(ctx context.Context, params *route53.ListHostedZonesByNameInput, optFns ...func(*route53.Options)) (*route53.ListHostedZonesByNameOutput, error)
	ListResourceRecordSets(ctx context.Context, params *route53.ListResourceRecordSetsInput, optFns ...func(*route53.Options)) (*route53.ListResourceRecordSetsOutput, error)
	CreateHostedZone(ctx context.Context, params *route53.CreateHostedZoneInput, optFns ...func(*route53.Options)) (*route53.CreateHostedZoneOutput, error)
	ChangeResourceRecordSets(ctx context.Context, params *route53.ChangeResourceRecordSetsInput, optFns ...func(*route53.Options)) (*route53.ChangeResourceRecordSetsOutput, error)
}

// Route53 is the DNS hosting API of one account.
type Route53 struct {
	client  Route53Client
	metrics *metrics.OpenMetrics
}

// NewRoute53 returns a new Route 53 API wrapping the SDK client.
func NewRoute53(client Route53Client) *Route53 {
	return &Route53{
		client:  client,
		metrics: metrics.GetOpenMetricsInstance(),
	}
}

// observe records the outcome and the delay of an API call.
func observe(m *metrics.OpenMetrics, action string, start time.Time, err error) {
	if err != nil {
		m.IncFailedApiCallsTotal(action)
	} else {
		m.IncSuccessfulApiCallsTotal(action)
	}
	m.AddApiDelayHist(action, time.Since(start).Milliseconds())
}

// ListHostedZones returns one page of hosted zones.
func (r Route53) ListHostedZones(ctx context.Context, opts model.ZoneListOpts) (model.ZonePage, error) {
	start := time.Now()
	out, err := r.client.ListHostedZones(ctx, &route53.ListHostedZonesInput{
		Marker:   optString(opts.Marker),
		MaxItems: optInt32(opts.MaxItems),
	})
	observe(r.metrics, actListHostedZones, start, err)
	if err != nil {
		return model.ZonePage{}, translateError(actListHostedZones, err)
	}

	page := model.ZonePage{Zones: getHostedZones(out.HostedZones)}
	if out.IsTruncated {
		page.NextMarker = aws.ToString(out.NextMarker)
	}
	return page, nil
}

// ListHostedZonesByName returns one page of zones starting at opts.DNSName.
func (r Route53) ListHostedZonesByName(ctx context.Context, opts model.ZoneByNameOpts) ([]model.HostedZone, error) {
	start := time.Now()
	out, err := r.client.ListHostedZonesByName(ctx, &route53.ListHostedZonesByNameInput{
		DNSName:  optString(opts.DNSName),
		MaxItems: optInt32(opts.MaxItems),
	})
	observe(r.metrics, actListHostedZonesByName, start, err)
	if err != nil {
		return nil, translateError(actListHostedZonesByName, err)
	}
	return getHostedZones(out.HostedZones), nil
}

// ListResourceRecordSets returns one page of record sets of a zone.
func (r Route53) ListResourceRecordSets(ctx context.Context, opts model.RecordListOpts) (model.RecordSetPage, error) {
	input := &route53.ListResourceRecordSetsInput{
		HostedZoneId: aws.String(model.StripZoneID(opts.ZoneID)),
		MaxItems:     optInt32(opts.MaxItems),
	}
	if opts.Start != nil {
		input.StartRecordName = aws.String(opts.Start.Name)
		input.StartRecordType = r53types.RRType(opts.Start.Type)
		input.StartRecordIdentifier = optString(opts.Start.Identifier)
	}

	start := time.Now()
	out, err := r.client.ListResourceRecordSets(ctx, input)
	observe(r.metrics, actListResourceRecordSets, start, err)
	if err != nil {
		return model.RecordSetPage{}, translateError(actListResourceRecordSets, err)
	}

	page := model.RecordSetPage{RecordSets: getRecordSets(out.ResourceRecordSets)}
	if out.IsTruncated {
		page.Next = &model.RecordCursor{
			Name:       aws.ToString(out.NextRecordName),
			Type:       model.RecordType(out.NextRecordType),
			Identifier: aws.ToString(out.NextRecordIdentifier),
		}
	}
	return page, nil
}

// CreateHostedZone creates a new hosted zone.
func (r Route53) CreateHostedZone(ctx context.Context, opts model.CreateZoneOpts) (model.HostedZone, error) {
	start := time.Now()
	out, err := r.client.CreateHostedZone(ctx, &route53.CreateHostedZoneInput{
		Name:            aws.String(opts.Name),
		CallerReference: aws.String(opts.CallerReference),
		HostedZoneConfig: &r53types.HostedZoneConfig{
			Comment:     optString(opts.Comment),
			PrivateZone: opts.Private,
		},
	})
	observe(r.metrics, actCreateHostedZone, start, err)
	if err != nil {
		return model.HostedZone{}, translateError(actCreateHostedZone, err)
	}
	if out.HostedZone == nil {
		return model.HostedZone{Name: model.CanonicalName(opts.Name)}, nil
	}
	return getHostedZone(*out.HostedZone), nil
}

// ChangeResourceRecordSets submits a change batch to a zone.
func (r Route53) ChangeResourceRecordSets(ctx context.Context, zoneID string, batch model.ChangeBatch) (model.ChangeInfo, error) {
	start := time.Now()
	out, err := r.client.ChangeResourceRecordSets(ctx, &route53.ChangeResourceRecordSetsInput{
		HostedZoneId: aws.String(model.StripZoneID(zoneID)),
		ChangeBatch:  getAWSChangeBatch(batch),
	})
	observe(r.metrics, actChangeResourceRecords, start, err)
	if err != nil {
		return model.ChangeInfo{}, translateError(actChangeResourceRecords, err)
	}
	return getChangeInfo(out.ChangeInfo), nil
}
