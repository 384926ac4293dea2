/*
 * Convert - conversion between the SDK types and the model.
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
	"route53-zone-migrator/internal/model"

	"github.com/aws/aws-sdk-go-v2/aws"
	r53types "github.com/aws/aws-sdk-go-v2/service/route53/types"
	domtypes "github.com/aws/aws-sdk-go-v2/service/route53domains/types"
)

// optString returns nil for an empty string.
func optString(s string) *string {
	if s == "" {
		return nil
	}
	return aws.String(s)
}

// optInt32 returns nil for non-positive values.
func optInt32(n int) *int32 {
	if n <= 0 {
		return nil
	}
	return aws.Int32(int32(n))
}

// getHostedZone converts an SDK hosted zone to a model one.
func getHostedZone(z r53types.HostedZone) model.HostedZone {
	zone := model.HostedZone{
		Name:        model.CanonicalName(aws.ToString(z.Name)),
		ID:          model.StripZoneID(aws.ToString(z.Id)),
		RecordCount: aws.ToInt64(z.ResourceRecordSetCount),
	}
	if z.Config != nil {
		zone.Private = z.Config.PrivateZone
	}
	return zone
}

// getHostedZones converts an array of SDK hosted zones.
func getHostedZones(zones []r53types.HostedZone) []model.HostedZone {
	mZones := make([]model.HostedZone, len(zones))
	for i, z := range zones {
		mZones[i] = getHostedZone(z)
	}
	return mZones
}

// getRoutingPolicy extracts the routing settings of a record set, returning
// nil when there are none.
func getRoutingPolicy(rs r53types.ResourceRecordSet) *model.RoutingPolicy {
	if rs.Weight == nil && rs.Region == "" && rs.Failover == "" &&
		rs.MultiValueAnswer == nil && rs.HealthCheckId == nil &&
		rs.GeoLocation == nil && rs.GeoProximityLocation == nil && rs.CidrRoutingConfig == nil {
		return nil
	}
	policy := &model.RoutingPolicy{
		Weight:           rs.Weight,
		Region:           string(rs.Region),
		Failover:         string(rs.Failover),
		MultiValueAnswer: rs.MultiValueAnswer,
		HealthCheckID:    aws.ToString(rs.HealthCheckId),
	}
	if g := rs.GeoLocation; g != nil {
		policy.GeoLocation = &model.GeoLocation{
			ContinentCode:   aws.ToString(g.ContinentCode),
			CountryCode:     aws.ToString(g.CountryCode),
			SubdivisionCode: aws.ToString(g.SubdivisionCode),
		}
	}
	if g := rs.GeoProximityLocation; g != nil {
		policy.GeoProximity = &model.GeoProximity{
			AWSRegion:      aws.ToString(g.AWSRegion),
			LocalZoneGroup: aws.ToString(g.LocalZoneGroup),
			Bias:           g.Bias,
		}
		if g.Coordinates != nil {
			policy.GeoProximity.Latitude = aws.ToString(g.Coordinates.Latitude)
			policy.GeoProximity.Longitude = aws.ToString(g.Coordinates.Longitude)
		}
	}
	if c := rs.CidrRoutingConfig; c != nil {
		policy.CidrRouting = &model.CidrRouting{
			CollectionID: aws.ToString(c.CollectionId),
			LocationName: aws.ToString(c.LocationName),
		}
	}
	return policy
}

// getAWSRoutingPolicy sets the routing settings of p on recordSet.
func getAWSRoutingPolicy(recordSet *r53types.ResourceRecordSet, p model.RoutingPolicy) {
	recordSet.Weight = p.Weight
	recordSet.Region = r53types.ResourceRecordSetRegion(p.Region)
	recordSet.Failover = r53types.ResourceRecordSetFailover(p.Failover)
	recordSet.MultiValueAnswer = p.MultiValueAnswer
	recordSet.HealthCheckId = optString(p.HealthCheckID)
	if g := p.GeoLocation; g != nil {
		recordSet.GeoLocation = &r53types.GeoLocation{
			ContinentCode:   optString(g.ContinentCode),
			CountryCode:     optString(g.CountryCode),
			SubdivisionCode: optString(g.SubdivisionCode),
		}
	}
	if g := p.GeoProximity; g != nil {
		location := &r53types.GeoProximityLocation{
			AWSRegion:      optString(g.AWSRegion),
			LocalZoneGroup: optString(g.LocalZoneGroup),
			Bias:           g.Bias,
		}
		if g.Latitude != "" || g.Longitude != "" {
			location.Coordinates = &r53types.Coordinates{
				Latitude:  aws.String(g.Latitude),
				Longitude: aws.String(g.Longitude),
			}
		}
		recordSet.GeoProximityLocation = location
	}
	if c := p.CidrRouting; c != nil {
		recordSet.CidrRoutingConfig = &r53types.CidrRoutingConfig{
			CollectionId: aws.String(c.CollectionID),
			LocationName: aws.String(c.LocationName),
		}
	}
}

// getRecordSet converts an SDK record set to a model one. Names are kept as
// returned, escapes included.
func getRecordSet(rs r53types.ResourceRecordSet) model.RecordSet {
	recordSet := model.RecordSet{
		Name:          aws.ToString(rs.Name),
		Type:          model.RecordType(rs.Type),
		TTL:           aws.ToInt64(rs.TTL),
		SetIdentifier: aws.ToString(rs.SetIdentifier),
		Routing:       getRoutingPolicy(rs),
	}
	if rs.AliasTarget != nil {
		recordSet.AliasTarget = &model.AliasTarget{
			DNSName:              aws.ToString(rs.AliasTarget.DNSName),
			HostedZoneID:         aws.ToString(rs.AliasTarget.HostedZoneId),
			EvaluateTargetHealth: rs.AliasTarget.EvaluateTargetHealth,
		}
		return recordSet
	}
	recordSet.Values = make([]string, 0, len(rs.ResourceRecords))
	for _, r := range rs.ResourceRecords {
		recordSet.Values = append(recordSet.Values, aws.ToString(r.Value))
	}
	return recordSet
}

// getRecordSets converts an array of SDK record sets.
func getRecordSets(recordSets []r53types.ResourceRecordSet) []model.RecordSet {
	mRecordSets := make([]model.RecordSet, len(recordSets))
	for i, rs := range recordSets {
		mRecordSets[i] = getRecordSet(rs)
	}
	return mRecordSets
}

// getAWSRecordSet converts a model record set to an SDK one.
func getAWSRecordSet(rs model.RecordSet) *r53types.ResourceRecordSet {
	recordSet := &r53types.ResourceRecordSet{
		Name:          aws.String(rs.Name),
		Type:          r53types.RRType(rs.Type),
		SetIdentifier: optString(rs.SetIdentifier),
	}
	if rs.Routing != nil {
		getAWSRoutingPolicy(recordSet, *rs.Routing)
	}
	if rs.IsAlias() {
		recordSet.AliasTarget = &r53types.AliasTarget{
			DNSName:              aws.String(rs.AliasTarget.DNSName),
			HostedZoneId:         aws.String(rs.AliasTarget.HostedZoneID),
			EvaluateTargetHealth: rs.AliasTarget.EvaluateTargetHealth,
		}
		return recordSet
	}
	recordSet.TTL = aws.Int64(rs.TTL)
	recordSet.ResourceRecords = make([]r53types.ResourceRecord, len(rs.Values))
	for i, v := range rs.Values {
		recordSet.ResourceRecords[i] = r53types.ResourceRecord{Value: aws.String(v)}
	}
	return recordSet
}

// getAWSChangeBatch converts a model change batch to an SDK one.
func getAWSChangeBatch(batch model.ChangeBatch) *r53types.ChangeBatch {
	changes := make([]r53types.Change, len(batch.Entries))
	for i, e := range batch.Entries {
		changes[i] = r53types.Change{
			Action:            r53types.ChangeAction(e.Action),
			ResourceRecordSet: getAWSRecordSet(e.RecordSet),
		}
	}
	return &r53types.ChangeBatch{
		Comment: optString(batch.Comment),
		Changes: changes,
	}
}

// getChangeInfo converts the SDK change info.
func getChangeInfo(info *r53types.ChangeInfo) model.ChangeInfo {
	if info == nil {
		return model.ChangeInfo{}
	}
	return model.ChangeInfo{
		ID:     aws.ToString(info.Id),
		Status: string(info.Status),
	}
}

// getContact converts an SDK contact to a model one.
func getContact(c *domtypes.ContactDetail) model.Contact {
	if c == nil {
		return model.Contact{}
	}
	contact := model.Contact{
		FirstName:        aws.ToString(c.FirstName),
		LastName:         aws.ToString(c.LastName),
		ContactType:      string(c.ContactType),
		OrganizationName: aws.ToString(c.OrganizationName),
		AddressLine1:     aws.ToString(c.AddressLine1),
		AddressLine2:     aws.ToString(c.AddressLine2),
		City:             aws.ToString(c.City),
		State:            aws.ToString(c.State),
		CountryCode:      string(c.CountryCode),
		ZipCode:          aws.ToString(c.ZipCode),
		PhoneNumber:      aws.ToString(c.PhoneNumber),
		Email:            aws.ToString(c.Email),
		Fax:              aws.ToString(c.Fax),
	}
	for _, p := range c.ExtraParams {
		contact.ExtraParams = append(contact.ExtraParams, model.ExtraParam{
			Name:  string(p.Name),
			Value: aws.ToString(p.Value),
		})
	}
	return contact
}

// getAWSContact converts a model contact to an SDK one.
func getAWSContact(c model.Contact) *domtypes.ContactDetail {
	contact := &domtypes.ContactDetail{
		FirstName:        optString(c.FirstName),
		LastName:         optString(c.LastName),
		ContactType:      domtypes.ContactType(c.ContactType),
		OrganizationName: optString(c.OrganizationName),
		AddressLine1:     optString(c.AddressLine1),
		AddressLine2:     optString(c.AddressLine2),
		City:             optString(c.City),
		State:            optString(c.State),
		CountryCode:      domtypes.CountryCode(c.CountryCode),
		ZipCode:          optString(c.ZipCode),
		PhoneNumber:      optString(c.PhoneNumber),
		Email:            optString(c.Email),
		Fax:              optString(c.Fax),
	}
	for _, p := range c.ExtraParams {
		contact.ExtraParams = append(contact.ExtraParams, domtypes.ExtraParam{
			Name:  domtypes.ExtraParamName(p.Name),
			Value: aws.String(p.Value),
		})
	}
	return contact
}

// getAWSNameservers converts the name servers of a transfer request.
func getAWSNameservers(nameServers []model.NameServer) []domtypes.Nameserver {
	result := make([]domtypes.Nameserver, len(nameServers))
	for i, ns := range nameServers {
		glue := ns.GlueIPs
		if glue == nil {
			glue = []string{}
		}
		result[i] = domtypes.Nameserver{
			Name:    aws.String(ns.Hostname),
			GlueIps: glue,
		}
	}
	return result
}
