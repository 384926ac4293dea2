/*
 * Connector - functions for reading zones and records from Route 53.
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
	"strings"

	"route53-zone-migrator/internal/model"

	log "github.com/sirupsen/logrus"
	"golang.org/x/net/idna"
)

// ZoneReader reads zone metadata and record sets from an account.
type ZoneReader struct {
	zonePageSize   int
	recordPageSize int
	matchPolicy    MatchPolicy
}

// NewZoneReader creates a new ZoneReader from the configuration.
func NewZoneReader(config Configuration) *ZoneReader {
	return &ZoneReader{
		zonePageSize:   config.zonePageSize(),
		recordPageSize: config.recordPageSize(),
		matchPolicy:    config.MatchPolicy,
	}
}

// ListZones fetches all the hosted zones of the account, following the
// pagination markers until the last page.
func (r ZoneReader) ListZones(ctx context.Context, account *Account) ([]model.HostedZone, error) {
	zones := []model.HostedZone{}
	opts := model.ZoneListOpts{MaxItems: r.zonePageSize}

	for {
		page, err := account.DNS.ListHostedZones(ctx, opts)
		if err != nil {
			return nil, err
		}
		zones = append(zones, page.Zones...)

		if page.NextMarker == "" {
			break
		}
		opts.Marker = page.NextMarker
	}

	log.Debugf("Found %d zones in account [%s]", len(zones), account.Profile)
	return zones, nil
}

// ListRecordSets fetches all the record sets of a zone. Every page is read
// before returning; a new call starts again from the first page.
func (r ZoneReader) ListRecordSets(ctx context.Context, account *Account, zoneID string) ([]model.RecordSet, error) {
	recordSets := []model.RecordSet{}
	opts := model.RecordListOpts{
		ZoneID:   model.StripZoneID(zoneID),
		MaxItems: r.recordPageSize,
	}

	for {
		page, err := account.DNS.ListResourceRecordSets(ctx, opts)
		if err != nil {
			return nil, err
		}
		recordSets = append(recordSets, page.RecordSets...)

		if page.Next == nil {
			break
		}
		opts.Start = page.Next
	}

	log.Debugf("Found %d record sets in zone [%s]", len(recordSets), opts.ZoneID)
	return recordSets, nil
}

// FindZoneByName looks for a public zone named name in the account. Under
// the exact policy the provider listing is positioned at name; under the
// substring policy every zone is listed from the beginning, since containing
// names may sort before the target. It returns nil if no zone matches.
func (r ZoneReader) FindZoneByName(ctx context.Context, account *Account, name string) (*model.HostedZone, error) {
	target := canonicalZoneName(name)

	var zones []model.HostedZone
	var err error
	if r.matchPolicy == MatchSubstring {
		zones, err = r.ListZones(ctx, account)
	} else {
		zones, err = account.DNS.ListHostedZonesByName(ctx, model.ZoneByNameOpts{
			DNSName:  model.FQDN(target),
			MaxItems: r.zonePageSize,
		})
	}
	if err != nil {
		return nil, err
	}
	return matchZone(zones, target, r.matchPolicy), nil
}

// NameServers returns the apex NS records of a zone as name servers without
// glue records.
func (r ZoneReader) NameServers(ctx context.Context, account *Account, zone model.HostedZone) ([]model.NameServer, error) {
	recordSets, err := r.ListRecordSets(ctx, account, zone.ID)
	if err != nil {
		return nil, err
	}

	apex := canonicalZoneName(zone.Name)
	nameServers := []model.NameServer{}
	for _, rs := range recordSets {
		if rs.Type != model.RecordTypeNS || canonicalZoneName(rs.Name) != apex {
			continue
		}
		for _, v := range rs.Values {
			nameServers = append(nameServers, model.NameServer{
				Hostname: v,
				GlueIPs:  []string{},
			})
		}
	}
	return nameServers, nil
}

// matchZone selects the zone matching target according to the policy.
// Private zones are never a destination.
func matchZone(zones []model.HostedZone, target string, policy MatchPolicy) *model.HostedZone {
	var found *model.HostedZone
	for i := range zones {
		zone := zones[i]
		name := canonicalZoneName(zone.Name)
		if zone.Private {
			if name == target {
				log.Warnf("Skipping private zone [%s] with ID [%s]", name, zone.ID)
			}
			continue
		}
		switch policy {
		case MatchSubstring:
			if !strings.Contains(name, target) {
				continue
			}
			if name != target {
				log.Warnf("Zone [%s] matched [%s] by substring only", name, target)
			}
			// The last matching zone wins.
			found = &zone
		default:
			if name == target {
				return &zone
			}
		}
	}
	return found
}

// canonicalZoneName returns the lowercase ASCII form of a zone name without
// the trailing dot.
func canonicalZoneName(name string) string {
	name = strings.ToLower(model.CanonicalName(name))
	ascii, err := idna.ToASCII(name)
	if err != nil {
		log.Warnf("Failed to convert zone name %q to its ASCII form: %v", name, err)
		return name
	}
	return ascii
}
