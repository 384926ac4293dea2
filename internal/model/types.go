/*
 * Types - data model shared by the migration components.
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

import "strings"

const (
	// zoneIDPrefix is the path prefix Route 53 puts in front of zone IDs.
	zoneIDPrefix = "/hostedzone/"
	// MigratedTTL is the TTL given to every migrated record set.
	MigratedTTL = int64(300)
)

// RecordType is a DNS record type as returned by the provider.
type RecordType string

const (
	RecordTypeA     RecordType = "A"
	RecordTypeAAAA  RecordType = "AAAA"
	RecordTypeCNAME RecordType = "CNAME"
	RecordTypeMX    RecordType = "MX"
	RecordTypeTXT   RecordType = "TXT"
	RecordTypeSRV   RecordType = "SRV"
	RecordTypeCAA   RecordType = "CAA"
	RecordTypeNS    RecordType = "NS"
	RecordTypeSOA   RecordType = "SOA"
)

// ChangeAction is the action of a change batch entry.
type ChangeAction string

const (
	ChangeActionCreate ChangeAction = "CREATE"
)

// HostedZone represents a DNS hosted zone.
type HostedZone struct {
	// Canonical name, without the trailing dot.
	Name string
	// Zone ID without the "/hostedzone/" prefix.
	ID          string
	Private     bool
	RecordCount int64
}

// AliasTarget is the target of an alias record set.
type AliasTarget struct {
	DNSName              string
	HostedZoneID         string
	EvaluateTargetHealth bool
}

// GeoLocation selects the record set by the location of the resolver.
type GeoLocation struct {
	ContinentCode   string
	CountryCode     string
	SubdivisionCode string
}

// GeoProximity selects the record set by distance from a region, a local
// zone group or coordinates, shifted by the bias.
type GeoProximity struct {
	AWSRegion      string
	LocalZoneGroup string
	Latitude       string
	Longitude      string
	Bias           *int32
}

// CidrRouting selects the record set by the client subnet. The collection
// belongs to the account that owns the zone.
type CidrRouting struct {
	CollectionID string
	LocationName string
}

// RoutingPolicy holds the routing settings of a record set that shares its
// name and type with others, told apart by the set identifier.
type RoutingPolicy struct {
	Weight           *int64
	Region           string
	Failover         string
	MultiValueAnswer *bool
	HealthCheckID    string
	GeoLocation      *GeoLocation
	GeoProximity     *GeoProximity
	CidrRouting      *CidrRouting
}

// AccountScoped returns true if the policy refers to a health check or a
// CIDR collection, which exist only in the account that created them.
func (p RoutingPolicy) AccountScoped() bool {
	return p.HealthCheckID != "" || p.CidrRouting != nil
}

// RecordSet represents all the values sharing one name and type in a zone.
type RecordSet struct {
	Name          string
	Type          RecordType
	TTL           int64
	Values        []string
	SetIdentifier string
	Routing       *RoutingPolicy
	AliasTarget   *AliasTarget
}

// IsAlias returns true if the record set points to an alias target instead
// of carrying values.
func (r RecordSet) IsAlias() bool {
	return r.AliasTarget != nil
}

// ChangeEntry is a single mutation inside a change batch.
type ChangeEntry struct {
	Action    ChangeAction
	RecordSet RecordSet
}

// ChangeBatch is a set of mutations applied atomically to a zone.
type ChangeBatch struct {
	Comment string
	Entries []ChangeEntry
}

// Empty returns true if the batch contains no entries.
func (b ChangeBatch) Empty() bool {
	return len(b.Entries) == 0
}

// ChangeInfo describes a submitted change batch.
type ChangeInfo struct {
	ID     string
	Status string
}

// NameServer is a name server entry for a registrar transfer. Glue IPs are
// never migrated, so GlueIPs is always empty in this tool.
type NameServer struct {
	Hostname string
	GlueIPs  []string
}

// TransferTicket identifies a submitted registrar transfer.
type TransferTicket struct {
	OperationID string
}

// StripZoneID removes the "/hostedzone/" prefix from a zone ID. Applying it
// more than once has no further effect.
func StripZoneID(id string) string {
	return strings.TrimPrefix(id, zoneIDPrefix)
}

// CanonicalName removes the trailing dot from a fully qualified domain name.
func CanonicalName(name string) string {
	return strings.TrimSuffix(name, ".")
}

// FQDN appends the trailing dot to a domain name if it is missing.
func FQDN(name string) string {
	if strings.HasSuffix(name, ".") {
		return name
	}
	return name + "."
}

// Hostnames returns the host names of the given name servers, in order.
func Hostnames(nameServers []NameServer) []string {
	hostnames := make([]string, 0, len(nameServers))
	for _, ns := range nameServers {
		hostnames = append(hostnames, ns.Hostname)
	}
	return hostnames
}
