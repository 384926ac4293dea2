/*
 * Database - zonefile rendering of a hosted zone.
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
package zonefile

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"route53-zone-migrator/internal/model"

	"github.com/miekg/dns"
	log "github.com/sirupsen/logrus"
)

// defaultTTL is used for $TTL when the zone has no SOA record.
const defaultTTL = 300

// rrset is an array of RRs
type rrset []dns.RR

// Zonefile stores the records of a zone in the order they were read, plus
// the record sets that have no zonefile representation (alias targets and
// values the parser rejected), which are kept as comments.
type Zonefile struct {
	zoneName string
	origin   string
	ttl      int
	records  rrset
	comments []string
}

// GetOrigin returns the zonefile origin.
func (z Zonefile) GetOrigin() string {
	return z.origin
}

// GetTTL returns the zonefile TTL.
func (z Zonefile) GetTTL() int {
	return z.ttl
}

// Len returns the number of resource records.
func (z Zonefile) Len() int {
	return len(z.records)
}

// Comments returns the record sets kept as comments.
func (z Zonefile) Comments() []string {
	return z.comments
}

// readRecords reads all the RR records from the file.
func readRecords(zp *dns.ZoneParser) (rrset, error) {
	records := make(rrset, 0)
	for rr, ok := zp.Next(); ok; rr, ok = zp.Next() {
		records = append(records, rr)
	}
	if err := zp.Err(); err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, errors.New("cannot read records")
	}
	return records, nil
}

// NewZonefile creates a new logical zonefile. The parameters are a reader
// that will be used as a source and the zone name.
func NewZonefile(r io.Reader, zn string, ttl int) (*Zonefile, error) {
	zn = model.CanonicalName(zn)
	origin := model.FQDN(zn)
	file := zn + ".zone"
	zp := dns.NewZoneParser(r, origin, file)
	records, err := readRecords(zp)
	if err != nil {
		return nil, fmt.Errorf("cannot import zone %s: %w", zn, err)
	}

	return &Zonefile{
		zoneName: zn,
		origin:   origin,
		records:  records,
		ttl:      ttl,
	}, nil
}

// FromRecordSets builds a zonefile from the record sets of a zone. Each
// value becomes one resource record with the TTL of its set.
func FromRecordSets(zoneName string, recordSets []model.RecordSet) *Zonefile {
	zn := model.CanonicalName(zoneName)
	z := &Zonefile{
		zoneName: zn,
		origin:   model.FQDN(zn),
		ttl:      defaultTTL,
		records:  make(rrset, 0),
		comments: make([]string, 0),
	}

	for _, rs := range recordSets {
		if rs.IsAlias() {
			z.comments = append(z.comments, aliasComment(rs))
			continue
		}
		for _, v := range rs.Values {
			rr, err := newRR(rs, v)
			if err != nil {
				log.WithFields(log.Fields{
					"name":  rs.Name,
					"type":  rs.Type,
					"value": v,
				}).Warnf("Cannot represent record in zonefile: %v", err)
				z.comments = append(z.comments, fmt.Sprintf("%s\t%d\tIN\t%s\t%s", rs.Name, rs.TTL, rs.Type, v))
				continue
			}
			if soa, ok := rr.(*dns.SOA); ok {
				z.ttl = int(soa.Minttl)
			}
			z.records = append(z.records, rr)
		}
	}
	return z
}

// newRR parses one value of a record set.
func newRR(rs model.RecordSet, value string) (dns.RR, error) {
	rr, err := dns.NewRR(fmt.Sprintf("%s %d IN %s %s", model.FQDN(rs.Name), rs.TTL, rs.Type, value))
	if err != nil {
		return nil, err
	}
	if rr == nil {
		return nil, errors.New("empty record")
	}
	return rr, nil
}

// aliasComment describes an alias record set.
func aliasComment(rs model.RecordSet) string {
	t := rs.AliasTarget
	comment := fmt.Sprintf("%s\tALIAS\t%s\t%s\tzone=%s\tevaluateTargetHealth=%t",
		rs.Name, rs.Type, t.DNSName, t.HostedZoneID, t.EvaluateTargetHealth)
	if rs.SetIdentifier != "" {
		comment += "\tsetIdentifier=" + rs.SetIdentifier
	}
	return comment
}

// buildFile builds a zonefile from a set of records.
func buildFile(recs rrset, comments []string, origin string, ttl int) string {
	var zoneBuilder strings.Builder
	fmt.Fprint(&zoneBuilder, ";; Created by route53-zone-migrator\n")
	fmt.Fprintf(&zoneBuilder, "$ORIGIN %s\n", origin)
	fmt.Fprintf(&zoneBuilder, "$TTL %d\n", ttl)
	for _, rr := range recs {
		fmt.Fprintf(&zoneBuilder, "%s\n", rr.String())
	}
	if len(comments) > 0 {
		fmt.Fprint(&zoneBuilder, "\n; Record sets without a zonefile representation\n")
		for _, c := range comments {
			fmt.Fprintf(&zoneBuilder, "; %s\n", c)
		}
	}
	return zoneBuilder.String()
}

// Export returns the zonefile text.
func (z Zonefile) Export() string {
	return buildFile(z.records, z.comments, z.origin, z.ttl)
}
