/*
 * Changes - translation of source record sets into a change batch.
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
	"route53-zone-migrator/internal/model"
)

// ChangeBatchComment is the comment attached to every migration batch.
const ChangeBatchComment = "Migrated using aws dns migrator"

// isZoneInfrastructure returns true for the record types owned by the zone
// itself, which the destination zone generates on its own.
func isZoneInfrastructure(t model.RecordType) bool {
	return t == model.RecordTypeNS || t == model.RecordTypeSOA
}

// BuildChangeBatch transforms the record sets of a source zone into a batch
// of CREATE entries for the destination zone. NS and SOA record sets are
// never included, subdomain delegations included. The source TTL is
// discarded and every entry gets model.MigratedTTL; alias record sets keep
// their target and carry no TTL. Value order is preserved.
func BuildChangeBatch(recordSets []model.RecordSet) model.ChangeBatch {
	batch := model.ChangeBatch{
		Comment: ChangeBatchComment,
		Entries: []model.ChangeEntry{},
	}

	for _, rs := range recordSets {
		if isZoneInfrastructure(rs.Type) {
			continue
		}
		batch.Entries = append(batch.Entries, model.ChangeEntry{
			Action:    model.ChangeActionCreate,
			RecordSet: migratedRecordSet(rs),
		})
	}

	return batch
}

// migratedRecordSet returns a copy of rs ready for the destination zone.
func migratedRecordSet(rs model.RecordSet) model.RecordSet {
	migrated := model.RecordSet{
		Name:          rs.Name,
		Type:          rs.Type,
		SetIdentifier: rs.SetIdentifier,
	}
	if rs.Routing != nil {
		migrated.Routing = copyRoutingPolicy(*rs.Routing)
	}
	if rs.IsAlias() {
		target := *rs.AliasTarget
		migrated.AliasTarget = &target
		return migrated
	}
	migrated.TTL = model.MigratedTTL
	migrated.Values = make([]string, len(rs.Values))
	copy(migrated.Values, rs.Values)
	return migrated
}

// copyRoutingPolicy returns a deep copy of p.
func copyRoutingPolicy(p model.RoutingPolicy) *model.RoutingPolicy {
	if p.GeoLocation != nil {
		geo := *p.GeoLocation
		p.GeoLocation = &geo
	}
	if p.GeoProximity != nil {
		prox := *p.GeoProximity
		p.GeoProximity = &prox
	}
	if p.CidrRouting != nil {
		cidr := *p.CidrRouting
		p.CidrRouting = &cidr
	}
	return &p
}

// countAccountScoped returns the number of entries whose routing refers to
// a health check or a CIDR collection of the source account.
func countAccountScoped(batch model.ChangeBatch) int {
	n := 0
	for _, e := range batch.Entries {
		if p := e.RecordSet.Routing; p != nil && p.AccountScoped() {
			n++
		}
	}
	return n
}

// countSkipped returns the number of record sets left out of a batch.
func countSkipped(recordSets []model.RecordSet) int {
	skipped := 0
	for _, rs := range recordSets {
		if isZoneInfrastructure(rs.Type) {
			skipped++
		}
	}
	return skipped
}

// countAliases returns the number of alias entries in a batch.
func countAliases(batch model.ChangeBatch) int {
	aliases := 0
	for _, e := range batch.Entries {
		if e.RecordSet.IsAlias() {
			aliases++
		}
	}
	return aliases
}
