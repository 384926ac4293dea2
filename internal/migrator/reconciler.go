/*
 * Reconciler - creation of the destination zone and application of the
 * change batch.
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
	"fmt"

	"route53-zone-migrator/internal/model"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// ZoneReconciler makes sure the destination zone exists and applies the
// change batch to it.
type ZoneReconciler struct {
	reader *ZoneReader
	dryRun bool
	// newCallerReference returns a fresh idempotency token for zone creation.
	newCallerReference func() string
}

// NewZoneReconciler creates a new ZoneReconciler.
func NewZoneReconciler(reader *ZoneReader, dryRun bool) *ZoneReconciler {
	return &ZoneReconciler{
		reader:             reader,
		dryRun:             dryRun,
		newCallerReference: uuid.NewString,
	}
}

// migratedComment returns the comment of a zone created by the migration.
func migratedComment(sourceProfile string) string {
	return fmt.Sprintf("Migrated from %s", sourceProfile)
}

// EnsureDestinationZone returns the destination zone named zoneName,
// creating it as a public zone if it does not exist. The second return value
// is true when the zone was created. A failed lookup is logged and handled
// as a missing zone; a failed creation is returned.
func (r ZoneReconciler) EnsureDestinationZone(ctx context.Context, dest *Account, zoneName, sourceProfile string) (model.HostedZone, bool, error) {
	existing, err := r.reader.FindZoneByName(ctx, dest, zoneName)
	if err != nil {
		log.WithFields(log.Fields{
			"profile": dest.Profile,
			"zone":    zoneName,
			"code":    model.ErrorCode(err),
		}).Warn("Cannot look up the destination zone, assuming it does not exist")
		existing = nil
	}
	if existing != nil {
		log.Infof("Zone [%s] already exists in [%s] with ID [%s]", existing.Name, dest.Profile, existing.ID)
		return *existing, false, nil
	}

	opts := model.CreateZoneOpts{
		Name:            zoneName,
		CallerReference: r.newCallerReference(),
		Comment:         migratedComment(sourceProfile),
		Private:         false,
	}
	log.WithFields(log.Fields{
		"name":            opts.Name,
		"callerReference": opts.CallerReference,
		"comment":         opts.Comment,
	}).Debug("Creating hosted zone")
	if r.dryRun {
		log.Infof("Dry run: zone [%s] would be created in [%s]", zoneName, dest.Profile)
		return model.HostedZone{Name: model.CanonicalName(zoneName)}, true, nil
	}

	zone, err := dest.DNS.CreateHostedZone(ctx, opts)
	if err != nil {
		return model.HostedZone{}, false, fmt.Errorf("cannot create zone %s: %w", zoneName, err)
	}
	zone.ID = model.StripZoneID(zone.ID)
	zone.Name = model.CanonicalName(zone.Name)
	log.Infof("Created zone [%s] with ID [%s] in [%s]", zone.Name, zone.ID, dest.Profile)
	return zone, true, nil
}

// ApplyChangeBatch submits the batch to the destination zone as a single
// atomic change. The provider applies all the entries or none of them. An
// empty batch is not submitted.
func (r ZoneReconciler) ApplyChangeBatch(ctx context.Context, dest *Account, zoneID string, batch model.ChangeBatch) (model.ChangeInfo, error) {
	if batch.Empty() {
		log.Info("No records to migrate, change batch not submitted")
		return model.ChangeInfo{}, nil
	}

	for _, e := range batch.Entries {
		log.WithFields(getEntryLogFields(e)).Debug("Adding change batch entry")
	}
	log.Infof("Submitting %d record sets to zone [%s]", len(batch.Entries), zoneID)
	if r.dryRun {
		return model.ChangeInfo{}, nil
	}

	info, err := dest.DNS.ChangeResourceRecordSets(ctx, model.StripZoneID(zoneID), batch)
	if err != nil {
		return model.ChangeInfo{}, fmt.Errorf("cannot apply change batch to zone %s: %w", zoneID, err)
	}
	log.Infof("Change [%s] submitted with status [%s]", info.ID, info.Status)
	return info, nil
}

// getEntryLogFields returns the log fields describing a change entry.
func getEntryLogFields(e model.ChangeEntry) log.Fields {
	fields := log.Fields{
		"action": e.Action,
		"name":   e.RecordSet.Name,
		"type":   e.RecordSet.Type,
	}
	if e.RecordSet.SetIdentifier != "" {
		fields["setIdentifier"] = e.RecordSet.SetIdentifier
	}
	if e.RecordSet.IsAlias() {
		fields["alias"] = e.RecordSet.AliasTarget.DNSName
	} else {
		fields["ttl"] = e.RecordSet.TTL
		fields["values"] = e.RecordSet.Values
	}
	return fields
}
