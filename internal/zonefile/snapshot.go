/*
 * Snapshot - backup of the source zone before migration.
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
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"route53-zone-migrator/internal/model"

	log "github.com/sirupsen/logrus"
)

// Snapshotter writes zonefile backups into a directory.
type Snapshotter struct {
	dir string
}

// NewSnapshotter creates a new Snapshotter writing into dir.
func NewSnapshotter(dir string) *Snapshotter {
	return &Snapshotter{dir: dir}
}

// Snapshot writes the record sets of the zone to <dir>/<zone>.zone and
// returns the path of the file. An existing file is overwritten.
func (s Snapshotter) Snapshot(zone model.HostedZone, recordSets []model.RecordSet) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", err
	}

	z := FromRecordSets(zone.Name, recordSets)
	if n := len(z.Comments()); n > 0 {
		log.Warnf("%d record sets of [%s] are kept as comments in the snapshot", n, zone.Name)
	}

	path := filepath.Join(s.dir, fileName(zone.Name))
	if err := os.WriteFile(path, []byte(z.Export()), 0o644); err != nil {
		return "", err
	}
	log.Debugf("Wrote %d records to [%s]", z.Len(), path)
	return path, nil
}

// fileName returns the snapshot file name of a zone.
func fileName(zoneName string) string {
	name := strings.ToLower(model.CanonicalName(zoneName))
	name = strings.ReplaceAll(name, string(filepath.Separator), "_")
	return fmt.Sprintf("%s.zone", name)
}
