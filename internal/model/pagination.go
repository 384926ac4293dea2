/*
 * Pagination - options and pages for paged listings.
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

// ZoneListOpts contains the options for zone listing.
type ZoneListOpts struct {
	Marker   string
	MaxItems int
}

// ZonePage is a page of hosted zones. NextMarker is empty on the last page.
type ZonePage struct {
	Zones      []HostedZone
	NextMarker string
}

// ZoneByNameOpts contains the options for listing zones starting from a
// given name.
type ZoneByNameOpts struct {
	DNSName  string
	MaxItems int
}

// RecordCursor is the position of a record set inside a zone listing.
type RecordCursor struct {
	Name       string
	Type       RecordType
	Identifier string
}

// RecordListOpts contains the options for record set listing. A nil Start
// begins at the first record set of the zone.
type RecordListOpts struct {
	ZoneID   string
	Start    *RecordCursor
	MaxItems int
}

// RecordSetPage is a page of record sets. Next is nil on the last page.
type RecordSetPage struct {
	RecordSets []RecordSet
	Next       *RecordCursor
}

// CreateZoneOpts contains the options for creating a hosted zone.
type CreateZoneOpts struct {
	Name            string
	CallerReference string
	Comment         string
	Private         bool
}
