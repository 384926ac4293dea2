/*
 * Configuration - migration configuration
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
	"fmt"

	"github.com/caarlos0/env/v8"
)

const (
	// Route 53 returns at most 100 zones per page.
	maxZonePageSize = 100
	// Route 53 returns at most 300 record sets per page.
	maxRecordPageSize = 300
)

// MatchPolicy selects how an existing destination zone is recognized.
type MatchPolicy string

const (
	// MatchExact requires the canonical zone names to be equal.
	MatchExact MatchPolicy = "exact"
	// MatchSubstring accepts any zone whose name contains the target name.
	// It reproduces the behavior of the first version of this tool and can
	// match unrelated zones ("notexample.com" for "example.com").
	MatchSubstring MatchPolicy = "substring"
)

// TransferMode selects how the registrar transfer question is answered.
type TransferMode string

const (
	TransferAsk TransferMode = "ask"
	TransferYes TransferMode = "yes"
	TransferNo  TransferMode = "no"
)

// Configuration contains the migration configuration.
type Configuration struct {
	// Preselected source profile
	SourceProfile string `env:"SOURCE_PROFILE"`
	// Preselected zone name
	ZoneName string `env:"ZONE_NAME"`
	// Preselected destination profile
	DestinationProfile string `env:"DESTINATION_PROFILE"`
	// Answer to the transfer question: ask, yes or no
	Transfer TransferMode `env:"TRANSFER" envDefault:"ask"`
	// Region used for the Route 53 client
	Region string `env:"AWS_REGION" envDefault:"us-east-1"`
	// Page size for zone and record listings
	BatchSize int `env:"BATCH_SIZE" envDefault:"100"`
	// Destination zone match policy: exact or substring
	MatchPolicy MatchPolicy `env:"ZONE_MATCH_POLICY" envDefault:"exact"`
	// If true, do not execute write actions on the API
	DryRun bool `env:"DRY_RUN" envDefault:"false"`
	// If set, a zonefile of the source zone is written here before migrating
	SnapshotDir string `env:"SNAPSHOT_DIR"`
	// Enable debugging logs
	Debug bool `env:"DEBUG" envDefault:"false"`
}

// NewConfiguration creates a new configuration object.
func NewConfiguration() (*Configuration, error) {
	cfg := &Configuration{}

	// Populate with values from environment.
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the configuration values.
func (c Configuration) Validate() error {
	if c.BatchSize <= 0 {
		return fmt.Errorf("invalid batch size %d", c.BatchSize)
	}
	switch c.MatchPolicy {
	case MatchExact, MatchSubstring:
	default:
		return fmt.Errorf("invalid zone match policy %q", c.MatchPolicy)
	}
	switch c.Transfer {
	case TransferAsk, TransferYes, TransferNo:
	default:
		return fmt.Errorf("invalid transfer mode %q", c.Transfer)
	}
	return nil
}

// zonePageSize returns the page size for zone listings.
func (c Configuration) zonePageSize() int {
	return min(c.BatchSize, maxZonePageSize)
}

// recordPageSize returns the page size for record set listings.
func (c Configuration) recordPageSize() int {
	return min(c.BatchSize, maxRecordPageSize)
}
