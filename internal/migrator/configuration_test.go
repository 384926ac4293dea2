/*
 * Configuration - unit tests.
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
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Test_NewConfiguration tests NewConfiguration().
func Test_NewConfiguration(t *testing.T) {
	type testCase struct {
		name     string
		env      map[string]string
		expected struct {
			cfg *Configuration
			err error
		}
	}

	run := func(t *testing.T, tc testCase) {
		exp := tc.expected
		for k, v := range tc.env {
			t.Setenv(k, v)
		}
		actual, err := NewConfiguration()
		if !assertError(t, exp.err, err) {
			assert.Equal(t, exp.cfg, actual)
		}
	}

	testCases := []testCase{
		{
			name: "defaults",
			env: map[string]string{
				"AWS_REGION": "us-east-1",
			},
			expected: struct {
				cfg *Configuration
				err error
			}{
				cfg: &Configuration{
					Transfer:    TransferAsk,
					Region:      "us-east-1",
					BatchSize:   100,
					MatchPolicy: MatchExact,
				},
			},
		},
		{
			name: "all values set",
			env: map[string]string{
				"SOURCE_PROFILE":      "old",
				"ZONE_NAME":           "example.com",
				"DESTINATION_PROFILE": "new",
				"TRANSFER":            "no",
				"AWS_REGION":          "eu-west-1",
				"BATCH_SIZE":          "50",
				"ZONE_MATCH_POLICY":   "substring",
				"DRY_RUN":             "true",
				"SNAPSHOT_DIR":        "/tmp/snapshots",
				"DEBUG":               "true",
			},
			expected: struct {
				cfg *Configuration
				err error
			}{
				cfg: &Configuration{
					SourceProfile:      "old",
					ZoneName:           "example.com",
					DestinationProfile: "new",
					Transfer:           TransferNo,
					Region:             "eu-west-1",
					BatchSize:          50,
					MatchPolicy:        MatchSubstring,
					DryRun:             true,
					SnapshotDir:        "/tmp/snapshots",
					Debug:              true,
				},
			},
		},
		{
			name: "invalid batch size",
			env: map[string]string{
				"BATCH_SIZE": "many",
			},
			expected: struct {
				cfg *Configuration
				err error
			}{
				err: errors.New("BatchSize"),
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			run(t, tc)
		})
	}
}

// Test_Configuration_Validate tests Configuration.Validate().
func Test_Configuration_Validate(t *testing.T) {
	type testCase struct {
		name     string
		input    func(c *Configuration)
		expected error
	}

	run := func(t *testing.T, tc testCase) {
		cfg := testConfiguration()
		tc.input(&cfg)
		assertError(t, tc.expected, cfg.Validate())
	}

	testCases := []testCase{
		{
			name:  "valid",
			input: func(c *Configuration) {},
		},
		{
			name:     "zero batch size",
			input:    func(c *Configuration) { c.BatchSize = 0 },
			expected: errors.New("invalid batch size 0"),
		},
		{
			name:     "unknown match policy",
			input:    func(c *Configuration) { c.MatchPolicy = "fuzzy" },
			expected: errors.New(`invalid zone match policy "fuzzy"`),
		},
		{
			name:     "unknown transfer mode",
			input:    func(c *Configuration) { c.Transfer = "maybe" },
			expected: errors.New(`invalid transfer mode "maybe"`),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			run(t, tc)
		})
	}
}

// Test_Configuration_pageSizes tests the page size limits.
func Test_Configuration_pageSizes(t *testing.T) {
	cfg := testConfiguration()
	cfg.BatchSize = 500
	assert.Equal(t, 100, cfg.zonePageSize())
	assert.Equal(t, 300, cfg.recordPageSize())

	cfg.BatchSize = 20
	assert.Equal(t, 20, cfg.zonePageSize())
	assert.Equal(t, 20, cfg.recordPageSize())
}
