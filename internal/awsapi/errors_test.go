/*
 * Errors - unit tests.
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
	"errors"
	"fmt"
	"testing"

	"route53-zone-migrator/internal/model"

	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
)

// Test_translateError tests translateError().
func Test_translateError(t *testing.T) {
	type testCase struct {
		name     string
		input    error
		expected struct {
			code    string
			message string
		}
	}

	run := func(t *testing.T, tc testCase) {
		exp := tc.expected
		actual := translateError("CreateHostedZone", tc.input)
		var apiErr *model.APIError
		if assert.ErrorAs(t, actual, &apiErr) {
			assert.Equal(t, "CreateHostedZone", apiErr.Operation)
			assert.Equal(t, exp.code, apiErr.Code)
			assert.Equal(t, exp.message, apiErr.Message)
		}
		assert.ErrorIs(t, actual, tc.input)
	}

	testCases := []testCase{
		{
			name:  "service error",
			input: &smithy.GenericAPIError{Code: "HostedZoneAlreadyExists", Message: "zone exists"},
			expected: struct {
				code    string
				message string
			}{
				code:    "HostedZoneAlreadyExists",
				message: "zone exists",
			},
		},
		{
			name: "wrapped service error",
			input: &smithy.OperationError{
				ServiceID:     "Route 53",
				OperationName: "CreateHostedZone",
				Err:           &smithy.GenericAPIError{Code: "Throttling", Message: "rate exceeded"},
			},
			expected: struct {
				code    string
				message string
			}{
				code:    "Throttling",
				message: "rate exceeded",
			},
		},
		{
			name:  "transport error",
			input: errors.New("dial tcp: timeout"),
			expected: struct {
				code    string
				message string
			}{
				code:    model.CodeUnknown,
				message: "dial tcp: timeout",
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			run(t, tc)
		})
	}
}

// Test_translateError_passThrough tests that nil and translated errors are
// returned unchanged.
func Test_translateError_passThrough(t *testing.T) {
	assert.NoError(t, translateError("ListHostedZones", nil))

	original := fmt.Errorf("page 2: %w", &model.APIError{Operation: "ListHostedZones", Code: "Throttling"})
	assert.Same(t, original, translateError("ListHostedZones", original))
}
