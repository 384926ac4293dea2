/*
 * Errors - translation of AWS SDK errors.
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

	"route53-zone-migrator/internal/model"

	"github.com/aws/smithy-go"
)

// translateError converts an SDK error into a *model.APIError. Errors that
// do not carry a service error code get model.CodeUnknown.
func translateError(operation string, err error) error {
	if err == nil {
		return nil
	}
	var apiErr *model.APIError
	if errors.As(err, &apiErr) {
		return err
	}
	result := &model.APIError{
		Operation: operation,
		Code:      model.CodeUnknown,
		Message:   err.Error(),
		Err:       err,
	}
	var ae smithy.APIError
	if errors.As(err, &ae) {
		result.Code = ae.ErrorCode()
		result.Message = ae.ErrorMessage()
	}
	return result
}
