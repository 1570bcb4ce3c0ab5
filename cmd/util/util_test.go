/*
 * Copyright (c) DataOps Cloud, Inc.
 */

package util

import (
	"testing"

	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"
)

func message(v interface{}) *interface{} {
	return &v
}

func TestErrorFromResponseBody(t *testing.T) {
	exceptionClass := "com.linkedin.restli.server.RestLiServiceException"

	testCases := []struct {
		name       string
		errorBlock DhubStructuredError
		expected   string
	}{
		{
			name: "string message",
			errorBlock: DhubStructuredError{
				Message: message("Unable to authenticate inbound request"),
			},
			expected: "Unable to authenticate inbound request",
		},
		{
			name: "field error map",
			errorBlock: DhubStructuredError{
				Message: message(map[string]interface{}{
					"name": "cannot be empty",
				}),
			},
			expected: " Field: name, Error: cannot be empty.",
		},
		{
			name: "message with exception class",
			errorBlock: DhubStructuredError{
				Message:        message("entity not found"),
				ExceptionClass: &exceptionClass,
			},
			expected: "entity not found (" + exceptionClass + ")",
		},
		{
			name:       "empty body",
			errorBlock: DhubStructuredError{},
			expected:   "",
		},
	}

	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			assert.Check(t, is.Equal(
				testCase.expected, ErrorFromResponseBody(testCase.errorBlock)))
		})
	}
}
