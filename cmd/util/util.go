/*
 * Copyright (c) DataOps Cloud, Inc.
 */

package util

import (
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/viper"
)

// IsOutputType check if the output type is t
func IsOutputType(t string) bool {
	return viper.GetString("output") == t
}

// DhubStructuredError is the error body returned by the DataHub REST
// endpoints, with message being an interface{} to accommodate both
// plain strings and nested field errors
type DhubStructuredError struct {
	// User-visible error message
	Message *interface{} `json:"message,omitempty"`
	// Server-side exception class, if surfaced
	ExceptionClass *string `json:"exceptionClass,omitempty"`
	// HTTP status echoed in the body
	Status *int `json:"status,omitempty"`
}

// ErrorFromResponseBody is a function to extract error interfaces into string
func ErrorFromResponseBody(errorBlock DhubStructuredError) string {
	var errorString string
	if errorBlock.Message == nil {
		return errorString
	}
	if s, ok := (*errorBlock.Message).(string); ok {
		errorString = s
	} else if errorMap, ok := (*errorBlock.Message).(map[string]interface{}); ok {
		for k, v := range errorMap {
			errorString = fmt.Sprintf("%s Field: %s, Error: %v.", errorString, k, v)
		}
	}
	if errorBlock.ExceptionClass != nil {
		errorString = fmt.Sprintf("%s (%s)", errorString, *errorBlock.ExceptionClass)
	}
	return errorString
}

// ConfirmCommand function will add an interactive confirmation with the message provided
func ConfirmCommand(message string, bypass bool) error {
	errAborted := fmt.Errorf("command aborted")
	if bypass {
		return nil
	}
	response := false
	prompt := &survey.Confirm{
		Message: message,
	}
	err := survey.AskOne(prompt, &response)
	if err != nil {
		return err
	}
	if !response {
		return errAborted
	}
	return nil
}
