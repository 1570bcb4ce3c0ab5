/*
 * Copyright (c) DataOps Cloud, Inc.
 */

package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

const graphQLRoute = "api/graphql"

type graphQLRequest struct {
	Query     string                 `json:"query"`
	Variables map[string]interface{} `json:"variables,omitempty"`
}

type graphQLError struct {
	Message string `json:"message"`
}

type graphQLResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []graphQLError  `json:"errors,omitempty"`
}

// GraphQL posts a query or mutation to the DataHub GraphQL endpoint
// and decodes the data payload into out
func (a *AuthAPIClient) GraphQL(
	ctx context.Context,
	operation string,
	query string,
	variables map[string]interface{},
	out interface{},
) error {
	reqBytes, err := json.Marshal(graphQLRequest{Query: query, Variables: variables})
	if err != nil {
		return err
	}

	response := graphQLResponse{}
	err = a.RestAPICallJSON(ctx, RestAPIParameters{
		reqBytes:        reqBytes,
		method:          http.MethodPost,
		urlRoute:        graphQLRoute,
		operationString: operation,
	}, &response)
	if err != nil {
		return err
	}

	if len(response.Errors) > 0 {
		messages := make([]string, 0, len(response.Errors))
		for _, gqlError := range response.Errors {
			messages = append(messages, gqlError.Message)
		}
		return fmt.Errorf("%s: %s", operation, strings.Join(messages, "; "))
	}
	if out == nil || response.Data == nil {
		return nil
	}
	if err := json.Unmarshal(response.Data, out); err != nil {
		return fmt.Errorf("%s: decoding data: %w", operation, err)
	}
	return nil
}
