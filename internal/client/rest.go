/*
 * Copyright (c) DataOps Cloud, Inc.
 */

package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/dataops-cloud/dhub-cli/cmd/util"
)

// RestAPIParameters holds the parameters for one REST call against the
// DataHub gateway
type RestAPIParameters struct {
	reqBytes        []byte
	method          string
	urlRoute        string
	operationString string
}

// RestAPICall makes a REST API call and returns the raw response body
func (a *AuthAPIClient) RestAPICall(
	ctx context.Context,
	params RestAPIParameters,
) ([]byte, error) {
	reqBuf := bytes.NewBuffer(params.reqBytes)

	req, err := http.NewRequestWithContext(
		ctx,
		params.method,
		fmt.Sprintf("%s/%s", strings.TrimSuffix(a.BaseURL.String(), "/"),
			strings.TrimPrefix(params.urlRoute, "/")),
		reqBuf,
	)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", fmt.Sprintf("dhub-cli/%s", GetVersion()))
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", a.Token))

	resp, err := a.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", params.operationString, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%s: reading response: %w", params.operationString, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := fmt.Errorf("%s: %s returned %s",
			params.operationString, params.urlRoute, resp.Status)
		errorBlock := util.DhubStructuredError{}
		if unmarshalErr := json.Unmarshal(body, &errorBlock); unmarshalErr == nil {
			if errorString := util.ErrorFromResponseBody(errorBlock); errorString != "" {
				return body, fmt.Errorf("%w: %s", apiErr, errorString)
			}
		}
		return body, apiErr
	}
	return body, nil
}

// RestAPICallJSON makes a REST API call and decodes the response into out
func (a *AuthAPIClient) RestAPICallJSON(
	ctx context.Context,
	params RestAPIParameters,
	out interface{},
) error {
	body, err := a.RestAPICall(ctx, params)
	if err != nil {
		return err
	}
	if out == nil || len(body) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("%s: decoding response: %w", params.operationString, err)
	}
	return nil
}
