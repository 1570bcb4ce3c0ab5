/*
 * Copyright (c) DataOps Cloud, Inc.
 */

package client

import (
	"context"
	"fmt"
	"time"

	"github.com/briandowns/spinner"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/dataops-cloud/dhub-cli/internal/formatter"
)

// IngestionSource is a managed ingestion recipe registered with the
// catalog platform
type IngestionSource struct {
	URN        string `json:"urn"`
	Name       string `json:"name"`
	Type       string `json:"type"`
	Recipe     string `json:"recipe,omitempty"`
	ExecutorID string `json:"executorId,omitempty"`
	Schedule   string `json:"schedule,omitempty"`
	Timezone   string `json:"timezone,omitempty"`
}

// Execution states reported by the ingestion executor
const (
	ExecutionRunning   = "RUNNING"
	ExecutionSucceeded = "SUCCESS"
	ExecutionFailed    = "FAILURE"
	ExecutionCancelled = "CANCELLED"
)

const listIngestionSourcesQuery = `query listIngestionSources($start: Int!, $count: Int!) {
  listIngestionSources(input: {start: $start, count: $count}) {
    total
    ingestionSources {
      urn
      name
      type
      config { recipe executorId }
      schedule { interval timezone }
    }
  }
}`

const getIngestionSourceQuery = `query getIngestionSource($urn: String!) {
  ingestionSource(urn: $urn) {
    urn
    name
    type
    config { recipe executorId }
    schedule { interval timezone }
  }
}`

const createIngestionSourceMutation = `mutation createIngestionSource($input: UpdateIngestionSourceInput!) {
  createIngestionSource(input: $input)
}`

const updateIngestionSourceMutation = `mutation updateIngestionSource($urn: String!, $input: UpdateIngestionSourceInput!) {
  updateIngestionSource(urn: $urn, input: $input)
}`

const deleteIngestionSourceMutation = `mutation deleteIngestionSource($urn: String!) {
  deleteIngestionSource(urn: $urn)
}`

const createExecutionRequestMutation = `mutation createIngestionExecutionRequest($input: CreateIngestionExecutionRequestInput!) {
  createIngestionExecutionRequest(input: $input)
}`

const getExecutionRequestQuery = `query executionRequest($urn: String!) {
  executionRequest(urn: $urn) {
    urn
    result { status }
  }
}`

type ingestionSourceNode struct {
	URN    string `json:"urn"`
	Name   string `json:"name"`
	Type   string `json:"type"`
	Config *struct {
		Recipe     string `json:"recipe"`
		ExecutorID string `json:"executorId"`
	} `json:"config"`
	Schedule *struct {
		Interval string `json:"interval"`
		Timezone string `json:"timezone"`
	} `json:"schedule"`
}

func (n *ingestionSourceNode) toSource() IngestionSource {
	source := IngestionSource{URN: n.URN, Name: n.Name, Type: n.Type}
	if n.Config != nil {
		source.Recipe = n.Config.Recipe
		source.ExecutorID = n.Config.ExecutorID
	}
	if n.Schedule != nil {
		source.Schedule = n.Schedule.Interval
		source.Timezone = n.Schedule.Timezone
	}
	return source
}

func (s *IngestionSource) toInput() map[string]interface{} {
	input := map[string]interface{}{
		"name": s.Name,
		"type": s.Type,
		"config": map[string]interface{}{
			"recipe":     s.Recipe,
			"executorId": s.ExecutorID,
		},
	}
	if s.Schedule != "" {
		schedule := map[string]interface{}{"interval": s.Schedule}
		if s.Timezone != "" {
			schedule["timezone"] = s.Timezone
		}
		input["schedule"] = schedule
	}
	return input
}

// ListIngestionSources pages through every ingestion source
func (a *AuthAPIClient) ListIngestionSources(ctx context.Context) ([]IngestionSource, error) {
	sources := make([]IngestionSource, 0)
	start := 0
	const pageSize = 100
	for {
		envelope := struct {
			ListIngestionSources struct {
				Total            int                   `json:"total"`
				IngestionSources []ingestionSourceNode `json:"ingestionSources"`
			} `json:"listIngestionSources"`
		}{}
		err := a.GraphQL(ctx, "Ingestion Source, Operation: List",
			listIngestionSourcesQuery,
			map[string]interface{}{"start": start, "count": pageSize}, &envelope)
		if err != nil {
			return nil, err
		}
		for i := range envelope.ListIngestionSources.IngestionSources {
			sources = append(sources,
				envelope.ListIngestionSources.IngestionSources[i].toSource())
		}
		start += len(envelope.ListIngestionSources.IngestionSources)
		if start >= envelope.ListIngestionSources.Total ||
			len(envelope.ListIngestionSources.IngestionSources) == 0 {
			break
		}
	}
	return sources, nil
}

// GetIngestionSource fetches one ingestion source by URN
func (a *AuthAPIClient) GetIngestionSource(
	ctx context.Context,
	urn string,
) (*IngestionSource, error) {
	envelope := struct {
		IngestionSource *ingestionSourceNode `json:"ingestionSource"`
	}{}
	err := a.GraphQL(ctx, "Ingestion Source, Operation: Describe",
		getIngestionSourceQuery, map[string]interface{}{"urn": urn}, &envelope)
	if err != nil {
		return nil, err
	}
	if envelope.IngestionSource == nil {
		return nil, nil
	}
	source := envelope.IngestionSource.toSource()
	return &source, nil
}

// CreateIngestionSource registers a recipe and returns its URN
func (a *AuthAPIClient) CreateIngestionSource(
	ctx context.Context,
	source IngestionSource,
) (string, error) {
	envelope := struct {
		CreateIngestionSource string `json:"createIngestionSource"`
	}{}
	err := a.GraphQL(ctx, "Ingestion Source, Operation: Create",
		createIngestionSourceMutation,
		map[string]interface{}{"input": source.toInput()}, &envelope)
	if err != nil {
		return "", err
	}
	return envelope.CreateIngestionSource, nil
}

// UpdateIngestionSource overwrites an existing recipe
func (a *AuthAPIClient) UpdateIngestionSource(
	ctx context.Context,
	urn string,
	source IngestionSource,
) error {
	return a.GraphQL(ctx, "Ingestion Source, Operation: Update",
		updateIngestionSourceMutation,
		map[string]interface{}{"urn": urn, "input": source.toInput()}, nil)
}

// DeleteIngestionSource removes an ingestion source by URN
func (a *AuthAPIClient) DeleteIngestionSource(ctx context.Context, urn string) error {
	return a.GraphQL(ctx, "Ingestion Source, Operation: Delete",
		deleteIngestionSourceMutation, map[string]interface{}{"urn": urn}, nil)
}

// TriggerIngestion requests an execution of the ingestion source and
// returns the execution request URN
func (a *AuthAPIClient) TriggerIngestion(ctx context.Context, urn string) (string, error) {
	envelope := struct {
		CreateIngestionExecutionRequest string `json:"createIngestionExecutionRequest"`
	}{}
	err := a.GraphQL(ctx, "Ingestion Source, Operation: Run",
		createExecutionRequestMutation,
		map[string]interface{}{"input": map[string]interface{}{
			"ingestionSourceUrn": urn,
		}}, &envelope)
	if err != nil {
		return "", err
	}
	return envelope.CreateIngestionExecutionRequest, nil
}

// ExecutionStatus fetches the status of an execution request
func (a *AuthAPIClient) ExecutionStatus(
	ctx context.Context,
	requestURN string,
) (string, error) {
	envelope := struct {
		ExecutionRequest *struct {
			Result *struct {
				Status string `json:"status"`
			} `json:"result"`
		} `json:"executionRequest"`
	}{}
	err := a.GraphQL(ctx, "Ingestion Source, Operation: Status",
		getExecutionRequestQuery,
		map[string]interface{}{"urn": requestURN}, &envelope)
	if err != nil {
		return "", err
	}
	if envelope.ExecutionRequest == nil || envelope.ExecutionRequest.Result == nil {
		return ExecutionRunning, nil
	}
	return envelope.ExecutionRequest.Result.Status, nil
}

// WaitForExecution polls the execution request until it finishes, the
// wait timeout elapses or the run is interrupted
func (a *AuthAPIClient) WaitForExecution(requestURN, message string) (string, error) {
	if !viper.GetBool("wait") {
		logrus.Infof("Execution requested: %s\n", requestURN)
		return ExecutionRunning, nil
	}

	s := spinner.New(spinner.CharSets[36], 300*time.Millisecond)
	s.Color(formatter.GreenColor)
	s.Start()
	s.Suffix = " " + message
	s.FinalMSG = ""
	defer s.Stop()

	timeout := time.After(viper.GetDuration("timeout"))
	checkEveryInSec := time.NewTicker(WaitInterval)
	defer checkEveryInSec.Stop()
	for {
		select {
		case <-timeout:
			s.Stop()
			return "", fmt.Errorf("wait timeout, the ingestion run could still be on-going")
		case <-a.ctx.Done():
			s.Stop()
			a.stop()
			return "", fmt.Errorf("receiving signal, stopped waiting for the ingestion run")
		case <-checkEveryInSec.C:
			status, err := a.ExecutionStatus(a.ctx, requestURN)
			if err != nil {
				return "", err
			}
			if status != ExecutionRunning {
				return status, nil
			}
		}
	}
}
