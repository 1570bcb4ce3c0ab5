/*
 * Copyright (c) DataOps Cloud, Inc.
 */

package ingestionsource

import (
	"encoding/json"

	"github.com/sirupsen/logrus"

	"github.com/dataops-cloud/dhub-cli/internal/client"
	"github.com/dataops-cloud/dhub-cli/internal/formatter"
)

const (
	defaultIngestionSourceListing = "table {{.Name}}\t{{.URN}}\t{{.Type}}\t{{.Schedule}}"

	scheduleHeader = "Schedule"

	executorHeader = "Executor"
)

// Context for ingestion source outputs
type Context struct {
	formatter.HeaderContext
	formatter.Context
	i client.IngestionSource
}

// NewIngestionSourceFormat for formatting output
func NewIngestionSourceFormat(source string) formatter.Format {
	switch source {
	case formatter.TableFormatKey, "":
		format := defaultIngestionSourceListing
		return formatter.Format(format)
	default: // custom format or json or pretty
		return formatter.Format(source)
	}
}

// Write renders the context for a list of IngestionSources
func Write(ctx formatter.Context, sources []client.IngestionSource) error {
	// Check if the format is JSON or Pretty JSON
	if (ctx.Format.IsJSON() || ctx.Format.IsPrettyJSON()) && ctx.Command.IsListCommand() {
		// Marshal the slice of sources into JSON
		var output []byte
		var err error

		if ctx.Format.IsPrettyJSON() {
			output, err = json.MarshalIndent(sources, "", "  ")
		} else {
			output, err = json.Marshal(sources)
		}

		if err != nil {
			logrus.Errorf("Error marshaling ingestion sources to json: %v\n", err)
			return err
		}

		// Write the JSON output to the context
		_, err = ctx.Output.Write(output)
		return err
	}
	render := func(format func(subContext formatter.SubContext) error) error {
		for _, source := range sources {
			err := format(&Context{i: source})
			if err != nil {
				logrus.Debugf("Error rendering ingestion source: %v", err)
				return err
			}
		}
		return nil
	}
	return ctx.Write(NewIngestionSourceContext(), render)
}

// NewIngestionSourceContext creates a new context for rendering ingestion source
func NewIngestionSourceContext() *Context {
	sourceCtx := Context{}
	sourceCtx.Header = formatter.SubHeaderContext{
		"Name":     formatter.NameHeader,
		"URN":      formatter.URNHeader,
		"Type":     formatter.TypeHeader,
		"Schedule": scheduleHeader,
		"Executor": executorHeader,
	}
	return &sourceCtx
}

// URN fetches IngestionSource URN
func (c *Context) URN() string {
	return c.i.URN
}

// Name fetches IngestionSource Name
func (c *Context) Name() string {
	return c.i.Name
}

// Type fetches IngestionSource Type
func (c *Context) Type() string {
	return c.i.Type
}

// Schedule fetches the IngestionSource cron schedule
func (c *Context) Schedule() string {
	if c.i.Schedule == "" {
		return "-"
	}
	if c.i.Timezone != "" {
		return c.i.Schedule + " (" + c.i.Timezone + ")"
	}
	return c.i.Schedule
}

// Executor fetches the IngestionSource executor pool
func (c *Context) Executor() string {
	if c.i.ExecutorID == "" {
		return "default"
	}
	return c.i.ExecutorID
}

// MarshalJSON function
func (c *Context) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.i)
}
