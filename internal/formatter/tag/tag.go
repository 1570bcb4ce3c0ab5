/*
 * Copyright (c) DataOps Cloud, Inc.
 */

package tag

import (
	"encoding/json"

	"github.com/sirupsen/logrus"

	"github.com/dataops-cloud/dhub-cli/internal/client"
	"github.com/dataops-cloud/dhub-cli/internal/formatter"
)

const (
	defaultTagListing = "table {{.Name}}\t{{.URN}}\t{{.Description}}"

	colorHexHeader = "Color"
)

// Context for tag outputs
type Context struct {
	formatter.HeaderContext
	formatter.Context
	t client.Tag
}

// NewTagFormat for formatting output
func NewTagFormat(source string) formatter.Format {
	switch source {
	case formatter.TableFormatKey, "":
		format := defaultTagListing
		return formatter.Format(format)
	default: // custom format or json or pretty
		return formatter.Format(source)
	}
}

// Write renders the context for a list of Tags
func Write(ctx formatter.Context, tags []client.Tag) error {
	// Check if the format is JSON or Pretty JSON
	if (ctx.Format.IsJSON() || ctx.Format.IsPrettyJSON()) && ctx.Command.IsListCommand() {
		// Marshal the slice of tags into JSON
		var output []byte
		var err error

		if ctx.Format.IsPrettyJSON() {
			output, err = json.MarshalIndent(tags, "", "  ")
		} else {
			output, err = json.Marshal(tags)
		}

		if err != nil {
			logrus.Errorf("Error marshaling tags to json: %v\n", err)
			return err
		}

		// Write the JSON output to the context
		_, err = ctx.Output.Write(output)
		return err
	}
	render := func(format func(subContext formatter.SubContext) error) error {
		for _, tag := range tags {
			err := format(&Context{t: tag})
			if err != nil {
				logrus.Debugf("Error rendering tag: %v", err)
				return err
			}
		}
		return nil
	}
	return ctx.Write(NewTagContext(), render)
}

// NewTagContext creates a new context for rendering tag
func NewTagContext() *Context {
	tagCtx := Context{}
	tagCtx.Header = formatter.SubHeaderContext{
		"Name":        formatter.NameHeader,
		"URN":         formatter.URNHeader,
		"Description": formatter.DescriptionHeader,
		"ColorHex":    colorHexHeader,
	}
	return &tagCtx
}

// URN fetches Tag URN
func (c *Context) URN() string {
	return c.t.URN
}

// Name fetches Tag Name
func (c *Context) Name() string {
	return c.t.Name
}

// Description fetches Tag Description
func (c *Context) Description() string {
	if c.t.Description == "" {
		return "-"
	}
	return c.t.Description
}

// ColorHex fetches Tag ColorHex
func (c *Context) ColorHex() string {
	if c.t.ColorHex == "" {
		return "-"
	}
	return c.t.ColorHex
}

// MarshalJSON function
func (c *Context) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.t)
}
