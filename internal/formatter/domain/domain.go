/*
 * Copyright (c) DataOps Cloud, Inc.
 */

package domain

import (
	"encoding/json"

	"github.com/sirupsen/logrus"

	"github.com/dataops-cloud/dhub-cli/internal/client"
	"github.com/dataops-cloud/dhub-cli/internal/formatter"
)

const (
	defaultDomainListing = "table {{.Name}}\t{{.URN}}\t{{.Description}}\t{{.Parent}}"

	parentHeader = "Parent Domain"
)

// Context for domain outputs
type Context struct {
	formatter.HeaderContext
	formatter.Context
	d client.Domain
}

// NewDomainFormat for formatting output
func NewDomainFormat(source string) formatter.Format {
	switch source {
	case formatter.TableFormatKey, "":
		format := defaultDomainListing
		return formatter.Format(format)
	default: // custom format or json or pretty
		return formatter.Format(source)
	}
}

// Write renders the context for a list of Domains
func Write(ctx formatter.Context, domains []client.Domain) error {
	// Check if the format is JSON or Pretty JSON
	if (ctx.Format.IsJSON() || ctx.Format.IsPrettyJSON()) && ctx.Command.IsListCommand() {
		// Marshal the slice of domains into JSON
		var output []byte
		var err error

		if ctx.Format.IsPrettyJSON() {
			output, err = json.MarshalIndent(domains, "", "  ")
		} else {
			output, err = json.Marshal(domains)
		}

		if err != nil {
			logrus.Errorf("Error marshaling domains to json: %v\n", err)
			return err
		}

		// Write the JSON output to the context
		_, err = ctx.Output.Write(output)
		return err
	}
	render := func(format func(subContext formatter.SubContext) error) error {
		for _, domain := range domains {
			err := format(&Context{d: domain})
			if err != nil {
				logrus.Debugf("Error rendering domain: %v", err)
				return err
			}
		}
		return nil
	}
	return ctx.Write(NewDomainContext(), render)
}

// NewDomainContext creates a new context for rendering domain
func NewDomainContext() *Context {
	domainCtx := Context{}
	domainCtx.Header = formatter.SubHeaderContext{
		"Name":        formatter.NameHeader,
		"URN":         formatter.URNHeader,
		"Description": formatter.DescriptionHeader,
		"Parent":      parentHeader,
	}
	return &domainCtx
}

// URN fetches Domain URN
func (c *Context) URN() string {
	return c.d.URN
}

// Name fetches Domain Name
func (c *Context) Name() string {
	return c.d.Name
}

// Description fetches Domain Description
func (c *Context) Description() string {
	if c.d.Description == "" {
		return "-"
	}
	return c.d.Description
}

// Parent fetches the parent Domain URN
func (c *Context) Parent() string {
	if c.d.ParentURN == "" {
		return "-"
	}
	return c.d.ParentURN
}

// MarshalJSON function
func (c *Context) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.d)
}
