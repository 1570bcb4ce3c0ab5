/*
 * Copyright (c) DataOps Cloud, Inc.
 */

package glossaryterm

import (
	"encoding/json"

	"github.com/sirupsen/logrus"

	"github.com/dataops-cloud/dhub-cli/internal/client"
	"github.com/dataops-cloud/dhub-cli/internal/formatter"
)

const (
	defaultGlossaryTermListing = "table {{.Name}}\t{{.URN}}\t{{.Definition}}"

	definitionHeader = "Definition"

	parentNodeHeader = "Parent Node"
)

// Context for glossary term outputs
type Context struct {
	formatter.HeaderContext
	formatter.Context
	g client.GlossaryTerm
}

// NewGlossaryTermFormat for formatting output
func NewGlossaryTermFormat(source string) formatter.Format {
	switch source {
	case formatter.TableFormatKey, "":
		format := defaultGlossaryTermListing
		return formatter.Format(format)
	default: // custom format or json or pretty
		return formatter.Format(source)
	}
}

// Write renders the context for a list of GlossaryTerms
func Write(ctx formatter.Context, terms []client.GlossaryTerm) error {
	// Check if the format is JSON or Pretty JSON
	if (ctx.Format.IsJSON() || ctx.Format.IsPrettyJSON()) && ctx.Command.IsListCommand() {
		// Marshal the slice of terms into JSON
		var output []byte
		var err error

		if ctx.Format.IsPrettyJSON() {
			output, err = json.MarshalIndent(terms, "", "  ")
		} else {
			output, err = json.Marshal(terms)
		}

		if err != nil {
			logrus.Errorf("Error marshaling glossary terms to json: %v\n", err)
			return err
		}

		// Write the JSON output to the context
		_, err = ctx.Output.Write(output)
		return err
	}
	render := func(format func(subContext formatter.SubContext) error) error {
		for _, term := range terms {
			err := format(&Context{g: term})
			if err != nil {
				logrus.Debugf("Error rendering glossary term: %v", err)
				return err
			}
		}
		return nil
	}
	return ctx.Write(NewGlossaryTermContext(), render)
}

// NewGlossaryTermContext creates a new context for rendering glossary term
func NewGlossaryTermContext() *Context {
	termCtx := Context{}
	termCtx.Header = formatter.SubHeaderContext{
		"Name":       formatter.NameHeader,
		"URN":        formatter.URNHeader,
		"Definition": definitionHeader,
		"ParentNode": parentNodeHeader,
	}
	return &termCtx
}

// URN fetches GlossaryTerm URN
func (c *Context) URN() string {
	return c.g.URN
}

// Name fetches GlossaryTerm Name
func (c *Context) Name() string {
	return c.g.Name
}

// Definition fetches GlossaryTerm Definition
func (c *Context) Definition() string {
	if c.g.Definition == "" {
		return "-"
	}
	return c.g.Definition
}

// ParentNode fetches the parent glossary node URN
func (c *Context) ParentNode() string {
	if c.g.ParentNode == "" {
		return "-"
	}
	return c.g.ParentNode
}

// MarshalJSON function
func (c *Context) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.g)
}
