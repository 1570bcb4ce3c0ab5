/*
 * Copyright (c) DataOps Cloud, Inc.
 */

package secret

import (
	"encoding/json"

	"github.com/sirupsen/logrus"

	"github.com/dataops-cloud/dhub-cli/internal/client"
	"github.com/dataops-cloud/dhub-cli/internal/formatter"
)

const (
	defaultSecretListing = "table {{.Name}}\t{{.URN}}\t{{.Description}}"
)

// Context for secret outputs
type Context struct {
	formatter.HeaderContext
	formatter.Context
	s client.Secret
}

// NewSecretFormat for formatting output
func NewSecretFormat(source string) formatter.Format {
	switch source {
	case formatter.TableFormatKey, "":
		format := defaultSecretListing
		return formatter.Format(format)
	default: // custom format or json or pretty
		return formatter.Format(source)
	}
}

// Write renders the context for a list of Secrets
func Write(ctx formatter.Context, secrets []client.Secret) error {
	// Check if the format is JSON or Pretty JSON
	if (ctx.Format.IsJSON() || ctx.Format.IsPrettyJSON()) && ctx.Command.IsListCommand() {
		// Marshal the slice of secrets into JSON
		var output []byte
		var err error

		if ctx.Format.IsPrettyJSON() {
			output, err = json.MarshalIndent(secrets, "", "  ")
		} else {
			output, err = json.Marshal(secrets)
		}

		if err != nil {
			logrus.Errorf("Error marshaling secrets to json: %v\n", err)
			return err
		}

		// Write the JSON output to the context
		_, err = ctx.Output.Write(output)
		return err
	}
	render := func(format func(subContext formatter.SubContext) error) error {
		for _, secret := range secrets {
			err := format(&Context{s: secret})
			if err != nil {
				logrus.Debugf("Error rendering secret: %v", err)
				return err
			}
		}
		return nil
	}
	return ctx.Write(NewSecretContext(), render)
}

// NewSecretContext creates a new context for rendering secret
func NewSecretContext() *Context {
	secretCtx := Context{}
	secretCtx.Header = formatter.SubHeaderContext{
		"Name":        formatter.NameHeader,
		"URN":         formatter.URNHeader,
		"Description": formatter.DescriptionHeader,
	}
	return &secretCtx
}

// URN fetches Secret URN
func (c *Context) URN() string {
	return c.s.URN
}

// Name fetches Secret Name
func (c *Context) Name() string {
	return c.s.Name
}

// Description fetches Secret Description
func (c *Context) Description() string {
	if c.s.Description == "" {
		return "-"
	}
	return c.s.Description
}

// MarshalJSON function
func (c *Context) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.s)
}
