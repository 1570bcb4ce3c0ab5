/*
 * Copyright (c) DataOps Cloud, Inc.
 */

package policy

import (
	"encoding/json"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/dataops-cloud/dhub-cli/internal/client"
	"github.com/dataops-cloud/dhub-cli/internal/formatter"
)

const (
	defaultPolicyListing = "table {{.Name}}\t{{.URN}}\t{{.Type}}\t{{.State}}\t{{.Privileges}}"

	privilegesHeader = "Privileges"

	actorsHeader = "Actors"
)

// Context for policy outputs
type Context struct {
	formatter.HeaderContext
	formatter.Context
	p client.Policy
}

// NewPolicyFormat for formatting output
func NewPolicyFormat(source string) formatter.Format {
	switch source {
	case formatter.TableFormatKey, "":
		format := defaultPolicyListing
		return formatter.Format(format)
	default: // custom format or json or pretty
		return formatter.Format(source)
	}
}

// Write renders the context for a list of Policies
func Write(ctx formatter.Context, policies []client.Policy) error {
	// Check if the format is JSON or Pretty JSON
	if (ctx.Format.IsJSON() || ctx.Format.IsPrettyJSON()) && ctx.Command.IsListCommand() {
		// Marshal the slice of policies into JSON
		var output []byte
		var err error

		if ctx.Format.IsPrettyJSON() {
			output, err = json.MarshalIndent(policies, "", "  ")
		} else {
			output, err = json.Marshal(policies)
		}

		if err != nil {
			logrus.Errorf("Error marshaling policies to json: %v\n", err)
			return err
		}

		// Write the JSON output to the context
		_, err = ctx.Output.Write(output)
		return err
	}
	render := func(format func(subContext formatter.SubContext) error) error {
		for _, policy := range policies {
			err := format(&Context{p: policy})
			if err != nil {
				logrus.Debugf("Error rendering policy: %v", err)
				return err
			}
		}
		return nil
	}
	return ctx.Write(NewPolicyContext(), render)
}

// NewPolicyContext creates a new context for rendering policy
func NewPolicyContext() *Context {
	policyCtx := Context{}
	policyCtx.Header = formatter.SubHeaderContext{
		"Name":       formatter.NameHeader,
		"URN":        formatter.URNHeader,
		"Type":       formatter.TypeHeader,
		"State":      formatter.StateHeader,
		"Privileges": privilegesHeader,
		"Actors":     actorsHeader,
	}
	return &policyCtx
}

// URN fetches Policy URN
func (c *Context) URN() string {
	return c.p.URN
}

// Name fetches Policy Name
func (c *Context) Name() string {
	return c.p.Name
}

// Type fetches Policy Type
func (c *Context) Type() string {
	return c.p.Type
}

// State fetches Policy State
func (c *Context) State() string {
	if c.p.State == "ACTIVE" {
		return formatter.Colorize(c.p.State, formatter.GreenColor)
	}
	return formatter.Colorize(c.p.State, formatter.YellowColor)
}

// Privileges fetches Policy Privileges
func (c *Context) Privileges() string {
	if len(c.p.Privileges) == 0 {
		return "-"
	}
	return strings.Join(c.p.Privileges, ", ")
}

// Actors fetches the users and groups the policy applies to
func (c *Context) Actors() string {
	actors := append(append([]string{}, c.p.Users...), c.p.Groups...)
	if len(actors) == 0 {
		return "All users"
	}
	return strings.Join(actors, ", ")
}

// MarshalJSON function
func (c *Context) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.p)
}
