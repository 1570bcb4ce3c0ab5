/*
 * Copyright (c) DataOps Cloud, Inc.
 */

package client

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/dataops-cloud/dhub-cli/internal/formatter"
)

var cliVersion = "0.1.0"
var hostVersion = "unknown"

// AuthAPIClient is the authenticated DataHub API client used by every
// command, wrapping the REST and GraphQL endpoints of one environment
type AuthAPIClient struct {
	HTTPClient *http.Client
	BaseURL    *url.URL
	Token      string
	// Environment is the named target environment the client was
	// resolved for, empty when the top level host/token were used
	Environment string

	ctx  context.Context
	stop context.CancelFunc
}

// SetVersion assigns the version of the CLI
func SetVersion(version string) {
	cliVersion = strings.TrimSpace(version)
}

// GetVersion fetches the version of the CLI
func GetVersion() string {
	return cliVersion
}

// SetHostVersion assigns the version of the DataHub host
func SetHostVersion(version string) {
	hostVersion = version
}

// GetHostVersion fetches the version of the DataHub host
func GetHostVersion() string {
	return hostVersion
}

// NewAuthAPIClient returns a client for the environment selected via
// --env, falling back to the top level host and token
func NewAuthAPIClient() (*AuthAPIClient, error) {
	host, token, env := resolveCredentials()

	if len(host) == 0 {
		logrus.Fatalln(
			formatter.Colorize(
				"No valid host detected. "+
					"Run \"dhub auth\" or \"dhub login\" to authenticate with DataHub.\n",
				formatter.RedColor))
	}
	url, err := ParseURL(host)
	if err != nil {
		return nil, err
	}

	if len(token) == 0 {
		logrus.Fatalln(
			formatter.Colorize(
				"No valid API token detected. Run \"dhub auth\" or \"dhub login\" to "+
					"authenticate with DataHub or run the command with the --token flag.\n",
				formatter.RedColor))
	}

	client, err := NewAuthAPIClientInitialize(url, token)
	if err != nil {
		return nil, err
	}
	client.Environment = env
	return client, nil
}

// resolveCredentials reads the host and token for the selected
// environment profile from the configuration
func resolveCredentials() (host, token, env string) {
	host = viper.GetString("host")
	token = viper.GetString("token")
	env = viper.GetString("env")
	if env != "" {
		prefix := fmt.Sprintf("environments.%s.", env)
		if envHost := viper.GetString(prefix + "host"); envHost != "" {
			host = envHost
		}
		if envToken := viper.GetString(prefix + "token"); envToken != "" {
			token = envToken
		}
	}
	return host, token, env
}

// NewAuthAPIClientInitialize returns a client for an explicit host and token
func NewAuthAPIClientInitialize(url *url.URL, token string) (*AuthAPIClient, error) {
	httpClient := &http.Client{
		Timeout: viper.GetDuration("timeout"),
	}
	if url.Scheme == "https" && viper.GetBool("insecure") {
		tr := &http.Transport{TLSClientConfig: &tls.Config{InsecureSkipVerify: true}}
		httpClient.Transport = tr
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	return &AuthAPIClient{
		HTTPClient: httpClient,
		BaseURL:    url,
		Token:      token,
		ctx:        ctx,
		stop:       stop,
	}, nil
}

// NewAuthAPIClientAndVerify is called before every command that needs
// the DataHub host, failing fast when the host is unreachable
func NewAuthAPIClientAndVerify() *AuthAPIClient {
	authAPI, err := NewAuthAPIClient()
	if err != nil {
		logrus.Fatalf(formatter.Colorize(err.Error()+"\n", formatter.RedColor))
	}
	config, err := authAPI.GetServerConfig(authAPI.ctx)
	if err != nil {
		logrus.Fatalf(formatter.Colorize(err.Error()+"\n", formatter.RedColor))
	}
	SetHostVersion(config.Version())
	return authAPI
}

// Context returns the interrupt aware context of the client
func (a *AuthAPIClient) Context() context.Context {
	return a.ctx
}

// ParseURL returns a URL if string is valid, or returns error
func ParseURL(host string) (*url.URL, error) {
	if strings.HasPrefix(strings.ToLower(host), "http://") {
		warning := formatter.Colorize(
			fmt.Sprintf("You are using insecure api endpoint %s\n", host),
			formatter.YellowColor,
		)
		logrus.Debugf(warning)
	} else if !strings.HasPrefix(strings.ToLower(host), "https://") {
		host = "https://" + host
	}

	endpoint, err := url.ParseRequestURI(host)
	if err != nil {
		return nil, fmt.Errorf("could not parse DataHub url (%s): %w", host, err)
	}
	return endpoint, err
}

// WaitInterval is how often polling loops check the host
const WaitInterval = 2 * time.Second
