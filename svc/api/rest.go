// Copyright 2026 NetApp, Inc. All Rights Reserved.

package api

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"

	svcconfig "github.com/netapp/svcinfo/config"
	. "github.com/netapp/svcinfo/logging"
	"github.com/netapp/svcinfo/utils/errors"
)

// RestClient is a single-shot client for the Spectrum Virtualize REST API. It does not retry
// failed calls or refresh expired tokens.
type RestClient struct {
	config     ClientConfig
	httpClient *http.Client
	baseURL    string

	m     sync.RWMutex
	token string
}

// NewRestClient is a factory method for creating a new instance.
func NewRestClient(config ClientConfig) (*RestClient, error) {
	if config.ClusterName == "" {
		return nil, errors.InvalidInputError("cluster name is required")
	}
	if config.Port == 0 {
		config.Port = svcconfig.DefaultRESTPort
	}

	tr := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		TLSClientConfig: &tls.Config{
			InsecureSkipVerify: !config.ValidateCerts,
			MinVersion:         svcconfig.MinTLSVersion,
		},
	}

	return &RestClient{
		config: config,
		httpClient: &http.Client{
			Transport: tr,
			Timeout:   svcconfig.RESTAPITimeout,
		},
		baseURL: (&url.URL{
			Scheme: "https",
			Host:   config.Host() + ":" + strconv.Itoa(config.Port),
			Path:   svcconfig.RESTAPIBasePath,
		}).String(),
		token: config.Token,
	}, nil
}

// HTTPClient exposes the underlying client so its transport can be replaced in tests.
func (c *RestClient) HTTPClient() *http.Client {
	return c.httpClient
}

// BaseURL returns the root of the REST API, e.g. https://cluster:7443/rest/v1.
func (c *RestClient) BaseURL() string {
	return c.baseURL
}

func (c *RestClient) getToken() string {
	c.m.RLock()
	defer c.m.RUnlock()
	return c.token
}

// Authorize acquires a session token. A token supplied in the configuration is used as-is.
func (c *RestClient) Authorize(ctx context.Context) error {
	if c.getToken() != "" {
		Logc(ctx).Debug("Using pre-acquired REST API token.")
		return nil
	}
	if c.config.Username == "" || c.config.Password == "" {
		return errors.AuthenticationError("username and password are required to acquire a token")
	}

	headers := map[string]string{
		svcconfig.RESTUsernameHeader: c.config.Username,
		svcconfig.RESTPasswordHeader: c.config.Password,
	}

	response, responseBody, err := c.invoke(ctx, svcconfig.RESTAuthPath, headers, nil, true)
	if err != nil {
		return errors.WrapWithConnectionError(err, "could not log in to %s", c.config.Host())
	}

	switch {
	case response.StatusCode == http.StatusUnauthorized || response.StatusCode == http.StatusForbidden:
		return errors.WrapWithAuthenticationError(
			errors.HTTPStatusError(response.StatusCode, "login rejected"), "could not log in to %s", c.config.Host())
	case response.StatusCode < 200 || response.StatusCode > 299:
		return errors.HTTPStatusError(response.StatusCode, "could not log in to %s", c.config.Host())
	}

	var authResponse struct {
		Token string `json:"token"`
	}
	if err = json.Unmarshal(responseBody, &authResponse); err != nil {
		return fmt.Errorf("could not parse login response; %v", err)
	}
	if authResponse.Token == "" {
		return errors.AuthenticationError("login response from %s did not contain a token", c.config.Host())
	}

	c.m.Lock()
	c.token = authResponse.Token
	c.m.Unlock()

	Logc(ctx).WithField("cluster", c.config.Host()).Debug("Acquired REST API token.")

	return nil
}

// ObjInfo runs a listing command and returns the raw response body.
func (c *RestClient) ObjInfo(
	ctx context.Context, cmd string, opts map[string]string, args []string,
) (json.RawMessage, error) {
	token := c.getToken()
	if token == "" {
		return nil, errors.AuthenticationError("not authorized; call Authorize first")
	}
	if cmd == "" {
		return nil, errors.InvalidInputError("command is required")
	}

	path := "/" + url.PathEscape(cmd)
	for _, arg := range args {
		path += "/" + url.PathEscape(arg)
	}

	var requestBody []byte
	if len(opts) > 0 {
		var err error
		if requestBody, err = json.Marshal(opts); err != nil {
			return nil, fmt.Errorf("could not marshal options for %s; %v", cmd, err)
		}
	}

	headers := map[string]string{svcconfig.RESTAuthTokenHeader: token}

	response, responseBody, err := c.invoke(ctx, path, headers, requestBody, false)
	if err != nil {
		return nil, errors.WrapWithConnectionError(err, "could not run %s", cmd)
	}

	switch {
	case response.StatusCode == http.StatusUnauthorized || response.StatusCode == http.StatusForbidden:
		return nil, errors.WrapWithAuthenticationError(
			errors.HTTPStatusError(response.StatusCode, "token rejected"), "could not run %s", cmd)
	case response.StatusCode < 200 || response.StatusCode > 299:
		return nil, errors.HTTPStatusError(response.StatusCode, "could not run %s: %s", cmd,
			strings.TrimSpace(string(responseBody)))
	}

	return responseBody, nil
}

func (c *RestClient) invoke(
	ctx context.Context, resourcePath string, headers map[string]string, requestBody []byte, sensitive bool,
) (*http.Response, []byte, error) {

	var body io.Reader
	if requestBody != nil {
		body = bytes.NewBuffer(requestBody)
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+resourcePath, body)
	if err != nil {
		return nil, nil, err
	}

	request.Header.Set("Content-Type", "application/json")
	request.Header.Set("Accept", "application/json")
	for k, v := range headers {
		request.Header.Set(k, v)
	}

	showSensitive := c.config.DebugTraceFlags["sensitive"]

	if c.config.DebugTraceFlags["api"] {
		if sensitive && !showSensitive {
			// The login exchange carries credentials and the token
			logHTTPRequest(ctx, request, []byte("<suppressed>"), false)
		} else {
			logHTTPRequest(ctx, request, requestBody, showSensitive)
		}
	}

	response, err := c.httpClient.Do(request)
	if err != nil {
		return nil, nil, err
	}
	defer func() { _ = response.Body.Close() }()

	responseBody, err := io.ReadAll(response.Body)
	if err != nil {
		return response, nil, fmt.Errorf("error reading response body; %v", err)
	}

	if c.config.DebugTraceFlags["api"] {
		if sensitive && !showSensitive {
			logHTTPResponse(ctx, response, []byte("<suppressed>"))
		} else {
			logHTTPResponse(ctx, response, responseBody)
		}
	}

	return response, responseBody, nil
}

var redactedHeaders = []string{svcconfig.RESTPasswordHeader, svcconfig.RESTAuthTokenHeader}

func logHTTPRequest(ctx context.Context, request *http.Request, requestBody []byte, showSensitive bool) {
	header := request.Header.Clone()
	if !showSensitive {
		for _, name := range redactedHeaders {
			if header.Get(name) != "" {
				header.Set(name, "<suppressed>")
			}
		}
	}
	if requestBody == nil {
		requestBody = []byte{}
	}

	Logc(ctx).Debug("--------------------------------------------------------------------------------")
	Logc(ctx).Debugf("Request Method: %s", request.Method)
	Logc(ctx).Debugf("Request URL: %v", request.URL)
	Logc(ctx).Debugf("Request headers: %v", header)
	Logc(ctx).Debugf("Request body: %s", string(requestBody))
	Logc(ctx).Debug("................................................................................")
}

func logHTTPResponse(ctx context.Context, response *http.Response, responseBody []byte) {
	if response != nil {
		Logc(ctx).Debugf("Response status: %s", response.Status)
		Logc(ctx).Debugf("Response headers: %v", response.Header)
	}
	if responseBody != nil {
		Logc(ctx).Debugf("Response body: %s", string(responseBody))
	}
	Logc(ctx).Debug("================================================================================")
}
