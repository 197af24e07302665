// Copyright 2026 NetApp, Inc. All Rights Reserved.

package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"testing"

	"github.com/jarcoal/httpmock"
	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/netapp/svcinfo/utils/errors"
)

const (
	testCluster  = "cluster1"
	testDomain   = "domain.ibm.com"
	testUsername = "username"
	testPassword = "password"
	testToken    = "token-abc"
	testBaseURL  = "https://cluster1.domain.ibm.com:7443/rest/v1"
)

var ctx = context.Background()

func TestMain(m *testing.M) {
	// Disable any standard log output
	log.SetOutput(io.Discard)
	os.Exit(m.Run())
}

func newTestClient(t *testing.T, config ClientConfig) (*RestClient, *httpmock.MockTransport) {
	t.Helper()

	client, err := NewRestClient(config)
	require.NoError(t, err)

	transport := httpmock.NewMockTransport()
	client.HTTPClient().Transport = transport
	return client, transport
}

func authResponder(t *testing.T, status int, body string) httpmock.Responder {
	return func(req *http.Request) (*http.Response, error) {
		assert.Equal(t, testUsername, req.Header.Get("X-Auth-Username"))
		assert.Equal(t, testPassword, req.Header.Get("X-Auth-Password"))
		return httpmock.NewStringResponse(status, body), nil
	}
}

func TestNewRestClient(t *testing.T) {
	client, err := NewRestClient(ClientConfig{ClusterName: testCluster, Domain: testDomain})
	require.NoError(t, err)
	assert.Equal(t, testBaseURL, client.BaseURL())

	client, err = NewRestClient(ClientConfig{ClusterName: "1.2.3.4", Port: 8443})
	require.NoError(t, err)
	assert.Equal(t, "https://1.2.3.4:8443/rest/v1", client.BaseURL())

	_, err = NewRestClient(ClientConfig{})
	assert.True(t, errors.IsInvalidInputError(err))
}

func TestAuthorize(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		wantErr     bool
		isErrFunc   func(error) bool
		expectToken string
	}{
		{name: "success", status: http.StatusOK, body: `{"token": "` + testToken + `"}`, expectToken: testToken},
		{name: "unauthorized", status: http.StatusUnauthorized, body: "", wantErr: true, isErrFunc: errors.IsAuthenticationError},
		{name: "forbidden", status: http.StatusForbidden, body: "", wantErr: true, isErrFunc: errors.IsAuthenticationError},
		{name: "server error", status: http.StatusInternalServerError, body: "", wantErr: true, isErrFunc: isServerError},
		{name: "missing token", status: http.StatusOK, body: `{}`, wantErr: true, isErrFunc: errors.IsAuthenticationError},
		{name: "invalid json", status: http.StatusOK, body: `not json`, wantErr: true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			client, transport := newTestClient(t, ClientConfig{
				ClusterName: testCluster, Domain: testDomain, Username: testUsername, Password: testPassword,
			})
			transport.RegisterResponder("POST", testBaseURL+"/auth", authResponder(t, test.status, test.body))

			err := client.Authorize(ctx)
			if test.wantErr {
				assert.Error(t, err)
				if test.isErrFunc != nil {
					assert.True(t, test.isErrFunc(err), "unexpected error type: %v", err)
				}
				assert.Empty(t, client.getToken())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, test.expectToken, client.getToken())
			}
			assert.Equal(t, 1, transport.GetTotalCallCount())
		})
	}
}

func TestAuthorize_PreAcquiredToken(t *testing.T) {
	client, transport := newTestClient(t, ClientConfig{ClusterName: testCluster, Token: testToken})

	assert.NoError(t, client.Authorize(ctx))
	assert.Equal(t, 0, transport.GetTotalCallCount(), "no login call expected")
}

func TestAuthorize_MissingCredentials(t *testing.T) {
	client, transport := newTestClient(t, ClientConfig{ClusterName: testCluster, Username: testUsername})

	err := client.Authorize(ctx)
	assert.True(t, errors.IsAuthenticationError(err))
	assert.Equal(t, 0, transport.GetTotalCallCount())
}

func TestAuthorize_ConnectionFailure(t *testing.T) {
	client, transport := newTestClient(t, ClientConfig{
		ClusterName: testCluster, Domain: testDomain, Username: testUsername, Password: testPassword,
	})
	transport.RegisterResponder("POST", testBaseURL+"/auth", httpmock.NewErrorResponder(fmt.Errorf("no route")))

	err := client.Authorize(ctx)
	assert.True(t, errors.IsConnectionError(err))
}

func TestObjInfo(t *testing.T) {
	hosts := []Object{{"id": "1", "name": "ansible_host", "protocol": "nvme"}}

	client, transport := newTestClient(t, ClientConfig{ClusterName: testCluster, Domain: testDomain, Token: testToken})
	transport.RegisterResponder("POST", testBaseURL+"/lshost",
		func(req *http.Request) (*http.Response, error) {
			assert.Equal(t, testToken, req.Header.Get("X-Auth-Token"))
			assert.Equal(t, "application/json", req.Header.Get("Content-Type"))
			return httpmock.NewJsonResponse(http.StatusOK, hosts)
		})

	require.NoError(t, client.Authorize(ctx))
	raw, err := client.ObjInfo(ctx, "lshost", nil, nil)
	require.NoError(t, err)

	objects, err := DecodeObjects(raw)
	require.NoError(t, err)
	assert.Equal(t, hosts, objects)
}

func TestObjInfo_WithArgsAndOptions(t *testing.T) {
	client, transport := newTestClient(t, ClientConfig{ClusterName: testCluster, Domain: testDomain, Token: testToken})
	transport.RegisterResponder("POST", testBaseURL+"/lsvolumebackupgeneration/vol0",
		func(req *http.Request) (*http.Response, error) {
			var body map[string]string
			if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
				return nil, err
			}
			assert.Equal(t, map[string]string{"volume": "vol0"}, body)
			return httpmock.NewStringResponse(http.StatusOK, `[]`), nil
		})

	raw, err := client.ObjInfo(ctx, "lsvolumebackupgeneration", map[string]string{"volume": "vol0"}, []string{"vol0"})
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(raw))
	assert.Equal(t, 1, transport.GetTotalCallCount())
}

func TestObjInfo_Errors(t *testing.T) {
	t.Run("not authorized", func(t *testing.T) {
		client, transport := newTestClient(t, ClientConfig{ClusterName: testCluster})
		_, err := client.ObjInfo(ctx, "lshost", nil, nil)
		assert.True(t, errors.IsAuthenticationError(err))
		assert.Equal(t, 0, transport.GetTotalCallCount())
	})

	t.Run("empty command", func(t *testing.T) {
		client, _ := newTestClient(t, ClientConfig{ClusterName: testCluster, Token: testToken})
		_, err := client.ObjInfo(ctx, "", nil, nil)
		assert.True(t, errors.IsInvalidInputError(err))
	})

	t.Run("token rejected", func(t *testing.T) {
		client, transport := newTestClient(t, ClientConfig{ClusterName: testCluster, Domain: testDomain, Token: testToken})
		transport.RegisterResponder("POST", testBaseURL+"/lshost", httpmock.NewStringResponder(http.StatusForbidden, ""))
		_, err := client.ObjInfo(ctx, "lshost", nil, nil)
		assert.True(t, errors.IsAuthenticationError(err))
		assert.Equal(t, http.StatusForbidden, errors.HTTPStatusCode(err))
	})

	t.Run("bad request", func(t *testing.T) {
		client, transport := newTestClient(t, ClientConfig{ClusterName: testCluster, Domain: testDomain, Token: testToken})
		transport.RegisterResponder("POST", testBaseURL+"/lsfoo",
			httpmock.NewStringResponder(http.StatusBadRequest, "CMMVC5786E The action failed"))
		_, err := client.ObjInfo(ctx, "lsfoo", nil, nil)
		assert.Equal(t, http.StatusBadRequest, errors.HTTPStatusCode(err))
		assert.Contains(t, err.Error(), "CMMVC5786E")
	})

	t.Run("connection failure", func(t *testing.T) {
		client, transport := newTestClient(t, ClientConfig{ClusterName: testCluster, Domain: testDomain, Token: testToken})
		transport.RegisterResponder("POST", testBaseURL+"/lshost", httpmock.NewErrorResponder(fmt.Errorf("reset")))
		_, err := client.ObjInfo(ctx, "lshost", nil, nil)
		assert.True(t, errors.IsConnectionError(err))
	})
}

func TestInvoke_DebugTrace(t *testing.T) {
	client, transport := newTestClient(t, ClientConfig{
		ClusterName: testCluster, Domain: testDomain, Username: testUsername, Password: testPassword,
		DebugTraceFlags: map[string]bool{"api": true},
	})
	transport.RegisterResponder("POST", testBaseURL+"/auth", authResponder(t, http.StatusOK, `{"token": "t"}`))
	transport.RegisterResponder("POST", testBaseURL+"/lssystem", httpmock.NewStringResponder(http.StatusOK, `{}`))

	assert.NoError(t, client.Authorize(ctx))
	_, err := client.ObjInfo(ctx, "lssystem", nil, nil)
	assert.NoError(t, err)
	assert.Equal(t, 2, transport.GetTotalCallCount())
}

func isServerError(err error) bool {
	return errors.HTTPStatusCode(err) == http.StatusInternalServerError
}
