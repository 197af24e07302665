// Copyright 2026 NetApp, Inc. All Rights Reserved.

// Package api defines the contract for talking to a Spectrum Virtualize array's REST management
// interface, plus a minimal client that satisfies it.
package api

//go:generate mockgen -destination=../../mocks/mock_svc/mock_api/mock_api.go github.com/netapp/svcinfo/svc/api RestClientInterface

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
)

// RestClientInterface is the REST collaborator used by the gatherer.
type RestClientInterface interface {
	// Authorize acquires a session token, or validates a pre-acquired one.
	Authorize(ctx context.Context) error
	// ObjInfo issues a listing command such as lshost. The response is either a JSON array of
	// property mappings or a single JSON object.
	ObjInfo(ctx context.Context, cmd string, opts map[string]string, args []string) (json.RawMessage, error)
}

// Object is a property mapping returned verbatim by the array.
type Object map[string]interface{}

// ClientConfig holds configuration data for the REST client.
type ClientConfig struct {
	ClusterName   string
	Domain        string
	Port          int
	Username      string
	Password      string
	Token         string
	ValidateCerts bool

	DebugTraceFlags map[string]bool
}

// Host returns the fully qualified management address of the array.
func (c ClientConfig) Host() string {
	if c.Domain == "" {
		return c.ClusterName
	}
	return c.ClusterName + "." + c.Domain
}

// DecodeObjects decodes a listing response. A single object is returned as a one-element list;
// an empty or null body yields no objects.
func DecodeObjects(raw json.RawMessage) ([]Object, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return []Object{}, nil
	}

	switch trimmed[0] {
	case '[':
		objects := make([]Object, 0)
		if err := json.Unmarshal(trimmed, &objects); err != nil {
			return nil, fmt.Errorf("could not parse object list; %v", err)
		}
		return objects, nil
	case '{':
		var object Object
		if err := json.Unmarshal(trimmed, &object); err != nil {
			return nil, fmt.Errorf("could not parse object; %v", err)
		}
		return []Object{object}, nil
	default:
		return nil, fmt.Errorf("unexpected response body: %s", string(trimmed))
	}
}
