// Copyright 2026 NetApp, Inc. All Rights Reserved.

package logging

import (
	"context"
	"io"
	"os"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	// Disable any standard log output
	log.SetOutput(io.Discard)
	os.Exit(m.Run())
}

func TestLogc(t *testing.T) {
	ctx := context.Background()
	result := Logc(ctx)
	assert.NotNil(t, result, "log entry is nil")
}

//nolint:staticcheck
func TestLogc_NilContext(t *testing.T) {
	result := Logc(nil)
	assert.NotNil(t, result, "log entry is nil")
	assert.Empty(t, result.Data)
}

func TestLogc_ContextWithCluster(t *testing.T) {
	ctx := WithCluster(GenerateRequestContext(context.Background(), "id", ContextSourceCLI), "cluster1")
	result := Logc(ctx)

	assert.Equal(t, "id", result.Data["requestID"])
	assert.Equal(t, ContextSourceCLI, result.Data["requestSource"])
	assert.Equal(t, "cluster1", result.Data[string(ContextKeyCluster)])
}

func TestGenerateRequestContext(t *testing.T) {
	type test struct {
		name           string
		ctx            context.Context
		requestID      string
		requestSource  string
		expectedID     string
		expectedSource string
	}

	tests := []test{
		{
			name: "plain", ctx: context.Background(), requestID: "req", requestSource: ContextSourceCLI,
			expectedID: "req", expectedSource: ContextSourceCLI,
		},
		{
			name: "nil context", ctx: nil, requestID: "req", requestSource: ContextSourceLibrary,
			expectedID: "req", expectedSource: ContextSourceLibrary,
		},
		{
			name: "existing ID wins", ctx: context.WithValue(context.Background(), ContextKeyRequestID, "1234"),
			requestID: "req", requestSource: ContextSourceCLI, expectedID: "1234", expectedSource: ContextSourceCLI,
		},
		{
			name: "existing source wins", ctx: context.WithValue(context.Background(), ContextKeyRequestSource, "src"),
			requestID: "req", requestSource: ContextSourceCLI, expectedID: "req", expectedSource: "src",
		},
		{
			name: "empty source", ctx: context.Background(), requestID: "req", requestSource: "",
			expectedID: "req", expectedSource: "Unknown",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := GenerateRequestContext(tc.ctx, tc.requestID, tc.requestSource)
			assert.Equal(t, tc.expectedID, result.Value(ContextKeyRequestID))
			assert.Equal(t, tc.expectedSource, result.Value(ContextKeyRequestSource))
		})
	}
}

func TestGenerateRequestContext_GeneratesID(t *testing.T) {
	first := GenerateRequestContext(context.Background(), "", ContextSourceCLI)
	second := GenerateRequestContext(context.Background(), "", ContextSourceCLI)

	assert.NotEmpty(t, first.Value(ContextKeyRequestID))
	assert.NotEqual(t, first.Value(ContextKeyRequestID), second.Value(ContextKeyRequestID))
}
