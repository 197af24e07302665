// Copyright 2026 NetApp, Inc. All Rights Reserved.

package logging

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// Log returns an entry without any request context.
func Log() *log.Entry {
	return log.NewEntry(log.StandardLogger())
}

// Logc returns an entry decorated with the request ID and source stored in the context.
func Logc(ctx context.Context) *log.Entry {
	if ctx == nil {
		return Log()
	}

	entry := log.WithFields(log.Fields{
		"requestID":     ctx.Value(ContextKeyRequestID),
		"requestSource": ctx.Value(ContextKeyRequestSource),
	})

	if val := ctx.Value(ContextKeyCluster); val != nil {
		entry = entry.WithField(string(ContextKeyCluster), val)
	}

	return entry
}

func GenerateRequestContext(ctx context.Context, requestID, requestSource string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	} else {
		if v := ctx.Value(ContextKeyRequestID); v != nil {
			requestID = fmt.Sprint(v)
		}
		if v := ctx.Value(ContextKeyRequestSource); v != nil {
			requestSource = fmt.Sprint(v)
		}
	}
	if requestID == "" {
		requestID = uuid.New().String()
	}
	if requestSource == "" {
		requestSource = "Unknown"
	}
	ctx = context.WithValue(ctx, ContextKeyRequestID, requestID)
	ctx = context.WithValue(ctx, ContextKeyRequestSource, requestSource)
	return ctx
}

// WithCluster records the array being queried so every entry logged under ctx carries it.
func WithCluster(ctx context.Context, cluster string) context.Context {
	return context.WithValue(ctx, ContextKeyCluster, cluster)
}
