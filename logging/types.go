// Copyright 2026 NetApp, Inc. All Rights Reserved.

package logging

import (
	log "github.com/sirupsen/logrus"
)

const (
	ContextKeyRequestID     ContextKey = "requestID"
	ContextKeyRequestSource ContextKey = "requestSource"
	ContextKeyCluster       ContextKey = "cluster"

	ContextSourceCLI     = "CLI"
	ContextSourceLibrary = "Library"
)

// ContextKey is used for context.Context value. The value requires a key that is not primitive type.
type ContextKey string

// LogFields is shorthand for the field map accepted by WithFields.
type LogFields = log.Fields
