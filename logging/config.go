// Copyright 2026 NetApp, Inc. All Rights Reserved.

package logging

const (
	LogRotationThreshold = 10485760 // 10 MB
	MaxLogEntryLength    = 64000
)
