// Copyright 2026 NetApp, Inc. All Rights Reserved.

package config

import (
	"crypto/tls"
	"fmt"
	"time"
)

const (
	/* Misc. program constants */
	ProgramName    = "svcinfo"
	programVersion = "1.4.0"

	/* REST API constants */
	DefaultRESTPort     = 7443
	RESTAPIBasePath     = "/rest/v1"
	RESTAPITimeout      = 60 * time.Second
	RESTAuthPath        = "/auth"
	RESTAuthTokenHeader = "X-Auth-Token"
	RESTUsernameHeader  = "X-Auth-Username"
	RESTPasswordHeader  = "X-Auth-Password"

	/* Environment */
	EnvPrefix = "SVC"

	MinTLSVersion = tls.VersionTLS12
)

var (
	// BuildHash is the git hash the binary was built from
	BuildHash = "unknown"

	// BuildType is the type of build: custom, beta or stable
	BuildType = "custom"

	// BuildTypeRev is the revision of the build
	BuildTypeRev = "0"

	// BuildTime is the time the binary was built
	BuildTime = "unknown"

	ProgramVersion = version()
)

func version() string {

	var version string

	if BuildType != "stable" {
		if BuildType == "custom" {
			version = fmt.Sprintf("%v-%v+%v", programVersion, BuildType, BuildHash)
		} else {
			version = fmt.Sprintf("%v-%v.%v+%v", programVersion, BuildType, BuildTypeRev, BuildHash)
		}
	} else {
		version = programVersion
	}

	return version
}
