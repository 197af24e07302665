// Copyright 2026 NetApp, Inc. All Rights Reserved.

// Package version parses and compares array firmware code levels such as
// "8.5.3.1 (build 163.7.2212281621000)".
package version

import (
	"fmt"
	"strings"

	k8sversion "k8s.io/apimachinery/pkg/util/version"
)

type Version = k8sversion.Version

// ParseCodeLevel parses the leading dotted part of a code level string. Anything after the
// first whitespace, such as a build annotation, is ignored.
func ParseCodeLevel(codeLevel string) (*Version, error) {
	fields := strings.Fields(codeLevel)
	if len(fields) == 0 {
		return nil, fmt.Errorf("empty code level")
	}
	v, err := k8sversion.ParseGeneric(fields[0])
	if err != nil {
		return nil, fmt.Errorf("could not parse code level %q; %v", codeLevel, err)
	}
	return v, nil
}

// ParseSemantic parses a strict semantic version such as a program version.
func ParseSemantic(semver string) (*Version, error) {
	return k8sversion.ParseSemantic(semver)
}
