// Copyright 2026 NetApp, Inc. All Rights Reserved.

package info

import (
	"strings"

	"github.com/netapp/svcinfo/utils/errors"
)

// Options are the caller-supplied parameters of a gather run.
type Options struct {
	ClusterName   string
	Domain        string
	Username      string
	Password      string
	Token         string
	ValidateCerts bool
	LogPath       string

	// GatherSubset holds gather_subset values; each may itself be a comma-separated list.
	GatherSubset []string
	// ObjectName narrows a single-category request to one named object.
	ObjectName string
}

// Validate checks the options and returns the categories they select. All problems are
// reported together.
func (o *Options) Validate() ([]Category, error) {
	var err error

	if strings.TrimSpace(o.ClusterName) == "" {
		err = errors.Append(err, errors.InvalidInputError("clustername is required"))
	}
	if o.Token == "" && (o.Username == "" || o.Password == "") {
		err = errors.Append(err, errors.InvalidInputError("either token or username and password are required"))
	}

	selected, parseErr := ParseSubset(o.GatherSubset)
	if parseErr != nil {
		return nil, errors.Append(err, parseErr)
	}

	if o.ObjectName != "" && len(selected) != 1 {
		err = errors.Append(err, errors.InvalidInputError(
			"objectname can only be used with a single gather_subset category, got %d", len(selected)))
	}
	for _, c := range selected {
		if c.RequiresObjectName && o.ObjectName == "" {
			err = errors.Append(err, errors.InvalidInputError("objectname is required for %s", c.Name))
		}
	}

	if err != nil {
		return nil, err
	}
	return selected, nil
}
