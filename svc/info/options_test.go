// Copyright 2026 NetApp, Inc. All Rights Reserved.

package info

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/netapp/svcinfo/utils/errors"
)

func TestOptionsValidate(t *testing.T) {
	tests := []struct {
		name        string
		modify      func(*Options)
		errContains []string
	}{
		{name: "valid", modify: func(o *Options) {}},
		{name: "token only", modify: func(o *Options) { o.Username, o.Password, o.Token = "", "", "abc" }},
		{
			name:        "missing cluster",
			modify:      func(o *Options) { o.ClusterName = " " },
			errContains: []string{"clustername is required"},
		},
		{
			name:        "missing password",
			modify:      func(o *Options) { o.Password = "" },
			errContains: []string{"either token or username and password are required"},
		},
		{
			name:        "everything missing",
			modify:      func(o *Options) { *o = Options{} },
			errContains: []string{"clustername is required", "either token or username and password are required"},
		},
		{
			name:        "unknown subset",
			modify:      func(o *Options) { o.GatherSubset = []string{"hosts"} },
			errContains: []string{"unsupported gather_subset value(s): hosts"},
		},
		{
			name: "objectname with several categories",
			modify: func(o *Options) {
				o.GatherSubset = []string{"vol,host"}
				o.ObjectName = "vol0"
			},
			errContains: []string{"objectname can only be used with a single gather_subset category"},
		},
		{
			name:        "objectname with all",
			modify:      func(o *Options) { o.ObjectName = "vol0" },
			errContains: []string{"objectname can only be used"},
		},
		{
			name:        "objectname required",
			modify:      func(o *Options) { o.GatherSubset = []string{"cloudbackupgeneration"} },
			errContains: []string{"objectname is required for cloudbackupgeneration"},
		},
		{
			name: "objectname with one category",
			modify: func(o *Options) {
				o.GatherSubset = []string{"cloudbackupgeneration"}
				o.ObjectName = "vol0"
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			options := testOptions()
			test.modify(&options)

			selected, err := options.Validate()
			if len(test.errContains) == 0 {
				assert.NoError(t, err)
				assert.NotEmpty(t, selected)
				return
			}

			require.Error(t, err)
			assert.Nil(t, selected)
			assert.True(t, errors.IsInvalidInputError(err))
			for _, msg := range test.errContains {
				assert.Contains(t, err.Error(), msg)
			}
		})
	}
}
