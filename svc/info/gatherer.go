// Copyright 2026 NetApp, Inc. All Rights Reserved.

// Package info gathers read-only inventory from a Spectrum Virtualize array. Callers select
// categories of objects (volumes, hosts, pools and so on), and categories the array's code
// level does not support are skipped with a warning.
package info

import (
	"context"
	"fmt"

	. "github.com/netapp/svcinfo/logging"
	"github.com/netapp/svcinfo/svc/api"
	"github.com/netapp/svcinfo/utils/errors"
	"github.com/netapp/svcinfo/utils/version"
)

const codeLevelProperty = "code_level"

// Gatherer runs one gather pass against one array.
type Gatherer struct {
	client     api.RestClientInterface
	options    Options
	categories []Category

	// system caches the lssystem mapping once fetched; it is used both for code level checks
	// and for the system category.
	system    api.Object
	codeLevel *version.Version
}

// NewGatherer validates the options before anything touches the network.
func NewGatherer(client api.RestClientInterface, options Options) (*Gatherer, error) {
	if client == nil {
		return nil, errors.InvalidInputError("a REST client is required")
	}

	selected, err := options.Validate()
	if err != nil {
		return nil, err
	}

	return &Gatherer{
		client:     client,
		options:    options,
		categories: selected,
	}, nil
}

// Categories returns the categories this gatherer will fetch, in fetch order.
func (g *Gatherer) Categories() []Category {
	return append([]Category(nil), g.categories...)
}

// Apply authorizes and fetches every selected category. The returned result is never nil; on
// error it is marked failed and carries the error message. A request ID already on ctx is kept.
func (g *Gatherer) Apply(ctx context.Context) (*Result, error) {
	ctx = WithCluster(GenerateRequestContext(ctx, "", ContextSourceLibrary), g.options.ClusterName)
	result := NewResult()

	Logc(ctx).WithField("categories", len(g.categories)).Debug(">>>> Apply")
	defer Logc(ctx).Debug("<<<< Apply")

	if err := g.client.Authorize(ctx); err != nil {
		Logc(ctx).WithError(err).Error("Could not authorize.")
		return result.Fail(fmt.Errorf("authorization failed; %w", err))
	}

	for _, c := range g.categories {
		supported, err := g.isCategorySupported(ctx, c)
		if err != nil {
			Logc(ctx).WithField("category", c.Name).WithError(err).Error("Could not check category support.")
			return result.Fail(fmt.Errorf("error gathering %s; %w", c.Name, err))
		}
		if !supported {
			result.AddWarning("%s is not supported at code level %s; %s or later is required",
				c.Name, g.codeLevelString(), c.MinCodeLevel)
			Logc(ctx).WithFields(LogFields{
				"category":     c.Name,
				"codeLevel":    g.codeLevelString(),
				"minCodeLevel": c.MinCodeLevel,
			}).Warning("Skipping unsupported category.")
			continue
		}

		objects, err := g.listObjects(ctx, c)
		if err != nil {
			fields := LogFields{"category": c.Name}
			if status := errors.HTTPStatusCode(err); status != 0 {
				fields["httpStatus"] = status
			}
			Logc(ctx).WithFields(fields).WithError(err).Error("Could not gather category.")
			return result.Fail(fmt.Errorf("error gathering %s; %w", c.Name, err))
		}
		result.Set(c.ResultKey, objects)
	}

	Logc(ctx).WithField("gathered", len(result.Keys())).Info("Gather complete.")

	return result, nil
}

// ListObjects fetches one category by its gather_subset name. Single-object categories return
// an api.Object; all others return []api.Object. The client must already be authorized.
func (g *Gatherer) ListObjects(ctx context.Context, name string) (interface{}, error) {
	c, ok := LookupCategory(name)
	if !ok {
		return nil, errors.NotFoundError("unknown category %s", name)
	}

	supported, err := g.isCategorySupported(ctx, c)
	if err != nil {
		return nil, err
	}
	if !supported {
		return nil, errors.UnsupportedError("%s requires code level %s or later", c.Name, c.MinCodeLevel)
	}

	return g.listObjects(ctx, c)
}

func (g *Gatherer) GetVolumesList(ctx context.Context) ([]api.Object, error) {
	return g.listOf(ctx, "vol")
}

func (g *Gatherer) GetPoolsList(ctx context.Context) ([]api.Object, error) {
	return g.listOf(ctx, "pool")
}

func (g *Gatherer) GetHostsList(ctx context.Context) ([]api.Object, error) {
	return g.listOf(ctx, "host")
}

func (g *Gatherer) GetVolumeGroupList(ctx context.Context) ([]api.Object, error) {
	return g.listOf(ctx, "volumegroup")
}

func (g *Gatherer) GetSnapshotList(ctx context.Context) ([]api.Object, error) {
	return g.listOf(ctx, "snapshot")
}

// GetSystem returns the lssystem mapping.
func (g *Gatherer) GetSystem(ctx context.Context) (api.Object, error) {
	system, err := g.ListObjects(ctx, systemCategoryName)
	if err != nil {
		return nil, err
	}
	return system.(api.Object), nil
}

func (g *Gatherer) listOf(ctx context.Context, name string) ([]api.Object, error) {
	objects, err := g.ListObjects(ctx, name)
	if err != nil {
		return nil, err
	}
	return objects.([]api.Object), nil
}

// IsCodeLevelSupported reports whether the array runs at least the given code level. The array's
// code level is read once from lssystem and cached. An array whose code level cannot be parsed
// is treated as not supporting anything gated.
func (g *Gatherer) IsCodeLevelSupported(ctx context.Context, minimum string) (bool, error) {
	minVersion, err := version.ParseCodeLevel(minimum)
	if err != nil {
		return false, errors.InvalidInputError("invalid minimum code level %q", minimum)
	}

	if g.codeLevel == nil {
		system, err := g.systemInfo(ctx)
		if err != nil {
			return false, fmt.Errorf("could not determine code level; %w", err)
		}

		codeLevel, _ := system[codeLevelProperty].(string)
		if g.codeLevel, err = version.ParseCodeLevel(codeLevel); err != nil {
			Logc(ctx).WithError(err).Warning("Could not parse array code level.")
			return false, nil
		}

		Logc(ctx).WithField("codeLevel", g.codeLevel.String()).Debug("Read array code level.")
	}

	return g.codeLevel.AtLeast(minVersion), nil
}

func (g *Gatherer) isCategorySupported(ctx context.Context, c Category) (bool, error) {
	if c.MinCodeLevel == "" {
		return true, nil
	}
	return g.IsCodeLevelSupported(ctx, c.MinCodeLevel)
}

func (g *Gatherer) codeLevelString() string {
	if g.codeLevel == nil {
		return "unknown"
	}
	return g.codeLevel.String()
}

// systemInfo returns the lssystem mapping, fetching it on first use. Both a bare mapping and a
// one-element list are accepted.
func (g *Gatherer) systemInfo(ctx context.Context) (api.Object, error) {
	if g.system != nil {
		return g.system, nil
	}

	system, _ := LookupCategory(systemCategoryName)
	raw, err := g.client.ObjInfo(ctx, system.Command, nil, nil)
	if err != nil {
		return nil, err
	}

	objects, err := api.DecodeObjects(raw)
	if err != nil {
		return nil, err
	}
	if len(objects) == 0 {
		return nil, errors.NotFoundError("%s returned no system information", system.Command)
	}

	g.system = objects[0]
	return g.system, nil
}

// objectNameFor returns the object name if c is the single category it was given for.
func (g *Gatherer) objectNameFor(c Category) string {
	if g.options.ObjectName == "" || len(g.categories) != 1 || g.categories[0].Name != c.Name {
		return ""
	}
	return g.options.ObjectName
}

func (g *Gatherer) listObjects(ctx context.Context, c Category) (interface{}, error) {
	var opts map[string]string
	var args []string

	objectName := g.objectNameFor(c)
	if objectName != "" {
		if c.ObjectNameOption != "" {
			opts = map[string]string{c.ObjectNameOption: objectName}
		} else {
			args = []string{objectName}
		}
	}

	fields := LogFields{"category": c.Name, "command": c.Command}
	if objectName != "" {
		fields["objectName"] = objectName
	}
	Logc(ctx).WithFields(fields).Debug("Listing objects.")

	if c.Name == systemCategoryName && opts == nil && args == nil {
		return g.systemInfo(ctx)
	}

	raw, err := g.client.ObjInfo(ctx, c.Command, opts, args)
	if err != nil {
		return nil, err
	}

	objects, err := api.DecodeObjects(raw)
	if err != nil {
		return nil, err
	}

	if c.Single {
		if len(objects) == 0 {
			return api.Object{}, nil
		}
		return objects[0], nil
	}

	Logc(ctx).WithFields(fields).WithField("count", len(objects)).Trace("Listed objects.")

	return objects, nil
}
