// Copyright 2026 NetApp, Inc. All Rights Reserved.

package cmd

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	. "github.com/netapp/svcinfo/logging"
	"github.com/netapp/svcinfo/svc/api"
	"github.com/netapp/svcinfo/svc/info"
)

const capacityProperty = "capacity"

var (
	gatherOptions info.Options
	port          int
	debugTrace    []string

	// newRestClient is replaced in tests to route requests to a mock transport.
	newRestClient = func(config api.ClientConfig) (api.RestClientInterface, error) {
		client, err := api.NewRestClient(config)
		if err != nil {
			return nil, err
		}
		return client, nil
	}
)

func init() {
	RootCmd.AddCommand(gatherCmd)
	gatherCmd.Flags().StringVar(&gatherOptions.ClusterName, "clustername", "",
		"Hostname or IP address of the Spectrum Virtualize cluster")
	gatherCmd.Flags().StringVar(&gatherOptions.Domain, "domain", "", "Domain appended to the cluster name")
	gatherCmd.Flags().IntVar(&port, "port", 0, "REST API port (default 7443)")
	gatherCmd.Flags().StringVar(&gatherOptions.Username, "username", "", "REST API username")
	gatherCmd.Flags().StringVar(&gatherOptions.Password, "password", "", "REST API password")
	gatherCmd.Flags().StringVar(&gatherOptions.Token, "token", "", "Pre-acquired REST API token")
	gatherCmd.Flags().BoolVar(&gatherOptions.ValidateCerts, "validate-certs", false, "Validate the array's certificate")
	gatherCmd.Flags().StringSliceVar(&gatherOptions.GatherSubset, "gather-subset", []string{info.SubsetAll},
		"Categories to gather, comma-separated. One or more of: "+strings.Join(info.SubsetNames(), ", "))
	gatherCmd.Flags().StringVar(&gatherOptions.ObjectName, "objectname", "",
		"Name of a single object to gather; requires exactly one category")
	gatherCmd.Flags().StringVar(&gatherOptions.LogPath, "log-path", "", "Also write logs to this file")
	gatherCmd.Flags().StringSliceVar(&debugTrace, "debug-trace", nil,
		"REST tracing flags: api, sensitive (includes credentials)")
}

var gatherCmd = &cobra.Command{
	Use:   "gather",
	Short: "Gather inventory from a Spectrum Virtualize array",
	Long: `Gather inventory from a Spectrum Virtualize array.

Every flag may also be set through an environment variable named after it,
for example SVC_CLUSTERNAME or SVC_GATHER_SUBSET.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := GenerateRequestContext(cmd.Context(), "", ContextSourceCLI)

		if gatherOptions.LogPath != "" {
			hook, err := InitLogFile(gatherOptions.LogPath, LogFormat)
			if err != nil {
				return err
			}
			defer hook.Close() //nolint
		}

		result, err := gather(ctx, gatherOptions)
		WriteResult(cmd.OutOrStdout(), cmd.ErrOrStderr(), result)
		return err
	},
}

// gather validates the options, then runs one gather pass. The result is never nil.
func gather(ctx context.Context, options info.Options) (*info.Result, error) {
	if _, err := options.Validate(); err != nil {
		return info.NewResult().Fail(err)
	}

	traceFlags := make(map[string]bool, len(debugTrace))
	for _, flag := range debugTrace {
		traceFlags[strings.TrimSpace(flag)] = true
	}

	client, err := newRestClient(api.ClientConfig{
		ClusterName:     options.ClusterName,
		Domain:          options.Domain,
		Port:            port,
		Username:        options.Username,
		Password:        options.Password,
		Token:           options.Token,
		ValidateCerts:   options.ValidateCerts,
		DebugTraceFlags: traceFlags,
	})
	if err != nil {
		return info.NewResult().Fail(err)
	}

	gatherer, err := info.NewGatherer(client, options)
	if err != nil {
		return info.NewResult().Fail(err)
	}

	return gatherer.Apply(ctx)
}

// WriteResult prints a result in the selected output format. Warnings go to errOut in the
// table formats; JSON and YAML carry them in the document.
func WriteResult(out, errOut io.Writer, result *info.Result) {
	switch OutputFormat {
	case FormatJSON:
		WriteJSON(out, result)
		return
	case FormatYAML:
		WriteYAML(out, result)
		return
	case FormatName:
		writeResultNames(out, result)
	case FormatWide:
		writeWideResultTables(out, result)
	default:
		if !result.Failed {
			writeResultSummaryTable(out, result)
		}
	}

	for _, warning := range result.Warnings {
		_, _ = fmt.Fprintf(errOut, "Warning: %s\n", warning)
	}
}

// objectsOf returns the objects stored under a result key; a single mapping is returned as a
// one-element list.
func objectsOf(result *info.Result, key string) []api.Object {
	value, _ := result.Get(key)
	switch objects := value.(type) {
	case []api.Object:
		return objects
	case api.Object:
		return []api.Object{objects}
	default:
		return nil
	}
}

func objectName(object api.Object) string {
	for _, property := range []string{"name", "id"} {
		if value, ok := object[property]; ok && value != nil {
			return fmt.Sprint(value)
		}
	}
	return ""
}

func writeResultNames(out io.Writer, result *info.Result) {
	for _, key := range result.Keys() {
		for _, object := range objectsOf(result, key) {
			_, _ = fmt.Fprintf(out, "%s/%s\n", key, objectName(object))
		}
	}
}

func writeResultSummaryTable(out io.Writer, result *info.Result) {
	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"Category", "Objects", "Capacity"})

	for _, key := range result.Keys() {
		objects := objectsOf(result, key)
		table.Append([]string{
			key,
			fmt.Sprint(len(objects)),
			totalCapacity(objects),
		})
	}

	table.Render()
}

// totalCapacity sums the capacity property of the objects, or returns "" if none has one.
func totalCapacity(objects []api.Object) string {
	var total uint64
	found := false

	for _, object := range objects {
		capacity, ok := object[capacityProperty].(string)
		if !ok {
			continue
		}
		bytes, err := parseCapacity(capacity)
		if err != nil {
			Log().WithField("capacity", capacity).Debug("Could not parse capacity.")
			continue
		}
		total += bytes
		found = true
	}

	if !found {
		return ""
	}
	return humanize.IBytes(total)
}

// parseCapacity reads an array capacity such as "4.00GB". The array reports binary units with
// decimal suffixes, so "GB" is read as GiB.
func parseCapacity(capacity string) (uint64, error) {
	capacity = strings.TrimSpace(capacity)
	if n := len(capacity); n >= 2 && (capacity[n-1] == 'B' || capacity[n-1] == 'b') &&
		strings.ContainsRune("KMGTPEkmgtpe", rune(capacity[n-2])) {
		capacity = capacity[:n-1] + "iB"
	}
	return humanize.ParseBytes(capacity)
}

func writeWideResultTables(out io.Writer, result *info.Result) {
	for _, key := range result.Keys() {
		objects := objectsOf(result, key)

		_, _ = fmt.Fprintf(out, "%s:\n", key)
		if len(objects) == 0 {
			_, _ = fmt.Fprintln(out, "No objects found.")
			continue
		}

		header := propertyNames(objects)
		table := tablewriter.NewWriter(out)
		table.SetHeader(header)
		table.SetAutoFormatHeaders(false)

		for _, object := range objects {
			row := make([]string, 0, len(header))
			for _, property := range header {
				if value, ok := object[property]; ok && value != nil {
					row = append(row, fmt.Sprint(value))
				} else {
					row = append(row, "")
				}
			}
			table.Append(row)
		}

		table.Render()
	}
}

// propertyNames returns the union of the objects' properties with id and name first.
func propertyNames(objects []api.Object) []string {
	seen := make(map[string]bool)
	var names []string

	for _, object := range objects {
		for property := range object {
			if !seen[property] {
				seen[property] = true
				names = append(names, property)
			}
		}
	}

	rank := func(property string) int {
		switch property {
		case "id":
			return 0
		case "name":
			return 1
		default:
			return 2
		}
	}
	sort.Slice(names, func(i, j int) bool {
		if rank(names[i]) != rank(names[j]) {
			return rank(names[i]) < rank(names[j])
		}
		return names[i] < names[j]
	})
	return names
}
