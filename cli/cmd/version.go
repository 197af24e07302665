// Copyright 2026 NetApp, Inc. All Rights Reserved.

package cmd

import (
	"io"
	"runtime"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/netapp/svcinfo/config"
	"github.com/netapp/svcinfo/utils/version"
)

type ClientVersion struct {
	Version      string `json:"version"`
	MajorVersion uint   `json:"majorVersion"`
	MinorVersion uint   `json:"minorVersion"`
	PatchVersion uint   `json:"patchVersion"`
	BuildTime    string `json:"buildTime"`
	GoVersion    string `json:"goVersion"`
}

type VersionResponse struct {
	Client ClientVersion `json:"client"`
}

func init() {
	RootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version of " + config.ProgramName,
	RunE: func(cmd *cobra.Command, args []string) error {
		clientVersion, err := getClientVersion()
		if err != nil {
			return err
		}
		writeVersion(cmd.OutOrStdout(), clientVersion)
		return nil
	},
}

func getClientVersion() (*VersionResponse, error) {
	programVersion, err := version.ParseSemantic(config.ProgramVersion)
	if err != nil {
		return nil, err
	}

	return &VersionResponse{
		Client: ClientVersion{
			Version:      programVersion.String(),
			MajorVersion: programVersion.Major(),
			MinorVersion: programVersion.Minor(),
			PatchVersion: programVersion.Patch(),
			BuildTime:    config.BuildTime,
			GoVersion:    runtime.Version(),
		},
	}, nil
}

func writeVersion(out io.Writer, response *VersionResponse) {
	switch OutputFormat {
	case FormatJSON:
		WriteJSON(out, response)
	case FormatYAML:
		WriteYAML(out, response)
	case FormatWide:
		writeWideVersionTable(out, response)
	default:
		writeVersionTable(out, response)
	}
}

func writeVersionTable(out io.Writer, response *VersionResponse) {
	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"Client Version"})
	table.Append([]string{response.Client.Version})
	table.Render()
}

func writeWideVersionTable(out io.Writer, response *VersionResponse) {
	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"Client Version", "Build Time", "Go Version"})
	table.Append([]string{response.Client.Version, response.Client.BuildTime, response.Client.GoVersion})
	table.Render()
}
