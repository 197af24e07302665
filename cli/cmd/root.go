// Copyright 2026 NetApp, Inc. All Rights Reserved.

package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ghodss/yaml"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/netapp/svcinfo/config"
	. "github.com/netapp/svcinfo/logging"
)

const (
	FormatJSON = "json"
	FormatName = "name"
	FormatWide = "wide"
	FormatYAML = "yaml"

	ExitCodeSuccess = 0
	ExitCodeFailure = 1
)

var (
	ExitCode int

	Debug        bool
	OutputFormat string
	LogLevel     string
	LogFormat    string
)

var RootCmd = &cobra.Command{
	SilenceUsage: true,
	Use:          config.ProgramName,
	Short:        "A CLI tool for gathering Spectrum Virtualize inventory",
	Long:         `A CLI tool that reads volumes, hosts, pools and other objects from an IBM Spectrum Virtualize array`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := applyEnvDefaults(cmd.Flags()); err != nil {
			return err
		}
		return initCmdLogging()
	},
}

func init() {
	RootCmd.PersistentFlags().BoolVarP(&Debug, "debug", "d", false, "Debug output")
	RootCmd.PersistentFlags().StringVarP(&OutputFormat, "output", "o", "",
		"Output format. One of json|yaml|name|wide|summary (default)")
	RootCmd.PersistentFlags().StringVar(&LogLevel, "log-level", "info", "Logging level (trace, debug, info, warn, error)")
	RootCmd.PersistentFlags().StringVar(&LogFormat, "log-format", "text", "Logging format (text, json)")
}

func initCmdLogging() error {
	if err := InitLogLevel(Debug, LogLevel); err != nil {
		return err
	}
	return InitLogFormat(LogFormat)
}

// envVarName maps a flag name to its environment fallback, e.g. gather-subset -> SVC_GATHER_SUBSET.
func envVarName(flagName string) string {
	return config.EnvPrefix + "_" + strings.ToUpper(strings.ReplaceAll(flagName, "-", "_"))
}

// applyEnvDefaults sets every flag not given on the command line from its environment variable.
func applyEnvDefaults(flags *pflag.FlagSet) error {
	var err error
	flags.VisitAll(func(flag *pflag.Flag) {
		if err != nil || flag.Changed {
			return
		}
		value, ok := os.LookupEnv(envVarName(flag.Name))
		if !ok {
			return
		}
		if setErr := flags.Set(flag.Name, value); setErr != nil {
			err = fmt.Errorf("invalid value for %s: %v", envVarName(flag.Name), setErr)
		}
	})
	return err
}

func WriteJSON(out io.Writer, v interface{}) {
	jsonBytes, _ := json.MarshalIndent(v, "", "  ")
	_, _ = fmt.Fprintln(out, string(jsonBytes))
}

func WriteYAML(out io.Writer, v interface{}) {
	jsonBytes, _ := json.Marshal(v)
	yamlBytes, _ := yaml.JSONToYAML(jsonBytes)
	_, _ = fmt.Fprintln(out, string(yamlBytes))
}

func SetExitCodeFromError(err error) {
	ExitCode = GetExitCodeFromError(err)
}

func GetExitCodeFromError(err error) int {
	if err == nil {
		return ExitCodeSuccess
	}
	return ExitCodeFailure
}
