package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mbaert/mlocate-go/locate"
)

// VersionCommand defines the CLI command parameters for `version`.
type VersionCommand struct {
	ConfigOutput bool `json:"config"`
	JSONOutput   bool `json:"json"`
}

// VersionJSONResult is a struct used to serialize JSON output.
type VersionJSONResult struct {
	Version     string              `json:"version"`
	Spec        string              `json:"db-format"`
	License     string              `json:"license"`
	DigestAlgos []DigestAlgorithmData `json:"digest-algorithms"`
	Bugs        string              `json:"bugs"`
}

// DigestAlgorithmData contains the metadata of a digest algorithm.
type DigestAlgorithmData struct {
	Name    string `json:"name"`
	Default bool   `json:"default"`
}

var versionCommand *VersionCommand

// versionCmd represents `version`: implementation metadata.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "print implementation and database-format metadata",
	RunE: func(cmd *cobra.Command, args []string) error {
		versionCommand = &VersionCommand{
			ConfigOutput: flags.PrintConfig,
			JSONOutput:   flags.JSONOutput,
		}
		return versionCommand.Run()
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

const versionHumanReadable = `version:     %s
db-format:   %s
license:     %s
report bugs: %s

digest algorithms:
(* denotes default algorithm)
`

// Run executes the version subcommand.
func (c *VersionCommand) Run() error {
	if c.ConfigOutput {
		b, err := json.Marshal(c)
		if err != nil {
			return fmt.Errorf(configJSONErrMsg, err)
		}
		w.Println(string(b))
		return nil
	}

	data := VersionJSONResult{
		Version: "0.1.0",
		Spec:    "mlocate db 0",
		License: "MIT",
		Bugs:    "https://github.com/mbaert/mlocate-go/issues/",
	}
	for _, algo := range []locate.DigestAlgorithm{locate.DigestSHA256, locate.DigestSHA3_512} {
		data.DigestAlgos = append(data.DigestAlgos, DigestAlgorithmData{
			Name:    algo.Name(),
			Default: algo == locate.DigestSHA256,
		})
	}

	if c.JSONOutput {
		b, err := json.MarshalIndent(&data, "", "  ")
		if err != nil {
			return fmt.Errorf(resultJSONErrMsg, err)
		}
		w.Println(string(b))
		return nil
	}

	w.Printf(versionHumanReadable, data.Version, data.Spec, data.License, data.Bugs)
	for _, da := range data.DigestAlgos {
		isDefault := ""
		if da.Default {
			isDefault = " *"
		}
		w.Printfln("\t%s%s", da.Name, isDefault)
	}
	return nil
}
