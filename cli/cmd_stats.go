package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mbaert/mlocate-go/locate"
)

// StatsCommand defines the CLI command parameters for `stats`.
type StatsCommand struct {
	ConfigOutput bool `json:"config"`
	JSONOutput   bool `json:"json"`
}

var statsCommand *StatsCommand

// statsCmd represents `stats`: a single-pass summary of the database's
// directory stream, with no filesystem access.
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "summarize the database's directory and entry counts",
	Long: `stats reads every directory block in the database once, tallying
directory and entry counts, the file/subdir split, maximum path depth,
and the largest single directory's entry count.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		statsCommand = &StatsCommand{
			ConfigOutput: flags.PrintConfig,
			JSONOutput:   flags.JSONOutput,
		}
		return statsCommand.Run()
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

type statsJSONResult struct {
	Root          string `json:"root"`
	CountDirs     uint32 `json:"count-dirs"`
	CountEntries  uint32 `json:"count-entries"`
	CountSubdirs  uint32 `json:"count-subdirs"`
	CountFiles    uint32 `json:"count-files"`
	MaxDepth      uint32 `json:"max-depth"`
	MaxEntryCount uint32 `json:"max-entry-count"`
}

// Run executes the stats subcommand.
func (c *StatsCommand) Run() error {
	if c.ConfigOutput {
		b, err := json.Marshal(c)
		if err != nil {
			return fmt.Errorf(configJSONErrMsg, err)
		}
		w.Println(string(b))
		return nil
	}

	d, obs, opened, err := openDatabase()
	if err != nil {
		return err
	}
	if !opened {
		return nil
	}
	defer d.Close()

	s, err := locate.GenerateStats(d, flags.MaxInputDirs)
	if err != nil {
		return err
	}

	if c.JSONOutput {
		out := statsJSONResult{
			Root:          locate.SafeDecode(d.Header.Root, "", obs),
			CountDirs:     s.CountDirs,
			CountEntries:  s.CountEntries,
			CountSubdirs:  s.CountSubdirs,
			CountFiles:    s.CountFiles,
			MaxDepth:      s.MaxDepth,
			MaxEntryCount: s.MaxEntryCount,
		}
		b, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return fmt.Errorf(resultJSONErrMsg, err)
		}
		w.Println(string(b))
		return nil
	}

	w.Println(s.String())
	return nil
}
