package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mbaert/mlocate-go/locate"
)

// DupsCommand defines the CLI command parameters for `dups`.
type DupsCommand struct {
	Paths        []string `json:"paths"`
	Algorithm    string   `json:"digest-algorithm"`
	ConfigOutput bool     `json:"config"`
	JSONOutput   bool     `json:"json"`
}

var dupsCommand *DupsCommand

// dupsCmd represents `dups`: report directory subtrees whose recursive
// content digest is shared by more than one path (spec.md §4.6-4.7).
var dupsCmd = &cobra.Command{
	Use:   "dups [paths...]",
	Short: "report directory subtrees duplicated by recursive content digest",
	Long: `dups hashes every directory's entry list, rolled up recursively into
every ancestor still on the traversal stack, and reports the topmost
subtrees that share a digest with another subtree elsewhere in the
database. Positional arguments restrict the directories considered to
those whose path matches one of the given patterns (glob by default);
with no arguments, every directory is considered.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		dupsCommand = &DupsCommand{
			Paths:        args,
			Algorithm:    flags.DigestAlgorithm,
			ConfigOutput: flags.PrintConfig,
			JSONOutput:   flags.JSONOutput,
		}
		return dupsCommand.Run()
	},
}

func init() {
	rootCmd.AddCommand(dupsCmd)
}

// Run executes the dups subcommand.
func (c *DupsCommand) Run() error {
	if c.ConfigOutput {
		b, err := json.Marshal(c)
		if err != nil {
			return fmt.Errorf(configJSONErrMsg, err)
		}
		w.Println(string(b))
		return nil
	}

	algo, err := locate.DigestAlgorithmFromString(c.Algorithm)
	if err != nil {
		return err
	}

	selectors, err := locate.CompilePatterns(c.Paths, flags.UseRegex, flags.IgnoreCase)
	if err != nil {
		return err
	}

	d, obs, opened, err := openDatabase()
	if err != nil {
		return err
	}
	if !opened {
		return nil
	}
	defer d.Close()

	sets, err := locate.NewDriver(d).Dups(selectors, algo, flags.MaxInputDirs)
	if err != nil {
		return err
	}

	if c.JSONOutput {
		printDupsJSON(sets)
		return nil
	}
	printDupsReport(sets, obs)
	return nil
}

func printDupsReport(sets []locate.DuplicateSet, obs locate.Observer) {
	w.Println("Reporting Duplicates")
	for _, s := range sets {
		w.Printfln("* %s : %d potential duplicates (%s)", s.Digest, len(s.Paths), s.Class)
		for _, p := range s.Paths {
			w.Printfln("    %s", locate.SafeDecode([]byte(p), "", obs))
		}
	}
}

type dupsJSONSet struct {
	Digest string   `json:"digest"`
	Class  string   `json:"class"`
	Paths  []string `json:"paths"`
}

func printDupsJSON(sets []locate.DuplicateSet) {
	out := make([]dupsJSONSet, 0, len(sets))
	for _, s := range sets {
		out = append(out, dupsJSONSet{Digest: s.Digest, Class: s.Class.String(), Paths: s.Paths})
	}
	b, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		log.Printf(resultJSONErrMsg, err)
		return
	}
	w.Println(string(b))
}
