package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mbaert/mlocate-go/locate"
)

// FindCommand defines the CLI command parameters for `find`.
type FindCommand struct {
	Patterns       []string `json:"patterns"`
	MaxDirs        int      `json:"max-dirs"`
	MaxMatches     int      `json:"max-matches"`
	Action         string   `json:"action"`
	ConfigOutput   bool     `json:"config"`
	JSONOutput     bool     `json:"json"`
}

var findCommand *FindCommand
var argFindMaxDirs int
var argFindMaxMatches int
var argFindAction string

// findCmd represents `find`: list directories whose entries match a
// pattern set (spec.md §6).
var findCmd = &cobra.Command{
	Use:   "find [patterns...]",
	Short: "find directories with entries matching the given patterns",
	Long: `find filters the directories in the database by their entry names.
Each positional argument is a pattern (shell glob by default, or a regex
with --regex); a directory is reported if any entry name matches any
pattern.`,
	Args: func(cmd *cobra.Command, args []string) error {
		findCommand = &FindCommand{
			Patterns:     args,
			MaxDirs:      argFindMaxDirs,
			MaxMatches:   argFindMaxMatches,
			Action:       argFindAction,
			ConfigOutput: flags.PrintConfig,
			JSONOutput:   flags.JSONOutput,
		}
		switch findCommand.Action {
		case "test", "count", "list", "json":
		default:
			return fmt.Errorf(`expected -a one of test, count, list, json; got %q`, findCommand.Action)
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return findCommand.Run()
	},
}

func init() {
	rootCmd.AddCommand(findCmd)
	findCmd.Flags().IntVarP(&argFindMaxDirs, "max-dirs", "M", 0, "maximum directories reported (0 = unlimited)")
	findCmd.Flags().IntVarP(&argFindMaxMatches, "max-matches", "m", 0, "maximum matches reported per directory (0 = unlimited)")
	findCmd.Flags().StringVarP(&argFindAction, "action", "a", "list", "output form: test, count, list, json")
}

// Run executes the find subcommand, writing results to the shared Output w.
func (c *FindCommand) Run() error {
	if c.ConfigOutput {
		b, err := json.Marshal(c)
		if err != nil {
			return fmt.Errorf(configJSONErrMsg, err)
		}
		w.Println(string(b))
		return nil
	}

	patterns, err := locate.CompilePatterns(c.Patterns, flags.UseRegex, flags.IgnoreCase)
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

	limitMatch := c.MaxMatches
	if c.Action == "test" {
		limitMatch = 1
	}

	results, err := locate.NewDriver(d).Find(patterns, flags.MaxInputDirs, c.MaxDirs, limitMatch)
	if err != nil {
		return err
	}

	switch c.Action {
	case "json":
		printFindJSON(results, obs)
	case "list":
		printFindList(results, obs)
	case "count":
		printFindCount(results, obs)
	case "test":
		printFindTest(results, obs)
	}
	return nil
}

func printFindTest(results []locate.FindResult, obs locate.Observer) {
	for _, r := range results {
		w.Printfln("%s %s", r.Block.MTime.Format("2006-01-02 15:04:05.000000"), locate.SafeDecode(r.Block.Path, "", obs))
	}
}

// truncatePath shortens path to fit a terminal of the given width (0 means
// unknown/not a terminal, in which case it is left untouched), replacing
// the cut middle with an ellipsis so both the leading and trailing
// segments of a long path stay visible.
func truncatePath(path string, width int) string {
	if width <= 0 || len(path) <= width {
		return path
	}
	if width < 5 {
		return path
	}
	keep := (width - 3) / 2
	return path[:keep] + "..." + path[len(path)-keep:]
}

func printFindCount(results []locate.FindResult, obs locate.Observer) {
	for _, r := range results {
		w.Printfln("[%s] %d matches in %s", r.Block.MTime.Format("2006-01-02 15:04:05.000000"), len(r.Matches), locate.SafeDecode(r.Block.Path, "", obs))
	}
}

func printFindList(results []locate.FindResult, obs locate.Observer) {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		width = 0
	}
	for _, r := range results {
		path := locate.SafeDecode(r.Block.Path, "", obs)
		w.Printfln("* %s %s", r.Block.MTime.Format("2006-01-02 15:04:05.000000"), truncatePath(path, width))
		for _, e := range r.Matches {
			suffix := ""
			if e.IsSubdir {
				suffix = "/"
			}
			w.Printfln("    - %s%s", locate.SafeDecode(e.Name, path+"/", obs), suffix)
		}
	}
}

type findJSONEntry struct {
	Name    string          `json:"name"`
	DT      string          `json:"dt"`
	Matches [][]interface{} `json:"matches"`
}

func printFindJSON(results []locate.FindResult, obs locate.Observer) {
	entries := make([]findJSONEntry, 0, len(results))
	for _, r := range results {
		path := locate.SafeDecode(r.Block.Path, "", obs)
		matches := make([][]interface{}, 0, len(r.Matches))
		for _, e := range r.Matches {
			matches = append(matches, []interface{}{e.IsSubdir, locate.SafeDecode(e.Name, path+"/", obs)})
		}
		entries = append(entries, findJSONEntry{
			Name:    path,
			DT:      r.Block.MTime.Format("2006-01-02 15:04:05.000000"),
			Matches: matches,
		})
	}
	b, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		log.Printf(resultJSONErrMsg, err)
		return
	}
	w.Println(string(b))
}
