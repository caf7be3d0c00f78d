package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/mbaert/mlocate-go/locate"
)

// TreeCommand defines the CLI command parameters for `tree`.
type TreeCommand struct {
	Patterns     []string `json:"patterns"`
	MaxDirs      int      `json:"max-dirs"`
	MaxDepth     int      `json:"max-depth"`
	Indent       string   `json:"indent"`
	ConfigOutput bool     `json:"config"`
	JSONOutput   bool     `json:"json"`
}

var treeCommand *TreeCommand
var argTreeMaxDirs int
var argTreeMaxDepth int
var argTreeIndent string

// treeCmd represents `tree`: render ASCII subtrees rooted at directories
// matching the given patterns (spec.md §4.8).
var treeCmd = &cobra.Command{
	Use:   "tree [patterns...]",
	Short: "render subtrees rooted at directories matching the given patterns",
	Long: `tree walks the directory stream and, whenever a path matches one of the
given root patterns, accumulates every following path sharing that root
as a prefix into one subtree, rendered with box-drawing glyphs on a
terminal, dash bullets when stdout is not a terminal, or, with --indent,
one basename per line. With no patterns, no directory is a root candidate
and nothing is rendered.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		treeCommand = &TreeCommand{
			Patterns:     args,
			MaxDirs:      argTreeMaxDirs,
			MaxDepth:     argTreeMaxDepth,
			Indent:       argTreeIndent,
			ConfigOutput: flags.PrintConfig,
			JSONOutput:   flags.JSONOutput,
		}
		return treeCommand.Run()
	},
}

func init() {
	rootCmd.AddCommand(treeCmd)
	treeCmd.Flags().IntVarP(&argTreeMaxDirs, "max-dirs", "M", 0, "maximum subtrees reported (0 = unlimited)")
	treeCmd.Flags().IntVarP(&argTreeMaxDepth, "max-depth", "l", 0, "maximum rendered depth per subtree (0 = unlimited; not applied with --indent)")
	treeCmd.Flags().StringVar(&argTreeIndent, "indent", "", "if non-empty, show one basename per line indented by repeating this string")
}

// Run executes the tree subcommand.
func (c *TreeCommand) Run() error {
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

	d, _, opened, err := openDatabase()
	if err != nil {
		return err
	}
	if !opened {
		return nil
	}
	defer d.Close()

	results, err := locate.NewDriver(d).Tree(patterns, flags.MaxInputDirs, c.MaxDirs)
	if err != nil {
		return err
	}

	if c.JSONOutput {
		printTreeJSON(results)
		return nil
	}
	printTreeRender(results, c)
	return nil
}

type treeJSONResult struct {
	Root string    `json:"root"`
	Tree *treeJSON `json:"tree"`
}

type treeJSON struct {
	Segment  string      `json:"segment"`
	Children []*treeJSON `json:"children,omitempty"`
}

func toTreeJSON(n *locate.TreeNode) *treeJSON {
	out := &treeJSON{Segment: n.Segment}
	for _, c := range n.Children {
		out.Children = append(out.Children, toTreeJSON(c))
	}
	return out
}

func printTreeJSON(results []locate.TreeResult) {
	out := make([]treeJSONResult, 0, len(results))
	for _, r := range results {
		out = append(out, treeJSONResult{Root: r.Root, Tree: toTreeJSON(r.Tree.Root)})
	}
	b, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		log.Printf(resultJSONErrMsg, err)
		return
	}
	w.Println(string(b))
}

func printTreeRender(results []locate.TreeResult, c *TreeCommand) {
	plain := !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd())
	for _, r := range results {
		w.Printfln("%s", r.Root)
		switch {
		case c.Indent != "":
			w.Print(locate.RenderIndent(r.Tree.Root, c.Indent))
		case plain:
			w.Print(locate.RenderDash(r.Tree.Root, c.MaxDepth))
		default:
			w.Print(locate.RenderBox(r.Tree.Root, c.MaxDepth))
		}
	}
}
