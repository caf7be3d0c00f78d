package main

import (
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/mbaert/mlocate-go/locate"
)

// rootCmd is the mlocatetool entry point: a database path, logging and
// matching options shared by every subcommand (spec.md §6).
var rootCmd = &cobra.Command{
	Use:   "mlocatetool",
	Short: "query an mlocate locate-database without touching the live filesystem",
	Long: `mlocatetool reads a locate-style index produced by a filesystem indexer
and answers queries against it directly: find directories whose entries
match a pattern, detect duplicate directory subtrees by recursive content
digest, or render ASCII tree views of selected subtrees.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Remember which flags the user set explicitly so they can be
		// re-applied after the config file, which otherwise would
		// overwrite them — precedence is default < config file < flag.
		explicit := make(map[string]string)
		cmd.Flags().Visit(func(f *pflag.Flag) {
			explicit[f.Name] = f.Value.String()
		})

		if argConfigFile != "" {
			if err := loadConfigFile(argConfigFile, flags); err != nil {
				return errors.Wrap(err, "reading --config file")
			}
			for name, val := range explicit {
				if err := cmd.Flags().Set(name, val); err != nil {
					return errors.Wrapf(err, "reapplying flag --%s", name)
				}
			}
		}

		if err := validateFlags(flags); err != nil {
			return err
		}

		level, err := logrus.ParseLevel(flags.LogLevel)
		if err != nil {
			return errors.Wrapf(err, "invalid --log-level %q", flags.LogLevel)
		}
		log.SetLevel(level)

		if flags.PrintConfig {
			out, err := effectiveConfigYAML(flags)
			if err != nil {
				return err
			}
			w.Print(out)
		}
		return nil
	},
}

func init() {
	w = NewPlainOutput(os.Stdout)
	log.SetOutput(os.Stderr)

	rootCmd.PersistentFlags().StringVarP(&flags.Database, "database", "d", "/var/lib/mlocate/mlocate.db", "path to the mlocate database")
	rootCmd.PersistentFlags().StringVarP(&flags.LogLevel, "log-level", "L", "warning", "logging verbosity")
	rootCmd.PersistentFlags().BoolVarP(&flags.PrintConfig, "print-config", "C", false, "print effective configuration and the subcommand's settings as JSON, then exit without running the subcommand")
	rootCmd.PersistentFlags().BoolVarP(&flags.DryRun, "dry-run", "n", false, "do not open or parse the database")
	rootCmd.PersistentFlags().BoolVarP(&flags.UseRegex, "regex", "r", false, "treat patterns as regexes rather than globs")
	rootCmd.PersistentFlags().BoolVarP(&flags.IgnoreCase, "ignore-case", "i", false, "case-insensitive matching")
	rootCmd.PersistentFlags().BoolVarP(&flags.PrintHeader, "print-header", "D", false, "print database header and configuration before executing")
	rootCmd.PersistentFlags().IntVarP(&flags.MaxInputDirs, "max-input-dirs", "I", 0, "maximum directory blocks read from the database (0 = unlimited)")
	rootCmd.PersistentFlags().StringVar(&flags.DigestAlgorithm, "digest-algorithm", "sha-256", "digest algorithm for the dups command: sha-256 or sha3-512")
	rootCmd.PersistentFlags().BoolVar(&flags.JSONOutput, "json", false, "emit machine-readable JSON where supported")
	rootCmd.PersistentFlags().StringVar(&argConfigFile, "config", "", "YAML file of default flag values")
}

// mapErrToExitCode classifies err per spec.md §7: 1 IO, 2 bad magic,
// 3 truncated, 4 pattern syntax; anything else (CLI argument/validation
// errors) also exits 1.
func mapErrToExitCode(err error) int {
	switch {
	case errors.Is(err, locate.ErrBadMagic):
		return 2
	case errors.Is(err, locate.ErrTruncated):
		return 3
	case errors.Is(err, locate.ErrPatternSyntax):
		return 4
	default:
		return 1
	}
}

// openDatabase opens the database at flags.Database and, unless
// flags.PrintHeader requests otherwise, stays silent about its header.
// Honors --dry-run by returning (nil, nil, false) without touching the file.
func openDatabase() (*locate.Decoder, *logrusObserver, bool, error) {
	if flags.DryRun {
		return nil, nil, false, nil
	}

	d, err := locate.Open(flags.Database)
	if err != nil {
		return nil, nil, false, err
	}
	obs := &logrusObserver{log: log}

	if flags.PrintHeader {
		w.Printfln("root: %s", locate.SafeDecode(d.Header.Root, "", obs))
		w.Printfln("file-format: %d  req-visibility: %d", d.Header.FileFormat, d.Header.ReqVisibility)

		rendered := make(map[string][]string, len(d.Conf))
		for key, values := range d.Conf {
			strs := make([]string, len(values))
			for i, v := range values {
				strs[i] = locate.SafeDecode(v, key+"/", obs)
			}
			rendered[key] = strs
		}
		confYAML, err := yaml.Marshal(rendered)
		if err != nil {
			log.Warnf("could not render configuration block as YAML: %s", err)
		} else {
			w.Print(string(confYAML))
		}
	}

	return d, obs, true, nil
}
