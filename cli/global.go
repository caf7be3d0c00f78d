package main

import "github.com/sirupsen/logrus"

// <constants>
const configJSONErrMsg = `could not serialize config JSON: %s`
const resultJSONErrMsg = `could not serialize result JSON: %s`

// </constants>

// Flags holds the shared command-line surface (spec.md §6): every
// subcommand reads from one populated instance. Struct tags drive
// github.com/go-playground/validator/v10 validation in root.go.
type Flags struct {
	Database        string `yaml:"database" validate:"required"`
	LogLevel        string `yaml:"log-level" validate:"omitempty,oneof=panic fatal error warn warning info debug trace"`
	PrintConfig     bool   `yaml:"print-config"`
	DryRun          bool   `yaml:"dry-run"`
	UseRegex        bool   `yaml:"use-regex"`
	IgnoreCase      bool   `yaml:"ignore-case"`
	PrintHeader     bool   `yaml:"print-header"`
	MaxInputDirs    int    `yaml:"max-input-dirs" validate:"gte=0"`
	DigestAlgorithm string `yaml:"digest-algorithm" validate:"omitempty,oneof=sha-256 sha3-512"`
	JSONOutput      bool   `yaml:"json"`
}

// <global-variables>
//   <subset purpose="used for passing values between ‘cobra’ methods">
var w Output
var log = logrus.New()
var exitCode int
var cmdError error
var flags = new(Flags)
var argConfigFile string

//   </subset>
// </global-variables>
