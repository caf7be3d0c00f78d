package main

import (
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

var validate = validator.New()

// loadConfigFile reads a YAML file of default flag values into dst. Missing
// keys keep dst's existing values. Because cobra has already parsed the
// command line when this runs, the file overwrites explicit flags too;
// root.go's PersistentPreRunE re-applies those afterwards so they win.
// Generalized from cli/auxiliary.go's EnvOr/EnvToBool
// environment-variable override pattern to a file-based layer.
func loadConfigFile(path string, dst *Flags) error {
	if path == "" {
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, dst)
}

// validateFlags runs struct-tag validation over f and returns the
// validator's error unchanged.
func validateFlags(f *Flags) error {
	if err := validate.Struct(f); err != nil {
		return err
	}
	return nil
}

// effectiveConfigYAML renders f as YAML for the -C/--print-config flag.
func effectiveConfigYAML(f *Flags) (string, error) {
	b, err := yaml.Marshal(f)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
