package main

import "os"

func main() {
	if err := rootCmd.Execute(); err != nil {
		exitCode = mapErrToExitCode(err)
		os.Exit(handleError(err.Error(), exitCode, flags.JSONOutput))
	}
	os.Exit(exitCode)
}
