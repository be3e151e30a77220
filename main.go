// Package main is the entry point for the clinicaio CLI.
package main

import "clinicaio.dev/pkg/clinicaio/cmd"

func main() {
	cmd.Execute()
}
