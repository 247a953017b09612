// Command retroadmin provides offline maintenance tooling for a RetroCircuit
// deployment: catalog database backup and restore.
package main

import (
	"fmt"
	"os"

	"github.com/iDarcky/retrocircuit/internal/version"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "backup":
		runBackup(os.Args[2:])
	case "restore":
		runRestore(os.Args[2:])
	case "version":
		fmt.Println(version.Info())
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", os.Args[1])
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage: retroadmin <command> [flags]

Commands:
  backup    archive the catalog database to a tar.gz file
  restore   restore a backup archive into a data directory
  version   print version information`)
}
