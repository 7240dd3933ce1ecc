package main

import (
	"fmt"
	"os"

	"github.com/nkoenig/decpac/internal/cmd"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	var err error
	switch os.Args[1] {
	case "add":
		err = cmd.Add(os.Args[2:], os.Stdout, os.Stderr)
	case "rm":
		err = cmd.Rm(os.Args[2:], os.Stdout, os.Stderr)
	case "move":
		err = cmd.Move(os.Args[2:], os.Stdout, os.Stderr)
	case "ls":
		err = cmd.Ls(os.Args[2:], os.Stdout, os.Stderr)
	case "diff":
		err = cmd.Diff(os.Args[2:], os.Stdout, os.Stderr)
	case "sync":
		err = cmd.Sync(os.Args[2:], os.Stdout, os.Stderr)
	case "update":
		err = cmd.Update(os.Args[2:], os.Stdout, os.Stderr)
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "Usage: decpac <command>")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Commands:")
	fmt.Fprintln(os.Stderr, "  add [--scope <scope>] <pkg>...   Install (after confirmation) and declare packages")
	fmt.Fprintln(os.Stderr, "  rm [--scope <scope>] <pkg>...    Remove (after confirmation) and undeclare packages")
	fmt.Fprintln(os.Stderr, "  move --to <scope> <pkg>          Relocate a declared package to another scope")
	fmt.Fprintln(os.Stderr, "  ls [--source <src>] [--scope <scope>]  Print the declared lists")
	fmt.Fprintln(os.Stderr, "  diff                             Show drift between declared and installed state")
	fmt.Fprintln(os.Stderr, "  sync                             Print the install commands that would fix drift")
	fmt.Fprintln(os.Stderr, "  update                           Show unlisted and no-longer-installed packages")
}
