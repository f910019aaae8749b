// Copyright (C) 2025 The jsontree Authors. All Rights Reserved.

// Command jsonpp parses JSON documents and reprints them, indented by
// default or compact with --compact. With --path, only the value at the
// given dotted path is printed.
package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kingpin/v2"
	"github.com/fatih/color"

	"github.com/calvora/jsontree/ast"
)

var (
	indent  = kingpin.Flag("indent", "Indentation width for pretty output.").Default("2").Int()
	compact = kingpin.Flag("compact", "Print values in compact form.").Short('c').Bool()
	path    = kingpin.Flag("path", `Print only the value at this dotted path (e.g. "users.0.name").`).String()
	files   = kingpin.Arg("file", "Input files (*.json, or *.gz for compressed input).").Required().Strings()
)

func main() {
	kingpin.Parse()

	for _, name := range *files {
		printFile(name)
	}
}

func printFile(name string) {
	v, err := ast.ParseFile(name)
	if err != nil {
		exitWithErr(fmt.Errorf("%s: %w", name, err))
	}
	if *path != "" {
		v, err = ast.Path(v, ast.ParsePath(*path)...)
		if err != nil {
			exitWithErr(fmt.Errorf("%s: %w", name, err))
		}
	}

	if len(*files) > 1 {
		bold := color.New(color.Bold)
		bold.Printf("%s:\n", name)
	}
	if *compact {
		fmt.Println(v.JSON())
	} else {
		fmt.Println(ast.Pretty(v, *indent))
	}
}

func exitWithErr(err error) {
	color.New(color.FgRed).Fprintln(os.Stderr, err)
	os.Exit(1)
}
