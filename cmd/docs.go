package cmd

import (
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

// front matter for the just-the-docs theme
// https://pmarsceill.github.io/just-the-docs/docs/navigation-structure/
const (
	rootPage = `---
layout: default
title: %s
nav_order: 0
has_children: true
permalink: /
---
`

	childPage = `---
layout: default
title: %s
parent: geneboard
---
`
)

// docsCmd is for writing the Markdown documentation of every command
var docsCmd = &cobra.Command{
	Use:    "docs [dir]",
	Short:  "Write Markdown documentation for every command to a directory",
	Hidden: true,
	Args:   cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := "./docs"
		if len(args) > 0 {
			dir = args[0]
		}

		if err := doc.GenMarkdownTreeCustom(rootCmd, dir, filePrepender, linkHandler); err != nil {
			return fmt.Errorf("failed to write docs: %w", err)
		}
		logger.Info("wrote docs", "dir", dir)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(docsCmd)
}

// docBase is the name of a doc file without its extension, ex: "geneboard_view"
func docBase(filename string) string {
	name := filepath.Base(filename)
	return strings.TrimSuffix(name, path.Ext(name))
}

// filePrepender adds the YAML headings that are required by the just-the-docs theme
func filePrepender(filename string) string {
	base := docBase(filename)
	if base == rootCmd.Name() {
		return fmt.Sprintf(rootPage, base)
	}
	return fmt.Sprintf(childPage, strings.TrimPrefix(base, rootCmd.Name()+"_"))
}

// linkHandler returns the URL to a documentation page
func linkHandler(filename string) string {
	base := docBase(filename)
	if base == rootCmd.Name() {
		return "/"
	}
	return base
}
