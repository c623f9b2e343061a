//nolint:gochecknoglobals
package pkg

import (
	_ "embed"
	"strings"
)

// version is the semantic version of the module embedded at build time.
//
//go:embed VERSION
var version string

// Version is the trimmed semantic version printed by the version command.
var Version = strings.TrimSpace(version)

const (
	// Name is the canonical command identifier used across the project. For
	// example, it appears in help text and default config paths.
	Name = "langc"
	// Description is a short, human-readable summary of the project used in
	// help output and documentation.
	Description = "Front-end compiler: source to canonical AST text"
)

// AuthorInfo represents an individual author's name and email address.
type AuthorInfo struct {
	// Name is the author's preferred name or handle.
	Name string
	// Email is the author's contact email address, if public.
	Email string
}

// Author lists the primary author(s) of the project for display in metadata.
//
//nolint:gochecknoglobals
var Author = []AuthorInfo{
	{Name: "Maksim Sebelev"},
}
