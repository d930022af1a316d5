//nolint:gochecknoglobals
package pkg

import (
	_ "embed"
	"strings"
)

// Version is the semantic version of the logfront module embedded at build time.
// It is printed by the CLI when users pass the --version flag.
//
//go:embed VERSION
var Version string

const (
	// Name is the canonical command and module identifier used across the
	// project. For example, it appears in help text and default config paths.
	Name = "logfront"
	// Description is a short, human-readable summary of the project used in
	// help output and documentation.
	Description = "Leveled logging facade with pluggable backends"
)

// AuthorInfo represents an individual author's name and email address.
type AuthorInfo struct {
	// Name is the author's preferred name or handle.
	Name string
	// Email is the author's contact email address.
	Email string
}

// String returns the author as "Name <Email>", omitting whichever is empty.
func (a AuthorInfo) String() string {
	switch {
	case a.Email == "":
		return a.Name
	case a.Name == "":
		return "<" + a.Email + ">"
	default:
		return a.Name + " <" + a.Email + ">"
	}
}

// Credits returns the project description followed by a line naming each
// [Author], as shown in help output.
func Credits() string {
	names := make([]string, 0, len(Author))
	for _, a := range Author {
		names = append(names, a.String())
	}

	return Description + "\n\nWritten by " + strings.Join(names, ", ") + "."
}

// Author lists the primary author(s) of the project for display in metadata.
//
//nolint:gochecknoglobals
var Author = []AuthorInfo{
	{"ardnew", "andrew@ardnew.com"},
}
