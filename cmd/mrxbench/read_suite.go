package main

import (
	"embed"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/graph-guard/mrxhash/pkg/suite"
)

//go:embed suite_default
var defaultSuite embed.FS

// ReadSuite loads the workload suite from dirPath.
// When dirPath doesn't exist the embedded default suite is used.
func ReadSuite(w io.Writer, dirPath string) *suite.Suite {
	filesystem, root := fs.FS(os.DirFS(dirPath)), "."
	if _, err := os.Stat(dirPath); err != nil {
		fmt.Fprintf(
			w, "suite directory %q not found, using the default suite\n",
			dirPath,
		)
		filesystem, root = defaultSuite, "suite_default"
	}

	s, err := suite.ReadSuite(filesystem, root)
	if err != nil {
		fmt.Fprintf(w, "reading suite: %s\n", err)
		return nil
	}

	if len(s.ShapesEnabled) < 1 {
		fmt.Fprintf(w, "suite %q has no shapes enabled\n", s.Name)
		return nil
	}

	return s
}
