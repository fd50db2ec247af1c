package checker

import (
	"errors"
	"fmt"
	"io"

	"github.com/reugn/filecheck/internal/osutil"
)

// ErrPathNotFound is returned by Check when the path does not name an
// existing, readable, regular file. It is the checker's only error kind;
// missing paths, directories, special files, and permission failures are
// not distinguished.
var ErrPathNotFound = errors.New("file does not exist or is not readable")

// PathChecker verifies that a path names a readable regular file,
// reporting the outcome as human-readable lines on the output writer.
type PathChecker struct {
	out io.Writer // Destination for the report lines
}

// New creates a new PathChecker that writes its report to out.
func New(out io.Writer) *PathChecker {
	return &PathChecker{out: out}
}

// Check reports whether path names an existing, readable, regular file.
// It always echoes the supplied path first, even when the path is empty;
// no validation is performed on the argument's shape. On failure it
// writes an error line and returns ErrPathNotFound.
func (c *PathChecker) Check(path string) error {
	fmt.Fprintf(c.out, "Test script executed with input file: %s\n", path)

	if !osutil.IsRegularFile(path) || !osutil.IsReadable(path) {
		fmt.Fprintln(c.out, "Error: File does not exist or is not readable.")
		return ErrPathNotFound
	}

	fmt.Fprintln(c.out, "File exists and is readable.")
	return nil
}
