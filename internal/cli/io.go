package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/pctree/pkg/pctree"
)

// writeFile writes data to path, or to stdout when path is empty.
func writeFile(data []byte, path string) error {
	if path == "" {
		_, err := os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// readSource reads the canonical tree grammar from path, or from stdin when
// path is "-".
func readSource(path string) (string, error) {
	var r io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return "", fmt.Errorf("open %s: %w", path, err)
		}
		defer f.Close()
		r = f
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return string(data), nil
}

// loadTree builds a tree either from in (a file path, or "-" for stdin, or ""
// to fall back to n) or from a fresh trivial tree of n leaves.
func loadTree(in string, n int) (*pctree.Tree, error) {
	if in == "" {
		return pctree.NewTrivial(n), nil
	}
	text, err := readSource(in)
	if err != nil {
		return nil, err
	}
	t, err := pctree.Parse(text)
	if err != nil {
		return nil, fmt.Errorf("parse tree: %w", err)
	}
	return t, nil
}
