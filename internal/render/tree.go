package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss/tree"

	"collsuite/internal/suite"
)

// TreeOptions controls suite tree rendering.
type TreeOptions struct {
	// ShowKeys appends the test key to every test.
	ShowKeys bool
	// SuitesOnly hides individual tests.
	SuitesOnly bool
	// MaxDepth limits how many suite levels below the root are shown;
	// zero shows everything.
	MaxDepth int
}

// Tree writes root as an indented tree.
func Tree(w io.Writer, root *suite.Suite, opts TreeOptions) error {
	t := buildTree(root, opts, 0).
		Enumerator(tree.RoundedEnumerator).
		EnumeratorStyle(EnumeratorStyle).
		RootStyle(RootStyle)

	_, err := fmt.Fprintln(w, t.String())
	return err
}

func buildTree(s *suite.Suite, opts TreeOptions, depth int) *tree.Tree {
	t := tree.Root(suiteLabel(s, depth))

	if !opts.SuitesOnly {
		for _, test := range s.Tests {
			t.Child(testLabel(test, opts))
		}
	}

	if opts.MaxDepth > 0 && depth >= opts.MaxDepth {
		return t
	}
	for _, child := range s.Children {
		t.Child(buildTree(child, opts, depth+1))
	}
	return t
}

func suiteLabel(s *suite.Suite, depth int) string {
	count := CountStyle.Render(fmt.Sprintf("(%d)", s.CountTests()))
	if depth == 0 {
		return s.Name + " " + count
	}
	style := SuiteStyle
	if strings.Contains(s.Name, "[collection size: ") && !strings.HasSuffix(s.Name, "[reserialized]") {
		style = SizeBranchStyle
	}
	return style.Render(s.Name) + " " + count
}

func testLabel(test suite.Test, opts TreeOptions) string {
	label := TestStyle.Render(test.Name)
	if opts.ShowKeys {
		label += " " + KeyStyle.Render(string(test.Key))
	}
	return label
}
