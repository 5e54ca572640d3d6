package suite

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func sampleTree() *Suite {
	root := New("root")
	root.AddTest(Test{Key: "root.a", Name: "a", Fn: func(T) {}})

	left := New("left")
	left.AddTest(Test{Key: "left.b", Name: "b", Fn: func(T) {}})
	left.AddTest(Test{Key: "left.c", Name: "c", Fn: func(T) {}})

	right := New("right")
	leaf := New("leaf")
	leaf.AddTest(Test{Key: "leaf.d", Name: "d", Fn: func(T) {}})
	right.AddSuite(leaf)

	root.AddSuite(left, right)
	return root
}

func TestSuite_CountTests(t *testing.T) {
	assert.Equal(t, 4, sampleTree().CountTests())
	assert.Equal(t, 0, New("empty").CountTests())
}

func TestSuite_Walk(t *testing.T) {
	var visited []string
	sampleTree().Walk(func(path []string, s *Suite) bool {
		visited = append(visited, strings.Join(path, "/"))
		return s.Name != "right"
	})

	expected := []string{"root", "root/left", "root/right"}
	if diff := cmp.Diff(expected, visited); diff != "" {
		t.Errorf("Walk() mismatch (-want +got):\n%s", diff)
	}
}

func TestSuite_ShapeIgnoresIdentity(t *testing.T) {
	a, b := sampleTree(), sampleTree()

	assert.NotEqual(t, a.ID, b.ID)
	if diff := cmp.Diff(a.Shape(), b.Shape()); diff != "" {
		t.Errorf("Shape() mismatch (-a +b):\n%s", diff)
	}

	expected := Shape{
		Name:  "root",
		Tests: []TestKey{"root.a"},
		Children: []Shape{
			{Name: "left", Tests: []TestKey{"left.b", "left.c"}},
			{Name: "right", Children: []Shape{{Name: "leaf", Tests: []TestKey{"leaf.d"}}}},
		},
	}
	if diff := cmp.Diff(expected, a.Shape()); diff != "" {
		t.Errorf("Shape() mismatch (-want +got):\n%s", diff)
	}
}

func TestSuite_ChildNames(t *testing.T) {
	assert.Equal(t, []string{"left", "right"}, sampleTree().ChildNames())
	assert.Equal(t, []string{}, New("x").ChildNames())
}

func TestSuite_RunUnderGoTest(t *testing.T) {
	var ran []string
	root := New("root")
	root.AddTest(Test{Key: "k1", Name: "first", Fn: func(t T) { ran = append(ran, t.Name()) }})
	child := New("child suite")
	child.AddTest(Test{Key: "k2", Name: "second", Fn: func(t T) { ran = append(ran, t.Name()) }})
	root.AddSuite(child)

	root.Run(t)

	assert.Equal(t, []string{
		t.Name() + "/first",
		t.Name() + "/child_suite/second",
	}, ran)
}
