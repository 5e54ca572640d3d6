package suite

// Shape is the identity-free structure of a suite: names and keys only.
// Two builds from the same configuration produce equal shapes.
type Shape struct {
	Name     string
	Tests    []TestKey
	Children []Shape
}

// Shape returns the structure of s.
func (s *Suite) Shape() Shape {
	shape := Shape{Name: s.Name}
	for _, test := range s.Tests {
		shape.Tests = append(shape.Tests, test.Key)
	}
	for _, child := range s.Children {
		shape.Children = append(shape.Children, child.Shape())
	}
	return shape
}

// ChildNames returns the names of the direct children in order.
func (s *Suite) ChildNames() []string {
	names := make([]string, 0, len(s.Children))
	for _, child := range s.Children {
		names = append(names, child.Name)
	}
	return names
}
