// Package generator defines the element sources that suites draw fixtures from.
//
// A ContainerGenerator is supplied by the test author for each container
// implementation under test. It exposes a fixed pool of SampleCapacity
// distinct samples and knows how to build a container from an explicit
// element list.
//
// OneSize binds a generator to one size variant. Its CreateTestSubject
// builds the fixture from the first NumElements samples in pool order, while
// SampleElements lets testers request any pool prefix for auxiliary use.
package generator
