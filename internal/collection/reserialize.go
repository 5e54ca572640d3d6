package collection

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"collsuite/internal/generator"
)

// Reserializer serializes a container and reads it back.
type Reserializer[C any] func(c C) (C, error)

// YAMLReserializer round-trips containers through YAML. C must marshal to
// and unmarshal from YAML, typically via yaml.Marshaler and yaml.Unmarshaler.
func YAMLReserializer[C any]() Reserializer[C] {
	return func(c C) (C, error) {
		var out C
		data, err := yaml.Marshal(c)
		if err != nil {
			return out, fmt.Errorf("failed to marshal container: %w", err)
		}
		if err := yaml.Unmarshal(data, &out); err != nil {
			return out, fmt.Errorf("failed to unmarshal container: %w", err)
		}
		return out, nil
	}
}

// reserializedGenerator hands out containers that went through a
// serialization round trip. Every other method comes from the wrapped
// size-bound generator.
type reserializedGenerator[C, E any] struct {
	generator.OneSizeGenerator[C, E]
	reserialize Reserializer[C]
}

// Create builds the container and reserializes it. Generators cannot fail,
// so a broken round trip panics; runners report it as an error result.
func (r reserializedGenerator[C, E]) Create(elements ...E) C {
	c := r.OneSizeGenerator.Create(elements...)
	out, err := r.reserialize(c)
	if err != nil {
		panic(fmt.Sprintf("reserialization failed: %v", err))
	}
	return out
}

func (r reserializedGenerator[C, E]) CreateTestSubject() C {
	elements, err := r.SampleElements(r.NumElements())
	if err != nil {
		panic(err)
	}
	return r.Create(elements...)
}
