package input

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadFile reads a YAML input file into a container.
func LoadFile(path string, opts ...Option) (*Input, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Load(data, opts...)
}

// Load reads YAML input data into a container.
func Load(data []byte, opts ...Option) (*Input, error) {
	sections := map[string]any{}
	if err := yaml.Unmarshal(data, &sections); err != nil {
		return nil, err
	}

	in := New(opts...)
	if err := in.Add(sections); err != nil {
		return nil, err
	}
	return in, nil
}

// LoadHeaderFile reads a YAML input file, skipping the legacy
// sections.
func LoadHeaderFile(path string, opts ...Option) (*Input, error) {
	in, err := LoadFile(path, opts...)
	if err != nil {
		return nil, err
	}
	return in.Header(), nil
}

// LoadIncludes joins the files listed in the INCLUDES section into
// this input and drops the section.
func (in *Input) LoadIncludes() error {
	if !in.Has("INCLUDES") {
		return nil
	}
	raw, err := in.Pop("INCLUDES")
	if err != nil {
		return err
	}
	paths, ok := rawLines(raw)
	if !ok {
		return fmt.Errorf("INCLUDES section holds %T, expected a path list", raw)
	}
	for _, path := range paths {
		in.log.Debug("gathering data from include", "path", path)
		include, err := LoadFile(path, in.options()...)
		if err != nil {
			return err
		}
		if err := in.Join(include); err != nil {
			return err
		}
	}
	return nil
}

// Dump writes the input to a YAML file with the legacy sections
// inlined.
func (in *Input) Dump(path string) error {
	data, err := in.MarshalYAML()
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// MarshalYAML renders the input with the legacy sections inlined.
func (in *Input) MarshalYAML() ([]byte, error) {
	inlined, err := in.Inlined()
	if err != nil {
		return nil, err
	}
	return yaml.Marshal(inlined)
}
