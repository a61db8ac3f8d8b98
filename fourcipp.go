// Package fourcipp ties the metadata-driven spec trees, the legacy
// section codec and the input container together into one entry
// point for reading and writing 4C input files.
package fourcipp

import (
	"fmt"
	"log/slog"

	"github.com/gilrrei/fourcipp/pkg/input"
	"github.com/gilrrei/fourcipp/pkg/legacy"
	"github.com/gilrrei/fourcipp/pkg/spec"
)

// Option configures a Handler.
type Option struct {
	// Metadata is the decoded 4C metadata document. Without one the
	// handler runs as an open container without legacy support.
	Metadata map[string]any
	// Logger receives progress and overwrite messages. Discarded by
	// default.
	Logger *slog.Logger
}

type Options []Option

func (o Options) Merge() (result Option) {
	for _, opt := range o {
		if opt.Metadata != nil {
			result.Metadata = opt.Metadata
		}
		if opt.Logger != nil {
			result.Logger = opt.Logger
		}
	}
	return
}

func (o Option) Complete() Option {
	if o.Logger == nil {
		o.Logger = slog.New(slog.DiscardHandler)
	}
	return o
}

// Handler holds the immutable machinery derived from one metadata
// document: the section spec trees, the known section names and the
// legacy codec. A handler is safe for concurrent use.
type Handler struct {
	opts Option

	// Sections is the condensed spec tree over all modern sections.
	Sections *spec.AllOf

	sectionNames []string
	codec        *legacy.SectionCodec
}

// New builds a handler from the merged options.
func New(opts ...Option) (*Handler, error) {
	h := &Handler{
		opts: Options(opts).Merge().Complete(),
	}

	metadata := h.opts.Metadata
	if metadata == nil {
		codec, err := legacy.NewSectionCodec(nil, nil)
		if err != nil {
			return nil, err
		}
		h.codec = codec
		return h, nil
	}

	if raw, ok := metadata["sections"]; ok {
		node, err := spec.FromMetadata(raw)
		if err != nil {
			return nil, fmt.Errorf("building section specs: %w", err)
		}
		allOf, ok := node.(*spec.AllOf)
		if !ok {
			allOf, err = spec.NewAllOf(node)
			if err != nil {
				return nil, err
			}
		}
		h.Sections = allOf
		for _, s := range allOf.Specs {
			if name := s.FieldName(); name != "" {
				h.sectionNames = append(h.sectionNames, name)
			}
		}
	}

	elementSpecs, err := specFromMetadataKey(metadata, "legacy_element_specs")
	if err != nil {
		return nil, err
	}
	particleSpecs, err := specFromMetadataKey(metadata, "legacy_particle_specs")
	if err != nil {
		return nil, err
	}

	codec, err := legacy.NewSectionCodec(elementSpecs, particleSpecs,
		legacy.WithSections(stringSlice(metadata["legacy_string_sections"])),
		legacy.WithLogger(h.opts.Logger),
	)
	if err != nil {
		return nil, err
	}
	h.codec = codec
	return h, nil
}

// Codec returns the legacy section codec.
func (h *Handler) Codec() *legacy.SectionCodec {
	return h.codec
}

// NewInput returns an empty container wired to this handler.
func (h *Handler) NewInput() *input.Input {
	return input.New(h.inputOptions()...)
}

// LoadInput reads a YAML input file, interpreting its legacy
// sections.
func (h *Handler) LoadInput(path string) (*input.Input, error) {
	return input.LoadFile(path, h.inputOptions()...)
}

func (h *Handler) inputOptions() []input.Option {
	return []input.Option{
		input.WithCodec(h.codec),
		input.WithKnownSections(h.sectionNames),
		input.WithLogger(h.opts.Logger),
	}
}

func specFromMetadataKey(metadata map[string]any, key string) (spec.Node, error) {
	raw, ok := metadata[key]
	if !ok || raw == nil {
		return nil, nil
	}
	node, err := spec.FromMetadata(raw)
	if err != nil {
		return nil, fmt.Errorf("building %s: %w", key, err)
	}
	return node, nil
}

func stringSlice(raw any) []string {
	items, ok := raw.([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
