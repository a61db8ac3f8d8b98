package legacy

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/gilrrei/fourcipp/pkg/spec"
)

// SectionCodec interprets and inlines the legacy string sections of an
// input file. The casting tables are built once at construction from
// the metadata spec trees and are immutable afterwards, so a codec can
// be shared between concurrent readers.
type SectionCodec struct {
	elements  Table
	particles Table
	sections  []string
	log       *slog.Logger
}

// SectionCodecOption customizes a SectionCodec.
type SectionCodecOption func(*SectionCodec)

// WithLogger injects the logger used for per-section progress
// messages. Logging is discarded by default.
func WithLogger(log *slog.Logger) SectionCodecOption {
	return func(c *SectionCodec) {
		c.log = log
	}
}

// WithSections sets the known legacy section names.
func WithSections(sections []string) SectionCodecOption {
	return func(c *SectionCodec) {
		c.sections = sections
	}
}

// NewSectionCodec builds a codec from the element and particle spec
// trees. Either tree may be nil, disabling the matching sections.
func NewSectionCodec(elementSpecs, particleSpecs spec.Node, opts ...SectionCodecOption) (*SectionCodec, error) {
	c := &SectionCodec{
		log: slog.New(slog.DiscardHandler),
	}

	if elementSpecs != nil {
		table, err := BuildTable(elementSpecs)
		if err != nil {
			return nil, fmt.Errorf("building element tables: %w", err)
		}
		c.elements = table
	}
	if particleSpecs != nil {
		table, err := BuildTable(particleSpecs)
		if err != nil {
			return nil, fmt.Errorf("building particle tables: %w", err)
		}
		c.particles = table
	}

	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Sections returns the known legacy section names.
func (c *SectionCodec) Sections() []string {
	return c.sections
}

// Knows reports whether the section is a known legacy section.
func (c *SectionCodec) Knows(section string) bool {
	for _, s := range c.sections {
		if s == section {
			return true
		}
	}
	return false
}

// Interpret transforms the raw lines of a legacy section into decoded
// records. The returned value depends on the section family:
// elements, particles, nodes and topology entries yield one record per
// line, DOMAIN sections yield one accumulated record, KNOTVECTORS
// yield the patch list.
func (c *SectionCodec) Interpret(section string, lines []string) (any, error) {
	if len(c.sections) > 0 && !c.Knows(section) {
		return nil, &UnknownSectionError{Section: section, Known: c.sections}
	}
	c.log.Debug("interpreting legacy section", "section", section, "lines", len(lines))

	switch {
	case section == "PARTICLES":
		return mapLines(lines, func(line string) (*Record, error) {
			return ReadParticle(line, c.particles)
		})
	case section == "NODE COORDS":
		return mapLines(lines, ReadNode)
	case strings.HasSuffix(section, "ELEMENTS"):
		return mapLines(lines, func(line string) (*Element, error) {
			return ReadElement(line, c.elements)
		})
	case strings.HasSuffix(section, "NODE TOPOLOGY"):
		return mapLines(lines, ReadNodeTopology)
	case strings.HasSuffix(section, "DOMAIN"):
		return ReadDomain(lines)
	case strings.HasSuffix(section, "KNOTVECTORS"):
		return ReadKnotVectors(lines)
	default:
		return nil, fmt.Errorf("legacy section %s is not implemented", section)
	}
}

// Inline is the inverse of Interpret: it renders decoded section data
// back into legacy lines.
func (c *SectionCodec) Inline(section string, data any) ([]string, error) {
	if len(c.sections) > 0 && !c.Knows(section) {
		return nil, &UnknownSectionError{Section: section, Known: c.sections}
	}

	switch {
	case section == "PARTICLES":
		return inlineRecords(section, data, WriteParticle)
	case section == "NODE COORDS":
		return inlineRecords(section, data, func(n *NodeCoord) (string, error) {
			return WriteNode(n), nil
		})
	case strings.HasSuffix(section, "ELEMENTS"):
		return inlineRecords(section, data, WriteElement)
	case strings.HasSuffix(section, "NODE TOPOLOGY"):
		return inlineRecords(section, data, WriteNodeTopology)
	case strings.HasSuffix(section, "DOMAIN"):
		domain, ok := data.(*Record)
		if !ok {
			return nil, fmt.Errorf("section %s holds %T, expected a record", section, data)
		}
		return WriteDomain(domain)
	case strings.HasSuffix(section, "KNOTVECTORS"):
		patches, ok := data.([]Patch)
		if !ok {
			return nil, fmt.Errorf("section %s holds %T, expected patches", section, data)
		}
		return WriteKnotVectors(patches), nil
	default:
		return nil, fmt.Errorf("legacy section %s is not implemented", section)
	}
}

func mapLines[T any](lines []string, read func(string) (T, error)) ([]T, error) {
	out := make([]T, 0, len(lines))
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		decoded, err := read(line)
		if err != nil {
			return nil, err
		}
		out = append(out, decoded)
	}
	return out, nil
}

func inlineRecords[T any](section string, data any, write func(T) (string, error)) ([]string, error) {
	records, ok := data.([]T)
	if !ok {
		return nil, fmt.Errorf("section %s holds %T, expected a record list", section, data)
	}
	lines := make([]string, 0, len(records))
	for _, r := range records {
		line, err := write(r)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	return lines, nil
}

// UnknownSectionError is raised for section names outside the known
// legacy set.
type UnknownSectionError struct {
	Section string
	Known   []string
}

func (e *UnknownSectionError) Error() string {
	return fmt.Sprintf("section %s is not a known legacy section, current legacy sections are %s",
		e.Section, strings.Join(e.Known, ", "))
}
