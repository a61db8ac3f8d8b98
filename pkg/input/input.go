// Package input implements the section container describing one whole
// 4C input file: modern sections held as decoded YAML data, legacy
// string sections interpreted through the legacy codec.
package input

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/gilrrei/fourcipp/pkg/legacy"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Input is a section-keyed container for one input file. It keeps
// modern and legacy sections apart so legacy data can be interpreted
// on the way in and inlined on the way out.
type Input struct {
	sections map[string]any
	legacy   map[string]any

	codec *legacy.SectionCodec
	known []string
	log   *slog.Logger
}

// Option customizes an Input.
type Option func(*Input)

// WithCodec injects the legacy section codec. Without one, legacy
// sections are rejected.
func WithCodec(codec *legacy.SectionCodec) Option {
	return func(in *Input) {
		in.codec = codec
	}
}

// WithKnownSections sets the known modern section names.
func WithKnownSections(sections []string) Option {
	return func(in *Input) {
		in.known = sections
	}
}

// WithLogger injects the logger for overwrite warnings and include
// loading. Logging is discarded by default.
func WithLogger(log *slog.Logger) Option {
	return func(in *Input) {
		in.log = log
	}
}

func New(opts ...Option) *Input {
	in := &Input{
		sections: map[string]any{},
		legacy:   map[string]any{},
		log:      slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(in)
	}
	return in
}

// options returns the options reproducing this input's wiring, used
// when derived inputs are created.
func (in *Input) options() []Option {
	return []Option{WithCodec(in.codec), WithKnownSections(in.known), WithLogger(in.log)}
}

func (in *Input) isKnown(section string) bool {
	// Without a section registry the container is open: any
	// non-legacy name is accepted.
	if len(in.known) == 0 {
		return !in.isLegacy(section)
	}
	// FUNCT sections are numbered dynamically.
	if strings.HasPrefix(section, "FUNCT") {
		return true
	}
	for _, s := range in.known {
		if s == section {
			return true
		}
	}
	return false
}

func (in *Input) isLegacy(section string) bool {
	return in.codec != nil && in.codec.Knows(section)
}

// KnownSections returns every section name this input accepts.
func (in *Input) KnownSections() []string {
	all := append([]string{}, in.known...)
	if in.codec != nil {
		all = append(all, in.codec.Sections()...)
	}
	sort.Strings(all)
	return all
}

// Set assigns a section. Legacy sections given as raw lines are
// interpreted through the codec; already decoded legacy data is
// stored as is.
func (in *Input) Set(section string, value any) error {
	if _, ok := in.sections[section]; ok {
		in.log.Warn("section overwritten", "section", section)
	} else if _, ok := in.legacy[section]; ok {
		in.log.Warn("section overwritten", "section", section)
	}

	switch {
	case in.isKnown(section):
		in.sections[section] = value
	case in.isLegacy(section):
		if lines, ok := rawLines(value); ok {
			in.log.Debug("interpreting section", "section", section)
			decoded, err := in.codec.Interpret(section, lines)
			if err != nil {
				return err
			}
			in.legacy[section] = decoded
			return nil
		}
		in.legacy[section] = value
	default:
		return in.unknownSection(section)
	}
	return nil
}

// Get returns a section's data.
func (in *Input) Get(section string) (any, error) {
	if v, ok := in.sections[section]; ok {
		return v, nil
	}
	if v, ok := in.legacy[section]; ok {
		return v, nil
	}
	return nil, in.unknownSection(section)
}

// Has reports whether the section is set.
func (in *Input) Has(section string) bool {
	_, ok := in.sections[section]
	if !ok {
		_, ok = in.legacy[section]
	}
	return ok
}

// Pop removes and returns a section's data.
func (in *Input) Pop(section string) (any, error) {
	if v, ok := in.sections[section]; ok {
		delete(in.sections, section)
		return v, nil
	}
	if v, ok := in.legacy[section]; ok {
		delete(in.legacy, section)
		return v, nil
	}
	return nil, in.unknownSection(section)
}

// PopOr removes and returns a section's data, or the fallback when
// the section is known but not set.
func (in *Input) PopOr(section string, fallback any) (any, error) {
	if in.Has(section) {
		return in.Pop(section)
	}
	if in.isKnown(section) || in.isLegacy(section) {
		return fallback, nil
	}
	return nil, in.unknownSection(section)
}

// SectionNames returns the set section names, sorted.
func (in *Input) SectionNames() []string {
	names := make([]string, 0, len(in.sections)+len(in.legacy))
	for name := range in.sections {
		names = append(names, name)
	}
	for name := range in.legacy {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Sections returns all set sections as one map.
func (in *Input) Sections() map[string]any {
	all := make(map[string]any, len(in.sections)+len(in.legacy))
	for name, v := range in.sections {
		all[name] = v
	}
	for name, v := range in.legacy {
		all[name] = v
	}
	return all
}

// Inlined returns all sections with the legacy ones rendered back
// into their line form.
func (in *Input) Inlined() (map[string]any, error) {
	all := make(map[string]any, len(in.sections)+len(in.legacy))
	for name, v := range in.sections {
		all[name] = v
	}
	for name, v := range in.legacy {
		lines, err := in.codec.Inline(name, v)
		if err != nil {
			return nil, fmt.Errorf("inlining section %s: %w", name, err)
		}
		all[name] = lines
	}
	return all, nil
}

// Add assigns every section of the given map.
func (in *Input) Add(sections map[string]any) error {
	var errs []error
	for name, v := range sections {
		if err := in.Set(name, v); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Join moves every section of other into this input. A section
// defined in both is an error; remove it from one side first.
func (in *Input) Join(other *Input) error {
	var doubled []string
	for _, name := range other.SectionNames() {
		if in.Has(name) {
			doubled = append(doubled, name)
		}
	}
	if len(doubled) > 0 {
		return fmt.Errorf("section(s) %s are defined in both inputs", strings.Join(doubled, ", "))
	}
	return in.Add(other.Sections())
}

// Split removes the named sections into a second input and returns
// both.
func (in *Input) Split(sections []string) (*Input, *Input, error) {
	root := in.Copy()
	split := New(in.options()...)
	for _, name := range sections {
		v, err := root.Pop(name)
		if err != nil {
			return nil, nil, err
		}
		if err := split.Set(name, v); err != nil {
			return nil, nil, err
		}
	}
	return root, split, nil
}

// Copy returns a deep copy of this input.
func (in *Input) Copy() *Input {
	out := New(in.options()...)
	for name, v := range in.sections {
		out.sections[name] = deepCopy(v)
	}
	for name, v := range in.legacy {
		out.legacy[name] = deepCopy(v)
	}
	return out
}

// Header returns an input holding only the modern sections.
func (in *Input) Header() *Input {
	out := New(in.options()...)
	for name, v := range in.sections {
		out.sections[name] = v
	}
	return out
}

func (in *Input) String() string {
	return "4C input file\n with sections\n  - " + strings.Join(in.SectionNames(), "\n  - ") + "\n"
}

func (in *Input) unknownSection(section string) error {
	return &UnknownSectionError{
		Section: section,
		Known:   in.KnownSections(),
	}
}

// UnknownSectionError is raised for section names outside the known
// set, carrying the closest match as a suggestion.
type UnknownSectionError struct {
	Section string
	Known   []string
}

func (e *UnknownSectionError) Error() string {
	msg := fmt.Sprintf("unknown section %q", e.Section)
	if suggestion, ok := e.Suggestion(); ok {
		msg += fmt.Sprintf(", did you mean %q?", suggestion)
	}
	return msg
}

// Suggestion returns the known section closest to the unknown name.
func (e *UnknownSectionError) Suggestion() (string, bool) {
	ranks := fuzzy.RankFindNormalizedFold(e.Section, e.Known)
	sort.Sort(ranks)
	if len(ranks) > 0 {
		return ranks[0].Target, true
	}
	return "", false
}

// rawLines reports whether a section value is raw text lines still in
// need of interpretation.
func rawLines(value any) ([]string, bool) {
	switch v := value.(type) {
	case []string:
		return v, true
	case []any:
		lines := make([]string, 0, len(v))
		for _, e := range v {
			s, ok := e.(string)
			if !ok {
				return nil, false
			}
			lines = append(lines, s)
		}
		return lines, true
	default:
		return nil, false
	}
}

func deepCopy(v any) any {
	switch value := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(value))
		for k, e := range value {
			out[k] = deepCopy(e)
		}
		return out
	case []any:
		out := make([]any, 0, len(value))
		for _, e := range value {
			out = append(out, deepCopy(e))
		}
		return out
	case []string:
		return append([]string{}, value...)
	default:
		return v
	}
}
