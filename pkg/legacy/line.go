package legacy

import (
	"errors"
	"strings"
)

// Positional declares one leading field read by position instead of
// keyword.
type Positional struct {
	Name string
	Cast Caster
}

// ReadLine tokenizes and decodes one legacy line of repeating
// (keyword, value...) groups.
func ReadLine(line string, table Table) (*Record, error) {
	record, err := ReadTokens(Tokenize(line), table)
	if err != nil {
		return nil, lineError(err, line)
	}
	return record, nil
}

// ReadTokens decodes (keyword, value...) groups until the token
// stream is exhausted. Every keyword must be known to the table and
// every caster must find its full arity of tokens.
func ReadTokens(t *Tokens, table Table) (*Record, error) {
	record := NewRecord()
	for t.Len() > 0 {
		key, _ := t.Pop()
		caster, ok := table[key]
		if !ok {
			return nil, &UnknownFieldError{Key: key}
		}
		if caster.Cast == nil {
			return nil, &FieldError{Key: key, Err: errors.New("group fields cannot be decoded inline")}
		}
		value, err := caster.Cast(key, t)
		if err != nil {
			return nil, err
		}
		record.Set(key, value)
	}
	return record, nil
}

// ReadPositionals decodes the declared leading fields in order. No
// keyword is read for these.
func ReadPositionals(t *Tokens, fields []Positional) (*Record, error) {
	record := NewRecord()
	for _, f := range fields {
		value, err := f.Cast.Cast(f.Name, t)
		if err != nil {
			return nil, err
		}
		record.Set(f.Name, value)
	}
	return record, nil
}

// WriteTokens renders a record as (keyword, value...) tokens in field
// order.
func WriteTokens(r *Record) ([]string, error) {
	var toks []string
	for _, f := range r.Fields {
		value, err := DatString(f.Value)
		if err != nil {
			return nil, &FieldError{Key: f.Key, Err: err}
		}
		toks = append(toks, f.Key, value)
	}
	return toks, nil
}

// WriteLine renders a record as one legacy line.
func WriteLine(r *Record) (string, error) {
	toks, err := WriteTokens(r)
	if err != nil {
		return "", err
	}
	return strings.Join(toks, " "), nil
}

func lineError(err error, line string) error {
	if unknown, ok := err.(*UnknownFieldError); ok {
		return &UnknownFieldError{Key: unknown.Key, Line: line}
	}
	return err
}
