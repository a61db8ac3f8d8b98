package legacy

// Field is one named value of a decoded record.
type Field struct {
	Key   string
	Value any
}

// Record is an ordered set of named fields. Field order is the order
// of first assignment, so re-encoding a decoded line reproduces its
// token sequence.
type Record struct {
	Fields []Field
}

func NewRecord(fields ...Field) *Record {
	return &Record{Fields: fields}
}

func (r *Record) Len() int {
	return len(r.Fields)
}

func (r *Record) Get(key string) (any, bool) {
	for _, f := range r.Fields {
		if f.Key == key {
			return f.Value, true
		}
	}
	return nil, false
}

// Set assigns a field, keeping the position of an existing key.
func (r *Record) Set(key string, value any) {
	for i, f := range r.Fields {
		if f.Key == key {
			r.Fields[i].Value = value
			return
		}
	}
	r.Fields = append(r.Fields, Field{Key: key, Value: value})
}

func (r *Record) Keys() []string {
	keys := make([]string, 0, len(r.Fields))
	for _, f := range r.Fields {
		keys = append(keys, f.Key)
	}
	return keys
}

// Native converts the record into a plain map for collaborators that
// do not care about field order.
func (r *Record) Native() map[string]any {
	out := make(map[string]any, len(r.Fields))
	for _, f := range r.Fields {
		if sub, ok := f.Value.(*Record); ok {
			out[f.Key] = sub.Native()
			continue
		}
		out[f.Key] = f.Value
	}
	return out
}
