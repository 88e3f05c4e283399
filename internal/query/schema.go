package query

import (
	"reflect"
	"strings"
)

// Schema maps the JSON field names of a struct type to its fields.
type Schema struct {
	typ    reflect.Type
	names  []string
	fields map[string]int
}

func SchemaFor[T any]() *Schema {
	t := reflect.TypeFor[T]()
	if t.Kind() != reflect.Struct {
		panic("query: schema of non-struct type " + t.String())
	}

	s := &Schema{typ: t, fields: make(map[string]int, t.NumField())}
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			continue
		}
		if name == "" {
			name = f.Name
		}
		s.fields[name] = i
		s.names = append(s.names, name)
	}
	return s
}

func (s *Schema) Has(name string) bool {
	_, ok := s.fields[name]
	return ok
}

func (s *Schema) Fields() []string {
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}

// Value reads one field of rec, which must be of the schema's type.
func (s *Schema) Value(rec any, name string) (any, bool) {
	i, ok := s.fields[name]
	if !ok {
		return nil, false
	}
	v := reflect.Indirect(reflect.ValueOf(rec))
	if v.Type() != s.typ {
		return nil, false
	}
	return v.Field(i).Interface(), true
}

// Map converts rec into a field map. A nil fields list means every field.
func (s *Schema) Map(rec any, fields []string) map[string]any {
	if fields == nil {
		fields = s.names
	}
	v := reflect.Indirect(reflect.ValueOf(rec))
	out := make(map[string]any, len(fields))
	for _, name := range fields {
		if i, ok := s.fields[name]; ok && v.Type() == s.typ {
			out[name] = v.Field(i).Interface()
		}
	}
	return out
}
