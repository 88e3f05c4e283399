package query

// IDField is kept by every projection.
const IDField = "id"

// Selection filters sel down to the fields the schema knows and adds id.
// It returns nil when there is nothing to project.
func (s *Schema) Selection(sel []string) []string {
	if len(sel) == 0 {
		return nil
	}
	out := make([]string, 0, len(sel)+1)
	if s.Has(IDField) {
		out = append(out, IDField)
	}
	for _, name := range sel {
		if name == IDField || !s.Has(name) {
			continue
		}
		out = append(out, name)
	}
	return out
}

// ProjectOne returns rec unchanged when sel is empty, otherwise a map with
// only the selected fields.
func ProjectOne[T any](s *Schema, rec T, sel []string) any {
	fields := s.Selection(sel)
	if fields == nil {
		return rec
	}
	return s.Map(rec, fields)
}

func Project[T any](s *Schema, items []T, sel []string) []any {
	fields := s.Selection(sel)
	out := make([]any, len(items))
	for i, it := range items {
		if fields == nil {
			out[i] = it
			continue
		}
		out[i] = s.Map(it, fields)
	}
	return out
}
