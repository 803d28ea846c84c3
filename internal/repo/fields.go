package repo

import "fmt"

// fieldSet collects INSERT/UPDATE columns. The first encoding error is kept
// and returned by result.
type fieldSet struct {
	fields []field
	err    error
}

func (s *fieldSet) add(column string, v any) {
	s.fields = append(s.fields, field{column: column, value: v})
}

func (s *fieldSet) jsonb(column string, b []byte, err error) {
	if err != nil {
		if s.err == nil {
			s.err = fmt.Errorf("%s: %w", column, err)
		}
		return
	}
	s.add(column, b)
}

func (s *fieldSet) result() ([]field, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.fields, nil
}

func listOf[E any](s *fieldSet, column string, v []E) {
	b, err := jsonList(v)
	s.jsonb(column, b, err)
}

func mapOf[V any](s *fieldSet, column string, m map[string]V) {
	b, err := jsonMap(m)
	s.jsonb(column, b, err)
}

// opt adds column only when the patch supplied a value.
func opt[V any](s *fieldSet, column string, v *V) {
	if v != nil {
		s.add(column, *v)
	}
}

func optList[E any](s *fieldSet, column string, v *[]E) {
	if v != nil {
		b, err := jsonList(*v)
		s.jsonb(column, b, err)
	}
}

func optMap[V any](s *fieldSet, column string, v *map[string]V) {
	if v != nil {
		b, err := jsonMap(*v)
		s.jsonb(column, b, err)
	}
}
