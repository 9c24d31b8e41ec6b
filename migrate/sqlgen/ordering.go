package sqlgen

import (
	"errors"
	"fmt"

	"github.com/satishbabariya/sqlkit/schema"
)

// ErrDependencyCycle is returned when foreign keys form a cycle between
// tables, so no creation order satisfies every reference.
var ErrDependencyCycle = errors.New("foreign key dependency cycle")

// OrderTables sorts tables so that every table comes after the tables its
// foreign keys reference. Self references and references to tables outside
// the input are ignored. Among independent tables the input order is kept.
func OrderTables(tables []*schema.Table) ([]*schema.Table, error) {
	byName := make(map[string]*schema.Table, len(tables))
	for _, t := range tables {
		byName[t.Name()] = t
	}

	const (
		unvisited = iota
		visiting
		done
	)
	state := make(map[string]int, len(tables))
	ordered := make([]*schema.Table, 0, len(tables))

	var visit func(t *schema.Table) error
	visit = func(t *schema.Table) error {
		switch state[t.Name()] {
		case done:
			return nil
		case visiting:
			return fmt.Errorf("%w at table %s", ErrDependencyCycle, t.Name())
		}
		state[t.Name()] = visiting
		for _, fk := range t.ForeignKeys() {
			ref, ok := byName[fk.RefTable()]
			if !ok || ref == t {
				continue
			}
			if err := visit(ref); err != nil {
				return err
			}
		}
		state[t.Name()] = done
		ordered = append(ordered, t)
		return nil
	}

	for _, t := range tables {
		if err := visit(t); err != nil {
			return nil, err
		}
	}
	return ordered, nil
}
