package querybuilder

import "sort"

type CondType int

const (
	CondTypeAnd CondType = iota + 1
	CondTypeOr
)

func (c CondType) ToString() string {
	switch c {
	case CondTypeAnd:
		return "AND"
	case CondTypeOr:
		return "OR"
	default:
		return ""
	}
}

type Condition struct {
	condType CondType
	clause   string
	args     []interface{}
}

// sortedColumns gives UPDATE statements a deterministic column order
func (d UpdateData) sortedColumns() []string {
	cols := make([]string, 0, len(d))
	for col := range d {
		cols = append(cols, col)
	}
	sort.Strings(cols)
	return cols
}
