package querybuilder

import (
	"fmt"
	"strings"
)

type QueryBuilder interface {
	Select(cols ...string) QueryBuilder
	From(table string) QueryBuilder
	Where(clause string, args ...interface{}) QueryBuilder
	And(clause string, args ...interface{}) QueryBuilder
	Or(clause string, args ...interface{}) QueryBuilder
	OrderBy(col string, asc bool) QueryBuilder

	Insert(cols ...string) QueryBuilder
	Into(table string) QueryBuilder
	Values(values ...interface{}) QueryBuilder
	Returning(cols ...string) QueryBuilder
	OnConflict(cols ...string) QueryBuilder
	DoUpdate(cols ...string) QueryBuilder

	Update(table string, data UpdateData) QueryBuilder
	Delete(table string) QueryBuilder

	Build() (string, []interface{})
}

// UpdateData maps column names to the values set by an UPDATE
type UpdateData map[string]interface{}

type queryBuilder struct {
	schema     string
	table      string
	cols       []string
	conditions []Condition
	orderBy    []string
	values     []interface{}
	returning  []string
	onConflict []string
	setCols    []string
	updateData UpdateData
	isInsert   bool
	isDelete   bool
}

func NewQueryBuilder(schema string) QueryBuilder {
	if schema == "" {
		schema = "public"
	}
	return &queryBuilder{schema: schema}
}

func (q *queryBuilder) Select(cols ...string) QueryBuilder {
	q.cols = append(q.cols, cols...)
	return q
}

func (q *queryBuilder) From(table string) QueryBuilder {
	q.table = table
	return q
}

func (q *queryBuilder) Where(clause string, args ...interface{}) QueryBuilder {
	return q.And(clause, args...)
}

func (q *queryBuilder) And(clause string, args ...interface{}) QueryBuilder {
	q.conditions = append(q.conditions, Condition{condType: CondTypeAnd, clause: clause, args: args})
	return q
}

func (q *queryBuilder) Or(clause string, args ...interface{}) QueryBuilder {
	q.conditions = append(q.conditions, Condition{condType: CondTypeOr, clause: clause, args: args})
	return q
}

func (q *queryBuilder) OrderBy(col string, asc bool) QueryBuilder {
	orderVector := "ASC"
	if !asc {
		orderVector = "DESC"
	}
	q.orderBy = append(q.orderBy, fmt.Sprintf("%s %s", col, orderVector))
	return q
}

func (q *queryBuilder) Insert(cols ...string) QueryBuilder {
	q.cols = cols
	q.isInsert = true
	return q
}

func (q *queryBuilder) Into(table string) QueryBuilder {
	q.table = table
	return q
}

func (q *queryBuilder) Values(values ...interface{}) QueryBuilder {
	q.values = append(q.values, values...)
	return q
}

func (q *queryBuilder) Returning(cols ...string) QueryBuilder {
	q.returning = append(q.returning, cols...)
	return q
}

func (q *queryBuilder) OnConflict(cols ...string) QueryBuilder {
	q.onConflict = cols
	return q
}

func (q *queryBuilder) DoUpdate(cols ...string) QueryBuilder {
	q.setCols = cols
	return q
}

func (q *queryBuilder) Update(table string, data UpdateData) QueryBuilder {
	q.table = table
	q.updateData = data
	return q
}

func (q *queryBuilder) Delete(table string) QueryBuilder {
	q.table = table
	q.isDelete = true
	return q
}

func (q *queryBuilder) Build() (string, []interface{}) {
	switch {
	case q.isInsert:
		return q.buildInsert()
	case len(q.updateData) > 0:
		return q.buildUpdate()
	case q.isDelete:
		return q.buildDelete()
	default:
		return q.buildSelect()
	}
}

func buildCondition(conditions []Condition) (string, []interface{}) {
	parts := make([]string, 0, len(conditions))
	args := make([]interface{}, 0)

	for i, cond := range conditions {
		if i > 0 {
			parts = append(parts, cond.condType.ToString())
		}
		parts = append(parts, cond.clause)
		args = append(args, cond.args...)
	}

	return strings.Join(parts, " "), args
}

func (q *queryBuilder) buildSelect() (string, []interface{}) {
	query := fmt.Sprintf("SELECT %s FROM %s.%s", strings.Join(q.cols, ", "), q.schema, q.table)

	var args []interface{}
	if len(q.conditions) > 0 {
		condition, condArgs := buildCondition(q.conditions)
		query += fmt.Sprintf(" WHERE %s", condition)
		args = append(args, condArgs...)
	}

	if len(q.orderBy) > 0 {
		query += fmt.Sprintf(" ORDER BY %s", strings.Join(q.orderBy, ", "))
	}

	return query, args
}

func (q *queryBuilder) buildInsert() (string, []interface{}) {
	placeholders := make([]string, len(q.values))
	for i := range q.values {
		placeholders[i] = "?"
	}

	query := fmt.Sprintf(
		"INSERT INTO %s.%s (%s) VALUES (%s)",
		q.schema, q.table,
		strings.Join(q.cols, ", "),
		strings.Join(placeholders, ", "),
	)

	if len(q.onConflict) > 0 {
		query += fmt.Sprintf(" ON CONFLICT (%s)", strings.Join(q.onConflict, ", "))
		if len(q.setCols) > 0 {
			sets := make([]string, len(q.setCols))
			for i, col := range q.setCols {
				sets[i] = fmt.Sprintf("%s = EXCLUDED.%s", col, col)
			}
			query += fmt.Sprintf(" DO UPDATE SET %s", strings.Join(sets, ", "))
		} else {
			query += " DO NOTHING"
		}
	}

	if len(q.returning) > 0 {
		query += fmt.Sprintf(" RETURNING %s", strings.Join(q.returning, ", "))
	}

	return query, q.values
}

func (q *queryBuilder) buildUpdate() (string, []interface{}) {
	sets := make([]string, 0, len(q.updateData))
	args := make([]interface{}, 0, len(q.updateData))
	for _, col := range q.updateData.sortedColumns() {
		sets = append(sets, fmt.Sprintf("%s = ?", col))
		args = append(args, q.updateData[col])
	}

	query := fmt.Sprintf("UPDATE %s.%s SET %s", q.schema, q.table, strings.Join(sets, ", "))

	if len(q.conditions) > 0 {
		condition, condArgs := buildCondition(q.conditions)
		query += fmt.Sprintf(" WHERE %s", condition)
		args = append(args, condArgs...)
	}

	return query, args
}

func (q *queryBuilder) buildDelete() (string, []interface{}) {
	query := fmt.Sprintf("DELETE FROM %s.%s", q.schema, q.table)

	var args []interface{}
	if len(q.conditions) > 0 {
		condition, condArgs := buildCondition(q.conditions)
		query += fmt.Sprintf(" WHERE %s", condition)
		args = append(args, condArgs...)
	}

	return query, args
}
