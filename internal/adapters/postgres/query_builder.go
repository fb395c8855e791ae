package postgres_adapter

import (
	"fmt"
	"strings"
)

// queryBuilder accumulates WHERE conditions with positional args. The
// repositories only narrow result sets coarsely (visibility, ownership);
// fine-grained filtering happens in the use case layer.
type queryBuilder struct {
	conditions []string
	args       []interface{}
	argId      int
}

func newQueryBuilder() *queryBuilder {
	return &queryBuilder{
		argId:      1,
		conditions: make([]string, 0),
		args:       make([]interface{}, 0),
	}
}

func (qb *queryBuilder) addCondition(condition string, fieldName string, arg interface{}) {
	qb.conditions = append(qb.conditions, fmt.Sprintf(condition, fieldName, qb.argId))
	qb.args = append(qb.args, arg)
	qb.argId++
}

func (qb *queryBuilder) addRawCondition(condition string) {
	qb.conditions = append(qb.conditions, condition)
}

func (qb *queryBuilder) build() (string, []interface{}) {
	whereClause := ""
	if len(qb.conditions) > 0 {
		whereClause = "WHERE " + strings.Join(qb.conditions, " AND ")
	}
	return whereClause, qb.args
}
