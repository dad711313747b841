package catalog

import (
	"strings"

	"github.com/Masterminds/squirrel"
)

// Department filter values carry a full group code; only the leading prefix
// identifies the department level of the hierarchy.
const departmentPrefixLen = 6

// descriptionPredicate matches a case-insensitive substring of the product
// description. Returns nil when the term is empty (matches all).
func descriptionPredicate(col, term string) squirrel.Sqlizer {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil
	}
	return squirrel.Expr("UPPER("+col+") LIKE ?", "%"+strings.ToUpper(term)+"%")
}

// membershipPredicate matches rows whose column is in the selected set.
// Returns nil when the selection is empty (matches all).
func membershipPredicate(col string, selected []int) squirrel.Sqlizer {
	if len(selected) == 0 {
		return nil
	}
	return squirrel.Eq{col: selected}
}

// departmentPredicate matches products whose group code starts with any of
// the selected department prefixes. Returns nil when the selection is empty.
func departmentPredicate(col string, selected []string) squirrel.Sqlizer {
	if len(selected) == 0 {
		return nil
	}
	or := make(squirrel.Or, 0, len(selected))
	for _, code := range selected {
		prefix := code
		if len(prefix) > departmentPrefixLen {
			prefix = prefix[:departmentPrefixLen]
		}
		or = append(or, squirrel.Expr("LEFT("+col+", ?) = ?", departmentPrefixLen, prefix))
	}
	return or
}

// linkMembershipPredicate matches products linked to any of the selected
// classification ids. Category and subcategory selections flow through the
// same predicate, so either level satisfies a category-dimension filter.
// Returns nil when the selection is empty.
func linkMembershipPredicate(productCol string, selected []int) squirrel.Sqlizer {
	if len(selected) == 0 {
		return nil
	}
	sub := squirrel.StatementBuilder.
		Select("1").
		From("class_links fl").
		Where("fl.product_code = " + productCol).
		Where(squirrel.Eq{"fl.class_id": selected})
	sql, args, err := sub.ToSql()
	if err != nil {
		// Static query shape: ToSql only fails on builder misuse.
		panic(err)
	}
	return squirrel.Expr("EXISTS ("+sql+")", args...)
}

// applyPredicates conjoins the non-nil predicates onto the builder.
// An empty filter state therefore composes a match-all query.
func applyPredicates(q squirrel.SelectBuilder, preds ...squirrel.Sqlizer) squirrel.SelectBuilder {
	for _, p := range preds {
		if p == nil {
			continue
		}
		q = q.Where(p)
	}
	return q
}
