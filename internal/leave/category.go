package leave

import "strings"

// Category is the closed set of leave categories the ledger understands.
// Every leave policy carries an explicit category; free-text name matching
// happens once, when a policy is configured, never during calculation.
type Category string

const (
	CategoryCasual Category = "CASUAL"
	CategorySick   Category = "SICK"
	CategoryUnpaid Category = "UNPAID"
	// CategoryOther covers maternity, emergency and similar types: fully
	// paid and balance-neutral.
	CategoryOther Category = "OTHER"
)

// ParseCategory derives a category from a policy name. Intended for policy
// configuration time only, as a default when no explicit category is given.
func ParseCategory(policyName string) Category {
	name := strings.ToLower(policyName)
	switch {
	case strings.Contains(name, "casual"):
		return CategoryCasual
	case strings.Contains(name, "sick"):
		return CategorySick
	case strings.Contains(name, "unpaid"):
		return CategoryUnpaid
	default:
		return CategoryOther
	}
}

// CategoryIndex maps a leave-type name to its configured category.
type CategoryIndex map[string]Category

func NewCategoryIndex(policies []Policy) CategoryIndex {
	idx := make(CategoryIndex, len(policies))
	for _, p := range policies {
		idx[strings.ToLower(p.Name)] = p.Category
	}
	return idx
}

// Resolve returns the category for a leave-type name. Types with no
// configured policy are treated as Other: paid, balance-neutral.
func (idx CategoryIndex) Resolve(leaveType string) Category {
	if c, ok := idx[strings.ToLower(leaveType)]; ok {
		return c
	}
	return CategoryOther
}
