package normalize

import (
	"strings"

	"github.com/alexanderramin/planboard/internal/domain"
)

// CategoryRule pairs a label or keyword with the category it signals.
type CategoryRule struct {
	Pattern  string
	Category domain.Category
}

// CategoryLabels are the labels used by the planning spreadsheet template,
// with and without their emoji prefix. Order matters for substring matching.
var CategoryLabels = []CategoryRule{
	{"📚 学习输入", domain.CategoryLearning},
	{"📚学习输入", domain.CategoryLearning},
	{"🏃🏻‍♀️ 运动锻炼", domain.CategoryExercise},
	{"🏃‍♀️ 运动锻炼", domain.CategoryExercise},
	{"🎵 兴趣爱好", domain.CategoryHobby},
	{"🌲 目标设定", domain.CategoryGoal},
	{"🚗 其他事项", domain.CategoryOther},
	{"学习输入", domain.CategoryLearning},
	{"运动锻炼", domain.CategoryExercise},
	{"兴趣爱好", domain.CategoryHobby},
	{"目标设定", domain.CategoryGoal},
	{"其他事项", domain.CategoryOther},
}

// CategoryKeywords are tried when no label matches.
var CategoryKeywords = []CategoryRule{
	{"学习", domain.CategoryLearning},
	{"读书", domain.CategoryLearning},
	{"英语", domain.CategoryLearning},
	{"运动", domain.CategoryExercise},
	{"跑步", domain.CategoryExercise},
	{"锻炼", domain.CategoryExercise},
	{"兴趣", domain.CategoryHobby},
	{"爱好", domain.CategoryHobby},
	{"声乐", domain.CategoryHobby},
	{"音乐", domain.CategoryHobby},
	{"其他", domain.CategoryOther},
}

// CategoryRules returns the category pipeline in priority order.
func CategoryRules() []Rule[domain.Category] {
	return []Rule[domain.Category]{
		canonicalCategory,
		exactLabel(CategoryLabels),
		partialLabel(CategoryLabels),
		keyword(CategoryKeywords),
	}
}

// Category resolves a type cell, falling back to domain.DefaultCategory.
func Category(cell string) domain.Category {
	cell = Clean(cell)
	if cell == "" {
		return domain.DefaultCategory
	}
	if c, ok := FirstMatch(cell, CategoryRules()...); ok {
		return c
	}
	return domain.DefaultCategory
}

// canonicalCategory accepts cells that already hold a category name.
func canonicalCategory(cell string) (domain.Category, bool) {
	c := domain.Category(strings.ToLower(cell))
	return c, c.Valid()
}

func exactLabel(table []CategoryRule) Rule[domain.Category] {
	return func(cell string) (domain.Category, bool) {
		for _, r := range table {
			if cell == r.Pattern {
				return r.Category, true
			}
		}
		return "", false
	}
}

// partialLabel matches when either the label contains the cell or the cell
// contains the label.
func partialLabel(table []CategoryRule) Rule[domain.Category] {
	return func(cell string) (domain.Category, bool) {
		for _, r := range table {
			if strings.Contains(cell, r.Pattern) || strings.Contains(r.Pattern, cell) {
				return r.Category, true
			}
		}
		return "", false
	}
}

func keyword(table []CategoryRule) Rule[domain.Category] {
	return func(cell string) (domain.Category, bool) {
		for _, r := range table {
			if strings.Contains(cell, r.Pattern) {
				return r.Category, true
			}
		}
		return "", false
	}
}
