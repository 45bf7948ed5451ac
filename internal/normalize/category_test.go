package normalize

import (
	"testing"

	"github.com/alexanderramin/planboard/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestCategory(t *testing.T) {
	cases := []struct {
		in   string
		want domain.Category
	}{
		// exact labels
		{"📚 学习输入", domain.CategoryLearning},
		{"🏃‍♀️ 运动锻炼", domain.CategoryExercise},
		{"🎵 兴趣爱好", domain.CategoryHobby},
		{"🌲 目标设定", domain.CategoryGoal},
		{"🚗 其他事项", domain.CategoryOther},
		{"目标设定", domain.CategoryGoal},
		// substring either way
		{"兴趣", domain.CategoryHobby},
		{"本周运动锻炼安排", domain.CategoryExercise},
		// keywords
		{"跑步30分钟", domain.CategoryExercise},
		{"英语听力", domain.CategoryLearning},
		{"声乐课", domain.CategoryHobby},
		{"其他杂事", domain.CategoryOther},
		// canonical names
		{"exercise", domain.CategoryExercise},
		{"Goal", domain.CategoryGoal},
		// defaults
		{"随便写写", domain.CategoryLearning},
		{"", domain.CategoryLearning},
		{"   ", domain.CategoryLearning},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Category(tc.in), "input %q", tc.in)
	}
}

func TestCategoryRules_Order(t *testing.T) {
	// Label says exercise, the first keyword hit says learning.
	c, ok := FirstMatch("运动锻炼学习", CategoryRules()...)
	assert.True(t, ok)
	assert.Equal(t, domain.CategoryExercise, c)
}
