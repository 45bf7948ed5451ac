package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompleted_Truthy(t *testing.T) {
	for _, in := range []string{"✅", "☑", "✓", "√", "是", "完成", "true", "True", "TRUE", "1", "yes", "Yes", " ✅ "} {
		assert.True(t, Completed(in), "input %q", in)
	}
}

func TestCompleted_Falsy(t *testing.T) {
	for _, in := range []string{"□", "☐", "否", "未完成", "", "false", "0", "no", "maybe", "进行中"} {
		assert.False(t, Completed(in), "input %q", in)
	}
}

func TestFirstMatch_NoRules(t *testing.T) {
	v, ok := FirstMatch[int]("x")
	assert.False(t, ok)
	assert.Zero(t, v)
}
