package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMonth(t *testing.T) {
	cases := []struct {
		name      string
		monthCell string
		date      string
		want      string
	}{
		{"explicit token", "3月", "2025-07-01", "3月"},
		{"explicit padded", "03月", "", "3月"},
		{"token inside text", "2025年11月计划", "", "11月"},
		{"derived from date", "", "2025-07-01", "7月"},
		{"month marker without number", "本月", "2025-09-15", "9月"},
		{"nothing", "", "", ""},
		{"bad date", "March", "not-a-date", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Month(tc.monthCell, tc.date))
		})
	}
}

func TestWeek(t *testing.T) {
	assert.Equal(t, "第1周", Week("第1周"))
	assert.Equal(t, "第12周（冲刺）", Week(" 第12周（冲刺） "))
	assert.Equal(t, "", Week("week 1"))
	assert.Equal(t, "", Week("第一"))
	assert.Equal(t, "", Week(""))
}
