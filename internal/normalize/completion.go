package normalize

import "strings"

var (
	truthyTokens = []string{"☑", "✅", "✓", "√", "1", "true", "yes", "是", "完成"}
	falsyTokens  = []string{"□", "☐", "0", "false", "no", "否", "未完成"}
)

// CompletionRules returns the completion pipeline in priority order.
func CompletionRules() []Rule[bool] {
	return []Rule[bool]{
		tokenSet(truthyTokens, true),
		tokenSet(falsyTokens, false),
	}
}

// Completed resolves a completion cell. Unrecognised values count as not
// completed.
func Completed(cell string) bool {
	done, _ := FirstMatch(Clean(cell), CompletionRules()...)
	return done
}

func tokenSet(tokens []string, value bool) Rule[bool] {
	return func(cell string) (bool, bool) {
		for _, tok := range tokens {
			if strings.EqualFold(cell, tok) {
				return value, true
			}
		}
		return false, false
	}
}
