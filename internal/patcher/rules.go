// Package patcher repairs escaped backticks and escaped dollar signs left
// behind in template-literal source files.
package patcher

import "regexp"

// Rule is a literal find/replace pair applied globally to file content.
type Rule struct {
	Name string
	From string
	To   string

	pattern *regexp.Regexp
}

func newRule(name, from, to string) Rule {
	return Rule{
		Name:    name,
		From:    from,
		To:      to,
		pattern: regexp.MustCompile(regexp.QuoteMeta(from)),
	}
}

// Rule names
const (
	RuleEscapedBacktick = "escaped-backtick"
	RuleEscapedDollar   = "escaped-dollar"
)

// Rules are applied in order. The dollar rule matches two backslashes while
// the backtick rule matches one; both are kept exactly as the broken files
// were produced.
var Rules = []Rule{
	newRule(RuleEscapedBacktick, "\\`", "`"),
	newRule(RuleEscapedDollar, `\\$`, "$"),
}

// Counts holds the number of replacements made per rule name.
type Counts map[string]int

// Total returns the number of replacements across all rules.
func (c Counts) Total() int {
	total := 0
	for _, n := range c {
		total += n
	}
	return total
}

// Apply replaces every non-overlapping occurrence of the rule, scanning left
// to right in a single pass.
func (r Rule) Apply(content string) (string, int) {
	n := len(r.pattern.FindAllStringIndex(content, -1))
	if n == 0 {
		return content, 0
	}
	return r.pattern.ReplaceAllLiteralString(content, r.To), n
}

// Fix applies all rules to content and reports how many replacements each made.
func Fix(content string) (string, Counts) {
	counts := make(Counts, len(Rules))
	for _, rule := range Rules {
		var n int
		content, n = rule.Apply(content)
		counts[rule.Name] = n
	}
	return content, counts
}
