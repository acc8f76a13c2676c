package placeholder

import (
	"regexp"
	"sort"
	"strings"

	"szerzodes-gpt/vars"
)

// 只匹配 {{UPPER_SNAKE_CASE}}，其它括号语法一律忽略
var tokenRe = regexp.MustCompile(`\{\{([A-Z0-9_]+)\}\}`)

// Token 返回占位符的字面形式
func Token(name string) string {
	return "{{" + name + "}}"
}

// Extract 返回模板中去重后的占位符名称，按字母排序
func Extract(html string) []string {
	matches := tokenRe.FindAllStringSubmatch(html, -1)
	if len(matches) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(matches))
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		if _, ok := seen[m[1]]; ok {
			continue
		}
		seen[m[1]] = struct{}{}
		names = append(names, m[1])
	}
	sort.Strings(names)
	return names
}

// Fill 按字面替换 {{KEY}}，空值替换为空白标记；
// values 中没有的占位符原样保留
func Fill(html string, values map[string]string) string {
	if len(values) == 0 {
		return html
	}
	pairs := make([]string, 0, len(values)*2)
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		v := values[k]
		if strings.TrimSpace(v) == "" {
			v = vars.BlankMarker
		}
		pairs = append(pairs, Token(k), v)
	}
	// Replacer 单次扫描，替换值里出现的 token 不会被二次替换
	return strings.NewReplacer(pairs...).Replace(html)
}
