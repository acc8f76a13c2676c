package alias

import (
	"sort"
	"strings"
)

// 前端/调用方字段名 -> 模板占位符名，key 统一小写
var table = map[string]string{
	"parties":              "PARTIES",
	"felek":                "PARTIES",
	"type":                 "CONTRACT_TYPE",
	"contract_type":        "CONTRACT_TYPE",
	"title":                "CONTRACT_TITLE",
	"subject":              "SUBJECT",
	"targy":                "SUBJECT",
	"tárgy":                "SUBJECT",
	"payment":              "FEE",
	"fee":                  "FEE",
	"dijazas":              "FEE",
	"díjazás":              "FEE",
	"payment_terms":        "PAYMENT_TERMS",
	"fizetesi_hatarido":    "PAYMENT_TERMS",
	"duration":             "DURATION",
	"idotartam":            "DURATION",
	"időtartam":            "DURATION",
	"start_date":           "START_DATE",
	"kezdes":               "START_DATE",
	"special_terms":        "SPECIAL_TERMS",
	"kulonleges_kikotesek": "SPECIAL_TERMS",
	"place":                "PLACE",
	"hely":                 "PLACE",
	"date":                 "DATE",
	"datum":                "DATE",
	"dátum":                "DATE",

	"client":                 "CLIENT_NAME",
	"client_name":            "CLIENT_NAME",
	"megbizo":                "CLIENT_NAME",
	"megbizo_neve":           "CLIENT_NAME",
	"megbízó":                "CLIENT_NAME",
	"megbizo_cim":            "CLIENT_ADDRESS",
	"megbizo_szekhely":       "CLIENT_ADDRESS",
	"client_address":         "CLIENT_ADDRESS",
	"megbizo_cegjegyzekszam": "CLIENT_REGNO",
	"megbizo_adoszam":        "CLIENT_TAXNO",
	"megbizo_kepviselo":      "CLIENT_REP",

	"contractor":               "CONTRACTOR_NAME",
	"contractor_name":          "CONTRACTOR_NAME",
	"megbizott":                "CONTRACTOR_NAME",
	"megbizott_neve":           "CONTRACTOR_NAME",
	"megbízott":                "CONTRACTOR_NAME",
	"megbizott_cim":            "CONTRACTOR_ADDRESS",
	"megbizott_szekhely":       "CONTRACTOR_ADDRESS",
	"contractor_address":       "CONTRACTOR_ADDRESS",
	"megbizott_cegjegyzekszam": "CONTRACTOR_REGNO",
	"megbizott_adoszam":        "CONTRACTOR_TAXNO",

	"disclosing_party": "CLIENT_NAME",
	"receiving_party":  "CONTRACTOR_NAME",
}

// Canonical 返回字段对应的占位符名，没有映射时原样返回
func Canonical(field string) string {
	if c, ok := table[strings.ToLower(strings.TrimSpace(field))]; ok {
		return c
	}
	return field
}

// Remap 把调用方字段映射到模板词汇，未映射的字段原样保留。
// 原本就是规范名的 key 优先于别名；多个别名指向同一占位符时，
// 按 key 排序取第一个非空值
func Remap(data map[string]string) map[string]string {
	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make(map[string]string, len(data))
	for _, k := range keys {
		if Canonical(k) == k {
			out[k] = data[k]
		}
	}
	for _, k := range keys {
		c := Canonical(k)
		if c == k {
			continue
		}
		if cur, ok := out[c]; ok && strings.TrimSpace(cur) != "" {
			continue
		}
		out[c] = data[k]
	}
	return out
}

// Lookup 为占位符查找取值：非空值优先。顺序为非空的精确匹配、非空的
// 包含匹配（占位符小写后出现在某个 key 的小写里）、空的精确匹配、空的包含匹配。
// 多个包含候选时取最短的 key，再按字典序，保证结果稳定。
func Lookup(name string, data map[string]string) (string, bool) {
	exact, hasExact := data[name]
	if hasExact && strings.TrimSpace(exact) != "" {
		return exact, true
	}
	needle := strings.ToLower(name)
	var filled, blank []string
	for k, v := range data {
		if k == name || !strings.Contains(strings.ToLower(k), needle) {
			continue
		}
		if strings.TrimSpace(v) != "" {
			filled = append(filled, k)
		} else {
			blank = append(blank, k)
		}
	}
	if len(filled) > 0 {
		return data[pickKey(filled)], true
	}
	if hasExact {
		return exact, true
	}
	if len(blank) > 0 {
		return data[pickKey(blank)], true
	}
	return "", false
}

func pickKey(keys []string) string {
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) < len(keys[j])
		}
		return keys[i] < keys[j]
	})
	return keys[0]
}

// Resolve 为每个占位符取值，找不到的为空字符串
func Resolve(names []string, data map[string]string) map[string]string {
	out := make(map[string]string, len(names))
	for _, n := range names {
		v, _ := Lookup(n, data)
		out[n] = v
	}
	return out
}
