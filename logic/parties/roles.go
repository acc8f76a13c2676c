package parties

import (
	"regexp"
	"strings"
)

// 第一组角色视为委托方（CLIENT），第二组视为受托方（CONTRACTOR）
var (
	clientRoles     = []string{"megbízó", "megrendelő", "bérbeadó", "eladó", "munkáltató", "átadó fél", "közlő fél"}
	contractorRoles = []string{"megbízott", "vállalkozó", "bérlő", "vevő", "munkavállaló", "átvevő fél", "fogadó fél"}

	// 长词在前，避免 "megbízó" 抢先匹配 "megbízott"
	roleMarkerRe = regexp.MustCompile(`(?i)(megbízott|megbízó|megrendelő|vállalkozó|bérbeadó|bérlő|eladó|vevő|munkáltató|munkavállaló|átadó fél|átvevő fél|közlő fél|fogadó fél)\s*:`)
	parenRoleRe  = regexp.MustCompile(`(?i)([^,;()\n]+?)\s*\(\s*(megbízott|megbízó|megrendelő|vállalkozó|bérbeadó|bérlő|eladó|vevő|munkáltató|munkavállaló)\s*\)`)
)

// Roles 启发式识别出的双方名称，未识别为空串
type Roles struct {
	Client     string
	Contractor string
}

// SplitRoles 从 "Megbízó: X, Megbízott: Y" 或 "X (megbízó) és Y (megbízott)" 中取出双方名称
func SplitRoles(text string) Roles {
	var r Roles
	locs := roleMarkerRe.FindAllStringSubmatchIndex(text, -1)
	for i, loc := range locs {
		end := len(text)
		if i+1 < len(locs) {
			end = locs[i+1][0]
		}
		name := cleanName(text[loc[1]:end])
		assign(&r, text[loc[2]:loc[3]], name)
	}
	if r.Client != "" && r.Contractor != "" {
		return r
	}
	for _, m := range parenRoleRe.FindAllStringSubmatch(text, -1) {
		name := cleanName(strings.TrimPrefix(strings.TrimSpace(m[1]), "és "))
		assign(&r, m[2], name)
	}
	return r
}

func assign(r *Roles, role, name string) {
	if name == "" {
		return
	}
	role = strings.ToLower(role)
	for _, c := range clientRoles {
		if role == c && r.Client == "" {
			r.Client = name
			return
		}
	}
	for _, c := range contractorRoles {
		if role == c && r.Contractor == "" {
			r.Contractor = name
			return
		}
	}
}

func cleanName(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimRight(s, " ,;\n\t")
	s = strings.TrimSpace(s)
	for _, suffix := range []string{" és", " valamint"} {
		if len(s) >= len(suffix) && strings.EqualFold(s[len(s)-len(suffix):], suffix) {
			s = strings.TrimSpace(s[:len(s)-len(suffix)])
		}
	}
	// 只保留首行
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = strings.TrimSpace(s[:i])
	}
	return strings.TrimRight(s, " ,;")
}

// Apply 仅在字段为空时用启发式结果补齐
func (r Roles) Apply(values map[string]string) {
	if r.Client != "" && strings.TrimSpace(values["CLIENT_NAME"]) == "" {
		values["CLIENT_NAME"] = r.Client
	}
	if r.Contractor != "" && strings.TrimSpace(values["CONTRACTOR_NAME"]) == "" {
		values["CONTRACTOR_NAME"] = r.Contractor
	}
}
