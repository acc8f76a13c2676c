package alias

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonical(t *testing.T) {
	assert.Equal(t, "PARTIES", Canonical("parties"))
	assert.Equal(t, "FEE", Canonical(" Payment "))
	assert.Equal(t, "CLIENT_NAME", Canonical("megbizo_neve"))
	assert.Equal(t, "unknown_field", Canonical("unknown_field"))
}

func TestRemap(t *testing.T) {
	out := Remap(map[string]string{
		"subject":      "online marketing",
		"payment":      "havi 200.000 Ft + áfa",
		"CLIENT_NAME":  "Kiss János",
		"megbizo_neve": "Nagy Péter",
		"custom_note":  "marad",
	})
	assert.Equal(t, "online marketing", out["SUBJECT"])
	assert.Equal(t, "havi 200.000 Ft + áfa", out["FEE"])
	assert.Equal(t, "Kiss János", out["CLIENT_NAME"], "canonical key wins over alias")
	assert.Equal(t, "marad", out["custom_note"])
	_, hasAlias := out["subject"]
	assert.False(t, hasAlias)
}

func TestRemapFillsEmptyCanonical(t *testing.T) {
	out := Remap(map[string]string{
		"CLIENT_NAME": "",
		"client":      "Kiss János",
	})
	assert.Equal(t, "Kiss János", out["CLIENT_NAME"])
}

func TestLookup(t *testing.T) {
	data := map[string]string{
		"CLIENT_NAME":        "Kiss János",
		"client_name_backup": "x",
		"contractor_address": "Budapest",
	}

	v, ok := Lookup("CLIENT_NAME", data)
	assert.True(t, ok)
	assert.Equal(t, "Kiss János", v)

	v, ok = Lookup("CONTRACTOR_ADDRESS", data)
	assert.True(t, ok)
	assert.Equal(t, "Budapest", v)

	_, ok = Lookup("FEE", data)
	assert.False(t, ok)
}

func TestLookupPrefersShortestKey(t *testing.T) {
	data := map[string]string{
		"my_fee_total": "b",
		"fee_x":        "a",
	}
	v, ok := Lookup("FEE", data)
	assert.True(t, ok)
	assert.Equal(t, "a", v)
}

func TestLookupSkipsEmptyExactMatch(t *testing.T) {
	data := map[string]string{
		"FEE":              "",
		"FEE_AMOUNT":       "500 000 Ft",
		"PLACE":            "  ",
		"PLACE_OF_SIGNING": "Budapest",
		"DATE":             "",
	}

	v, ok := Lookup("FEE", data)
	assert.True(t, ok)
	assert.Equal(t, "500 000 Ft", v)

	v, ok = Lookup("PLACE", data)
	assert.True(t, ok)
	assert.Equal(t, "Budapest", v)

	v, ok = Lookup("DATE", data)
	assert.True(t, ok)
	assert.Equal(t, "", v)
}

func TestLookupExactWinsWhenFilled(t *testing.T) {
	data := map[string]string{"FEE": "100 Ft", "FEE_AMOUNT": "200 Ft"}
	v, ok := Lookup("FEE", data)
	assert.True(t, ok)
	assert.Equal(t, "100 Ft", v)
}

func TestResolve(t *testing.T) {
	out := Resolve([]string{"SUBJECT", "FEE"}, map[string]string{"subject_text": "tanácsadás"})
	assert.Equal(t, map[string]string{"SUBJECT": "tanácsadás", "FEE": ""}, out)
}
