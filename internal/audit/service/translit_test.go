package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContainsCyrillic(t *testing.T) {
	assert.True(t, ContainsCyrillic("ТОВ Оріон"))
	assert.True(t, ContainsCyrillic("Orion Трейд"))
	assert.False(t, ContainsCyrillic("Orion Trading LLC"))
	assert.False(t, ContainsCyrillic(""))
}

func TestTransliterate(t *testing.T) {
	tests := []struct{ in, want string }{
		{"Оріон", "Orion"},
		{"Щука", "SHCHuka"},
		{"ТЕХНОЛОГІЯ", "TEKHNOLOHIYA"},
		{"Київ", "Kyyiv"},
		{"ltd.", "ltd."},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Transliterate(tt.in), tt.in)
	}
}

func TestNormalizeForComparison(t *testing.T) {
	assert.Equal(t, "TOVORION", NormalizeForComparison(`ТОВ «Оріон»`))
	assert.Equal(t, "ORIONTRADINGLLC", NormalizeForComparison("Orion Trading, LLC"))
	assert.Equal(t, "", NormalizeForComparison(""))

	// идемпотентность
	n := NormalizeForComparison("ПП Промтех-2000")
	assert.Equal(t, n, NormalizeForComparison(n))
}

func TestSignificantRoots(t *testing.T) {
	roots := SignificantRoots("Orion Trading LLC")
	assert.Equal(t, map[string]struct{}{"ORION": {}}, roots)

	roots = SignificantRoots("ТОВ Промтех")
	assert.Equal(t, map[string]struct{}{"PROMTEKH": {}}, roots)

	// одни генерики и короткие токены — корней нет
	assert.Empty(t, SignificantRoots("Steel Group Ltd"))
	assert.Empty(t, SignificantRoots(""))
}
