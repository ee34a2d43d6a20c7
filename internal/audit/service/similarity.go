package service

import (
	"math"
	"strings"
)

// editDistance — классический Левенштейн (вставка/удаление/замена, цена 1).
func editDistance(a, b string) int {
	ra := []rune(a)
	rb := []rune(b)
	al, bl := len(ra), len(rb)

	dp := make([][]int, al+1)
	for i := 0; i <= al; i++ {
		dp[i] = make([]int, bl+1)
	}
	for i := 0; i <= al; i++ {
		dp[i][0] = i
	}
	for j := 0; j <= bl; j++ {
		dp[0][j] = j
	}

	for i := 1; i <= al; i++ {
		for j := 1; j <= bl; j++ {
			cost := 0
			if ra[i-1] != rb[j-1] {
				cost = 1
			}
			dp[i][j] = min3(dp[i-1][j]+1, dp[i][j-1]+1, dp[i-1][j-1]+cost)
		}
	}
	return dp[al][bl]
}

func min2(a, b int) int {
	if a < b {
		return a
	}
	return b
}
func min3(a, b, c int) int { return min2(min2(a, b), c) }

// EditSimilarity — 1 − distance/max(len); пустая строка даёт 0.
func EditSimilarity(a, b string) float64 {
	if a == "" || b == "" {
		return 0
	}
	la := len([]rune(a))
	lb := len([]rune(b))
	m := la
	if lb > m {
		m = lb
	}
	return 1 - float64(editDistance(a, b))/float64(m)
}

// NameSimilarity — составная метрика для имён поставщиков:
// пересечение множеств символов (0.3) + общий префикс (0.2) +
// Левенштейн (0.4) + бонус за подстроку. Бонус исторически входит дважды
// (0.2 и ещё 0.2×0.1) — пороги откалиброваны под это, не "чинить".
func NameSimilarity(a, b string) float64 {
	if a == "" || b == "" {
		return 0
	}
	s1 := strings.ToUpper(a)
	s2 := strings.ToUpper(b)

	set1 := runeSet(s1)
	set2 := runeSet(s2)
	inter, union := 0, len(set2)
	for r := range set1 {
		if _, ok := set2[r]; ok {
			inter++
		} else {
			union++
		}
	}
	charRatio := float64(inter) / math.Max(float64(union), 1)

	r1 := []rune(s1)
	r2 := []rune(s2)
	minLen := min2(len(r1), len(r2))
	prefix := 0
	for i := 0; i < minLen; i++ {
		if r1[i] != r2[i] {
			break
		}
		prefix++
	}
	prefixRatio := float64(prefix) / math.Max(float64(minLen), 1)

	bonus := 0.0
	if strings.Contains(s1, s2) || strings.Contains(s2, s1) {
		bonus = 0.2
	}
	lev := EditSimilarity(s1, s2)

	return math.Min(1.0, charRatio*0.3+prefixRatio*0.2+lev*0.4+bonus*0.1+bonus)
}

// DescriptionSimilarity — отдельная (более старая) метрика для описаний
// деталей: доля общих символов (0.6) + общий префикс (0.4) + 0.3 за
// подстроку. Порог 0.90 настроен именно под неё — с NameSimilarity не
// объединять.
func DescriptionSimilarity(a, b string) float64 {
	if a == "" || b == "" {
		return 0
	}
	s1 := strings.TrimSpace(strings.ToLower(a))
	s2 := strings.TrimSpace(strings.ToLower(b))
	if s1 == s2 {
		return 1
	}
	r1 := []rune(s1)
	r2 := []rune(s2)
	if len(r1) < 3 || len(r2) < 3 {
		return 0
	}

	longer, shorter := r1, r2
	if len(r2) > len(r1) {
		longer, shorter = r2, r1
	}
	longSet := runeSet(string(longer))
	matches := 0
	for _, r := range shorter {
		if _, ok := longSet[r]; ok {
			matches++
		}
	}
	charRatio := float64(matches) / float64(len(longer))

	prefix := 0
	for i := 0; i < len(shorter); i++ {
		if r1[i] != r2[i] {
			break
		}
		prefix++
	}
	maxLen := len(r1)
	if len(r2) > maxLen {
		maxLen = len(r2)
	}
	prefixRatio := float64(prefix) / float64(maxLen)

	bonus := 0.0
	if strings.Contains(s1, s2) || strings.Contains(s2, s1) {
		bonus = 0.3
	}
	return math.Min(1, charRatio*0.6+prefixRatio*0.4+bonus)
}

func runeSet(s string) map[rune]struct{} {
	m := make(map[rune]struct{}, len(s))
	for _, r := range s {
		m[r] = struct{}{}
	}
	return m
}
