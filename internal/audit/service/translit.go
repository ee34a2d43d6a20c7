package service

import "strings"

// Украинская кириллица → латиница (официальная транслитерация).
// Мягкий/твёрдый знаки исчезают, шипящие разворачиваются в диграфы.
// Русские буквы, попадающиеся в тех же экспортах, тоже в таблице.
var cyrillicToLatin = map[rune]string{
	'А': "A", 'Б': "B", 'В': "V", 'Г': "H", 'Ґ': "G", 'Д': "D", 'Е': "E",
	'Є': "YE", 'Ж': "ZH", 'З': "Z", 'И': "Y", 'І': "I", 'Ї': "YI", 'Й': "Y",
	'К': "K", 'Л': "L", 'М': "M", 'Н': "N", 'О': "O", 'П': "P", 'Р': "R",
	'С': "S", 'Т': "T", 'У': "U", 'Ф': "F", 'Х': "KH", 'Ц': "TS", 'Ч': "CH",
	'Ш': "SH", 'Щ': "SHCH", 'Ь': "", 'Ю': "YU", 'Я': "YA", 'Ъ': "", 'Ы': "Y",
	'Э': "E", 'Ё': "YO",
	'а': "a", 'б': "b", 'в': "v", 'г': "h", 'ґ': "g", 'д': "d", 'е': "e",
	'є': "ye", 'ж': "zh", 'з': "z", 'и': "y", 'і': "i", 'ї': "yi", 'й': "y",
	'к': "k", 'л': "l", 'м': "m", 'н': "n", 'о': "o", 'п': "p", 'р': "r",
	'с': "s", 'т': "t", 'у': "u", 'ф': "f", 'х': "kh", 'ц': "ts", 'ч': "ch",
	'ш': "sh", 'щ': "shch", 'ь': "", 'ю': "yu", 'я': "ya", 'ъ': "", 'ы': "y",
	'э': "e", 'ё': "yo",
}

// Генерики, которые не несут идентичности: орг-формы, география, торговые
// слова, распространённые имена/отчества. Совпадение по ним — не совпадение.
var commonBusinessWords = map[string]struct{}{}

func init() {
	words := []string{
		"TOVARYSTVO", "OBMEZHENOYU", "VIDPOVIDALNISTYU", "VIDPOVIDALNIST",
		"PRYVATNE", "PIDPRYYEMSTVO", "PIDPRYYEMETS", "AKTSIONERNE",
		"FIZYCHNA", "OSOBA", "HRUP", "GROUP", "GRUP",
		"COMPANY", "KOMPANIYA", "CORP", "CORPORATION", "ENTERPRISE",
		"LIMITED", "GMBH", "SPZOO", "SPOLKA",
		"UKRAINE", "UKRAYINA", "UKRAINA", "KYIV", "KIEV", "KHARKIV", "ODESA",
		"LVIV", "DNIPRO", "SHENZHEN", "CHINA", "KYTAY",
		"INTERNATIONAL", "MIZHNARODNYI", "NATIONAL", "NATSIONALNYI",
		"GLOBAL", "HLOBALNYI", "WORLD", "SVIT",
		"TRADING", "TREYDINH", "SERVICE", "SERVIS", "SERVICES", "SERVISY",
		"SYSTEMS", "SYSTEMY", "TECHNOLOGY", "TEKHNOLOHIYI", "TECH", "TEKH",
		"PLUS", "PLYUS", "CENTER", "TSENTR", "CENTR", "TRADE",
		"MARKET", "RYNOK", "INVEST", "DEVELOPMENT", "ROZVYTOK",
		"INDUSTRIAL", "PROMYSLOVYI", "PRODUCTION", "VYROBNYTSTVO", "MANUFACTURING",
		"LOGISTICS", "LOHISTYKA", "SUPPLY", "POSTACHANNYA", "SALES", "PRODAZHI",
		"ELECTRONIC", "ELEKTRONIKA", "ELEKTRO", "ELECTRIC", "ELECTRICAL",
		"METAL", "METALL", "STEEL", "STAL", "AUTO", "AVTO", "MOTOR",
		"COMPONENTS", "KOMPONENTY",
		"PROFESSIONAL", "PROFESIONALNYI", "QUALITY", "YAKIST", "STANDARD",
		"EXPERT", "MASTER", "MAYSTER", "SPECIAL", "SPETSIAL", "PREMIUM",
		"OLEKSANDR", "VOLODYMYR", "SERHIY", "ANDRIY", "VIKTOR", "OLENA", "NATALIA",
		"VOLODYMYROVYCH", "VOLODYMYRIVNA", "SERHIYOVYCH", "SERHIYIVNA",
		"VIKTOROVYCH", "VIKTORIVNA", "OLEKSANDROVYCH", "OLEKSANDRIVNA",
		"VASYLOVYCH", "VASYLIVNA", "MYKOLAYOVYCH", "MYKOLAYIVNA",
		"IVANIVNA", "IVANOVYCH", "PETROVYCH", "PETRIVNA",
		"SHOP", "KRAM", "MART", "STOR", "PARK", "CITY", "TOWN", "HOME", "WORK",
		"SOFT", "HARD", "DATA", "INFO", "NEWS", "LINK", "PORT", "BANK", "FOND",
	}
	for _, w := range words {
		commonBusinessWords[w] = struct{}{}
	}
}

const minRootLength = 4

// ContainsCyrillic — есть ли в строке хотя бы один символ кириллического блока.
func ContainsCyrillic(s string) bool {
	for _, r := range s {
		if r >= 0x0400 && r <= 0x04FF {
			return true
		}
	}
	return false
}

// Transliterate — посимвольная замена по таблице; остальное без изменений.
func Transliterate(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if lat, ok := cyrillicToLatin[r]; ok {
			b.WriteString(lat)
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// NormalizeForComparison — верхний регистр, транслитерация, только [A-Z0-9].
// Идемпотентна: повторная нормализация ничего не меняет.
func NormalizeForComparison(s string) string {
	if s == "" {
		return ""
	}
	n := Transliterate(strings.ToUpper(s))
	var b strings.Builder
	b.Grow(len(n))
	for _, r := range n {
		if (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// SignificantRoots — значимые корни имени: токены длиной ≥ 4,
// не входящие в список генериков.
func SignificantRoots(s string) map[string]struct{} {
	roots := make(map[string]struct{})
	if s == "" {
		return roots
	}
	n := Transliterate(strings.ToUpper(s))
	words := strings.FieldsFunc(n, func(r rune) bool {
		return !((r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9'))
	})
	for _, w := range words {
		if len(w) < minRootLength {
			continue
		}
		if _, generic := commonBusinessWords[w]; generic {
			continue
		}
		roots[w] = struct{}{}
	}
	return roots
}
