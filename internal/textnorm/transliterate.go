// Package textnorm normalizes song metadata and search queries:
// Cyrillic-to-Latin transliteration for alternate-query search and
// cleanup of titles/artists returned by the search API.
package textnorm

import "strings"

// cyrillicToLatin maps each Cyrillic rune (including the Uzbek letters
// ў қ ғ ҳ) to its Latin digraph or character. Runes absent from the
// table pass through unchanged.
var cyrillicToLatin = map[rune]string{
	'а': "a", 'б': "b", 'в': "v", 'г': "g", 'д': "d", 'е': "e", 'ё': "yo",
	'ж': "j", 'з': "z", 'и': "i", 'й': "y", 'к': "k", 'л': "l", 'м': "m",
	'н': "n", 'о': "o", 'п': "p", 'р': "r", 'с': "s", 'т': "t", 'у': "u",
	'ф': "f", 'х': "x", 'ц': "ts", 'ч': "ch", 'ш': "sh", 'щ': "shch",
	'ъ': "'", 'ы': "i", 'ь': "", 'э': "e", 'ю': "yu", 'я': "ya",
	'ў': "o'", 'қ': "q", 'ғ': "g'", 'ҳ': "h",
	'А': "A", 'Б': "B", 'В': "V", 'Г': "G", 'Д': "D", 'Е': "E", 'Ё': "Yo",
	'Ж': "J", 'З': "Z", 'И': "I", 'Й': "Y", 'К': "K", 'Л': "L", 'М': "M",
	'Н': "N", 'О': "O", 'П': "P", 'Р': "R", 'С': "S", 'Т': "T", 'У': "U",
	'Ф': "F", 'Х': "X", 'Ц': "Ts", 'Ч': "Ch", 'Ш': "Sh", 'Щ': "Shch",
	'Ъ': "'", 'Ы': "I", 'Ь': "", 'Э': "E", 'Ю': "Yu", 'Я': "Ya",
	'Ў': "O'", 'Қ': "Q", 'Ғ': "G'", 'Ҳ': "H",
}

func isLatinLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isCyrillicLetter(r rune) bool {
	_, ok := cyrillicToLatin[r]
	return ok
}

// Transliterate converts Cyrillic text to Latin script using a fixed
// character table. Input that already contains Latin letters and no
// Cyrillic letters is returned unchanged, so the function is idempotent
// on pure-Latin queries.
func Transliterate(text string) string {
	if text == "" {
		return ""
	}

	latin, cyrillic := 0, 0
	for _, r := range text {
		switch {
		case isLatinLetter(r):
			latin++
		case isCyrillicLetter(r):
			cyrillic++
		}
	}
	if latin > 0 && cyrillic == 0 {
		return text
	}

	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if mapped, ok := cyrillicToLatin[r]; ok {
			b.WriteString(mapped)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
