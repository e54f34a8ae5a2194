package grammar

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// BaseEnglish is the standard Tracery modifier set.
func BaseEnglish() map[string]Modifier {
	return map[string]Modifier{
		"capitalize":    capitalize,
		"capitalizeAll": capitalizeAll,
		"inQuotes":      inQuotes,
		"comma":         comma,
		"a":             article,
		"s":             plural,
		"firstS":        firstS,
		"ed":            pastTense,
	}
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

func capitalizeAll(s string) string {
	var out strings.Builder
	startOfWord := true
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if startOfWord {
				r = unicode.ToUpper(r)
			}
			startOfWord = false
		} else {
			startOfWord = true
		}
		out.WriteRune(r)
	}
	return out.String()
}

func inQuotes(s string) string {
	return "\"" + s + "\""
}

func comma(s string) string {
	if s == "" {
		return ","
	}
	switch s[len(s)-1] {
	case ',', '.', '?', '!':
		return s
	}
	return s + ","
}

func isVowel(b byte) bool {
	switch b {
	case 'a', 'e', 'i', 'o', 'u', 'A', 'E', 'I', 'O', 'U':
		return true
	}
	return false
}

func article(s string) string {
	if s == "" {
		return "a " + s
	}
	// "a unicorn", "a user"
	if (s[0] == 'u' || s[0] == 'U') && len(s) > 2 && (s[2] == 'i' || s[2] == 'I' || s[2] == 'e' || s[2] == 'E') {
		return "a " + s
	}
	if isVowel(s[0]) {
		return "an " + s
	}
	return "a " + s
}

func plural(s string) string {
	if s == "" {
		return s
	}
	switch s[len(s)-1] {
	case 's', 'h', 'x':
		return s + "es"
	case 'y':
		if len(s) > 1 && !isVowel(s[len(s)-2]) {
			return s[:len(s)-1] + "ies"
		}
		return s + "s"
	}
	return s + "s"
}

func firstS(s string) string {
	first, rest, found := strings.Cut(s, " ")
	if !found {
		return plural(s)
	}
	return plural(first) + " " + rest
}

// pastTense inflects the first word only: "walk the dog" -> "walked the dog".
func pastTense(s string) string {
	first, rest, found := strings.Cut(s, " ")
	inflected := first
	if first != "" {
		switch first[len(first)-1] {
		case 'e':
			inflected = first + "d"
		case 'y':
			if len(first) > 1 && !isVowel(first[len(first)-2]) {
				inflected = first[:len(first)-1] + "ied"
			} else {
				inflected = first + "ed"
			}
		default:
			inflected = first + "ed"
		}
	}
	if !found {
		return inflected
	}
	return inflected + " " + rest
}
