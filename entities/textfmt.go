package entities

import (
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var (
	fontCodes    = regexp.MustCompile(`\\[fF][^;]+;`)
	formatCodes  = regexp.MustCompile(`\\[HhCcTtQqWwAa][^;]*;`)
	toggleCodes  = regexp.MustCompile(`\\[LlOoKk]|%%[uUoOkK]`)
	decimalChars = regexp.MustCompile(`%%(\d{3})`)
	hexChars     = regexp.MustCompile(`\\[Uu]\+?[0-9A-Fa-f]{4}|U\+[0-9A-Fa-f]{4}`)
	symbolChars  = strings.NewReplacer(
		"%%d", "°", "%%D", "°",
		"%%p", "±", "%%P", "±",
		"%%c", "⌀", "%%C", "⌀",
		"%%%", "%",
	)
)

// NormalizeText 处理 DXF 文字中的转义与格式码
//
//	\P 换行；\f...; 字体切换移除；%%nnn 十进制字符；\U+XXXX、\uXXXX 与 U+XXXX 十六进制字符
func NormalizeText(s string) string {
	if strings.HasPrefix(s, "{") && strings.HasSuffix(s, "}") && strings.Contains(s, "|") {
		s = s[1 : len(s)-1]
	}

	s = strings.ReplaceAll(s, `\P`, "\n")
	s = fontCodes.ReplaceAllString(s, "")
	s = formatCodes.ReplaceAllString(s, "")
	s = toggleCodes.ReplaceAllString(s, "")

	s = decimalChars.ReplaceAllStringFunc(s, func(m string) string {
		n, err := strconv.Atoi(m[2:])
		if err != nil {
			return m
		}
		return string(rune(n))
	})
	s = symbolChars.Replace(s)
	s = hexChars.ReplaceAllStringFunc(s, func(m string) string {
		n, err := strconv.ParseUint(m[len(m)-4:], 16, 32)
		if err != nil {
			return m
		}
		return string(rune(n))
	})

	return strings.TrimSpace(norm.NFC.String(s))
}
