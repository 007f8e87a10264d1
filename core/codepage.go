package core

import (
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
)

var codePages = map[string]encoding.Encoding{
	"ANSI_874":  charmap.Windows874,
	"ANSI_932":  japanese.ShiftJIS,
	"ANSI_936":  simplifiedchinese.GBK,
	"ANSI_949":  korean.EUCKR,
	"ANSI_950":  traditionalchinese.Big5,
	"ANSI_1250": charmap.Windows1250,
	"ANSI_1251": charmap.Windows1251,
	"ANSI_1252": charmap.Windows1252,
	"ANSI_1253": charmap.Windows1253,
	"ANSI_1254": charmap.Windows1254,
	"ANSI_1255": charmap.Windows1255,
	"ANSI_1256": charmap.Windows1256,
	"ANSI_1257": charmap.Windows1257,
	"ANSI_1258": charmap.Windows1258,
	"DOS437":    charmap.CodePage437,
	"DOS850":    charmap.CodePage850,
	"DOS852":    charmap.CodePage852,
	"DOS855":    charmap.CodePage855,
	"DOS860":    charmap.CodePage860,
	"DOS863":    charmap.CodePage863,
	"DOS865":    charmap.CodePage865,
	"DOS866":    charmap.CodePage866,
	"GB2312":    simplifiedchinese.GBK,
	"ISO8859-1": charmap.ISO8859_1,
	"ISO8859-2": charmap.ISO8859_2,
	"ISO8859-5": charmap.ISO8859_5,
	"ISO8859-7": charmap.ISO8859_7,
	"ISO8859-9": charmap.ISO8859_9,
}

// CodePageDecoder 根据 $DWGCODEPAGE 取解码器；AC1021 (2007) 及以后版本的图纸固定为 UTF-8，返回 nil
func CodePageDecoder(version, codePage string) *encoding.Decoder {
	if v := strings.ToUpper(strings.TrimSpace(version)); v >= "AC1021" {
		return nil
	}
	enc, ok := codePages[strings.ToUpper(strings.TrimSpace(codePage))]
	if !ok {
		return nil
	}
	return enc.NewDecoder()
}
