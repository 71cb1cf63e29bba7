package style

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// PrintJSON 将 v 缩进并高亮后写入 w
//
// v 为 string 或 []byte 时视为原始 JSON 文本, 其他值先经 json.MarshalIndent 编码.
func PrintJSON(w io.Writer, v any) error {
	pretty, err := FormatJSON(v)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(w, colorizeJSON(pretty))
	return err
}

// FormatJSON 返回以换行结尾的缩进 JSON 文本
func FormatJSON(v any) (string, error) {
	var raw []byte
	switch x := v.(type) {
	case string:
		raw = []byte(x)
	case []byte:
		raw = x
	default:
		b, err := json.Marshal(v)
		if err != nil {
			return "", err
		}
		raw = b
	}

	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return "null\n", nil
	}
	var out bytes.Buffer
	if err := json.Indent(&out, raw, "", "  "); err != nil {
		return "", err
	}
	out.WriteByte('\n')
	return out.String(), nil
}

// colorizeJSON 对缩进好的 JSON 文本着色, 空白保持原样
func colorizeJSON(s string) string {
	keyStyle := lipgloss.NewStyle().Foreground(ColorJSONKey).Bold(true)
	strStyle := lipgloss.NewStyle().Foreground(ColorText)
	numStyle := lipgloss.NewStyle().Foreground(ColorAccentPrimary)
	boolStyle := lipgloss.NewStyle().Foreground(ColorJSONBool)
	nullStyle := lipgloss.NewStyle().Foreground(ColorJSONNull)
	punctStyle := lipgloss.NewStyle().Foreground(ColorJSONPunct)

	var b strings.Builder
	for i := 0; i < len(s); {
		ch := s[i]
		switch {
		case ch == '"':
			end := closingQuote(s, i)
			token := s[i:end]
			if nextNonSpace(s, end) == ':' {
				b.WriteString(keyStyle.Render(token))
			} else {
				b.WriteString(strStyle.Render(token))
			}
			i = end
		case strings.IndexByte("{}[]:,", ch) >= 0:
			b.WriteString(punctStyle.Render(string(ch)))
			i++
		case ch == '-' || (ch >= '0' && ch <= '9'):
			end := i + 1
			for end < len(s) && strings.IndexByte("0123456789.eE+-", s[end]) >= 0 {
				end++
			}
			b.WriteString(numStyle.Render(s[i:end]))
			i = end
		case strings.HasPrefix(s[i:], "true"):
			b.WriteString(boolStyle.Render("true"))
			i += 4
		case strings.HasPrefix(s[i:], "false"):
			b.WriteString(boolStyle.Render("false"))
			i += 5
		case strings.HasPrefix(s[i:], "null"):
			b.WriteString(nullStyle.Render("null"))
			i += 4
		default:
			b.WriteByte(ch)
			i++
		}
	}
	return b.String()
}

// closingQuote 返回从 start 处引号开始的字符串 token 的结束位置 (半开区间)
func closingQuote(s string, start int) int {
	for i := start + 1; i < len(s); i++ {
		switch s[i] {
		case '\\':
			i++
		case '"':
			return i + 1
		}
	}
	return len(s)
}

func nextNonSpace(s string, i int) byte {
	for ; i < len(s); i++ {
		if s[i] != ' ' && s[i] != '\t' && s[i] != '\n' && s[i] != '\r' {
			return s[i]
		}
	}
	return 0
}
