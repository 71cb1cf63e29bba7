// Package style 提供终端输出的样式化功能 (JSON 高亮、表格、Markdown)
package style

import "github.com/charmbracelet/lipgloss"

// 终端配色
const (
	// 主题强调色, 用于表头与数字
	ColorAccentPrimary = lipgloss.Color("#33A1FF")

	// 主要文本颜色
	ColorText = lipgloss.Color("#E4E4E4")

	// 边框颜色
	ColorBorder = lipgloss.Color("#444444")

	// 成功 / 有效
	ColorSuccess = lipgloss.Color("#22C55E")

	// 错误 / 无效
	ColorDanger = lipgloss.Color("#FF5555")

	ColorJSONKey   = lipgloss.Color("#55bcf4ff")
	ColorJSONBool  = lipgloss.Color("#dfab49ff")
	ColorJSONNull  = lipgloss.Color("#6272A4")
	ColorJSONPunct = lipgloss.Color("#6B7280")
)

// Status 返回带颜色的状态文本, ok 为 true 时为绿色, 否则为红色
func Status(ok bool, text string) string {
	if ok {
		return lipgloss.NewStyle().Foreground(ColorSuccess).Render(text)
	}
	return lipgloss.NewStyle().Foreground(ColorDanger).Render(text)
}
