package style

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	xterm "github.com/charmbracelet/x/term"
)

// PrintTable 以带边框的表格输出 rows
// width<=0 时自动探测终端宽度, 探测失败则不限制宽度
func PrintTable(w io.Writer, headers []string, rows [][]string, width int) error {
	if width <= 0 {
		width = detectTerminalWidth(w)
	}

	re := lipgloss.NewRenderer(w)
	baseStyle := re.NewStyle().Padding(0, 1)
	headerStyle := baseStyle.Foreground(ColorAccentPrimary).Bold(true)

	upper := make([]string, len(headers))
	for i, h := range headers {
		upper[i] = strings.ToUpper(h)
	}

	tbl := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(re.NewStyle().Foreground(ColorBorder)).
		Headers(upper...).
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return baseStyle
		})
	if width > 0 {
		tbl = tbl.Width(width)
	}

	_, err := fmt.Fprintln(w, tbl)
	return err
}

// detectTerminalWidth 尝试从 writer 获取终端宽度，失败则返回 0
func detectTerminalWidth(w io.Writer) int {
	if f, ok := w.(*os.File); ok {
		if cols, _, err := xterm.GetSize(f.Fd()); err == nil && cols > 0 {
			return cols
		}
	}
	// 某些环境会设置 COLUMNS
	if v := os.Getenv("COLUMNS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return 0
}
