package style

import (
	"io"

	"github.com/charmbracelet/glamour"
)

// RenderMarkdown 渲染 Markdown 文本并写入 w
// width<=0 时使用终端宽度, 结果限制在 [80, 120] 之间; theme 为空时使用 glamour 的自动样式
func RenderMarkdown(w io.Writer, input string, width int, theme string) error {
	if width <= 0 {
		width = detectTerminalWidth(w)
	}
	width = max(80, min(width, 120))

	opts := []glamour.TermRendererOption{
		glamour.WithWordWrap(width),
	}
	if theme != "" {
		opts = append(opts, glamour.WithStandardStyle(theme))
	} else {
		opts = append(opts, glamour.WithAutoStyle())
	}

	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return err
	}

	out, err := r.Render(input)
	if err != nil {
		return err
	}

	_, err = io.WriteString(w, out)
	return err
}
