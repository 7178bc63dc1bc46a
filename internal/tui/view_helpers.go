package tui

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

const uiDivider = "──────────────────────────────────────────────────────"

func renderPage(title, data, hotKeys string) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n\n")

	if strings.TrimSpace(data) != "" {
		lines := strings.Split(data, "\n")
		for _, line := range lines {
			b.WriteString("  ")
			b.WriteString(line)
			b.WriteString("\n")
		}
	} else {
		b.WriteString("  -\n")
	}

	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n")

	if strings.TrimSpace(hotKeys) != "" {
		b.WriteString("  ")
		b.WriteString(helpStyle.Render(hotKeys))
		b.WriteString("\n")
	}
	b.WriteString("  ")
	b.WriteString(helpStyle.Render("tab: след. экран │ v: версия │ q: выход"))

	return b.String()
}

// renderStatus formats the status and error lines shared by every page.
func renderStatus(status, errMsg string) string {
	out := ""
	if errMsg != "" {
		out += errorStyle.Render("Ошибка: "+errMsg) + "\n"
	}
	if status != "" {
		out += "Статус: " + status + "\n"
	}
	return out
}

// fitText truncates v to max runes, marking the cut with "...".
func fitText(v string, max int) string {
	r := []rune(v)
	if max <= 0 || len(r) <= max {
		return v
	}
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}

// padText pads v with spaces to width runes.
func padText(v string, width int) string {
	v = fitText(v, width)
	if n := width - len([]rune(v)); n > 0 {
		return v + strings.Repeat(" ", n)
	}
	return v
}

func formatMoney(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func cursor(selected bool) string {
	if selected {
		return ">"
	}
	return " "
}

func clampIndex(idx, n int) int {
	if idx >= n {
		idx = n - 1
	}
	if idx < 0 {
		idx = 0
	}
	return idx
}

func quantityLabel(q int64) string {
	if q <= 0 {
		return "-"
	}
	return fmt.Sprintf("%d", q)
}
