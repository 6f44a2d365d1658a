package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"weathergrip/internal/ui/logic"
)

// RenderReport renders the full result as text for the pager
func (r *Renderer) RenderReport(f logic.ResultFields) string {
	accent := lipgloss.Color(ConditionColor(f.Class))
	section := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")).MarginTop(1)

	var b strings.Builder
	b.WriteString(r.styles.Title.Foreground(accent).Render(fmt.Sprintf("Current weather for %s", f.LocationName)))
	b.WriteString("\n")
	b.WriteString(f.LocationDetails)
	b.WriteString("\n")
	b.WriteString(f.LastUpdated)
	b.WriteString("\n")

	b.WriteString(section.Render("Conditions"))
	b.WriteString("\n")
	writeReportLine(&b, "Condition", f.Condition)
	writeReportLine(&b, "Class", string(f.Class))
	writeReportLine(&b, "Icon", f.IconURL)
	writeReportLine(&b, "Temperature", f.Temperature)
	writeReportLine(&b, "Feels like", f.FeelsLike)
	writeReportLine(&b, "Dew point", f.DewPoint)

	b.WriteString(section.Render("Atmosphere"))
	b.WriteString("\n")
	writeReportLine(&b, "Humidity", f.Humidity)
	writeReportLine(&b, "Pressure", f.Pressure)
	writeReportLine(&b, "Visibility", f.Visibility)
	writeReportLine(&b, "Cloud cover", f.CloudCover)
	writeReportLine(&b, "Precipitation", f.Precipitation)
	writeReportLine(&b, "Wind", f.Wind)
	writeReportLine(&b, "UV index", f.UVIndex)

	return b.String()
}

func writeReportLine(b *strings.Builder, label, value string) {
	fmt.Fprintf(b, "  %-14s %s\n", label, value)
}
