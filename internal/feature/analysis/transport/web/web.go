// Package web holds the server-rendered dashboard page.
package web

import (
	"embed"
	"html/template"

	"etf_dashboard/internal/feature/analysis/presenter"
)

// DashboardTemplate is the name the dashboard is rendered under.
const DashboardTemplate = "dashboard.html"

//go:embed templates/*.html
var files embed.FS

// FuncMap is available to every dashboard template.
func FuncMap() template.FuncMap {
	return template.FuncMap{
		"fixed": formatPtr(presenter.FormatFixed),
		"pct":   formatPtr(presenter.FormatPercent),
	}
}

// formatPtr adapts a formatter to the nullable floats of the DTOs.
func formatPtr(f func(float64) string) func(*float64) string {
	return func(v *float64) string {
		if v == nil {
			return "NaN"
		}
		return f(*v)
	}
}

// Templates parses the embedded templates.
func Templates() (*template.Template, error) {
	return template.New("").Funcs(FuncMap()).ParseFS(files, "templates/*.html")
}
