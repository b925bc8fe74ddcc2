// Package report renders nutrition entries for the terminal.
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/denismitr/cali"
	"github.com/denismitr/cali/internal/config"
	"github.com/muesli/termenv"
)

const rule = "-------------------------"

// Metric colours, ANSI 16 so they follow the terminal theme.
var metricColors = map[cali.Metric]lipgloss.Color{
	cali.Calories: lipgloss.Color("2"),
	cali.Water:    lipgloss.Color("4"),
	cali.Protein:  lipgloss.Color("3"),
	cali.Carbs:    lipgloss.Color("5"),
	cali.Fat:      lipgloss.Color("1"),
}

var metricTitles = map[cali.Metric]string{
	cali.Calories: "Calories",
	cali.Water:    "Water",
	cali.Protein:  "Protein",
	cali.Carbs:    "Carbs",
	cali.Fat:      "Fat",
}

var loggedNouns = map[cali.Metric]string{
	cali.Calories: "calories",
	cali.Water:    "fl oz of water",
	cali.Protein:  "grams of protein",
	cali.Carbs:    "grams of carbs",
	cali.Fat:      "grams of fat",
}

type Renderer struct {
	w     io.Writer
	bold  lipgloss.Style
	label map[cali.Metric]lipgloss.Style
	value map[cali.Metric]lipgloss.Style
}

func New(w io.Writer, mode config.ColorMode) *Renderer {
	lr := lipgloss.NewRenderer(w)
	switch mode {
	case config.ColorNever:
		lr.SetColorProfile(termenv.Ascii)
	case config.ColorAlways:
		lr.SetColorProfile(termenv.ANSI256)
	}

	r := &Renderer{
		w:     w,
		bold:  lr.NewStyle().Bold(true),
		label: make(map[cali.Metric]lipgloss.Style, len(cali.Metrics)),
		value: make(map[cali.Metric]lipgloss.Style, len(cali.Metrics)),
	}

	for _, m := range cali.Metrics {
		r.label[m] = lr.NewStyle().Foreground(metricColors[m])
		r.value[m] = lr.NewStyle().Foreground(metricColors[m]).Bold(true)
	}

	return r
}

// Logged confirms a logging action together with the running total of the day.
func (r *Renderer) Logged(m cali.Metric, amount float64, ent cali.DailyEntry, today bool) error {
	label, value := r.label[m], r.value[m]

	totalLabel := "Total today:"
	if !today {
		totalLabel = fmt.Sprintf("Total for %s:", ent.Date)
	}

	_, err := fmt.Fprintf(
		r.w,
		"%s %s %s. %s %s\n",
		label.Render("Logged"),
		value.Render(FormatNumber(amount)),
		label.Render(loggedNouns[m]),
		label.Render(totalLabel),
		value.Render(FormatNumber(ent.Value(m))),
	)

	return err
}

func (r *Renderer) Summary(ent cali.DailyEntry, found bool) error {
	if !found {
		_, err := fmt.Fprintf(r.w, "No data found for %s\n", ent.Date)
		return err
	}

	var b strings.Builder
	b.WriteString(r.bold.Render("Nutrition Summary for "+ent.Date.String()) + "\n")
	b.WriteString(r.bold.Render(rule) + "\n")
	r.writeMetrics(&b, ent)

	_, err := io.WriteString(r.w, b.String())
	return err
}

func (r *Renderer) History(entries []cali.DailyEntry) error {
	if len(entries) == 0 {
		_, err := fmt.Fprintln(r.w, r.bold.Render("No nutrition data found."))
		return err
	}

	var b strings.Builder
	b.WriteString(r.bold.Render("All Nutrition Records") + "\n")
	b.WriteString(r.bold.Render("=====================") + "\n")

	for _, ent := range entries {
		b.WriteString("\n" + r.bold.Render("Date: "+ent.Date.String()) + "\n")
		b.WriteString(r.bold.Render(rule) + "\n")
		r.writeMetrics(&b, ent)
	}

	if len(entries) > 1 {
		b.WriteString("\n" + r.bold.Render(fmt.Sprintf("Total over %d days", len(entries))) + "\n")
		b.WriteString(r.bold.Render(rule) + "\n")
		r.writeMetrics(&b, cali.Sum(entries))

		b.WriteString("\n" + r.bold.Render("Daily average") + "\n")
		b.WriteString(r.bold.Render(rule) + "\n")
		r.writeMetrics(&b, cali.Average(entries))
	}

	_, err := io.WriteString(r.w, b.String())
	return err
}

func (r *Renderer) Reset(date cali.Date, existed bool) error {
	msg := fmt.Sprintf("Nutrition data for %s has been reset.", date)
	if !existed {
		msg = fmt.Sprintf("No data for %s to reset.", date)
	}

	_, err := fmt.Fprintln(r.w, r.bold.Render(msg))
	return err
}

func (r *Renderer) writeMetrics(b *strings.Builder, ent cali.DailyEntry) {
	for _, m := range cali.Metrics {
		b.WriteString(r.label[m].Render(metricTitles[m]) + ": " + r.value[m].Render(FormatValue(m, ent.Value(m))) + "\n")
	}
}

// FormatNumber prints v with at most one decimal and no trailing ".0".
func FormatNumber(v float64) string {
	return strconv.FormatFloat(roundTenth(v), 'f', -1, 64)
}

// FormatValue prints a metric value with its unit.
func FormatValue(m cali.Metric, v float64) string {
	switch m.Unit() {
	case "":
		return FormatNumber(v)
	case "g":
		return fmt.Sprintf("%.1fg", v)
	default:
		return fmt.Sprintf("%.1f %s", v, m.Unit())
	}
}

func roundTenth(v float64) float64 {
	s := strconv.FormatFloat(v, 'f', 1, 64)
	r, _ := strconv.ParseFloat(s, 64)
	return r
}
