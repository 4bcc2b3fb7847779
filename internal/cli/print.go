package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/atyhamos/tp/internal/domain"
)

type tuteeView struct {
	Name       string   `json:"name"`
	Phone      string   `json:"phone"`
	Level      string   `json:"level"`
	Address    string   `json:"address"`
	Remark     string   `json:"remark,omitempty"`
	Tags       []string `json:"tags"`
	Lessons    []string `json:"lessons"`
	WeeklyCost float64  `json:"weeklyCost"`
}

func toView(t domain.Tutee) tuteeView {
	v := tuteeView{
		Name:       t.Name().String(),
		Phone:      t.Phone().String(),
		Level:      t.Level().String(),
		Address:    t.Address().String(),
		Remark:     t.Remark().String(),
		Tags:       []string{},
		Lessons:    []string{},
		WeeklyCost: t.WeeklyCost(),
	}
	for _, tag := range t.Tags() {
		v.Tags = append(v.Tags, tag.String())
	}
	for _, l := range t.Lessons() {
		v.Lessons = append(v.Lessons, l.String())
	}
	return v
}

func printTutees(w io.Writer, tutees []domain.Tutee, format string) error {
	switch format {
	case "json":
		views := make([]tuteeView, 0, len(tutees))
		for _, t := range tutees {
			views = append(views, toView(t))
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(views)
	case "pretty", "":
		printPrettyTutees(w, tutees)
		return nil
	default:
		return fmt.Errorf("unsupported format %q (expected pretty|json)", format)
	}
}

func printPrettyTutees(w io.Writer, tutees []domain.Tutee) {
	if len(tutees) == 0 {
		fmt.Fprintln(w, "(no tutees)")
		return
	}
	for i, t := range tutees {
		fmt.Fprintf(w, "%d. %s (%s)\n", i+1, t.Name(), t.Level())
		fmt.Fprintf(w, "   phone:   %s\n", t.Phone())
		fmt.Fprintf(w, "   address: %s\n", t.Address())
		if r := t.Remark().String(); r != "" {
			fmt.Fprintf(w, "   remark:  %s\n", r)
		}
		if tags := t.Tags(); len(tags) > 0 {
			fmt.Fprint(w, "   tags:    ")
			for _, tag := range tags {
				fmt.Fprintf(w, "[%s]", tag)
			}
			fmt.Fprintln(w)
		}
		for _, l := range t.Lessons() {
			fmt.Fprintf(w, "   - %s\n", l)
		}
	}
}

func printSchedule(w io.Writer, tutees []domain.Tutee) {
	entries := domain.WeeklySchedule(tutees)
	if len(entries) == 0 {
		fmt.Fprintln(w, "(no lessons scheduled)")
		return
	}

	day := time.Weekday(-1)
	for _, e := range entries {
		lt := e.Lesson.Time()
		if lt.Day() != day {
			if day != -1 {
				fmt.Fprintln(w)
			}
			day = lt.Day()
			fmt.Fprintln(w, domain.DayName(day))
		}
		fmt.Fprintf(w, "  %s-%s  %-12s %s ($%.2f)\n",
			lt.Start(), lt.End(), e.Lesson.Subject(), e.Tutee, e.Lesson.Cost())
	}
	fmt.Fprintf(w, "\nWeekly income: $%.2f\n", domain.WeeklyIncome(tutees))
}
