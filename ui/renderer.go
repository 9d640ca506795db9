// Package ui renders listings and verdicts for the terminal.
package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/zielmicha/satori-cli/client"
)

var (
	green = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	red   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	gray  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	cyan  = lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true)
)

func Success(msg string) string {
	return green.Render("✓ " + msg)
}

func Failure(msg string) string {
	return red.Render("✗ " + msg)
}

func Hint(msg string) string {
	return gray.Render(msg)
}

// Contests renders one id/name line per contest.
func Contests(contests []client.Contest) string {
	var b strings.Builder
	for _, c := range contests {
		fmt.Fprintf(&b, "%s %s\n", cyan.Render(fmt.Sprintf("%-9d", c.ID)), c.Name)
	}
	return b.String()
}

// Problems renders the problems listing the way the platform orders it.
func Problems(problems []client.Problem) string {
	var b strings.Builder
	for _, p := range problems {
		id := ""
		if p.ID != 0 {
			id = strconv.Itoa(p.ID)
		}
		fmt.Fprintf(&b, "%-9s %s %-30s %s\n",
			id, cyan.Render(fmt.Sprintf("%-5s", p.Code)), p.Title, gray.Render(p.Desc))
	}
	return b.String()
}

func SubmitProblems(problems []client.SubmitProblem) string {
	var b strings.Builder
	for _, p := range problems {
		fmt.Fprintf(&b, "%-9d %s %s\n",
			p.ID, cyan.Render(fmt.Sprintf("%-5s", p.Code)), p.Title)
	}
	return b.String()
}

// Verdict colors a grading status: OK green, queued gray, anything else
// red.
func Verdict(status string) string {
	switch {
	case status == "OK":
		return green.Render(status)
	case status == "" || status == "QUE":
		return gray.Render("pending")
	default:
		return red.Render(status)
	}
}

// Results renders recent submissions, newest first.
func Results(results []client.Result) string {
	var b strings.Builder
	for _, r := range results {
		fmt.Fprintf(&b, "%-9d %-5s %-20s %s\n", r.ID, r.Code, r.Time, Verdict(r.Status))
	}
	return b.String()
}
