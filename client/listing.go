package client

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Contest is one row of the contest listing.
type Contest struct {
	ID   int
	Name string
}

// Problem is one row of a contest's problems page. PDF and URL are the
// statement links as they appear on the page; either may be empty. ID is
// taken from the PDF link and is zero when the problem has none.
type Problem struct {
	ID    int
	PDF   string
	URL   string
	Code  string
	Title string
	Desc  string
}

// SubmitProblem is one option of the submit form's problem selector. Its
// ids are not the same as the viewing ids.
type SubmitProblem struct {
	ID    int
	Code  string
	Title string
}

// Lister is the listing-page collaborator the resolver scans. Client
// implements it over live pages; tests substitute a fake with fetch
// counters.
type Lister interface {
	Contests(includeOther bool) ([]Contest, error)
	Problems(contestID int) ([]Problem, error)
	SubmitProblems(contestID int) ([]SubmitProblem, error)
}

// Contests lists the user's contests; with includeOther, every contest
// on the platform. The first .results table holds the user's contests,
// the remaining ones everything else.
func (c *Client) Contests(includeOther bool) ([]Contest, error) {
	doc, err := c.GetDocument("/contest/select")
	if err != nil {
		return nil, err
	}
	return parseContests(doc, includeOther), nil
}

func parseContests(doc *goquery.Document, includeOther bool) []Contest {
	tables := doc.Find(".results")
	if !includeOther {
		tables = tables.First()
	}

	var contests []Contest
	tables.Find("tr").Each(func(_ int, row *goquery.Selection) {
		link := row.Find("a.stdlink").First()
		href, ok := link.Attr("href")
		if !ok || !strings.HasPrefix(href, "/contest/") {
			return
		}
		parts := strings.Split(href, "/")
		if len(parts) < 3 {
			return
		}
		id, err := strconv.Atoi(parts[2])
		if err != nil {
			return
		}
		contests = append(contests, Contest{ID: id, Name: strings.TrimSpace(link.Text())})
	})
	return contests
}

// Problems lists the problems page of a contest.
func (c *Client) Problems(contestID int) ([]Problem, error) {
	doc, err := c.GetDocument(fmt.Sprintf("/contest/%d/problems", contestID))
	if err != nil {
		return nil, err
	}
	return parseProblems(doc), nil
}

func parseProblems(doc *goquery.Document) []Problem {
	var problems []Problem
	doc.Find(".results tr").Each(func(_ int, row *goquery.Selection) {
		cols := row.Find("td")
		if cols.Length() < 4 {
			return
		}
		p := Problem{
			Code:  strings.TrimSpace(cols.Eq(0).Text()),
			Title: strings.TrimSpace(cols.Eq(1).Text()),
			Desc:  strings.TrimSpace(cols.Eq(3).Text()),
		}
		if pdf, ok := cols.Eq(2).Find("a").Attr("href"); ok {
			// statement PDFs live under /view/ProblemMapping/<id>/...
			p.PDF = pdf
			if parts := strings.Split(pdf, "/"); len(parts) > 3 {
				if id, err := strconv.Atoi(parts[3]); err == nil {
					p.ID = id
				}
			}
		}
		if href, ok := cols.Eq(1).Find(".stdlink").Attr("href"); ok {
			p.URL = href
		}
		problems = append(problems, p)
	})
	return problems
}

// SubmitProblems lists the problems accepted by a contest's submit form.
func (c *Client) SubmitProblems(contestID int) ([]SubmitProblem, error) {
	doc, err := c.GetDocument(fmt.Sprintf("/contest/%d/submit", contestID))
	if err != nil {
		return nil, err
	}
	return parseSubmitProblems(doc), nil
}

func parseSubmitProblems(doc *goquery.Document) []SubmitProblem {
	var problems []SubmitProblem
	doc.Find("[name=problem] option").Each(func(_ int, opt *goquery.Selection) {
		val, ok := opt.Attr("value")
		if !ok || val == "" {
			return
		}
		id, err := strconv.Atoi(val)
		if err != nil {
			return
		}
		code, title, _ := strings.Cut(opt.Text(), ":")
		problems = append(problems, SubmitProblem{
			ID:    id,
			Code:  strings.TrimSpace(code),
			Title: strings.TrimSpace(title),
		})
	})
	return problems
}
