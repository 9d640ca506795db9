package client

import (
	"strconv"
	"strings"

	"github.com/zielmicha/satori-cli/internal/cache"
)

// ProblemRef is a resolved problem-for-viewing. The statement links are
// captured from the listing row at resolution time, cached verbatim, and
// never refreshed.
type ProblemRef struct {
	ID  int    `json:"id"`
	PDF string `json:"pdf,omitempty"`
	URL string `json:"url,omitempty"`
}

// SubmitRef is a resolved problem-for-submission.
type SubmitRef struct {
	ID   int    `json:"id"`
	Code string `json:"code,omitempty"`
}

// Resolver turns human-typed queries into canonical numeric ids.
// Successful resolutions are cached per kind and survive across runs;
// failed ones are not, so a corrected query retries from scratch.
type Resolver struct {
	lister   Lister
	contests *cache.Cache[int]
	problems *cache.Cache[ProblemRef]
	submits  *cache.Cache[SubmitRef]
}

// NewResolver builds a resolver over lister. cachePath maps a cache
// namespace file name to its on-disk location.
func NewResolver(lister Lister, cachePath func(name string) string) *Resolver {
	return &Resolver{
		lister:   lister,
		contests: cache.New[int](cachePath("contest.json")),
		problems: cache.New[ProblemRef](cachePath("problem.json")),
		submits:  cache.New[SubmitRef](cachePath("submit.json")),
	}
}

// matchCode reports whether query selects code: case-insensitive
// equality, or, with an explicit trailing '*', the rest of the query is
// a prefix of the code. A bare prefix without the marker never matches,
// so a short query cannot pick one of several similar codes by accident.
// A wildcard that matches several codes takes the first in listing
// order, which is server-defined.
func matchCode(query, code string) bool {
	query = strings.ToLower(query)
	code = strings.ToLower(code)
	if query == code {
		return true
	}
	if prefix, ok := strings.CutSuffix(query, "*"); ok {
		return strings.HasPrefix(code, prefix)
	}
	return false
}

// ResolveContest resolves a contest id or a case-insensitive substring
// of a contest name. A bare integer is the id itself: no listing fetch,
// no cache entry. Both the user's and other contests are scanned.
func (r *Resolver) ResolveContest(query string) (int, error) {
	if id, err := strconv.Atoi(query); err == nil {
		return id, nil
	}
	return r.contests.GetOrCompute(cache.Key(query), func() (int, error) {
		contests, err := r.lister.Contests(true)
		if err != nil {
			return 0, err
		}
		for _, c := range contests {
			if strings.Contains(strings.ToLower(c.Name), strings.ToLower(query)) {
				return c.ID, nil
			}
		}
		return 0, &ResolutionError{Kind: "contest", Query: query}
	})
}

// ResolveProblem resolves a problem code (or bare id) within a contest
// for viewing; the statement links come along from the listing row.
func (r *Resolver) ResolveProblem(contest, problem string) (ProblemRef, error) {
	if id, err := strconv.Atoi(problem); err == nil {
		return ProblemRef{ID: id}, nil
	}
	return r.problems.GetOrCompute(cache.Key(contest, problem), func() (ProblemRef, error) {
		contestID, err := r.ResolveContest(contest)
		if err != nil {
			return ProblemRef{}, err
		}
		rows, err := r.lister.Problems(contestID)
		if err != nil {
			return ProblemRef{}, err
		}
		for _, p := range rows {
			if matchCode(problem, p.Code) {
				return ProblemRef{ID: p.ID, PDF: p.PDF, URL: p.URL}, nil
			}
		}
		return ProblemRef{}, &ResolutionError{Kind: "problem", Query: problem}
	})
}

// ResolveSubmitProblem resolves a problem code (or bare id) against the
// submit form's options, whose ids differ from the viewing ids.
func (r *Resolver) ResolveSubmitProblem(contest, problem string) (SubmitRef, error) {
	if id, err := strconv.Atoi(problem); err == nil {
		return SubmitRef{ID: id}, nil
	}
	return r.submits.GetOrCompute(cache.Key(contest, problem), func() (SubmitRef, error) {
		contestID, err := r.ResolveContest(contest)
		if err != nil {
			return SubmitRef{}, err
		}
		rows, err := r.lister.SubmitProblems(contestID)
		if err != nil {
			return SubmitRef{}, err
		}
		for _, p := range rows {
			if matchCode(problem, p.Code) {
				return SubmitRef{ID: p.ID, Code: p.Code}, nil
			}
		}
		return SubmitRef{}, &ResolutionError{Kind: "submit problem", Query: problem}
	})
}

// ClearCaches drops all three resolution caches.
func (r *Resolver) ClearCaches() error {
	for _, clear := range []func() error{r.contests.Clear, r.problems.Clear, r.submits.Clear} {
		if err := clear(); err != nil {
			return err
		}
	}
	return nil
}
