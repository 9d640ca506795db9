package client

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/google/uuid"
	"github.com/zielmicha/satori-cli/internal/store"
)

// how far back to look when locating one submission on the results page
const resultsProbeLimit = 256

// Result is one row of a contest's results page.
type Result struct {
	ID     int
	Code   string
	Time   string
	Status string
}

// Pending reports whether the submission has not been graded yet. QUE is
// satori's queued verdict; an empty cell shows up briefly before grading
// starts.
func (r Result) Pending() bool {
	return r.Status == "" || r.Status == "QUE"
}

// Submit uploads a solution file for problemID. The platform answers a
// successful submit with a redirect to the results page; anything else
// is a rejection, with the raw response body saved under diagDir for
// inspection.
func (c *Client) Submit(contestID, problemID int, path, diagDir string) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read solution file: %w", err)
	}

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	if err := w.WriteField("problem", strconv.Itoa(problemID)); err != nil {
		return err
	}
	part, err := w.CreateFormFile("codefile", filepath.Base(path))
	if err != nil {
		return err
	}
	if _, err := part.Write(src); err != nil {
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}

	resp, err := c.Do(http.MethodPost, fmt.Sprintf("/contest/%d/submit", contestID),
		w.FormDataContentType(), body.Bytes())
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 300 && resp.StatusCode <= 399 {
		return nil
	}

	diag := filepath.Join(diagDir, "submit-"+uuid.NewString()+".html")
	data, _ := io.ReadAll(resp.Body)
	if err := store.WriteFileAtomic(diag, data, 0o600); err != nil {
		return fmt.Errorf("submission rejected (%s), and saving the response failed: %w", resp.Status, err)
	}
	return &SubmissionRejectedError{Status: resp.Status, DiagPath: diag}
}

// Results lists the newest limit submissions of a contest, newest first.
func (c *Client) Results(contestID, limit int) ([]Result, error) {
	doc, err := c.GetDocument(fmt.Sprintf("/contest/%d/results?results_limit=%d", contestID, limit))
	if err != nil {
		return nil, err
	}
	return parseResults(doc), nil
}

func parseResults(doc *goquery.Document) []Result {
	var results []Result
	doc.Find(".results tr").Each(func(_ int, row *goquery.Selection) {
		cols := row.Find("td")
		if cols.Length() < 4 {
			return
		}
		id, err := strconv.Atoi(strings.TrimSpace(cols.Eq(0).Text()))
		if err != nil {
			return
		}
		results = append(results, Result{
			ID:     id,
			Code:   strings.TrimSpace(cols.Eq(1).Text()),
			Time:   strings.TrimSpace(cols.Eq(2).Text()),
			Status: strings.TrimSpace(cols.Eq(3).Text()),
		})
	})
	return results
}

// Result fetches the current row for one submission.
func (c *Client) Result(contestID, submissionID int) (Result, error) {
	results, err := c.Results(contestID, resultsProbeLimit)
	if err != nil {
		return Result{}, err
	}
	for _, r := range results {
		if r.ID == submissionID {
			return r, nil
		}
	}
	return Result{}, fmt.Errorf("submission %d not found in the last %d results", submissionID, resultsProbeLimit)
}

// WaitForResult polls at a fixed interval until the submission is
// graded. The sleep blocks the whole process; the only cancellation is
// process termination.
func (c *Client) WaitForResult(contestID, submissionID int, interval time.Duration) (Result, error) {
	for {
		r, err := c.Result(contestID, submissionID)
		if err != nil {
			return Result{}, err
		}
		if !r.Pending() {
			return r, nil
		}
		time.Sleep(interval)
	}
}

// DownloadPDF fetches a problem statement PDF into dir and returns the
// file path.
func (c *Client) DownloadPDF(ref ProblemRef, dir string) (string, error) {
	if ref.PDF == "" {
		return "", fmt.Errorf("problem %d has no statement PDF", ref.ID)
	}
	data, err := c.GetBytes(ref.PDF)
	if err != nil {
		return "", err
	}
	path := filepath.Join(dir, fmt.Sprintf("%d.pdf", ref.ID))
	if err := store.WriteFileAtomic(path, data, 0o600); err != nil {
		return "", err
	}
	return path, nil
}
