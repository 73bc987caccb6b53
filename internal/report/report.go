// Package report renders enrichment run summaries for the CLI.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"text/template"
	"time"

	"github.com/FranksOps/scout/internal/aggregate"
)

// Summary contains aggregated metrics about one enrichment run.
type Summary struct {
	Companies      int
	AverageScore   int
	HotLeads       int // score >= 70
	WarmLeads      int // 50-69
	ColdLeads      int // < 50
	VerifiedEmails int
	SignalCounts   map[string]int
	TopSignals     []string
	GeneratedAt    time.Time
}

// hot/warm score boundaries used for lead bucketing.
const (
	hotThreshold  = 70
	warmThreshold = 50
)

// GenerateSummary folds a slice of enrichment results into run metrics.
func GenerateSummary(results []*aggregate.Result) Summary {
	s := Summary{
		SignalCounts: make(map[string]int),
		GeneratedAt:  time.Now().UTC(),
	}
	if len(results) == 0 {
		return s
	}

	totalScore := 0
	for _, r := range results {
		s.Companies++
		totalScore += r.Score
		switch {
		case r.Score >= hotThreshold:
			s.HotLeads++
		case r.Score >= warmThreshold:
			s.WarmLeads++
		default:
			s.ColdLeads++
		}
		if r.HasVerifiedEmail {
			s.VerifiedEmails++
		}
		for _, bs := range r.BuyingSignals {
			s.SignalCounts[bs.ID]++
		}
	}
	s.AverageScore = totalScore / s.Companies

	for _, id := range []string{"recentFunding", "activelyHiring", "googlePaidTraffic", "highIntent"} {
		if s.SignalCounts[id] > 0 {
			s.TopSignals = append(s.TopSignals, id)
		}
	}
	return s
}

// WriteJSON writes the summary to the provided writer in JSON format.
func WriteJSON(w io.Writer, summary Summary) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(summary); err != nil {
		return fmt.Errorf("encoding summary: %w", err)
	}
	return nil
}

// WriteText writes a human-readable text summary to the provided writer.
func WriteText(w io.Writer, summary Summary) error {
	const textTmpl = `Scout Enrichment Summary
------------------------
Generated:       {{.GeneratedAt.Format "2006-01-02 15:04:05"}}
Companies:       {{.Companies}}
Average Score:   {{.AverageScore}}
Hot Leads:       {{.HotLeads}}
Warm Leads:      {{.WarmLeads}}
Cold Leads:      {{.ColdLeads}}
Verified Emails: {{.VerifiedEmails}}

Buying Signals:
{{- range $id, $count := .SignalCounts}}
  {{$id}}: {{$count}}
{{- else}}
  None
{{- end}}
`

	t, err := template.New("textReport").Parse(textTmpl)
	if err != nil {
		return fmt.Errorf("parsing text template: %w", err)
	}
	if err := t.Execute(w, summary); err != nil {
		return fmt.Errorf("rendering text summary: %w", err)
	}
	return nil
}

// WriteHTML writes a basic HTML report to the provided writer.
func WriteHTML(w io.Writer, summary Summary) error {
	const htmlTmpl = `<!DOCTYPE html>
<html>
<head>
<title>Scout Enrichment Report</title>
<style>
  body { font-family: sans-serif; margin: 40px; color: #333; }
  h1 { border-bottom: 2px solid #ccc; padding-bottom: 10px; }
  .stat-card { display: inline-block; padding: 20px; margin: 10px 10px 10px 0; background: #f4f4f4; border-radius: 5px; min-width: 150px; }
  .stat-val { font-size: 24px; font-weight: bold; }
  table { border-collapse: collapse; margin-top: 10px; }
  th, td { padding: 8px 12px; border: 1px solid #ccc; text-align: left; }
  th { background: #eaeaea; }
</style>
</head>
<body>
  <h1>Scout Enrichment Report</h1>
  <p><strong>Generated:</strong> {{.GeneratedAt.Format "2006-01-02 15:04:05"}}</p>

  <div class="stat-card">
    <div>Companies</div>
    <div class="stat-val">{{.Companies}}</div>
  </div>
  <div class="stat-card">
    <div>Average Score</div>
    <div class="stat-val">{{.AverageScore}}</div>
  </div>
  <div class="stat-card">
    <div>Hot Leads</div>
    <div class="stat-val" style="color: {{if gt .HotLeads 0}}green{{else}}inherit{{end}};">{{.HotLeads}}</div>
  </div>
  <div class="stat-card">
    <div>Verified Emails</div>
    <div class="stat-val">{{.VerifiedEmails}}</div>
  </div>

  <h3>Buying Signals</h3>
  <table>
    <tr><th>Signal</th><th>Count</th></tr>
    {{- range $id, $count := .SignalCounts}}
    <tr><td>{{$id}}</td><td>{{$count}}</td></tr>
    {{- else}}
    <tr><td colspan="2">None</td></tr>
    {{- end}}
  </table>
</body>
</html>
`
	t, err := template.New("htmlReport").Parse(htmlTmpl)
	if err != nil {
		return fmt.Errorf("parsing html template: %w", err)
	}
	if err := t.Execute(w, summary); err != nil {
		return fmt.Errorf("rendering html report: %w", err)
	}
	return nil
}
