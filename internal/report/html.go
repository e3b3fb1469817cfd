package report

import (
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aditya20-b/social-media-osint/internal/models"
)

const htmlSnippetLen = 200

const htmlReportTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>OSINT Analysis Report - {{.Keyword}}</title>
    <style>
        body { font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif; line-height: 1.6; max-width: 1200px; margin: 0 auto; padding: 20px; background-color: #f5f5f5; }
        .header { background: linear-gradient(135deg, #667eea 0%, #764ba2 100%); color: white; padding: 30px; border-radius: 10px; margin-bottom: 30px; }
        .header h1 { margin: 0; font-size: 2.5em; }
        .metadata, .section { background: white; padding: 20px; border-radius: 8px; margin-bottom: 20px; box-shadow: 0 2px 4px rgba(0,0,0,0.1); }
        .section h2 { color: #667eea; border-bottom: 2px solid #667eea; padding-bottom: 10px; margin-top: 0; }
        .metric { display: inline-block; margin: 10px 20px 10px 0; }
        .metric-value { font-size: 2em; font-weight: bold; display: block; }
        .metric-label { color: #666; font-size: 0.9em; }
        .positive { color: #4CAF50; }
        .negative { color: #F44336; }
        .neutral { color: #9E9E9E; }
        .post-card { background: #f9f9f9; padding: 15px; margin: 10px 0; border-left: 4px solid #667eea; border-radius: 4px; }
        .post-platform { font-weight: bold; color: #667eea; text-transform: uppercase; font-size: 0.85em; }
        .post-text { margin: 10px 0; color: #333; }
        .post-meta { font-size: 0.9em; color: #666; }
        table { width: 100%; border-collapse: collapse; margin: 15px 0; }
        th, td { padding: 12px; text-align: left; border-bottom: 1px solid #ddd; }
        th { background-color: #667eea; color: white; }
        .footer { text-align: center; margin-top: 40px; padding: 20px; color: #666; font-size: 0.9em; }
        a { color: #667eea; text-decoration: none; }
    </style>
</head>
<body>
    <div class="header">
        <h1>OSINT Analysis Report</h1>
        <p style="font-size: 1.2em; margin: 10px 0 0 0;">Keyword: "{{.Keyword}}"</p>
    </div>

    <div class="metadata">
        <strong>Generated:</strong> {{.GeneratedAt}}<br>
        <strong>Total Posts Analyzed:</strong> {{.TotalPosts}}<br>
        <strong>Platforms:</strong> {{.Platforms}}
    </div>

    <div class="section">
        <h2>Sentiment Overview</h2>
        <div class="metric">
            <span class="metric-value positive">{{.Distribution.Positive}}</span>
            <span class="metric-label">Positive ({{.Distribution.PositivePct}}%)</span>
        </div>
        <div class="metric">
            <span class="metric-value negative">{{.Distribution.Negative}}</span>
            <span class="metric-label">Negative ({{.Distribution.NegativePct}}%)</span>
        </div>
        <div class="metric">
            <span class="metric-value neutral">{{.Distribution.Neutral}}</span>
            <span class="metric-label">Neutral ({{.Distribution.NeutralPct}}%)</span>
        </div>
    </div>

    <div class="section">
        <h2>Average Sentiment Scores</h2>
        <p><strong>Overall Sentiment:</strong> <span class="{{.Average.OverallSentiment}}">{{.OverallUpper}}</span></p>
        <p><strong>Average Polarity:</strong> {{.Average.AvgPolarity}} <em>(range: -1 to 1)</em></p>
        <p><strong>Average Subjectivity:</strong> {{.Average.AvgSubjectivity}} <em>(range: 0 to 1)</em></p>
    </div>

    <div class="section">
        <h2>Platform Breakdown</h2>
        <table>
            <thead>
                <tr><th>Platform</th><th>Total Posts</th><th>Positive</th><th>Negative</th><th>Neutral</th></tr>
            </thead>
            <tbody>
                {{range $platform, $data := .PlatformSentiment}}
                <tr>
                    <td><strong>{{$platform}}</strong></td>
                    <td>{{$data.Total}}</td>
                    <td class="positive">{{$data.Positive}} ({{$data.PositivePct}}%)</td>
                    <td class="negative">{{$data.Negative}} ({{$data.NegativePct}}%)</td>
                    <td class="neutral">{{$data.Neutral}} ({{$data.NeutralPct}}%)</td>
                </tr>
                {{end}}
            </tbody>
        </table>
    </div>

    <div class="section">
        <h2>Top Positive Posts</h2>
        {{range .TopPositive}}
        <div class="post-card">
            <div class="post-platform">{{.Platform}}</div>
            <div class="post-text">{{.Snippet}}</div>
            <div class="post-meta">
                Score: <strong class="positive">{{.Score}}</strong> |
                <a href="{{.URL}}" target="_blank">View Post</a>
            </div>
        </div>
        {{end}}
    </div>

    <div class="section">
        <h2>Top Negative Posts</h2>
        {{range .TopNegative}}
        <div class="post-card">
            <div class="post-platform">{{.Platform}}</div>
            <div class="post-text">{{.Snippet}}</div>
            <div class="post-meta">
                Score: <strong class="negative">{{.Score}}</strong> |
                <a href="{{.URL}}" target="_blank">View Post</a>
            </div>
        </div>
        {{end}}
    </div>

    <div class="footer">
        <p>Generated by Social Media OSINT Analyzer</p>
        <p>This report contains publicly available information collected for analysis purposes.</p>
    </div>
</body>
</html>
`

var htmlTemplate = template.Must(template.New("report").Parse(htmlReportTemplate))

type htmlPostView struct {
	Platform string
	Snippet  string
	Score    float64
	URL      string
}

type htmlReportView struct {
	Keyword           string
	GeneratedAt       string
	TotalPosts        int
	Platforms         string
	Distribution      models.Distribution
	Average           models.AverageSentiment
	OverallUpper      string
	PlatformSentiment map[string]models.Distribution
	TopPositive       []htmlPostView
	TopNegative       []htmlPostView
}

// WriteHTML renders the report as a standalone HTML page and returns
// the file path. Naming matches the JSON report with an .html suffix.
func (g *Generator) WriteHTML(r models.Report) (string, error) {
	view := htmlReportView{
		Keyword:           r.Metadata.Keyword,
		GeneratedAt:       r.Metadata.GeneratedAt,
		TotalPosts:        r.Metadata.TotalPosts,
		Platforms:         strings.Join(r.Metadata.Platforms, ", "),
		Distribution:      r.SentimentDistribution,
		Average:           r.AverageSentiment,
		OverallUpper:      strings.ToUpper(r.AverageSentiment.OverallSentiment),
		PlatformSentiment: r.PlatformSentiment,
		TopPositive:       htmlPostViews(r.TopPosts.Positive),
		TopNegative:       htmlPostViews(r.TopPosts.Negative),
	}

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("osint_report_%s_%s.html",
		strings.ReplaceAll(r.Metadata.Keyword, " ", "_"), timestamp)
	path := filepath.Join(g.outputDir, filename)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("[Report] failed to create HTML report: %w", err)
	}
	defer f.Close()

	if err := htmlTemplate.Execute(f, view); err != nil {
		return "", fmt.Errorf("[Report] failed to render HTML report: %w", err)
	}
	return path, nil
}

func htmlPostViews(posts []models.AnalyzedPost) []htmlPostView {
	views := make([]htmlPostView, 0, len(posts))
	for _, p := range posts {
		snippet := p.Title
		if snippet == "" {
			snippet = postSnippet(p.Text)
		}

		score := p.SentimentAnalysis.Compound
		if score == 0 {
			score = p.SentimentAnalysis.Polarity
		}

		views = append(views, htmlPostView{
			Platform: p.PlatformTag(),
			Snippet:  snippet,
			Score:    score,
			URL:      p.URL,
		})
	}
	return views
}

func postSnippet(text string) string {
	runes := []rune(text)
	if len(runes) > htmlSnippetLen {
		return string(runes[:htmlSnippetLen]) + "..."
	}
	return text
}
