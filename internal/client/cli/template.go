package cli

import (
	"text/template"
	"time"

	pkgapi "github.com/iudanet/adpanel/pkg/api"
)

var views = template.Must(template.New("views").Funcs(template.FuncMap{
	"orientation": orientation,
	"yesno":       yesno,
	"planStatus":  planStatus,
	"planNote":    planNote,
	"date":        func(t time.Time) string { return t.Local().Format(time.DateTime) },
	"short":       shorten,
}).Parse(
	adsListTemplate +
		adTemplate +
		draftsListTemplate +
		draftTemplate +
		companiesListTemplate +
		plansListTemplate +
		statusTemplate +
		usageTemplate,
))

const adsListTemplate = `{{define "ads"}}
=== {{.Title}} ===
{{- if eq (len .Ads) 0 }}
No ads found.
{{- if .Own }}

Use 'adpanel ads submit' or 'adpanel draft new' to create your first ad.
{{- end }}
{{ else }}
Found {{len .Ads}} ad(s):
{{ range .Ads }}
- {{ .ID }}
   Link:     {{ .Link }}
   Location: {{ orientation .IsVertical }}
   Shown:    {{ yesno .IsShown }}
   Views:    {{ .Views.TodayViews }} today / {{ .Views.TotalViews }} total
{{- end }}
{{- if .Cached }}

(cached {{ date .SavedAt }}, server unavailable)
{{- end }}
{{ end }}
{{- end}}`

const adTemplate = `{{define "ad"}}
=== Ad Details ===

ID:          {{.ID}}
Link:        {{.Link}}
Location:    {{orientation .IsVertical}}
Shown:       {{yesno .IsShown}}
Banner:      {{if .Banner}}{{short .Banner}}{{else}}none{{end}}
{{- if .BannerType }}
Banner type: {{.BannerType}}
{{- end}}
Today views: {{.Views.TodayViews}}
Total views: {{.Views.TotalViews}}
{{end}}`

const draftsListTemplate = `{{define "drafts"}}
=== Ad Drafts ===
{{- if eq (len .) 0 }}
No drafts found.

Use 'adpanel draft new' to start a draft.
{{ else }}
Found {{len .}} draft(s):
{{ range . }}
- {{ .ID }}
   {{- if .AdID }}
   Edits ad: {{ .AdID }}
   {{- end }}
   Link:     {{ .Link }}
   Location: {{ orientation .IsVertical }}
   Updated:  {{ date .UpdatedAt }}
{{- end }}

Use 'adpanel draft preview <id>' to see how a draft looks on the product page.
{{ end }}
{{- end}}`

const draftTemplate = `{{define "draft"}}
=== Ad Draft ===

ID:          {{.ID}}
{{- if .AdID }}
Edits ad:    {{.AdID}}
{{- end}}
Link:        {{.Link}}
Location:    {{orientation .IsVertical}}
Banner:      {{if .Banner}}{{short .Banner}}{{else}}none{{end}}
{{- if .BannerType }}
Banner type: {{.BannerType}}
{{- end}}
Created:     {{date .CreatedAt}}
Updated:     {{date .UpdatedAt}}
{{end}}`

const companiesListTemplate = `{{define "companies"}}
=== Companies ===
{{- if eq (len .) 0 }}
No companies found.
{{ else }}
Found {{len .}} compan(ies):
{{ range . }}
- {{ .Name }}
   ID:      {{ .ID }}
   Email:   {{ .Email }}
   Ads:     {{ .AdsCount }}
   Blocked: {{ yesno .Blocked }}
{{- end }}
{{ end }}
{{- end}}`

const plansListTemplate = `{{define "plans"}}
=== Subscription Plans ===
Choose the perfect plan to boost your online presence
{{ range .Plans }}
- {{ .Title }}{{ if .IsPopular }} (Most Popular){{ end }}{{ if .IsYourPlan }} [Your plan]{{ end }}
   ID:    {{ .ID }}
   Price: ${{ .Price }}/month
   {{ .Description }}
   {{- with planStatus . }}
   {{ . }}
   {{- end }}
   {{- with planNote . }}
   {{ . }}
   {{- end }}
{{- end }}
{{ if .IsAdmin }}
Use 'adpanel plans edit <id>' to change a plan.
{{- else }}
Use 'adpanel plans checkout <id>' to select a plan or 'adpanel plans cancel' to close yours.
{{- end }}
{{ end}}`

const statusTemplate = `{{define "status"}}
=== Session Status ===

Status:  Authenticated
{{- if .CompanyName }}
Company: {{.CompanyName}}
{{- end}}
Email:   {{.Email}}
Role:    {{if .IsAdmin}}administrator{{else}}company{{end}}
{{- if .ExpiresIn }}
Session expires in: {{.ExpiresIn}}
{{- end}}
{{end}}`

const usageTemplate = `{{define "usage"}}
adpanel - company ad dashboard client

Usage:
  adpanel [OPTIONS] COMMAND

Options:
  --version          Show version information
  --config PATH      Path to YAML config file (env CONFIG_PATH)
  --server URL       Server URL (env ADPANEL_SERVER, default: http://localhost:8080)
  --db PATH          Path to local database (env ADPANEL_DB, default: adpanel-client.db)
  --timeout DUR      HTTP request timeout (env ADPANEL_TIMEOUT, default: 30s)
  --log-level LEVEL  debug, info, warn or error (env ADPANEL_LOG_LEVEL, default: warn)

Commands:
  register                       Register a new company
  login                          Login to server
  logout                         Logout and forget the local session
  status                         Show session status

  ads list                       List your ads
  ads get <id>                   Show ad details
  ads submit [id]                Create an ad, or edit the ad with the given id
  ads toggle <id>                Show or hide an ad
  ads delete <id>                Delete an ad
  ads reset                      Reset today's view counters
  ads company <companyId>        List ads of a company (admin)

  draft new                      Start a local ad draft
  draft edit <adId>              Start a draft from an existing ad
  draft list                     List drafts
  draft show <id>                Show draft details
  draft update <id>              Change a draft
  draft preview <id> [file]      Render the draft on the product page (HTML)
  draft submit <id>              Send the draft to the server
  draft delete <id>              Delete a draft

  companies list                 List companies (admin)
  companies remove <id>          Remove a company (admin)
  companies block <id>           Block a company (admin)
  companies unblock <id>         Unblock a company (admin)
  companies toggle <id>          Flip the blocked state of a company (admin)

  plans list                     List subscription plans
  plans edit <id>                Change title, price and description (admin)
  plans cancel                   Close your current plan
  plans checkout <id>            Subscribe to a plan

Examples:
  adpanel --server https://ads.example.com login
  adpanel draft new
  adpanel draft preview 6f1c0e2a-0a49-4d0e-9b6e-1f2f3c4d5e6f preview.html
  adpanel plans checkout 2
{{end}}`

func orientation(v *bool) string {
	switch {
	case v == nil:
		return "not set"
	case *v:
		return "vertical"
	default:
		return "horizontal"
	}
}

func yesno(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func planStatus(p pkgapi.Plan) string {
	switch p.Status() {
	case pkgapi.PlanStatusPending:
		return "Your last payment is on pending now"
	case pkgapi.PlanStatusNextPayment:
		return "Your next payment date is " + *p.NextPaymentDate
	case pkgapi.PlanStatusEnding:
		return "Your plan will end on " + *p.EndDate
	default:
		return ""
	}
}

func planNote(p pkgapi.Plan) string {
	if p.Status() == pkgapi.PlanStatusPending {
		return "Your ads will be live when your payment has been processed, within approximately 24 hours."
	}
	return ""
}

// shorten обрезает длинные значения вроде data URL
func shorten(s string) string {
	const limit = 60
	if len(s) <= limit {
		return s
	}
	return s[:limit] + "..."
}
