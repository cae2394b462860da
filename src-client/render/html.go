package render

import (
	"html/template"
	"io"
)

var pageTmpl = template.Must(template.New("page").Parse(`<!doctype html>
<html>
<head>
<meta charset="utf-8">
<title>{{.MonthLabel}}</title>
</head>
<body>
<header>
  <a class="nav" href="?month={{.PrevToken}}">&larr;</a>
  <h1 id="monthLabel">{{.MonthLabel}}</h1>
  <a class="nav" href="?month={{.NextToken}}">&rarr;</a>
</header>
<div id="weekdays">{{range .Weekdays}}<div>{{.}}</div>{{end}}</div>
<div id="calendarGrid">
{{- range .Grid.Cells}}
  <a class="day{{if .Muted}} muted{{end}}{{if .Selected}} selected{{end}}" href="?month={{$.MonthToken}}&amp;day={{.Key}}">
    <div class="day-number">{{.Day}}</div>
    <div class="chips">
      {{- range .Chips}}<div class="chip">{{.Title}}</div>{{end -}}
      {{- with .OverflowLabel}}<div class="chip">{{.}}</div>{{end -}}
    </div>
  </a>
{{- end}}
</div>
<section>
  <h2 id="selectedLabel">{{.SelectedLabel}}</h2>
  <div id="eventList">
  {{- range .DayList}}
    <div class="event" data-id="{{.ID}}">
      <div class="event-title">{{.Title}}</div>
      <div class="event-time">{{.TimeRange}}</div>
      <div class="event-memo">{{.Memo}}</div>
    </div>
  {{- else}}
    <p class="eyebrow">No events</p>
  {{- end}}
  </div>
</section>
</body>
</html>
`))

// HTML writes the month grid and the selected day's list as a page. Titles
// and memos are escaped.
func HTML(w io.Writer, v View) error {
	return pageTmpl.Execute(w, v)
}
