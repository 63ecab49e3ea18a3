package server

import "html/template"

// pageHTML is the single shell every programmatic page renders through. The
// markup is deliberately plain; styling ships from the static front end.
const pageHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Meta.Title}}</title>
<meta name="description" content="{{.Meta.Description}}">
<link rel="canonical" href="{{.CanonicalURL}}">
{{- range .SchemaBlocks}}
<script type="application/ld+json">{{.}}</script>
{{- end}}
</head>
<body>
<main>
<h1>{{.Meta.H1}}</h1>
<p class="direct-answer">{{.DirectAnswer}}</p>

{{- range .Sections}}
<section>
<h2>{{.Title}}</h2>
<ul>
{{- range .Points}}
<li><strong>{{.Label}}.</strong> {{.Detail}}</li>
{{- end}}
</ul>
</section>
{{- end}}

{{- if .Steps}}
<section>
<h2>How It Works</h2>
<ol>
{{- range .Steps}}
<li><strong>{{.Title}}</strong> ({{.Duration}}): {{.Description}}</li>
{{- end}}
</ol>
</section>
{{- end}}

{{- if .Table}}
<section>
<h2>Side by Side</h2>
<table>
<thead><tr>{{range .Table.Headers}}<th>{{.}}</th>{{end}}</tr></thead>
<tbody>
{{- range .Table.Rows}}
<tr><td>{{.Feature}}</td>{{range .Cells}}<td>{{.}}</td>{{end}}</tr>
{{- end}}
</tbody>
</table>
</section>
{{- end}}

{{- if .FAQs}}
<section>
<h2>Frequently Asked Questions</h2>
{{- range .FAQs}}
<details>
<summary>{{.Question}}</summary>
<p>{{.Answer}}</p>
</details>
{{- end}}
</section>
{{- end}}

<nav class="silo">
<a href="{{.Links.Parent.URL}}">{{.Links.Parent.Anchor}}</a>
{{- if .Links.Siblings}}
<ul class="siblings">
{{- range .Links.Siblings}}
<li><a href="{{.URL}}">{{.Anchor}}</a></li>
{{- end}}
</ul>
{{- end}}
{{- if .Links.Children}}
<ul class="children">
{{- range .Links.Children}}
<li><a href="{{.URL}}">{{.Anchor}}</a></li>
{{- end}}
</ul>
{{- end}}
<a href="{{.Links.Branded.URL}}">{{.Links.Branded.Anchor}}</a>
</nav>
</main>
</body>
</html>
`

var pageTemplate = template.Must(template.New("page").Parse(pageHTML))
