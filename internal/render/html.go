package render

import (
	"html/template"
	"io"

	"github.com/lostfound-tw/lostfound/internal/facet"
	"github.com/lostfound-tw/lostfound/internal/item"
)

var funcs = template.FuncMap{
	"place":       place,
	"description": description,
}

var itemsTemplate = template.Must(template.New("items").Funcs(funcs).Parse(`<div class="items-grid" data-count="{{.Count}}">
{{- range .Items}}
<div class="item-card" data-id="{{.ID}}">
  <div class="card-image-container">
    <img src="{{.ImageURL}}" alt="{{.Name}}" class="card-image-fg" loading="lazy" onerror="this.onerror=null; this.src={{$.ErrorImageURL}};">
  </div>
  <div class="card-content">
    <h3>{{.Name}}</h3>
    <p class="pickup-date"><strong>拾獲日期：</strong>{{.PickupDateText}}</p>
    <p class="place"><strong>拾獲地點：</strong>{{place .Record}}</p>
    <p class="description"><strong>物品描述：</strong>{{description .Record}}</p>
  </div>
  <div class="card-footer">遺失物編號：{{.ID}}</div>
</div>
{{- else}}
<p class="status">{{$.Empty}}</p>
{{- end}}
</div>
`))

var messageTemplate = template.Must(template.New("message").Parse(`<p class="status">{{.}}</p>
`))

var facetsTemplate = template.Must(template.New("facets").Parse(`<form class="filters">
<select name="period">
{{- range .Facets.Periods}}
  <option value="{{.Value}}">{{.Label}}</option>
{{- end}}
</select>
<select name="campus">
{{- range .Facets.Campuses}}
  <option value="{{.Value}}"{{if eq .Value $.Campus}} selected{{end}}>{{.Label}}</option>
{{- end}}
</select>
<select name="location">
{{- range index .Facets.Locations $.Campus}}
  <option value="{{.Value}}">{{.Label}}</option>
{{- end}}
</select>
</form>
`))

type itemsPage struct {
	*Result
	ErrorImageURL string
	Empty         string
}

type facetsPage struct {
	Facets *facet.Facets
	Campus string
}

func writeHTML(w io.Writer, result *Result) error {
	return itemsTemplate.Execute(w, itemsPage{
		Result:        result,
		ErrorImageURL: item.ErrorImageURL,
		Empty:         EmptyMessage,
	})
}
