package htmltable

import "html/template"

var (
	HeaderTemplate = template.Must(template.New("header").Parse(
		"<table{{if .TableClass}} class='{{.TableClass}}'{{end}}>\n" +
			"{{if .Caption}}  <caption>{{.Caption}}</caption>\n{{end}}",
	))

	RowTemplate = template.Must(template.New("row").Parse("" +
		"{{if .IsHeaderRow}}" +
		"  <tr><th></th>{{range $cell := .Cells}}<th>{{$cell.HTML}}</th>{{end}}</tr>\n" +
		"{{else}}" +
		"  <tr><th>{{.RowLabel}}</th>{{range $cell := .Cells}}" +
		"<td{{if $cell.Class}} class='{{$cell.Class}}'{{end}}{{if $cell.AlignRight}} style='text-align:right'{{end}}>{{$cell.HTML}}</td>" +
		"{{end}}</tr>\n" +
		"{{end}}",
	))

	FooterTemplate = template.Must(template.New("footer").Parse(
		"</table>",
	))
)

type TemplateContext struct {
	TableClass string
	Caption    string
}

type CellTemplateContext struct {
	HTML       template.HTML
	Class      string
	AlignRight bool
}

type RowTemplateContext struct {
	TemplateContext

	IsHeaderRow bool
	RowIndex    int
	RowLabel    string
	Cells       []CellTemplateContext
}
