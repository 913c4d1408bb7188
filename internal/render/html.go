package render

import (
	"bytes"
	"fmt"
	"html/template"
)

// The document is self-contained: inline styles only, no external assets,
// so the browser print dialog is all the export pipeline there is.
var invoiceTmpl = template.Must(template.New("invoice").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Invoice {{.InvoiceNumber}}</title>
<style>
  body { font-family: Georgia, 'Times New Roman', serif; color: #1a1a1a; margin: 2.5rem auto; max-width: 52rem; }
  header { display: flex; justify-content: space-between; align-items: flex-start; border-bottom: 2px solid #1a1a1a; padding-bottom: 1rem; }
  h1 { font-size: 1.6rem; margin: 0; }
  .meta { color: #555; font-size: .9rem; }
  .company { text-align: right; font-size: .9rem; white-space: pre-line; }
  .company img { max-height: 3.5rem; }
  section { margin-top: 1.5rem; }
  h2 { font-size: 1.05rem; border-bottom: 1px solid #999; padding-bottom: .25rem; }
  .desc { font-style: italic; color: #555; margin: .25rem 0 .5rem; }
  table { width: 100%; border-collapse: collapse; font-size: .92rem; }
  th, td { text-align: left; padding: .3rem .5rem; }
  th { border-bottom: 1px solid #ccc; font-weight: 600; }
  td.num, th.num { text-align: right; }
  tfoot td { border-top: 1px solid #ccc; font-weight: 600; }
  .grand { margin-top: 2rem; text-align: right; font-size: 1.2rem; font-weight: 700; }
  @media print { body { margin: 0; max-width: none; } }
</style>
</head>
<body>
<header>
  <div>
    <h1>Invoice {{.InvoiceNumber}}</h1>
    <div class="meta">{{.InvoiceName}}</div>
    <div class="meta">Project: {{.ProjectName}}</div>
    <div class="meta">Created: {{.CreatedAt.Format "January 2, 2006"}}</div>
  </div>
{{- with .Company}}
  <div class="company">
{{- if .LogoURL}}
    <img src="{{.LogoURL}}" alt="{{.Name}}">
{{- end}}
    <strong>{{.Name}}</strong>
    {{.Address}}
    {{.Phone}}
    {{.Email}}
  </div>
{{- end}}
</header>
{{- range .Sections}}
<section>
  <h2>{{.CostCodeLabel}}</h2>
{{- if .Description}}
  <div class="desc">{{.Description}}</div>
{{- end}}
  <table>
    <thead>
      <tr><th>Item</th><th class="num">Qty</th><th>Unit</th><th class="num">Unit Price</th><th class="num">Total</th></tr>
    </thead>
    <tbody>
{{- range .Rows}}
      <tr><td>{{.Name}}</td><td class="num">{{.Qty}}</td><td>{{.Unit}}</td><td class="num">{{.UnitPrice}}</td><td class="num">{{.LineTotal}}</td></tr>
{{- end}}
    </tbody>
    <tfoot>
      <tr><td colspan="4">Subtotal</td><td class="num">{{.MacroTotal}}</td></tr>
    </tfoot>
  </table>
</section>
{{- end}}
<div class="grand">Total: {{.GrandTotal}}</div>
</body>
</html>
`))

// HTML renders the document to a self-contained HTML page.
func HTML(doc Document) ([]byte, error) {
	var buf bytes.Buffer
	if err := invoiceTmpl.Execute(&buf, doc); err != nil {
		return nil, fmt.Errorf("rendering invoice %s: %w", doc.InvoiceNumber, err)
	}
	return buf.Bytes(), nil
}
