package main

import (
	"html/template"
	"net/http"
)

var pages = template.Must(template.New("pages").Parse(`
{{- define "success" -}}<h2>Payment successful!</h2><p>Order ID: {{.ID}}</p>{{- end -}}
{{- define "verification_failed" -}}<h2>Payment verification failed</h2>{{- end -}}
{{- define "missing_params" -}}<h2>Missing payment verification parameters</h2>{{- end -}}
{{- define "failed" -}}<h2>Payment failed or cancelled</h2>{{- end -}}
`))

// writeHTML renders one of pages. Headers are already sent when rendering
// fails, so the error can only be logged.
func (app *application) writeHTML(w http.ResponseWriter, r *http.Request, status int, page string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store, max-age=0")
	w.Header().Set("X-Frame-Options", "DENY")
	w.Header().Set("Referrer-Policy", "no-referrer")

	w.WriteHeader(status)
	if err := pages.ExecuteTemplate(w, page, data); err != nil {
		app.logger.Errorw("render page", "page", page, "method", r.Method, "path", r.URL.Path, "error", err.Error())
	}
}
