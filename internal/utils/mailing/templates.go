package mailing

import "html/template"

var WelcomeTemplate = template.Must(template.New("welcome").Parse(`<p>Hi {{.Name}},</p>
<p>Welcome aboard! Start by adding what is in your fridge and we will remind you before anything goes to waste.</p>
{{if .AppURL}}<p><a href="{{.AppURL}}">Open your dashboard</a></p>{{end}}`))

var ExpiryDigestTemplate = template.Must(template.New("digest").Parse(`<p>Hi {{.Name}},</p>
<p>These items are expiring soon:</p>
<ul>
{{range .Items}}<li>{{.Name}} ({{.Quantity}}) expires {{.ExpiryDate}}</li>
{{end}}</ul>
<p>Plan a meal around them before they go to waste.</p>`))
