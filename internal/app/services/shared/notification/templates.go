package notification

import (
	"bytes"
	"fmt"
	htmltemplate "html/template"
	"passwordless-service/internal/app/models"
	"passwordless-service/internal/pkg/constvars"
	texttemplate "text/template"
)

type emailTemplate struct {
	fromName *texttemplate.Template
	subject  *texttemplate.Template
	text     *texttemplate.Template
	html     *htmltemplate.Template
}

type emailTemplateSource struct {
	fromName string
	subject  string
	text     string
	html     string
}

var emailTemplateSources = map[string]map[string]emailTemplateSource{
	models.TemplateSignIn: {
		"en": {
			fromName: `Team {{.AppName}}`,
			subject:  `Your {{.AppName}} sign in code`,
			text:     `Your sign in code is {{.Code}}. Open {{.Link}} to sign in to {{.AppName}}.`,
			html: `<html><body>
<p>Hi there,<br/><br/>
Use the code below to sign in to {{.AppName}} as {{.Email}}.<br/><br/>
<strong>{{.Code}}</strong><br/><br/>
<a target="_blank" rel="noopener noreferrer" href="{{.Link}}">Sign in to {{.AppName}}</a>
</p></body></html>`,
		},
		"id": {
			fromName: `Tim {{.AppName}}`,
			subject:  `Kode masuk {{.AppName}} Anda`,
			text:     `Kode masuk Anda adalah {{.Code}}. Buka {{.Link}} untuk masuk ke {{.AppName}}.`,
			html: `<html><body>
<p>Hai,<br/><br/>
Gunakan kode di bawah ini untuk masuk ke {{.AppName}} sebagai {{.Email}}.<br/><br/>
<strong>{{.Code}}</strong><br/><br/>
<a target="_blank" rel="noopener noreferrer" href="{{.Link}}">Masuk ke {{.AppName}}</a>
</p></body></html>`,
		},
		"sw": {
			fromName: `Timu ya {{.AppName}}`,
			subject:  `Nambari yako ya kuingia {{.AppName}}`,
			text:     `Nambari yako ya kuingia ni {{.Code}}. Fungua {{.Link}} kuingia kwenye {{.AppName}}.`,
			html: `<html><body>
<p>Hujambo,<br/><br/>
Tumia nambari hii kuingia kwenye {{.AppName}} kama {{.Email}}.<br/><br/>
<strong>{{.Code}}</strong><br/><br/>
<a target="_blank" rel="noopener noreferrer" href="{{.Link}}">Ingia kwenye {{.AppName}}</a>
</p></body></html>`,
		},
	},
	models.TemplateInvite: {
		"en": {
			fromName: `Team {{.AppName}}`,
			subject:  `{{.Name}}'s teacher has invited you to {{.AppName}}`,
			text:     `{{.Name}}'s teacher has invited you to {{.AppName}}`,
			html: `<html><body>
<p>Hi there,<br/><br/>
You've been invited by {{.Name}}'s teacher to download {{.AppName}}. By downloading {{.AppName}}, {{.Name}} will:<br/><br/>
Get access to a library of special books designed to develop reading skills<br/><br/>
Share awards between their classroom and home profile<br/><br/>
Allow {{.Name}}'s teacher to see their reading homework<br/><br/>
{{.AppName}} is private and only your teacher can see what books you've read.<br/><br/>
<a target="_blank" rel="noopener noreferrer" href="{{.Link}}">Connect to {{.AppName}}</a>
</p></body></html>`,
		},
		"id": {
			fromName: `Tim {{.AppName}}`,
			subject:  `Guru {{.Name}} telah mengundang Anda ke {{.AppName}}`,
			text:     `Guru {{.Name}} telah mengundang Anda ke {{.AppName}}`,
			html: `<html><body>
<p>Hai,<br/><br/>
Anda telah diundang oleh guru {{.Name}} untuk mengunduh {{.AppName}}. Dengan mengunduh {{.AppName}}, {{.Name}} akan:<br/><br/>
Mendapatkan akses ke perpustakaan buku khusus yang dirancang untuk mengembangkan keterampilan membaca<br/><br/>
Berbagi penghargaan antar kelas dan profil pribadi<br/><br/>
Mengizinkan guru Anda melihat pekerjaan rumah membaca {{.Name}}<br/><br/>
{{.AppName}} bersifat pribadi dan hanya guru Anda yang dapat melihat buku apa yang telah Anda baca.<br/><br/>
<a target="_blank" rel="noopener noreferrer" href="{{.Link}}">Sambung ke {{.AppName}}</a>
</p></body></html>`,
		},
		"sw": {
			fromName: `Timu ya {{.AppName}}`,
			subject:  `Mwalimu wa {{.Name}} amekualika kwenye {{.AppName}}`,
			text:     `Mwalimu wa {{.Name}} amekualika kwenye {{.AppName}}`,
			html: `<html><body>
<p>Hujambo,<br/><br/>
Umealikwa na mwalimu wa {{.Name}} kudownload {{.AppName}}. Kwa kudownload {{.AppName}}, {{.Name}} ataweza:<br/><br/>
Kupata maktaba ya vitabu maalum vilivyoundwa kukuza ujuzi wa kusoma<br/><br/>
Kushiriki tuzo kati ya profaili yao ya darasani na nyumbani<br/><br/>
Kumruhusu mwalimu wa {{.Name}} kuona kazi yao ya nyumbani ya kusoma<br/><br/>
{{.AppName}} ni ya kibinafsi na ni mwalimu wako pekee anayeweza kuona vitabu ulivyosoma.<br/><br/>
<a target="_blank" rel="noopener noreferrer" href="{{.Link}}">Unganisha na {{.AppName}}</a>
</p></body></html>`,
		},
	},
}

// emailTemplates is parsed once at init; a broken template is a programming
// error and panics.
var emailTemplates = mustParseEmailTemplates(emailTemplateSources)

func mustParseEmailTemplates(sources map[string]map[string]emailTemplateSource) map[string]map[string]*emailTemplate {
	parsed := make(map[string]map[string]*emailTemplate, len(sources))
	for key, byLanguage := range sources {
		parsed[key] = make(map[string]*emailTemplate, len(byLanguage))
		for lang, source := range byLanguage {
			name := key + "." + lang
			parsed[key][lang] = &emailTemplate{
				fromName: texttemplate.Must(texttemplate.New(name + ".from").Parse(source.fromName)),
				subject:  texttemplate.Must(texttemplate.New(name + ".subject").Parse(source.subject)),
				text:     texttemplate.Must(texttemplate.New(name + ".text").Parse(source.text)),
				html:     htmltemplate.Must(htmltemplate.New(name + ".html").Parse(source.html)),
			}
		}
	}
	return parsed
}

type renderedEmail struct {
	FromName string
	Subject  string
	Text     string
	HTML     string
}

// renderEmail picks the template for key in lang, falling back to English.
func renderEmail(key, lang string, variables models.NotificationVariables) (*renderedEmail, error) {
	byLanguage, ok := emailTemplates[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTemplate, key)
	}
	tmpl, ok := byLanguage[lang]
	if !ok {
		tmpl = byLanguage[constvars.DefaultLanguage]
	}

	var fromName, subject, text, html bytes.Buffer
	if err := tmpl.fromName.Execute(&fromName, variables); err != nil {
		return nil, fmt.Errorf(constvars.ErrDevTemplateRender+": %w", key, err)
	}
	if err := tmpl.subject.Execute(&subject, variables); err != nil {
		return nil, fmt.Errorf(constvars.ErrDevTemplateRender+": %w", key, err)
	}
	if err := tmpl.text.Execute(&text, variables); err != nil {
		return nil, fmt.Errorf(constvars.ErrDevTemplateRender+": %w", key, err)
	}
	if err := tmpl.html.Execute(&html, variables); err != nil {
		return nil, fmt.Errorf(constvars.ErrDevTemplateRender+": %w", key, err)
	}

	return &renderedEmail{
		FromName: fromName.String(),
		Subject:  subject.String(),
		Text:     text.String(),
		HTML:     html.String(),
	}, nil
}
