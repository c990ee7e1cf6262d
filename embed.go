package orghub

import "embed"

// EmailFS holds the transactional email templates. Each template group is a
// directory under templates/emails containing an html.tmpl and a
// plaintext.tmpl.
//
//go:embed templates/emails
var EmailFS embed.FS
