package skillshare

import "embed"

// EmailFS holds the html/plaintext email template pairs shipped with the
// binary.
//
//go:embed templates/emails
var EmailFS embed.FS
