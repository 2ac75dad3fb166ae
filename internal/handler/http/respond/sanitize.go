package respond

import "regexp"

var (
	// News provider keys travel as query parameters, so a failed request's
	// error text can embed them in the URL.
	apiTokenParamPattern = regexp.MustCompile(`(api_token|apiKey|api_key)=[^&\s"]+`)

	// Discord webhook URLs embed the webhook token in the path.
	webhookTokenPattern = regexp.MustCompile(`(discord\.com/api/webhooks/\d+)/[A-Za-z0-9_-]+`)

	// Database passwords inside DSNs.
	dbPasswordPattern = regexp.MustCompile(`://([^:/]+):([^@]+)@`)
)

// SanitizeError returns the error message with credentials masked.
func SanitizeError(err error) string {
	if err == nil {
		return ""
	}

	msg := err.Error()
	msg = apiTokenParamPattern.ReplaceAllString(msg, "$1=****")
	msg = webhookTokenPattern.ReplaceAllString(msg, "$1/****")
	msg = dbPasswordPattern.ReplaceAllString(msg, "://$1:****@")
	return msg
}
