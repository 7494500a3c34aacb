package audit

import "fmt"

// AuthnEvent records an authentication attempt against the token store.
type AuthnEvent struct {
	Username     string
	ClientIP     string
	Success      bool
	ErrorMessage string
}

func (e AuthnEvent) MessageID() string { return "authn" }

func (e AuthnEvent) Severity() Severity {
	if e.Success {
		return SeverityInfo
	}
	return SeverityWarning
}

func (e AuthnEvent) Facility() int { return FacilityAuthPriv }

func (e AuthnEvent) Message() string {
	subject := e.Username
	if subject == "" {
		subject = "unknown"
	}
	if e.Success {
		return fmt.Sprintf("%s successfully authenticated", subject)
	}
	if e.ErrorMessage != "" {
		return fmt.Sprintf("%s failed to authenticate: %s", subject, e.ErrorMessage)
	}
	return fmt.Sprintf("%s failed to authenticate", subject)
}

func (e AuthnEvent) StructuredData() map[string]map[string]string {
	sd := map[string]map[string]string{
		SDIDAuth: {"authenticator": "token"},
	}
	if e.Username != "" {
		sd[SDIDSubject] = map[string]string{"user": e.Username}
	}
	if e.ClientIP != "" {
		sd[SDIDClient] = map[string]string{"ip": e.ClientIP}
	}
	return sd
}

// ArticleEvent records a mutation attempt on an article.
type ArticleEvent struct {
	Username     string
	ClientIP     string
	Operation    string // create, update, delete
	Slug         string
	Allowed      bool
	ErrorMessage string
}

func (e ArticleEvent) MessageID() string { return "article" }

func (e ArticleEvent) Severity() Severity {
	if e.Allowed {
		return SeverityInfo
	}
	return SeverityWarning
}

func (e ArticleEvent) Facility() int { return FacilityAuth }

func (e ArticleEvent) Message() string {
	if e.Allowed {
		return fmt.Sprintf("%s performed %s on article %s", e.Username, e.Operation, e.Slug)
	}
	if e.ErrorMessage != "" {
		return fmt.Sprintf("%s denied %s on article %s: %s", e.Username, e.Operation, e.Slug, e.ErrorMessage)
	}
	return fmt.Sprintf("%s denied %s on article %s", e.Username, e.Operation, e.Slug)
}

func (e ArticleEvent) StructuredData() map[string]map[string]string {
	sd := map[string]map[string]string{
		SDIDAction: {
			"operation": e.Operation,
			"result":    boolToResult(e.Allowed),
		},
		SDIDSubject: {"article": e.Slug},
	}
	if e.Username != "" {
		sd[SDIDSubject]["user"] = e.Username
	}
	if e.ClientIP != "" {
		sd[SDIDClient] = map[string]string{"ip": e.ClientIP}
	}
	return sd
}

func boolToResult(allowed bool) string {
	if allowed {
		return "success"
	}
	return "failure"
}
