package xhttp

import "net/http"

const (
	// SessionCookie is the cookie the backend issues on login and
	// expects on every authenticated request.
	SessionCookie = "sessid"

	XRequestID = "X-Request-ID"
)

const ContentType = "Content-Type"

func SetRequestHeaderContentTypeApplicationJSON(req *http.Request) {
	const applicationJSON = "application/json"
	req.Header.Set(ContentType, applicationJSON)
}
