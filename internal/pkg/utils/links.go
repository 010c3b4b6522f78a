package utils

import (
	"net/url"
	"strings"
)

// LastPathSegment returns what follows the final '/' of link, which is the
// short code WhatsApp URL buttons expect.
func LastPathSegment(link string) string {
	link = strings.TrimRight(link, "/")
	if index := strings.LastIndex(link, "/"); index >= 0 {
		return link[index+1:]
	}
	return link
}

// AppendQuery adds params to rawURL, keeping any query it already has.
func AppendQuery(rawURL string, params url.Values) (string, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return "", err
	}
	query := parsed.Query()
	for key, values := range params {
		for _, value := range values {
			query.Add(key, value)
		}
	}
	parsed.RawQuery = query.Encode()
	return parsed.String(), nil
}
