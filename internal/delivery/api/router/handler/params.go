package handler

import (
	"math"
	"net/url"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
)

// unescapedParam returns a path parameter with percent-escapes decoded once.
// Echo routes on URL.RawPath when it is set, leaving parameters escaped;
// otherwise they come from the already decoded URL.Path.
func unescapedParam(c echo.Context, name string) string {
	raw := c.Param(name)
	if c.Request().URL.RawPath == "" {
		return raw
	}
	if v, err := url.PathUnescape(raw); err == nil {
		return v
	}

	return raw
}

type pathEmail struct {
	Email string `json:"email" validate:"required,email"`
}

// emailParam returns the decoded :email segment, rejecting blank or
// malformed values.
func emailParam(c echo.Context) (string, error) {
	p := pathEmail{Email: unescapedParam(c, "email")}
	if err := c.Validate(&p); err != nil {
		return "", err
	}

	return p.Email, nil
}

// parseSize reads the leading decimal integer of raw, ignoring anything after
// it ("5abc" is 5). Blank, non-numeric, zero and negative values yield 0,
// which means no limit.
func parseSize(raw string) int64 {
	s := strings.TrimSpace(raw)

	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digitsStart := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digitsStart {
		return 0
	}

	n, err := strconv.ParseInt(s[:end], 10, 64)
	if err != nil {
		// Only overflow is possible here.
		if s[0] == '-' {
			return 0
		}

		return math.MaxInt64
	}
	if n < 0 {
		return 0
	}

	return n
}
