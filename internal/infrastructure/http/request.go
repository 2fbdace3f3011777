package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"fieldtrack/pkg/errors"
	"fieldtrack/pkg/middleware"
)

func decodeJSON(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return errors.NewBadRequestError("Invalid request body")
	}
	return nil
}

// queryList reads a repeatable, comma-separated query parameter
func queryList(r *http.Request, key string) []string {
	var values []string
	for _, raw := range r.URL.Query()[key] {
		for _, v := range strings.Split(raw, ",") {
			if v = strings.TrimSpace(v); v != "" {
				values = append(values, v)
			}
		}
	}
	return values
}

func queryInt(r *http.Request, key string, def int) (int, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.NewBadRequestError(fmt.Sprintf("%s must be an integer", key))
	}
	return n, nil
}

func queryFloat(r *http.Request, key string) (float64, error) {
	n, err := strconv.ParseFloat(r.URL.Query().Get(key), 64)
	if err != nil {
		return 0, errors.NewBadRequestError(fmt.Sprintf("%s must be a number", key))
	}
	return n, nil
}

func queryBool(r *http.Request, key string) (*bool, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return nil, nil
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, errors.NewBadRequestError(fmt.Sprintf("%s must be true or false", key))
	}
	return &b, nil
}

// queryTime accepts RFC 3339 timestamps or local calendar dates. With
// endOfDay set, a bare date means the last instant of that day.
func queryTime(r *http.Request, key string, endOfDay bool) (*time.Time, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return &t, nil
	}
	t, err := time.ParseInLocation("2006-01-02", raw, time.Local)
	if err != nil {
		return nil, errors.NewBadRequestError(fmt.Sprintf("%s must be a date (YYYY-MM-DD) or RFC 3339 time", key))
	}
	if endOfDay {
		t = t.Add(24*time.Hour - time.Nanosecond)
	}
	return &t, nil
}

// targetUser is the user_id query parameter, defaulting to the caller
func targetUser(r *http.Request) string {
	if id := r.URL.Query().Get("user_id"); id != "" {
		return id
	}
	return middleware.GetUserID(r.Context())
}
