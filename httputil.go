package folio

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/PaesslerAG/jsonpath"
)

// contains http utils to deal with the portfolio API

// ErrMalformed is wrapped by every error caused by a payload that does not
// have the expected shape.
var ErrMalformed = errors.New("malformed payload")

// APIError is returned for non successful HTTP responses.
type APIError struct {
	Method string
	Path   string
	Status int
	Detail string // as reported by the API, can be empty
}

func (e *APIError) Error() string {
	msg := fmt.Sprintf("cannot http %s %s: %d %s", e.Method, e.Path, e.Status, http.StatusText(e.Status))
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	return msg
}

// Temporary reports whether the error is on the server side.
func (e *APIError) Temporary() bool { return e.Status >= 500 }

// detailPath locates the error message in an error response body.
const detailPath = "$.detail"

// errorDetail extracts the error message from an error response body.
func errorDetail(body []byte) string {
	var jobj any
	if err := json.Unmarshal(body, &jobj); err != nil {
		// not json, keep a short plain text body if there is one.
		s := strings.TrimSpace(string(body))
		if len(s) > 200 {
			s = s[:200]
		}
		return s
	}
	jval, err := jsonpath.Get(detailPath, jobj)
	if err != nil {
		return ""
	}
	switch v := jval.(type) {
	case string:
		return v
	case nil:
		return ""
	default:
		// validation errors come as a list of objects.
		b, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprint(v)
		}
		return string(b)
	}
}

// jdecode reads a JSON body into data. An empty body leaves data untouched.
func jdecode(r io.Reader, data any) error {
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, r); err != nil {
		return err
	}
	if len(bytes.TrimSpace(buf.Bytes())) == 0 || data == nil {
		return nil
	}
	if err := json.Unmarshal(buf.Bytes(), data); err != nil {
		return fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	return nil
}

// jencode returns a JSON request body for data, nil for nil data.
func jencode(data any) (io.Reader, error) {
	if data == nil {
		return nil, nil
	}
	b, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	return bytes.NewReader(b), nil
}
