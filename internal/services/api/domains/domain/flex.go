package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// FlexText accepts a JSON string or number and keeps its text form
type FlexText string

// UnmarshalJSON implements json.Unmarshaler
func (f *FlexText) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*f = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = FlexText(strings.TrimSpace(s))
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("expected a string or number")
	}
	if i, err := strconv.ParseInt(n.String(), 10, 64); err == nil {
		*f = FlexText(strconv.FormatInt(i, 10))
		return nil
	}
	*f = FlexText(n.String())
	return nil
}

// String returns the text form
func (f FlexText) String() string { return string(f) }

// FlexList accepts a JSON string or an array of strings
// a string is kept as one item so comma separated input passes through verbatim
type FlexList []string

// UnmarshalJSON implements json.Unmarshaler
func (f *FlexList) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*f = nil
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		if s = strings.TrimSpace(s); s == "" {
			*f = nil
			return nil
		}
		*f = FlexList{s}
		return nil
	}
	var items []string
	if err := json.Unmarshal(b, &items); err != nil {
		return fmt.Errorf("expected a string or an array of strings")
	}
	out := items[:0]
	for _, it := range items {
		if it = strings.TrimSpace(it); it != "" {
			out = append(out, it)
		}
	}
	*f = out
	return nil
}

// String joins items for prompt text
func (f FlexList) String() string { return strings.Join(f, ", ") }
