package bind

import (
	"net/http"
	"reflect"
	"strconv"
	"strings"

	perr "seekdomains/internal/platform/errors"
)

// ParseQuery fills T from the request query string using `query:"name"` struct tags,
// then validates it like ParseJSON. Supported field kinds: string, bool, signed ints,
// pointers to those (left nil when the parameter is absent) and []string (repeated or
// comma-separated). Empty values count as absent; unknown parameters are ignored.
func ParseQuery[T any](r *http.Request) (T, error) {
	var dst T
	rv := reflect.ValueOf(&dst).Elem()
	if rv.Kind() != reflect.Struct {
		return dst, perr.Internalf("bind: query target must be a struct, got %s", rv.Kind())
	}
	q := r.URL.Query()
	rt := rv.Type()
	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		name := strings.Split(sf.Tag.Get("query"), ",")[0]
		if name == "" || name == "-" || !sf.IsExported() {
			continue
		}
		vals := nonEmpty(q[name])
		if len(vals) == 0 {
			continue
		}
		if err := setField(rv.Field(i), vals); err != nil {
			return dst, perr.WithField(perr.Newf(perr.ErrorCodeValidation, "%s: %v", name, err), name)
		}
	}
	if err := Get().Validator.Struct(dst); err != nil {
		return dst, validationError(err)
	}
	return dst, nil
}

func nonEmpty(in []string) []string {
	out := in[:0:0]
	for _, v := range in {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func setField(f reflect.Value, vals []string) error {
	if f.Kind() == reflect.Pointer {
		p := reflect.New(f.Type().Elem())
		if err := setField(p.Elem(), vals); err != nil {
			return err
		}
		f.Set(p)
		return nil
	}
	last := vals[len(vals)-1]
	switch f.Kind() {
	case reflect.String:
		f.SetString(last)
	case reflect.Bool:
		b, err := strconv.ParseBool(last)
		if err != nil {
			return errBadValue("a boolean", last)
		}
		f.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(last, 10, f.Type().Bits())
		if err != nil {
			return errBadValue("an integer", last)
		}
		f.SetInt(n)
	case reflect.Slice:
		if f.Type().Elem().Kind() != reflect.String {
			return perr.Internalf("unsupported slice element %s", f.Type().Elem())
		}
		var out []string
		for _, v := range vals {
			out = append(out, nonEmpty(strings.Split(v, ","))...)
		}
		f.Set(reflect.ValueOf(out))
	default:
		return perr.Internalf("unsupported field kind %s", f.Kind())
	}
	return nil
}

func errBadValue(want, got string) error {
	return perr.Newf(perr.ErrorCodeValidation, "must be %s, got %q", want, got)
}
