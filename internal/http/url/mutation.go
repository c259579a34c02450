package url

import (
	"fmt"
	"net/url"
	"path"

	"github.com/pkg/errors"
)

type URL = url.URL

var Parse = url.Parse

// Mutate returns a copy of u with the given mutations applied
func Mutate(u *url.URL, funcs ...MutationFunc) *url.URL {
	cloned := *u

	for _, fn := range funcs {
		fn(&cloned)
	}

	return &cloned
}

type MutationFunc func(u *url.URL)

func keyValuesToValues(kv []string) url.Values {
	if len(kv)%2 != 0 {
		panic(errors.New("expected pair number of key/values"))
	}

	values := make(url.Values)

	for idx := 0; idx < len(kv); idx += 2 {
		values.Add(kv[idx], kv[idx+1])
	}

	return values
}

// WithValues sets the given query parameters, replacing existing ones
func WithValues(kv ...string) MutationFunc {
	values := keyValuesToValues(kv)

	return func(u *url.URL) {
		query := u.Query()

		for k, vv := range values {
			query[k] = vv
		}

		u.RawQuery = query.Encode()
	}
}

// WithPath joins the given segments to the path of the URL
func WithPath(paths ...string) MutationFunc {
	return func(u *url.URL) {
		segments := append([]string{u.Path}, paths...)
		u.Path = path.Join(segments...)
	}
}

func WithPathf(format string, params ...any) MutationFunc {
	return WithPath(fmt.Sprintf(format, params...))
}
