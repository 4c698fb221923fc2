package urlfor

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

var (
	ErrConflictingURLOptions = errors.New("a raw URL cannot be combined with controller, action, id or params")
	ErrInvalidRawURL         = errors.New("invalid raw URL")
)

// Options describes the target of a remote call: either a Raw URL used verbatim or a route made of
// a controller, an action, an id and query parameters.
type Options struct {
	Raw        string            `yaml:"raw,omitempty"`
	Controller string            `yaml:"controller,omitempty"`
	Action     string            `yaml:"action,omitempty"`
	ID         string            `yaml:"id,omitempty"`
	Params     map[string]string `yaml:"params,omitempty"`
}

func (o Options) hasRoute() bool {
	return o.Controller != "" || o.Action != "" || o.ID != "" || len(o.Params) > 0
}

// A URLBuilder turns URL options into a URL, routing is the responsibility of the host application.
type URLBuilder interface {
	URLFor(opts Options) (string, error)
}

// Builder is a minimal URLBuilder that maps routes to /controller/action/id paths under Host.
type Builder struct {
	Host string //scheme and authority without trailing slash, for example http://www.example.com
}

func (b Builder) URLFor(opts Options) (string, error) {
	if opts.Raw != "" {
		if opts.hasRoute() {
			return "", ErrConflictingURLOptions
		}
		if _, err := url.Parse(opts.Raw); err != nil {
			return "", fmt.Errorf("%w: %w", ErrInvalidRawURL, err)
		}
		return opts.Raw, nil
	}

	var segments []string
	for _, segment := range []string{opts.Controller, opts.Action, opts.ID} {
		if segment != "" {
			segments = append(segments, url.PathEscape(segment))
		}
	}

	u := strings.TrimSuffix(b.Host, "/") + "/" + strings.Join(segments, "/")

	if len(opts.Params) > 0 {
		query := url.Values{}
		for k, v := range opts.Params {
			query.Set(k, v)
		}
		//Encode sorts the parameters by key.
		u += "?" + query.Encode()
	}

	return u, nil
}
