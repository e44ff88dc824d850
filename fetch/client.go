package fetch

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"slices"
	"strings"

	"github.com/signadot/objpath"
	"github.com/signadot/objpath/debug"
	"github.com/signadot/objpath/encode"
	"github.com/signadot/objpath/format"
	"github.com/signadot/objpath/ir"
	"github.com/signadot/objpath/parse"
)

// Client sends requests to the endpoints it was created with.  It is safe
// for concurrent use.
type Client struct {
	base      *url.URL
	endpoints map[string]string
	http      *http.Client
	header    http.Header
}

type Option func(*Client)

// WithHTTPClient sets the underlying client, http.DefaultClient by default.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// WithHeader adds a header sent with every request.
func WithHeader(key, value string) Option {
	return func(c *Client) { c.header.Add(key, value) }
}

// New creates a client for the endpoints, a structure of nested objects
// whose leaves are string templates, relative to base.
func New(base string, endpoints *ir.Node, opts ...Option) (*Client, error) {
	u, err := url.Parse(base)
	if err != nil {
		return nil, fmt.Errorf("error parsing base url %q: %w", base, err)
	}
	c := &Client{
		base:      u,
		endpoints: map[string]string{},
		http:      http.DefaultClient,
		header:    http.Header{},
	}
	for _, opt := range opts {
		opt(c)
	}
	if endpoints == nil {
		return c, nil
	}
	if endpoints.Type != ir.ObjectType {
		return nil, fmt.Errorf("%w: endpoints must be an object, got %s", ErrBadEndpoint, endpoints.Type)
	}
	flat := objpath.Flat(endpoints, objpath.Descend(func(_ string, n *ir.Node) bool {
		return n.Type == ir.ObjectType
	}))
	for i, v := range flat.Values {
		name := flat.Fields[i].String
		if v.Type != ir.StringType {
			return nil, fmt.Errorf("%w: %s is a %s", ErrBadEndpoint, name, v.Type)
		}
		c.endpoints[name] = v.String
	}
	return c, nil
}

// Endpoints returns the sorted endpoint names.
func (c *Client) Endpoints() []string {
	res := make([]string, 0, len(c.endpoints))
	for name := range c.endpoints {
		res = append(res, name)
	}
	slices.Sort(res)
	return res
}

// URL resolves endpoint name with params and query.
func (c *Client) URL(name string, params map[string]string, query url.Values) (string, error) {
	tmpl, ok := c.endpoints[name]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrNoEndpoint, name)
	}
	parts := strings.Split(tmpl, "/")
	for i, part := range parts {
		var param string
		switch {
		case strings.HasPrefix(part, ":") && len(part) > 1:
			param = part[1:]
		case strings.HasPrefix(part, "{") && strings.HasSuffix(part, "}") && len(part) > 2:
			param = part[1 : len(part)-1]
		default:
			continue
		}
		v, ok := params[param]
		if !ok {
			return "", fmt.Errorf("%w: %q in %s", ErrMissingParam, param, name)
		}
		parts[i] = url.PathEscape(v)
	}
	ref, err := url.Parse(strings.Join(parts, "/"))
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrBadEndpoint, name, err)
	}
	u := ref
	if !ref.IsAbs() {
		u = c.base.JoinPath(ref.EscapedPath())
		u.RawQuery = ref.RawQuery
	}
	if len(query) != 0 {
		if u.RawQuery != "" {
			u.RawQuery += "&"
		}
		u.RawQuery += query.Encode()
	}
	return u.String(), nil
}

// Request describes a call to an endpoint.  Method defaults to GET.
type Request struct {
	Method   string
	Endpoint string
	Params   map[string]string
	Query    url.Values
	Body     *ir.Node
	Header   http.Header
}

// Do sends r and returns the decoded json response, nil if the response
// is empty.
func (c *Client) Do(ctx context.Context, r *Request) (*ir.Node, error) {
	u, err := c.URL(r.Endpoint, r.Params, r.Query)
	if err != nil {
		return nil, err
	}
	method := r.Method
	if method == "" {
		method = http.MethodGet
	}
	var body io.Reader
	if r.Body != nil {
		buf := bytes.NewBuffer(nil)
		if err := encode.Encode(r.Body, buf, encode.EncodeFormat(format.JSONFormat), encode.EncodeWire(true)); err != nil {
			return nil, fmt.Errorf("error encoding request body: %w", err)
		}
		body = buf
	}
	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, h := range []http.Header{c.header, r.Header} {
		for k, vs := range h {
			for _, v := range vs {
				req.Header.Add(k, v)
			}
		}
	}
	if debug.Fetch() {
		debug.Logf("fetch %s %s\n", method, u)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	d, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading response from %s: %w", u, err)
	}
	if debug.Fetch() {
		debug.Logf("fetch %s %s: %d, %d bytes\n", method, u, resp.StatusCode, len(d))
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return nil, &StatusError{Method: method, URL: u, StatusCode: resp.StatusCode, Body: errorBody(d)}
	}
	if len(bytes.TrimSpace(d)) == 0 {
		return nil, nil
	}
	res, err := parse.Parse(d, parse.ParseJSON())
	if err != nil {
		return nil, fmt.Errorf("error decoding response from %s: %w", u, err)
	}
	return res, nil
}

// Get is Do with a GET request.
func (c *Client) Get(ctx context.Context, endpoint string, params map[string]string, query url.Values) (*ir.Node, error) {
	return c.Do(ctx, &Request{Endpoint: endpoint, Params: params, Query: query})
}

func errorBody(d []byte) *ir.Node {
	d = bytes.TrimSpace(d)
	if len(d) == 0 {
		return nil
	}
	if node, err := parse.Parse(d, parse.ParseJSON()); err == nil {
		return node
	}
	return ir.FromString(string(d))
}
