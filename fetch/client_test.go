package fetch

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/signadot/objpath/ir"
	"github.com/signadot/objpath/parse"
)

const endpointsDoc = `
users:
  list: "/users"
  get: "/users/:id"
  posts: "/users/{id}/posts"
search: "/search?kind=all"
health: "https://status.example.com/health"
`

func mustParse(t *testing.T, doc string) *ir.Node {
	t.Helper()
	node, err := parse.Parse([]byte(doc))
	if err != nil {
		t.Fatalf("parse %q: %v", doc, err)
	}
	return node
}

func TestURL(t *testing.T) {
	c, err := New("http://api.example.com/v1", mustParse(t, endpointsDoc))
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"health", "search", "users.get", "users.list", "users.posts"}
	if diff := cmp.Diff(want, c.Endpoints()); diff != "" {
		t.Errorf("endpoints (-want +got)\n%s", diff)
	}
	tests := []struct {
		name   string
		params map[string]string
		query  url.Values
		want   string
		err    error
	}{
		{name: "users.list", want: "http://api.example.com/v1/users"},
		{name: "users.get", params: map[string]string{"id": "4 2"}, want: "http://api.example.com/v1/users/4%202"},
		{name: "users.posts", params: map[string]string{"id": "a/b"}, query: url.Values{"n": {"1"}}, want: "http://api.example.com/v1/users/a%2Fb/posts?n=1"},
		{name: "search", query: url.Values{"q": {"x y"}}, want: "http://api.example.com/v1/search?kind=all&q=x+y"},
		{name: "health", want: "https://status.example.com/health"},
		{name: "users.get", err: ErrMissingParam},
		{name: "users", err: ErrNoEndpoint},
	}
	for _, tc := range tests {
		got, err := c.URL(tc.name, tc.params, tc.query)
		if tc.err != nil {
			if !errors.Is(err, tc.err) {
				t.Errorf("%s: got %v want %v", tc.name, err, tc.err)
			}
			continue
		}
		if err != nil {
			t.Errorf("%s: %v", tc.name, err)
			continue
		}
		if got != tc.want {
			t.Errorf("%s: got %s want %s", tc.name, got, tc.want)
		}
	}
}

func TestBadEndpoints(t *testing.T) {
	for _, doc := range []string{`a: 1`, `a: ["/x"]`, `["/x"]`} {
		if _, err := New("http://h", mustParse(t, doc)); !errors.Is(err, ErrBadEndpoint) {
			t.Errorf("%s: got %v", doc, err)
		}
	}
	if _, err := New("http://h", nil); err != nil {
		t.Errorf("nil endpoints: %v", err)
	}
}

func TestDo(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("X-Token") != "secret" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		switch r.URL.Path {
		case "/users/7":
			w.Write([]byte(`{"id":7,"name":"ada"}`))
		case "/users":
			if r.Method != http.MethodPost || r.Header.Get("Content-Type") != "application/json" {
				w.WriteHeader(http.StatusMethodNotAllowed)
				return
			}
			d, _ := io.ReadAll(r.Body)
			w.WriteHeader(http.StatusCreated)
			w.Write(d)
		case "/empty":
			w.WriteHeader(http.StatusNoContent)
		default:
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"error":"not found"}`))
		}
	}))
	defer srv.Close()

	eps := mustParse(t, `{"users":{"get":"/users/:id","create":"/users"},"empty":"/empty","missing":"/nope"}`)
	c, err := New(srv.URL, eps, WithHTTPClient(srv.Client()), WithHeader("X-Token", "secret"))
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()

	got, err := c.Get(ctx, "users.get", map[string]string{"id": "7"}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if !ir.Equal(got, mustParse(t, `{"id":7,"name":"ada"}`)) {
		t.Errorf("got %v", ir.ToAny(got))
	}

	body := mustParse(t, `{"name":"grace"}`)
	got, err = c.Do(ctx, &Request{Method: http.MethodPost, Endpoint: "users.create", Body: body})
	if err != nil {
		t.Fatal(err)
	}
	if !ir.Equal(got, body) {
		t.Errorf("echo got %v", ir.ToAny(got))
	}

	got, err = c.Get(ctx, "empty", nil, nil)
	if err != nil || got != nil {
		t.Errorf("empty: got %v, %v", got, err)
	}

	_, err = c.Get(ctx, "missing", nil, nil)
	var se *StatusError
	if !errors.As(err, &se) {
		t.Fatalf("got %v want status error", err)
	}
	if se.StatusCode != http.StatusNotFound || ir.Get(se.Body, "error") == nil {
		t.Errorf("got %d %v", se.StatusCode, ir.ToAny(se.Body))
	}

	noAuth, _ := New(srv.URL, eps, WithHTTPClient(srv.Client()))
	_, err = noAuth.Get(ctx, "users.get", map[string]string{"id": "7"}, nil)
	if !errors.As(err, &se) || se.StatusCode != http.StatusUnauthorized || se.Body != nil {
		t.Errorf("got %v want unauthorized", err)
	}

	canceled, cancel := context.WithCancel(ctx)
	cancel()
	if _, err := c.Get(canceled, "users.get", map[string]string{"id": "7"}, nil); !errors.Is(err, context.Canceled) {
		t.Errorf("got %v want canceled", err)
	}
}
