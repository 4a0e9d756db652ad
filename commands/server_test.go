package commands

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"

	"google.golang.org/api/classroom/v1"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

type request struct {
	method string
	path   string
	query  url.Values
	body   []byte
}

// api is a stand-in for the Google REST endpoints. Each request is recorded and
// answered by the reply function with a status code and a JSON body.
type api struct {
	*httptest.Server
	sync.Mutex
	requests []request
}

func newAPI(t *testing.T, reply func(rq request) (int, string)) *api {
	a := api{}

	a.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		rq := request{
			method: r.Method,
			path:   r.URL.Path,
			query:  r.URL.Query(),
			body:   body,
		}

		a.Lock()
		a.requests = append(a.requests, rq)
		a.Unlock()

		status, response := reply(rq)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write([]byte(response))
	}))

	t.Cleanup(a.Close)

	return &a
}

// writes returns the recorded requests other than GETs.
func (a *api) writes() []request {
	a.Lock()
	defer a.Unlock()

	list := []request{}
	for _, rq := range a.requests {
		if rq.method != http.MethodGet {
			list = append(list, rq)
		}
	}

	return list
}

func (a *api) classroom(t *testing.T) *classroom.Service {
	google, err := classroom.NewService(context.Background(), option.WithEndpoint(a.URL+"/"), option.WithHTTPClient(a.Client()))
	if err != nil {
		t.Fatalf("Unexpected error creating Classroom client (%v)", err)
	}

	return google
}

func (a *api) sheets(t *testing.T) *sheets.Service {
	google, err := sheets.NewService(context.Background(), option.WithEndpoint(a.URL+"/"), option.WithHTTPClient(a.Client()))
	if err != nil {
		t.Fatalf("Unexpected error creating Sheets client (%v)", err)
	}

	return google
}
