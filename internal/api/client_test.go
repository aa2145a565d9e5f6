package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ytget/tripwise/internal/mockserver"
	"github.com/ytget/tripwise/internal/model"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func startMock(t *testing.T, opts mockserver.Options) (*mockserver.Server, *httptest.Server) {
	t.Helper()
	mock := mockserver.New(opts)
	srv := httptest.NewServer(mock.Router())
	t.Cleanup(srv.Close)
	return mock, srv
}

func sampleTrip() model.TripRequest {
	req := model.NewTripRequest()
	req.Destination = "Porto"
	req.StartDate = "2026-09-10"
	req.EndDate = "2026-09-11"
	req.Budget = "900"
	req.Interests = model.JoinInterests([]string{"Food & Dining", "Museums"})
	return req
}

func TestNewClient_BaseURL(t *testing.T) {
	tests := []struct {
		in       string
		expected string
	}{
		{"", DefaultBaseURL},
		{"  ", DefaultBaseURL},
		{"http://example.com/api/", "http://example.com/api"},
		{"http://example.com/api//", "http://example.com/api"},
		{"http://example.com/api", "http://example.com/api"},
	}
	for _, tt := range tests {
		if got := NewClient(tt.in).BaseURL(); got != tt.expected {
			t.Errorf("NewClient(%q).BaseURL() = %q, expected %q", tt.in, got, tt.expected)
		}
	}
}

func TestClient_Ping(t *testing.T) {
	mock, srv := startMock(t, mockserver.Options{})
	c := NewClient(srv.URL + "/api")

	if err := c.Ping(context.Background()); err != nil {
		t.Fatalf("Ping() error: %v", err)
	}
	if mock.PingCalls() != 1 {
		t.Errorf("expected 1 ping, got %d", mock.PingCalls())
	}
}

func TestClient_PingFailures(t *testing.T) {
	_, srv := startMock(t, mockserver.Options{PingStatus: http.StatusBadGateway})

	closed := httptest.NewServer(http.NotFoundHandler())
	closedURL := closed.URL
	closed.Close()

	for name, base := range map[string]string{
		"bad status":  srv.URL + "/api",
		"refused":     closedURL + "/api",
		"not mounted": srv.URL + "/elsewhere",
	} {
		t.Run(name, func(t *testing.T) {
			err := NewClient(base).Ping(context.Background())
			if !errors.Is(err, ErrUnreachable) {
				t.Fatalf("expected ErrUnreachable, got %v", err)
			}
			expected := "Cannot reach Server: " + base + ". Check your internet or wait 1 minute."
			if got := UserMessage(err); got != expected {
				t.Errorf("UserMessage() = %q", got)
			}
		})
	}
}

func TestClient_PingTimeout(t *testing.T) {
	block := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-block:
		case <-r.Context().Done():
		}
	}))
	t.Cleanup(srv.Close)
	t.Cleanup(func() { close(block) })

	c := NewClient(srv.URL, WithTimeouts(20*time.Millisecond, time.Second))
	if err := c.Ping(context.Background()); !errors.Is(err, ErrUnreachable) {
		t.Errorf("expected ErrUnreachable, got %v", err)
	}
}

func TestClient_GenerateItinerary(t *testing.T) {
	mock, srv := startMock(t, mockserver.Options{})
	c := NewClient(srv.URL+"/api", WithRequestID(func() string { return "fixed-id" }))

	doc, err := c.GenerateItinerary(context.Background(), sampleTrip())
	if err != nil {
		t.Fatalf("GenerateItinerary() error: %v", err)
	}

	trip := doc.Trip()
	if trip.Destination != "Porto" || len(trip.Days) != 2 {
		t.Errorf("unexpected trip: %s with %d days", trip.Destination, len(trip.Days))
	}
	if len(doc.Raw) == 0 {
		t.Error("raw body should be retained")
	}
	if mock.LastRequestID() != "fixed-id" {
		t.Errorf("request id header = %q", mock.LastRequestID())
	}
}

func TestClient_GenerateServiceErrors(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		detail   string
		expected string
	}{
		{"string detail", 500, `{"detail":"OPENAI_API_KEY not configured"}`, "OPENAI_API_KEY not configured", "Error: OPENAI_API_KEY not configured"},
		{"structured detail", 422, `{"detail": [ {"loc": ["body","budget"], "msg": "field required"} ]}`, `[{"loc":["body","budget"],"msg":"field required"}]`, `Error: [{"loc":["body","budget"],"msg":"field required"}]`},
		{"no detail", 502, `{}`, "", "Error: " + GenericFailureMessage},
		{"null detail", 500, `{"detail":null}`, "", "Error: " + GenericFailureMessage},
		{"not json", 503, `upstream down`, "", "Error: " + GenericFailureMessage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			_, err := NewClient(srv.URL).GenerateItinerary(context.Background(), sampleTrip())

			var svcErr *ServiceError
			if !errors.As(err, &svcErr) {
				t.Fatalf("expected *ServiceError, got %v", err)
			}
			if svcErr.StatusCode != tt.status || svcErr.Detail != tt.detail {
				t.Errorf("got status=%d detail=%q", svcErr.StatusCode, svcErr.Detail)
			}
			if got := UserMessage(err); got != tt.expected {
				t.Errorf("UserMessage() = %q, expected %q", got, tt.expected)
			}
		})
	}
}

func TestClient_GenerateValidationFromMock(t *testing.T) {
	_, srv := startMock(t, mockserver.Options{})
	trip := sampleTrip()
	trip.NumTravelers = 0

	_, err := NewClient(srv.URL+"/api").GenerateItinerary(context.Background(), trip)

	var svcErr *ServiceError
	if !errors.As(err, &svcErr) || svcErr.StatusCode != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 service error, got %v", err)
	}
	if svcErr.Detail != "num_travelers must be positive" {
		t.Errorf("detail = %q", svcErr.Detail)
	}
}

func TestClient_GenerateTimeout(t *testing.T) {
	_, srv := startMock(t, mockserver.Options{Delay: time.Second})
	c := NewClient(srv.URL+"/api", WithTimeouts(time.Second, 30*time.Millisecond))

	_, err := c.GenerateItinerary(context.Background(), sampleTrip())
	if !errors.Is(err, ErrTimeout) {
		t.Fatalf("expected ErrTimeout, got %v", err)
	}
	if UserMessage(err) != TimeoutMessage {
		t.Errorf("UserMessage() = %q", UserMessage(err))
	}
}

func TestClient_GenerateMalformed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"trip": "oops"`))
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).GenerateItinerary(context.Background(), sampleTrip())
	if !errors.Is(err, ErrMalformedResponse) {
		t.Fatalf("expected ErrMalformedResponse, got %v", err)
	}
	if !strings.HasPrefix(UserMessage(err), "Error: ") {
		t.Errorf("UserMessage() = %q", UserMessage(err))
	}
}

func TestClient_GenerateCancelled(t *testing.T) {
	_, srv := startMock(t, mockserver.Options{Delay: time.Second})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewClient(srv.URL+"/api").GenerateItinerary(ctx, sampleTrip())
	if err == nil || errors.Is(err, ErrTimeout) {
		t.Errorf("cancellation should not look like a timeout, got %v", err)
	}
}

func TestClient_SetTimeouts(t *testing.T) {
	c := NewClient("")
	c.SetTimeouts(0, -1)
	_, connect, request := c.snapshot()
	if connect != DefaultConnectTimeout || request != DefaultRequestTimeout {
		t.Errorf("non-positive values should be ignored, got %s/%s", connect, request)
	}

	c.SetTimeouts(3*time.Second, 45*time.Second)
	_, connect, request = c.snapshot()
	if connect != 3*time.Second || request != 45*time.Second {
		t.Errorf("got %s/%s", connect, request)
	}
}
