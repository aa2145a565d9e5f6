package planner

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/ytget/tripwise/internal/api"
	"github.com/ytget/tripwise/internal/mockserver"
	"github.com/ytget/tripwise/internal/model"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeGenerator struct {
	mu        sync.Mutex
	pingErr   error
	genErr    error
	doc       *model.ItineraryDocument
	release   chan struct{}
	entered   chan struct{}
	pings     int
	generates int
	lastTrip  model.TripRequest
}

func (f *fakeGenerator) Ping(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pings++
	return f.pingErr
}

func (f *fakeGenerator) GenerateItinerary(ctx context.Context, trip model.TripRequest) (*model.ItineraryDocument, error) {
	f.mu.Lock()
	f.generates++
	f.lastTrip = trip
	release, entered := f.release, f.entered
	f.mu.Unlock()

	if entered != nil {
		close(entered)
	}
	if release != nil {
		<-release
	}
	return f.doc, f.genErr
}

func sampleDoc(t *testing.T) *model.ItineraryDocument {
	t.Helper()
	doc, err := model.ParseItineraryDocument([]byte(`{"app_name":"TripWise","id":"abc","trip":{"destination":"Rome","dates":"2026-04-01 - 2026-04-02","travelers":2,"days":[]},"created_at":"2026-03-01T10:00:00Z"}`))
	if err != nil {
		t.Fatal(err)
	}
	return doc
}

func fillForm(c *Controller) {
	c.SetDestination("Rome")
	c.SetStartDate("2026-04-01")
	c.SetEndDate("2026-04-02")
}

func TestNewController_Defaults(t *testing.T) {
	c := NewController(&fakeGenerator{})
	snap := c.Snapshot()

	if snap.Step != FirstStep || snap.FormOpen || snap.Loading() {
		t.Errorf("unexpected initial state: %+v", snap)
	}
	if snap.Status != model.SubmissionStatusIdle {
		t.Errorf("expected idle status, got %s", snap.Status)
	}
	if snap.Request.NumTravelers != 2 || snap.Request.TravelerType != model.TravelerCouple || snap.Request.TravelStyle != model.StyleRelaxed {
		t.Errorf("defaults not applied: %+v", snap.Request)
	}
}

func TestController_StepValidation(t *testing.T) {
	c := NewController(&fakeGenerator{})

	if c.CanProceed() || c.Next() {
		t.Fatal("step 1 should not validate with empty fields")
	}

	c.SetDestination("Rome")
	c.SetStartDate("2026-04-01")
	if c.Next() {
		t.Fatal("step 1 should require the end date")
	}
	c.SetEndDate("2026-04-02")
	if !c.Next() || c.Step() != 2 {
		t.Fatalf("expected step 2, got %d", c.Step())
	}

	c.SetTravelersText("abc")
	if c.Snapshot().Request.NumTravelers != 0 || c.Next() {
		t.Fatal("non-numeric travelers should block step 2")
	}
	c.SetTravelersText(" 4 ")
	if !c.Next() || c.Step() != 3 {
		t.Fatalf("expected step 3, got %d", c.Step())
	}

	if !c.CanProceed() {
		t.Error("step 3 is always valid")
	}
	if c.Next() || c.Step() != LastStep {
		t.Error("Next should not go past the last step")
	}

	c.Back()
	c.Back()
	c.Back()
	if c.Step() != FirstStep {
		t.Errorf("Back should stop at step 1, got %d", c.Step())
	}
}

func TestController_ToggleInterest(t *testing.T) {
	c := NewController(&fakeGenerator{})

	c.ToggleInterest("Nature")
	c.ToggleInterest("Museums")
	c.ToggleInterest("Beaches")
	if got := c.Snapshot().Request.Interests; got != "Nature, Museums, Beaches" {
		t.Errorf("interests = %q", got)
	}

	c.ToggleInterest("Museums")
	snap := c.Snapshot()
	if snap.Request.Interests != "Nature, Beaches" {
		t.Errorf("interests after removal = %q", snap.Request.Interests)
	}
	if len(snap.Interests) != 2 {
		t.Errorf("expected 2 selected pills, got %v", snap.Interests)
	}
}

func TestController_OpenCancel(t *testing.T) {
	c := NewController(&fakeGenerator{})

	c.OpenWith("Tokyo")
	snap := c.Snapshot()
	if !snap.FormOpen || snap.Request.Destination != "Tokyo" {
		t.Errorf("OpenWith should prefill and open: %+v", snap)
	}

	c.Cancel()
	if c.Snapshot().FormOpen {
		t.Error("Cancel should close the form")
	}
	if c.Snapshot().Request.Destination != "Tokyo" {
		t.Error("Cancel should keep typed values")
	}
}

func TestController_SubmitSuccess(t *testing.T) {
	gen := &fakeGenerator{doc: sampleDoc(t)}
	c := NewController(gen)
	c.Open()
	fillForm(c)
	c.Next()
	c.Next()

	var mu sync.Mutex
	var statuses []model.SubmissionStatus
	c.SetUpdateCallback(func(s Snapshot) {
		mu.Lock()
		statuses = append(statuses, s.Status)
		mu.Unlock()
	})

	if err := c.Submit(context.Background()); err != nil {
		t.Fatalf("Submit() error: %v", err)
	}

	snap := c.Snapshot()
	if snap.Result != gen.doc {
		t.Error("result should be stored")
	}
	if snap.FormOpen || snap.Step != FirstStep || snap.Loading() {
		t.Errorf("form should close and reset: %+v", snap)
	}
	if gen.lastTrip.Destination != "Rome" {
		t.Errorf("request not forwarded: %+v", gen.lastTrip)
	}

	mu.Lock()
	defer mu.Unlock()
	expected := []model.SubmissionStatus{
		model.SubmissionStatusChecking,
		model.SubmissionStatusGenerating,
		model.SubmissionStatusCompleted,
	}
	if len(statuses) != len(expected) {
		t.Fatalf("statuses = %v", statuses)
	}
	for i := range expected {
		if statuses[i] != expected[i] {
			t.Errorf("status[%d] = %s, expected %s", i, statuses[i], expected[i])
		}
	}
}

func TestController_SubmitFailureKeepsState(t *testing.T) {
	tests := []struct {
		name      string
		gen       *fakeGenerator
		generates int
	}{
		{"pre-check fails", &fakeGenerator{pingErr: errors.New("refused")}, 0},
		{"generation fails", &fakeGenerator{genErr: &api.ServiceError{StatusCode: 500, Detail: "boom"}}, 1},
		{"no document", &fakeGenerator{}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewController(tt.gen)
			c.Open()
			fillForm(c)
			c.Next()
			c.SetBudget("2000")
			c.Next()
			c.ToggleInterest("Nature")
			before := c.Snapshot()

			loadingCleared := 0
			wasLoading := false
			c.SetUpdateCallback(func(s Snapshot) {
				if wasLoading && !s.Loading() {
					loadingCleared++
				}
				wasLoading = s.Loading()
			})

			if err := c.Submit(context.Background()); err == nil {
				t.Fatal("expected an error")
			}

			after := c.Snapshot()
			if after.Request != before.Request || after.Step != before.Step || !after.FormOpen {
				t.Errorf("state changed on failure:\nbefore %+v\nafter  %+v", before, after)
			}
			if len(after.Interests) != 1 || after.Interests[0] != "Nature" {
				t.Errorf("interests lost: %v", after.Interests)
			}
			if after.Status != model.SubmissionStatusFailed || after.Err == nil {
				t.Errorf("expected failed status with error, got %s / %v", after.Status, after.Err)
			}
			if loadingCleared != 1 {
				t.Errorf("loading cleared %d times, expected 1", loadingCleared)
			}
			if tt.gen.generates != tt.generates {
				t.Errorf("generate called %d times, expected %d", tt.gen.generates, tt.generates)
			}
		})
	}
}

func TestController_SubmitInFlight(t *testing.T) {
	gen := &fakeGenerator{
		doc:     sampleDoc(t),
		release: make(chan struct{}),
		entered: make(chan struct{}),
	}
	c := NewController(gen)
	fillForm(c)

	done := make(chan error, 1)
	go func() { done <- c.Submit(context.Background()) }()
	<-gen.entered

	if !c.Snapshot().Loading() {
		t.Error("controller should be loading")
	}
	if err := c.Submit(context.Background()); !errors.Is(err, ErrSubmissionInFlight) {
		t.Errorf("expected ErrSubmissionInFlight, got %v", err)
	}

	c.Reset()
	if c.Snapshot().Request.Destination != "Rome" {
		t.Error("Reset should be ignored while loading")
	}

	close(gen.release)
	if err := <-done; err != nil {
		t.Fatalf("first submission failed: %v", err)
	}

	gen.mu.Lock()
	defer gen.mu.Unlock()
	if gen.pings != 1 || gen.generates != 1 {
		t.Errorf("expected one network round, got pings=%d generates=%d", gen.pings, gen.generates)
	}
}

func TestController_SubmitIncomplete(t *testing.T) {
	gen := &fakeGenerator{}
	c := NewController(gen)
	c.SetDestination("Rome")

	if err := c.Submit(context.Background()); !errors.Is(err, ErrIncomplete) {
		t.Errorf("expected ErrIncomplete, got %v", err)
	}
	if gen.pings != 0 {
		t.Error("incomplete form should not reach the network")
	}
	if c.Snapshot().Status != model.SubmissionStatusIdle {
		t.Error("status should be untouched")
	}
}

func TestController_Reset(t *testing.T) {
	c := NewController(&fakeGenerator{doc: sampleDoc(t)})
	c.Open()
	fillForm(c)
	c.ToggleInterest("Nature")
	if err := c.Submit(context.Background()); err != nil {
		t.Fatal(err)
	}

	c.Reset()
	snap := c.Snapshot()
	if snap.Result != nil || snap.FormOpen || snap.Step != FirstStep || len(snap.Interests) != 0 {
		t.Errorf("Reset left state behind: %+v", snap)
	}
	if snap.Request != model.NewTripRequest() {
		t.Errorf("request should be back to defaults: %+v", snap.Request)
	}
}

func TestController_WithMockService(t *testing.T) {
	mock := mockserver.New(mockserver.Options{})
	srv := httptest.NewServer(mock.Router())
	defer srv.Close()

	c := NewController(api.NewClient(srv.URL + "/api"))
	fillForm(c)
	c.SetTravelers(3)

	if err := c.Submit(context.Background()); err != nil {
		t.Fatalf("Submit() error: %v", err)
	}
	trip := c.Snapshot().Result.Trip()
	if trip.Destination != "Rome" || trip.Travelers != 3 || len(trip.Days) != 2 {
		t.Errorf("unexpected trip: %+v", trip)
	}
}

func TestController_PreCheckFailureSkipsGeneration(t *testing.T) {
	mock := mockserver.New(mockserver.Options{PingStatus: http.StatusServiceUnavailable})
	srv := httptest.NewServer(mock.Router())
	defer srv.Close()

	c := NewController(api.NewClient(srv.URL + "/api"))
	fillForm(c)

	err := c.Submit(context.Background())
	if !errors.Is(err, api.ErrUnreachable) {
		t.Fatalf("expected ErrUnreachable, got %v", err)
	}
	if mock.PingCalls() != 1 || mock.GenerateCalls() != 0 {
		t.Errorf("pings=%d generates=%d", mock.PingCalls(), mock.GenerateCalls())
	}
}
