// Package mockserver is a canned itinerary service for local development and
// client tests. It shapes a plan from the request and never calls a model.
package mockserver

import (
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"
	"sync/atomic"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ytget/tripwise/internal/model"
)

// AppName is reported in every envelope
const AppName = "TripWise"

// MaxDays caps the generated plan length
const MaxDays = 7

const dateLayout = "2006-01-02"

// Options tune the canned service
type Options struct {
	// Delay is applied before answering a generate call
	Delay time.Duration
	// FailDetail, when set, makes generate answer 500 with this detail
	FailDetail string
	// PingStatus overrides the status of GET / (200 when zero)
	PingStatus int
	// AllowedOrigins for CORS; any origin when empty
	AllowedOrigins []string
}

// Server counts calls so tests can assert what reached it
type Server struct {
	opts          Options
	pingCalls     atomic.Int64
	generateCalls atomic.Int64
	lastRequestID atomic.Value
}

// New creates a mock service
func New(opts Options) *Server {
	return &Server{opts: opts}
}

// PingCalls returns the number of GET / requests served
func (s *Server) PingCalls() int64 { return s.pingCalls.Load() }

// GenerateCalls returns the number of generate requests served
func (s *Server) GenerateCalls() int64 { return s.generateCalls.Load() }

// LastRequestID returns the X-Request-ID of the latest generate call
func (s *Server) LastRequestID() string {
	v, _ := s.lastRequestID.Load().(string)
	return v
}

// Router builds the gin engine with routes under /api
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	corsConfig := cors.Config{
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "X-Request-ID"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}
	if len(s.opts.AllowedOrigins) == 0 {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = s.opts.AllowedOrigins
	}
	r.Use(cors.New(corsConfig))

	api := r.Group("/api")
	{
		api.GET("/", s.handleRoot)
		api.POST("/generate-itinerary", s.handleGenerate)
	}
	return r
}

func (s *Server) handleRoot(c *gin.Context) {
	s.pingCalls.Add(1)
	status := s.opts.PingStatus
	if status == 0 {
		status = http.StatusOK
	}
	c.JSON(status, gin.H{"message": "TripWise mock itinerary service"})
}

func (s *Server) handleGenerate(c *gin.Context) {
	s.generateCalls.Add(1)
	id := c.GetHeader("X-Request-ID")
	s.lastRequestID.Store(id)

	var req model.TripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": "Invalid request: " + err.Error()})
		return
	}

	start, end, err := validate(req)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": err.Error()})
		return
	}

	if s.opts.Delay > 0 {
		select {
		case <-time.After(s.opts.Delay):
		case <-c.Request.Context().Done():
			log.Printf("mock: generate %s abandoned by client", id)
			return
		}
	}

	if s.opts.FailDetail != "" {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": s.opts.FailDetail})
		return
	}

	resp := model.ItineraryResponse{
		AppName:   AppName,
		ID:        uuid.NewString(),
		Trip:      BuildItinerary(req, start, end),
		CreatedAt: time.Now().UTC(),
	}
	log.Printf("mock: generate %s -> %s, %d days", id, req.Destination, len(resp.Trip.Days))
	c.JSON(http.StatusOK, resp)
}

func validate(req model.TripRequest) (time.Time, time.Time, error) {
	if strings.TrimSpace(req.Destination) == "" {
		return time.Time{}, time.Time{}, fmt.Errorf("destination is required")
	}
	start, err := time.Parse(dateLayout, req.StartDate)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("start_date must be YYYY-MM-DD")
	}
	end, err := time.Parse(dateLayout, req.EndDate)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("end_date must be YYYY-MM-DD")
	}
	if end.Before(start) {
		return time.Time{}, time.Time{}, fmt.Errorf("end_date must not be before start_date")
	}
	if req.NumTravelers <= 0 {
		return time.Time{}, time.Time{}, fmt.Errorf("num_travelers must be positive")
	}
	return start, end, nil
}

type slot struct {
	time      string
	name      string
	transport string
	price     string
}

var daySlots = []slot{
	{"09:00 - 11:30", "Old Town walking tour", "Start from your hotel on foot", "Free"},
	{"12:30 - 14:00", "Lunch at a local favorite", "Walk 10 min from previous location", "€20 per person"},
	{"15:00 - 18:00", "Museum and gallery afternoon", "Metro, 2 stops", "€15 per person"},
}

// BuildItinerary shapes a plan with one day per calendar day, capped at MaxDays
func BuildItinerary(req model.TripRequest, start, end time.Time) model.Itinerary {
	n := int(end.Sub(start).Hours()/24) + 1
	if n > MaxDays {
		n = MaxDays
	}

	days := make([]model.Day, 0, n)
	for i := range n {
		date := start.AddDate(0, 0, i)
		activities := make([]model.Activity, 0, len(daySlots))
		for _, sl := range daySlots {
			name := fmt.Sprintf("%s (%s)", sl.name, req.Destination)
			activities = append(activities, model.Activity{
				Name:        name,
				Time:        sl.time,
				Description: fmt.Sprintf("You'll love this stop on day %d in %s.", i+1, req.Destination),
				Link:        "https://maps.google.com/?q=" + url.QueryEscape(sl.name+" "+req.Destination),
				Transport:   sl.transport,
				Price:       sl.price,
			})
		}
		days = append(days, model.Day{
			Day:        i + 1,
			Title:      fmt.Sprintf("%s on %s", req.Destination, date.Format("Monday")),
			Activities: activities,
			DailyTips: []string{
				"Book popular spots a day ahead",
				"Try the local street food near the market",
				fmt.Sprintf("Plan a %s evening if energy allows", req.TravelStyle),
			},
		})
	}

	return model.Itinerary{
		Destination:  req.Destination,
		Dates:        req.StartDate + " - " + req.EndDate,
		Travelers:    req.NumTravelers,
		TravelerType: string(req.TravelerType),
		TravelStyle:  string(req.TravelStyle),
		Budget:       req.Budget,
		Days:         days,
	}
}
