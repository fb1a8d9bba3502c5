package monitoring

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)

	MessagesPosted = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "chat_messages_posted_total",
		Help: "Total chat messages successfully posted",
	})

	MessagesRejected = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "chat_messages_rejected_total",
		Help: "Total chat messages rejected before storage",
	}, []string{"reason"})

	ModerationActions = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "chat_moderation_actions_total",
		Help: "Total admin moderation actions",
	}, []string{"action"})

	Votes = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "chat_votes_total",
		Help: "Total votes cast on chat messages",
	}, []string{"kind"})

	PublishFailures = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "chat_publish_failures_total",
		Help: "Total change events that could not be published",
	})

	CommentsPosted = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "blog_comments_posted_total",
		Help: "Total blog comments successfully posted",
	})
)

func init() {
	prometheus.MustRegister(RequestDuration)
	prometheus.MustRegister(MessagesPosted)
	prometheus.MustRegister(MessagesRejected)
	prometheus.MustRegister(ModerationActions)
	prometheus.MustRegister(Votes)
	prometheus.MustRegister(PublishFailures)
	prometheus.MustRegister(CommentsPosted)
}

type statusRecordingWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *statusRecordingWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// InstrumentHandler records request durations labelled by the matched chi route pattern.
func InstrumentHandler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &statusRecordingWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		route := r.URL.Path
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}

		RequestDuration.WithLabelValues(r.Method, route, strconv.Itoa(rw.statusCode)).Observe(time.Since(start).Seconds())
	})
}
