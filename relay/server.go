package relay

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/golden-vcr/easy-hmac/entry"
	"github.com/golden-vcr/easy-hmac/hmac"
	"github.com/golden-vcr/easy-hmac/rmq"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

// Delivery is the message published for each authenticated webhook
type Delivery struct {
	Id          uuid.UUID       `json:"id"`
	Source      string          `json:"source"`
	Path        string          `json:"path"`
	ContentType string          `json:"contentType"`
	SignedAt    string          `json:"signedAt"`
	ReceivedAt  time.Time       `json:"receivedAt"`
	Payload     json.RawMessage `json:"payload"`
}

type Server struct {
	producer     rmq.Producer
	verifier     hmac.Verifier
	maxBodyBytes int64
	now          func() time.Time
}

func NewServer(producer rmq.Producer, verifier hmac.Verifier, maxBodyBytes int64) *Server {
	return &Server{
		producer:     producer,
		verifier:     verifier,
		maxBodyBytes: maxBodyBytes,
		now:          time.Now,
	}
}

func (s *Server) RegisterRoutes(r *mux.Router) {
	r.Path("/status").Methods(http.MethodGet).HandlerFunc(s.handleGetStatus)

	webhooks := r.PathPrefix("/webhooks").Subrouter()
	webhooks.Use(hmac.Middleware(s.verifier, s.maxBodyBytes, entry.Log))
	webhooks.Path("/{source}").Methods(http.MethodPost).HandlerFunc(s.handlePostWebhook)
}

func (s *Server) handleGetStatus(res http.ResponseWriter, req *http.Request) {
	res.Header().Set("content-type", "application/json")
	res.Write([]byte(`{"ok":true}`))
}

func (s *Server) handlePostWebhook(res http.ResponseWriter, req *http.Request) {
	logger := entry.Log(req)

	// The signature has already been verified, and the body restored for us to read
	body, err := io.ReadAll(req.Body)
	if err != nil {
		logger.Error("Failed to read request body", "error", err)
		http.Error(res, "failed to read request body", http.StatusInternalServerError)
		return
	}
	if !json.Valid(body) {
		http.Error(res, "webhook payload must be valid JSON", http.StatusBadRequest)
		return
	}

	delivery := Delivery{
		Id:          uuid.New(),
		Source:      mux.Vars(req)["source"],
		Path:        req.URL.Path,
		ContentType: req.Header.Get(hmac.HeaderContentType),
		SignedAt:    req.Header.Get(hmac.HeaderDate),
		ReceivedAt:  s.now().UTC(),
		Payload:     body,
	}
	logger = logger.With("deliveryId", delivery.Id, "source", delivery.Source)
	if err := s.producer.Send(req.Context(), delivery); err != nil {
		logger.Error("Failed to publish webhook delivery", "error", err)
		http.Error(res, "failed to enqueue webhook delivery", http.StatusBadGateway)
		return
	}
	logger.Info("Published webhook delivery")

	res.Header().Set("content-type", "application/json")
	res.WriteHeader(http.StatusAccepted)
	json.NewEncoder(res).Encode(struct {
		Id uuid.UUID `json:"id"`
	}{delivery.Id})
}
