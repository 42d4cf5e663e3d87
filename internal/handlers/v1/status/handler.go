package status

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/carson-networks/fairshare-server/internal/logging"
)

const pingTimeout = 2 * time.Second

type pinger interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	DB pinger
}

func NewHandler(db pinger) Handler {
	return Handler{DB: db}
}

// Handler answers 200 while the database is reachable and 503 otherwise.
func (h *Handler) Handler(w http.ResponseWriter, req *http.Request, logData *logging.LogData) error {
	if req.Method != http.MethodGet {
		w.WriteHeader(http.StatusBadRequest)
		return errors.New("status: method not GET")
	}

	ctx, cancel := context.WithTimeout(req.Context(), pingTimeout)
	defer cancel()

	stopTimer := logData.AddTiming("pingMs")
	err := h.DB.Ping(ctx)
	stopTimer()
	if err != nil {
		w.WriteHeader(http.StatusServiceUnavailable)
		return fmt.Errorf("status: database unreachable: %w", err)
	}

	w.WriteHeader(http.StatusOK)
	return nil
}
