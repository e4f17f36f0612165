package httpx

import (
	"net/http"
	"strconv"
	"time"

	"github.com/nameid/nameid/internal/ports"
)

// AuditHandlers exposes the login audit trail for operational review.
type AuditHandlers struct {
	Repo ports.LoginAuditRepository
}

type loginAttemptResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Succeeded bool      `json:"succeeded"`
	Remark    string    `json:"remark,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// ListRecent handles GET /api/login-attempts?limit=N.
func (h *AuditHandlers) ListRecent(w http.ResponseWriter, r *http.Request) {
	limit := 50
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			WriteError(w, ErrorParams{
				Code:    http.StatusBadRequest,
				ErrCode: "invalid_limit",
				Err:     errInvalidLimit,
			})
			return
		}
		limit = parsed
	}

	attempts, err := h.Repo.ListRecent(r.Context(), limit)
	if err != nil {
		WriteError(w, ErrorParams{
			Code:    http.StatusInternalServerError,
			ErrCode: "audit_list_failed",
			Err:     err,
		})
		return
	}

	out := make([]loginAttemptResponse, len(attempts))
	for i, a := range attempts {
		out[i] = loginAttemptResponse{
			ID:        a.ID,
			Name:      a.Name,
			Succeeded: a.Succeeded,
			Remark:    a.Remark,
			CreatedAt: a.CreatedAt,
		}
	}
	WriteJSON(w, http.StatusOK, map[string]any{"attempts": out})
}

type invalidLimitError struct{}

func (invalidLimitError) Error() string { return "limit must be a positive integer" }

var errInvalidLimit error = invalidLimitError{}
