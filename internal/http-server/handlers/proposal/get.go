package proposal

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"

	"fheVoting/internal/http-server/resp"
	"fheVoting/internal/models"
)

// New отдает текущее предложение. Данные фиксированные, ошибок нет.
func New(log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.proposal.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		resp.JSON(w, log, http.StatusOK, models.CurrentProposal())
	}
}
