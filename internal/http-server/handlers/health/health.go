package health

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"

	"fheVoting/internal/client"
	"fheVoting/internal/http-server/resp"
	"fheVoting/internal/lib/logger/sl"
)

const probeTimeout = 2 * time.Second

type ChainStatusProvider interface {
	Status(ctx context.Context) (client.NetworkStatus, error)
}

type Response struct {
	resp.Response
	Chain *ChainInfo `json:"chain,omitempty"`
}

type ChainInfo struct {
	ChainID       string `json:"chainId"`
	BlockNumber   uint64 `json:"blockNumber"`
	ExpectedChain bool   `json:"expectedChain"`
}

// New проверяет, что процесс жив и нода отвечает. Если нода недоступна — 503.
func New(log *slog.Logger, chain ChainStatusProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.health.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		ctx, cancel := context.WithTimeout(r.Context(), probeTimeout)
		defer cancel()

		status, err := chain.Status(ctx)
		if err != nil {
			log.Warn("chain node unreachable", sl.Err(err))

			resp.JSON(w, log, http.StatusServiceUnavailable, Response{
				Response: resp.Error("chain node unreachable"),
			})

			return
		}

		resp.JSON(w, log, http.StatusOK, Response{
			Response: resp.OK(),
			Chain: &ChainInfo{
				ChainID:       status.ChainID.String(),
				BlockNumber:   status.BlockNumber,
				ExpectedChain: status.ExpectedChain,
			},
		})
	}
}
