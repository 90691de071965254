package vote

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/ethereum/go-ethereum/common"
	"github.com/go-chi/chi/v5/middleware"

	"fheVoting/internal/http-server/resp"
	"fheVoting/internal/lib/logger/sl"
	"fheVoting/internal/models"
)

// New принимает голос. Тело должно быть JSON-объектом, содержимое полей не проверяется
// и никуда не сохраняется: ответ всегда одинаковый.
func New(log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.vote.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		req, err := decodeVote(r.Body)
		if errors.Is(err, io.EOF) {
			log.Error("request body is empty")

			resp.JSON(w, log, http.StatusBadRequest, resp.Error("empty request"))

			return
		}
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))

			resp.JSON(w, log, http.StatusBadRequest, resp.Error("failed to decode request"))

			return
		}

		log.Debug("vote received",
			slog.Int("encrypted_vote_bytes", len(req.EncryptedVote)),
			slog.Bool("has_voter_address", len(req.VoterAddress) > 0),
			slog.Bool("hex_voter_address", isHexAddress(req.VoterAddress)),
		)

		resp.JSON(w, log, http.StatusOK, models.VoteRecorded())
	}
}

var (
	errNotObject    = errors.New("request body is not a JSON object")
	errTrailingData = errors.New("unexpected data after JSON body")
)

func decodeVote(body io.Reader) (models.VoteRequest, error) {
	var req models.VoteRequest

	dec := json.NewDecoder(body)

	var raw json.RawMessage
	if err := dec.Decode(&raw); err != nil {
		return req, err
	}

	if len(raw) == 0 || raw[0] != '{' {
		return req, errNotObject
	}

	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return req, errTrailingData
	}

	if err := json.Unmarshal(raw, &req); err != nil {
		return req, err
	}

	return req, nil
}

func isHexAddress(raw json.RawMessage) bool {
	var addr string
	if err := json.Unmarshal(raw, &addr); err != nil {
		return false
	}

	return common.IsHexAddress(addr)
}
