package resp

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"fheVoting/internal/lib/logger/sl"
)

const (
	StatusOK    = "OK"
	StatusError = "Error"
)

// Response — общая обертка для служебных ответов и ошибок API
type Response struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

func OK() Response {
	return Response{
		Status: StatusOK,
	}
}

func Error(msg string) Response {
	return Response{
		Status: StatusError,
		Error:  msg,
	}
}

// JSON пишет v как application/json с заданным статусом.
// Ошибку кодирования можно только залогировать: заголовок уже отправлен.
func JSON(w http.ResponseWriter, log *slog.Logger, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error("failed to encode response", sl.Err(err))
	}
}
