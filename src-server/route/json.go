package route

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"eventcal/src-server/gateway"
)

type ErrorRespBody struct {
	Error string `json:"error"`
}

type OkRespBody struct {
	Ok bool `json:"ok"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	respBodyJson, err := json.Marshal(body)
	if err != nil {
		slog.Error("can't marshal response body", "error", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":"Internal Server Error"}`))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(respBodyJson)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorRespBody{Error: msg})
}

// writeGatewayError maps the gateway error taxonomy to HTTP. Anything
// outside it is a storage failure: logged, answered with a generic 500.
func writeGatewayError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		validationErr *gateway.ValidationError
		notFoundErr   *gateway.NotFoundError
		malformedErr  *gateway.MalformedRequestError
	)
	switch {
	case errors.As(err, &validationErr):
		writeError(w, http.StatusBadRequest, validationErr.Error())
	case errors.As(err, &malformedErr):
		writeError(w, http.StatusBadRequest, malformedErr.Error())
	case errors.As(err, &notFoundErr):
		writeError(w, http.StatusNotFound, notFoundErr.Error())
	default:
		slog.Error("unexpected gateway failure",
			"method", r.Method,
			"path", r.URL.Path,
			"request_id", RequestID(r.Context()),
			"error", err)
		writeError(w, http.StatusInternalServerError, "Internal Server Error")
	}
}
