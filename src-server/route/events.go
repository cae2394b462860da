package route

import (
	"net/http"
	"strconv"

	"eventcal/src-server/gateway"
	"eventcal/src-server/model"
)

type OneEventRespBody struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	StartAt   string `json:"start_at"`
	EndAt     string `json:"end_at"`
	Memo      string `json:"memo"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

type ListEventsRespBody struct {
	Events []OneEventRespBody `json:"events"`
}

type CreateEventRespBody struct {
	ID int64 `json:"id"`
}

func toEventRespBody(e model.Event) OneEventRespBody {
	return OneEventRespBody{
		ID:        e.ID,
		Title:     e.Title,
		StartAt:   gateway.FormatInstant(e.StartAt()),
		EndAt:     gateway.FormatInstant(e.EndAt()),
		Memo:      e.Memo,
		CreatedAt: gateway.FormatInstant(e.CreatedAt()),
		UpdatedAt: gateway.FormatInstant(e.UpdatedAt()),
	}
}

func parseEventID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, &gateway.ValidationError{Msg: gateway.ErrMsgInvalidID}
	}
	return id, nil
}

func Events(muxer *http.ServeMux, gw *gateway.Gateway) {
	muxer.HandleFunc("/api/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, OkRespBody{Ok: true})
	})

	// list the events starting in ?month=YYYY-MM
	muxer.HandleFunc("GET /api/events", func(w http.ResponseWriter, r *http.Request) {
		eventModels, err := gw.List(r.Context(), r.URL.Query().Get("month"))
		if err != nil {
			writeGatewayError(w, r, err)
			return
		}

		respBody := ListEventsRespBody{Events: make([]OneEventRespBody, 0, len(eventModels))}
		for _, e := range eventModels {
			respBody.Events = append(respBody.Events, toEventRespBody(e))
		}
		writeJSON(w, http.StatusOK, respBody)
	})

	// create an event, the success response is the new id
	muxer.HandleFunc("POST /api/events", func(w http.ResponseWriter, r *http.Request) {
		payload, err := gateway.DecodePayload(r.Body)
		if err != nil {
			writeGatewayError(w, r, err)
			return
		}
		id, err := gw.Create(r.Context(), payload)
		if err != nil {
			writeGatewayError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, CreateEventRespBody{ID: id})
	})

	// replace title/start/end/memo of an existing event
	muxer.HandleFunc("PUT /api/events/{id}", func(w http.ResponseWriter, r *http.Request) {
		id, err := parseEventID(r)
		if err != nil {
			writeGatewayError(w, r, err)
			return
		}
		payload, err := gateway.DecodePayload(r.Body)
		if err != nil {
			writeGatewayError(w, r, err)
			return
		}
		if err := gw.Update(r.Context(), id, payload); err != nil {
			writeGatewayError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, OkRespBody{Ok: true})
	})

	muxer.HandleFunc("DELETE /api/events/{id}", func(w http.ResponseWriter, r *http.Request) {
		id, err := parseEventID(r)
		if err != nil {
			writeGatewayError(w, r, err)
			return
		}
		if err := gw.Delete(r.Context(), id); err != nil {
			writeGatewayError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, OkRespBody{Ok: true})
	})

	muxer.HandleFunc("/api/", func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "Not Found")
	})
}
