package route

import (
	"bytes"
	"log/slog"
	"net/http"
	"time"

	"eventcal/src-client/calendar"
	"eventcal/src-client/render"
	"eventcal/src-server/gateway"
)

// Calendar serves a read-only month view rendered on the server, for
// browsers without the web client. ?month=YYYY-MM picks the month,
// ?day=YYYY-MM-DD the selected day; both default to today, and a day
// given alone also picks its month.
func Calendar(muxer *http.ServeMux, gw *gateway.Gateway, now func() time.Time) {
	muxer.HandleFunc("GET /calendar", func(w http.ResponseWriter, r *http.Request) {
		loc := gw.Location()
		state, _ := calendar.NewState(now(), loc)

		if token := r.URL.Query().Get("month"); token != "" {
			month, err := gateway.ParseMonth(token)
			if err != nil {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			state.Current = time.Date(month.Year, month.Month, 1, 0, 0, 0, 0, loc)
			state.Selected = state.Current
		}
		if dayStr := r.URL.Query().Get("day"); dayStr != "" {
			day, err := time.ParseInLocation(calendar.DateLayout, dayStr, loc)
			if err != nil {
				http.Error(w, "day=YYYY-MM-DD required", http.StatusBadRequest)
				return
			}
			if r.URL.Query().Get("month") == "" {
				state.Current = calendar.StartOfMonth(day, loc)
			}
			state, _ = calendar.Reduce(state, calendar.SelectDay{Day: day})
		}

		month := gateway.MonthOf(state.Current, loc)
		eventModels, err := gw.ListMonth(r.Context(), month)
		if err != nil {
			slog.Error("can't list events for calendar page", "month", month.String(), "error", err)
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
		events := make([]calendar.Event, 0, len(eventModels))
		for _, e := range eventModels {
			events = append(events, calendar.Event{
				ID:        e.ID,
				Title:     e.Title,
				StartAt:   e.StartAt(),
				EndAt:     e.EndAt(),
				Memo:      e.Memo,
				CreatedAt: e.CreatedAt(),
				UpdatedAt: e.UpdatedAt(),
			})
		}
		state, _ = calendar.Reduce(state, calendar.EventsLoaded{Month: state.Current, Events: events})

		var buf bytes.Buffer
		if err := render.HTML(&buf, render.NewView(state)); err != nil {
			slog.Error("can't render calendar page", "error", err)
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		w.Write(buf.Bytes())
	})
}
