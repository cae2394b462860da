package route

import (
	"log/slog"
	"net/http"
	"strconv"

	"eventcal/src-server/gateway"
	"eventcal/src-server/model"

	ics "github.com/arran4/golang-ical"
	"github.com/google/uuid"
)

// EventUID derives a stable iCalendar UID from an event id.
func EventUID(id int64) string {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte("eventcal:event:"+strconv.FormatInt(id, 10))).String()
}

// ToIcal turns a month of events into a VCALENDAR.
func ToIcal(month gateway.Month, eventModels []model.Event) *ics.Calendar {
	calendar := ics.NewCalendar()
	calendar.SetMethod(ics.MethodPublish)
	calendar.SetProductId("-//eventcal//" + month.String() + "//EN")
	for _, e := range eventModels {
		event := calendar.AddEvent(EventUID(e.ID))
		event.SetCreatedTime(e.CreatedAt())
		event.SetDtStampTime(e.UpdatedAt())
		event.SetModifiedAt(e.UpdatedAt())
		event.SetStartAt(e.StartAt())
		event.SetEndAt(e.EndAt())
		event.SetSummary(e.Title)
		if e.Memo != "" {
			event.SetDescription(e.Memo)
		}
	}
	return calendar
}

func Ical(muxer *http.ServeMux, gw *gateway.Gateway) {
	muxer.HandleFunc("GET /api/events.ics", func(w http.ResponseWriter, r *http.Request) {
		month, err := gateway.ParseMonth(r.URL.Query().Get("month"))
		if err != nil {
			writeGatewayError(w, r, err)
			return
		}
		eventModels, err := gw.ListMonth(r.Context(), month)
		if err != nil {
			writeGatewayError(w, r, err)
			return
		}

		w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
		w.Header().Set("Content-Disposition", `attachment; filename="eventcal-`+month.String()+`.ics"`)
		w.WriteHeader(http.StatusOK)
		if err := ToIcal(month, eventModels).SerializeTo(w); err != nil {
			slog.Warn("can't write to response", "where", "route/ical.go", "error", err)
		}
	})
}
