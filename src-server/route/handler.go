package route

import (
	"net/http"
	"time"

	"eventcal/src-server/gateway"
	"eventcal/src-server/utils"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewHandler assembles every route behind the CORS and logging middleware.
func NewHandler(as *utils.AppState, gw *gateway.Gateway) http.Handler {
	muxer := http.NewServeMux()
	muxer.Handle("GET /metrics", promhttp.Handler())
	Events(muxer, gw)
	Ical(muxer, gw)
	Calendar(muxer, gw, time.Now)
	SPA(muxer, as.Config.GetStaticWebClientDir())
	return LogMiddleware(CorsMiddleware(muxer))
}
