package handler

import (
	"net/http"
	"time"

	"github.com/vfg2006/sales-payroll-api/pkg/log"
)

var startedAt = time.Now()

type HealthcheckResponse struct {
	Status    string `json:"status"`
	Time      string `json:"time"`
	UptimeSec int64  `json:"uptimeSec"`
}

func HealthcheckHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		now := time.Now()

		writeJSON(w, log.ForContext(r.Context()), HealthcheckResponse{
			Status:    "ok",
			Time:      now.Format(time.RFC3339),
			UptimeSec: int64(now.Sub(startedAt).Seconds()),
		})
	})
}
