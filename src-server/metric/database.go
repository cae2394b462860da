package metric

import (
	"context"
	"time"

	"eventcal/src-server/model"
	"eventcal/src-server/utils"
)

func database(as *utils.AppState) (time.Duration, error) {
	start := time.Now()
	if _, err := as.BunDB.NewSelect().
		Model((*model.Event)(nil)).
		Where("id = ?", 0).
		Exists(context.Background()); err != nil {
		return 0, err
	}
	return time.Since(start), nil
}
