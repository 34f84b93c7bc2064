package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2/log"
	"github.com/robfig/cron/v3"

	"uni_bot_go/texts"
)

// RefreshTexts periodically reloads the text table, so captions edited in the
// database show up without a restart. schedule uses six fields (with seconds).
func RefreshTexts(store *texts.Store, src texts.Source, schedule string) (*cron.Cron, error) {
	c := cron.New(cron.WithSeconds())

	_, err := c.AddFunc(schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		n, err := store.Load(ctx, src)
		if err != nil {
			log.Errorf("Failed to reload texts: %v", err)
			return
		}
		log.Debugf("Texts reloaded: %d rows", n)
	})
	if err != nil {
		return nil, fmt.Errorf("schedule text reload %q: %w", schedule, err)
	}

	c.Start()
	log.Infof("Text reload job started (%s)", schedule)
	return c, nil
}
