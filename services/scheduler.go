package services

import (
	"time"

	"github.com/LakshyaBagani/CAFE-CHAIN-sub000/repository"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Session KV rows untouched this long belong to abandoned devices.
const sessionRetention = 30 * 24 * time.Hour

// Scheduler runs the recurring background jobs: the daily meal-plan
// order run and the nightly session-storage prune.
type Scheduler struct {
	cron *cron.Cron
	log  *zap.Logger
}

func NewScheduler(mealPlans *MealPlanService, kv *repository.KVRepository, spec string, log *zap.Logger) (*Scheduler, error) {
	c := cron.New()
	_, err := c.AddFunc(spec, func() {
		mealPlans.RunForWeekday(int(time.Now().Weekday()))
	})
	if err != nil {
		return nil, err
	}

	if kv != nil {
		_, err = c.AddFunc("30 3 * * *", func() {
			n, err := kv.DeleteStale(sessionRetention)
			if err != nil {
				log.Error("session storage prune failed", zap.Error(err))
				return
			}
			log.Info("session storage pruned", zap.Int64("rows", n))
		})
		if err != nil {
			return nil, err
		}
	}

	return &Scheduler{cron: c, log: log}, nil
}

func (s *Scheduler) Start() {
	s.log.Info("scheduler started")
	s.cron.Start()
}

func (s *Scheduler) Stop() {
	s.cron.Stop()
}
