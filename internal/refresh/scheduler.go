// 包 refresh：每周定时强制刷新公园数据，运行在服务进程内的后台协程
package refresh

import (
	"context"
	"time"

	"parks-api/internal/logger"
	"parks-api/internal/park"
	"parks-api/internal/utils"
)

// DefaultHour：默认周一凌晨 3 点
const DefaultHour = 3

// Refresher：service.DataService 即为实现
type Refresher interface {
	Refresh(ctx context.Context) ([]park.Park, error)
}

// Location：维也纳时区；缺少时区数据时退回固定 UTC+1
func Location() *time.Location {
	loc, err := time.LoadLocation("Europe/Vienna")
	if err != nil {
		logger.L().Warn("refresh_tz_fallback", "err", err)
		return time.FixedZone("CET", 3600)
	}
	return loc
}

// nextMondayAt：now 之后最近一个周一 hour 点
func nextMondayAt(now time.Time, loc *time.Location, hour int) time.Time {
	now = now.In(loc)
	for i := 0; i <= 7; i++ {
		d := now.AddDate(0, 0, i)
		if d.Weekday() == time.Monday {
			t := time.Date(d.Year(), d.Month(), d.Day(), hour, 0, 0, 0, loc)
			if t.After(now) {
				return t
			}
		}
	}
	d := now.AddDate(0, 0, 7)
	return time.Date(d.Year(), d.Month(), d.Day(), hour, 0, 0, 0, loc)
}

// Scheduler：每周一固定整点执行一次刷新
type Scheduler struct {
	job  Refresher
	loc  *time.Location
	hour int
	now  func() time.Time
}

// NewFromEnv：REFRESH_HOUR 覆盖小时（0..23），非法值取默认
func NewFromEnv(job Refresher) *Scheduler {
	hour := utils.EnvInt("REFRESH_HOUR", DefaultHour)
	if hour < 0 || hour > 23 {
		hour = DefaultHour
	}
	return &Scheduler{job: job, loc: Location(), hour: hour, now: time.Now}
}

// Next：下一次执行时间
func (s *Scheduler) Next() time.Time {
	return nextMondayAt(s.now(), s.loc, s.hour)
}

// Run：阻塞直到 ctx 结束；单次刷新失败只记录日志，继续下一轮
func (s *Scheduler) Run(ctx context.Context) error {
	l := logger.L()
	for {
		next := s.Next()
		l.Info("refresh_scheduled", "next", next)
		t := time.NewTimer(time.Until(next))
		select {
		case <-ctx.Done():
			t.Stop()
			return ctx.Err()
		case <-t.C:
		}
		s.RunOnce(ctx)
	}
}

// RunOnce：立即执行一次刷新
func (s *Scheduler) RunOnce(ctx context.Context) {
	l := logger.L()
	start := time.Now()
	l.Info("refresh_start")
	parks, err := s.job.Refresh(ctx)
	if err != nil {
		l.Error("refresh_error", "err", err)
		return
	}
	l.Info("refresh_done", "parks", len(parks), "duration_ms", time.Since(start).Milliseconds())
}
