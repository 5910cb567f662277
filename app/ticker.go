package app

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Tickable 可被定时推进的对象
type Tickable interface {
	Tick(deltaMs int64) error
}

// Ticker 以固定周期推进游戏，传入的是两次触发之间的真实间隔
type Ticker struct {
	target Tickable
	period time.Duration
	log    *zap.SugaredLogger
	now    func() time.Time
}

func NewTicker(target Tickable, period time.Duration, log *zap.SugaredLogger) *Ticker {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Ticker{target: target, period: period, log: log, now: time.Now}
}

// Run 阻塞直到 ctx 结束
func (t *Ticker) Run(ctx context.Context) {
	ticker := time.NewTicker(t.period)
	defer ticker.Stop()

	last := t.now()
	for {
		select {
		case <-ctx.Done():
			t.log.Debugw("ticker stopped", "period", t.period)
			return
		case <-ticker.C:
			last = last.Add(t.step(t.now().Sub(last)))
		}
	}
}

// step 按整毫秒推进，返回实际消耗的时长；不足 1ms 的余量留到下一次
func (t *Ticker) step(elapsed time.Duration) time.Duration {
	delta := elapsed.Milliseconds()
	if delta < 1 {
		return 0
	}
	if err := t.target.Tick(delta); err != nil {
		t.log.Errorw("tick failed", "delta_ms", delta, "error", err)
	}
	return time.Duration(delta) * time.Millisecond
}
