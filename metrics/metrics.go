package metrics

import (
	"time"

	"github.com/33cn/bingo/types"
	log15 "github.com/inconshreveable/log15"
	go_metrics "github.com/rcrowley/go-metrics"
)

var (
	log = log15.New("module", "bingo metrics")
)

//StartMetrics 根据配置文件相关参数启动指标输出
func StartMetrics(cfg *types.Config) {
	metrics := cfg.Metrics
	if metrics == nil || !metrics.EnableMetrics {
		log.Info("Metrics data is not enabled to emit")
		return
	}

	duration := metrics.Duration
	if duration <= 0 {
		duration = 10
	}

	switch metrics.DataEmitMode {
	case "log":
		log.Info("StartMetrics with log", "duration", duration)
		go emitToLog(go_metrics.DefaultRegistry, time.Duration(duration)*time.Second)
	default:
		log.Error("startMetrics", "The dataEmitMode set is not supported now ", metrics.DataEmitMode)
		return
	}
}

//emitToLog 周期性把注册表里的全部指标写进日志
func emitToLog(registry go_metrics.Registry, freq time.Duration) {
	for range time.Tick(freq) {
		registry.Each(func(name string, metric interface{}) {
			switch m := metric.(type) {
			case go_metrics.Counter:
				log.Info("metrics", "name", name, "count", m.Count())
			case go_metrics.Gauge:
				log.Info("metrics", "name", name, "value", m.Value())
			case go_metrics.GaugeFloat64:
				log.Info("metrics", "name", name, "value", m.Value())
			case go_metrics.Meter:
				ms := m.Snapshot()
				log.Info("metrics", "name", name, "count", ms.Count(), "rate1", ms.Rate1(), "mean", ms.RateMean())
			case go_metrics.Timer:
				ts := m.Snapshot()
				log.Info("metrics", "name", name, "count", ts.Count(), "min", ts.Min(), "max", ts.Max(), "mean", ts.Mean())
			}
		})
	}
}
