// metrics — сбор и публикация Prometheus-метрик сервиса.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// DomainStats — интерфейс доменных метрик для сервисного слоя.
type DomainStats interface {
	RecordArticlePublished(category string)
	RecordCommentPosted()
	RecordLikeToggled(liked bool)
}

// Collector собирает метрики HTTP-трафика и доменных событий журнала.
type Collector struct {
	httpStatus  *prometheus.CounterVec
	httpLatency prometheus.Histogram

	articlesPublished *prometheus.CounterVec
	commentsPosted    prometheus.Counter
	likesToggled      *prometheus.CounterVec
}

// NewCollector создаёт Collector и регистрирует метрики в переданном реестре.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		httpStatus: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "ethos_http_status_total",
			Help: "Количество HTTP-ответов по кодам статуса.",
		}, []string{"status_code"}),
		httpLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "ethos_http_latency_seconds",
			Help:    "Латентность обработки HTTP-запросов (секунды).",
			Buckets: prometheus.DefBuckets,
		}),
		articlesPublished: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "ethos_articles_published_total",
			Help: "Количество опубликованных статей по категориям.",
		}, []string{"category"}),
		commentsPosted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "ethos_comments_posted_total",
			Help: "Количество опубликованных комментариев.",
		}),
		likesToggled: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "ethos_likes_toggled_total",
			Help: "Количество переключений лайка по направлению (liked/unliked).",
		}, []string{"direction"}),
	}

	reg.MustRegister(
		c.httpStatus,
		c.httpLatency,
		c.articlesPublished,
		c.commentsPosted,
		c.likesToggled,
	)

	return c
}

// RecordHTTPStatus учитывает код ответа.
func (c *Collector) RecordHTTPStatus(statusCode int) {
	c.httpStatus.WithLabelValues(statusLabel(statusCode)).Inc()
}

// RecordHTTPLatency учитывает длительность обработки запроса.
func (c *Collector) RecordHTTPLatency(d time.Duration) {
	c.httpLatency.Observe(d.Seconds())
}

// RecordArticlePublished учитывает публикацию статьи.
func (c *Collector) RecordArticlePublished(category string) {
	c.articlesPublished.WithLabelValues(category).Inc()
}

// RecordCommentPosted учитывает публикацию комментария.
func (c *Collector) RecordCommentPosted() {
	c.commentsPosted.Inc()
}

// RecordLikeToggled учитывает переключение лайка.
func (c *Collector) RecordLikeToggled(liked bool) {
	direction := "unliked"
	if liked {
		direction = "liked"
	}
	c.likesToggled.WithLabelValues(direction).Inc()
}

func statusLabel(code int) string {
	// Метки по классам, чтобы не раздувать кардинальность.
	switch {
	case code >= 500:
		return "5xx"
	case code >= 400:
		return "4xx"
	case code >= 300:
		return "3xx"
	default:
		return "2xx"
	}
}

// Проверка на соответствие интерфейсу доменных метрик.
var _ DomainStats = (*Collector)(nil)
