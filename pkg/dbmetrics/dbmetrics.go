package dbmetrics

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/m04kA/SMC-TableAvailability/pkg/metrics"
)

// DefaultStatsInterval период снятия статистики connection pool
const DefaultStatsInterval = 15 * time.Second

// DBExecutor минимальный набор методов для read-only репозиториев
// Реализуется *sql.DB и *DB
type DBExecutor interface {
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
	PingContext(ctx context.Context) error
}

// DB обертка над *sql.DB, которая пишет длительность запросов в prometheus
type DB struct {
	db      *sql.DB
	metrics *metrics.Metrics
	dbName  string
}

// Wrap оборачивает соединение и запускает сбор статистики пула с указанным интервалом
// Сбор останавливается при закрытии stopCh
func Wrap(db *sql.DB, m *metrics.Metrics, dbName string, interval time.Duration, stopCh <-chan struct{}) *DB {
	wrapped := &DB{
		db:      db,
		metrics: m,
		dbName:  dbName,
	}

	go wrapped.collectStats(interval, stopCh)

	return wrapped
}

// WrapWithDefault как Wrap, но с DefaultStatsInterval
func WrapWithDefault(db *sql.DB, m *metrics.Metrics, dbName string, stopCh <-chan struct{}) *DB {
	return Wrap(db, m, dbName, DefaultStatsInterval, stopCh)
}

func (d *DB) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	op := operationName(query)
	start := time.Now()

	rows, err := d.db.QueryContext(ctx, query, args...)

	d.observe(op, start, err)
	return rows, err
}

func (d *DB) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	op := operationName(query)
	start := time.Now()

	row := d.db.QueryRowContext(ctx, query, args...)

	d.observe(op, start, row.Err())
	return row
}

func (d *DB) PingContext(ctx context.Context) error {
	start := time.Now()
	err := d.db.PingContext(ctx)
	d.observe("ping", start, err)
	return err
}

func (d *DB) observe(op string, start time.Time, err error) {
	d.metrics.DBQueryDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
	if err != nil && err != sql.ErrNoRows {
		d.metrics.DBQueryErrors.WithLabelValues(op).Inc()
	}
}

func (d *DB) collectStats(interval time.Duration, stopCh <-chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	d.recordStats()
	for {
		select {
		case <-stopCh:
			return
		case <-ticker.C:
			d.recordStats()
		}
	}
}

func (d *DB) recordStats() {
	stats := d.db.Stats()
	d.metrics.DBOpenConnections.WithLabelValues(d.dbName).Set(float64(stats.OpenConnections))
	d.metrics.DBInUse.WithLabelValues(d.dbName).Set(float64(stats.InUse))
	d.metrics.DBIdle.WithLabelValues(d.dbName).Set(float64(stats.Idle))
	d.metrics.DBWaitCount.WithLabelValues(d.dbName).Set(float64(stats.WaitCount))
}

// operationName строит label вида "select_service_windows" из текста запроса
func operationName(query string) string {
	fields := strings.Fields(strings.ToLower(query))
	if len(fields) == 0 {
		return "unknown"
	}

	verb := fields[0]
	for i, f := range fields {
		if f == "from" && i+1 < len(fields) {
			return verb + "_" + strings.Trim(fields[i+1], `"`)
		}
	}
	return verb
}
