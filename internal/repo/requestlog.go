package repo

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"gorm.io/gorm"

	"github.com/Skotchmaster/dummyjson/internal/models"
	loggingmw "github.com/Skotchmaster/dummyjson/pkg/middleware/logging"
)

type GormRepo struct {
	DB *gorm.DB
}

func (r *GormRepo) SaveRequestLogs(ctx context.Context, logs []models.RequestLog) error {
	if len(logs) == 0 {
		return nil
	}
	return r.DB.WithContext(ctx).Create(&logs).Error
}

// LogWriter batches request log entries and writes them from one goroutine,
// so request handling never waits on the database.
type LogWriter struct {
	repo   *GormRepo
	log    *slog.Logger
	queue  chan models.RequestLog
	batch  int
	flush  time.Duration
	wg     sync.WaitGroup
	closed chan struct{}
	once   sync.Once
}

func NewLogWriter(repo *GormRepo, logger *slog.Logger) *LogWriter {
	w := &LogWriter{
		repo:   repo,
		log:    logger,
		queue:  make(chan models.RequestLog, 1024),
		batch:  100,
		flush:  time.Second,
		closed: make(chan struct{}),
	}
	w.wg.Add(1)
	go w.run()
	return w
}

// Record implements loggingmw.Sink. Entries are dropped when the queue is full.
func (w *LogWriter) Record(e loggingmw.Entry) {
	entry := models.RequestLog{
		RequestID:  e.RequestID,
		Method:     e.Method,
		Route:      e.Route,
		Path:       e.Path,
		Status:     e.Status,
		DurationMS: e.Duration.Milliseconds(),
		RemoteIP:   e.RemoteIP,
		UserAgent:  e.UserAgent,
		Error:      e.Error,
		CreatedAt:  time.Now().UTC(),
	}
	select {
	case <-w.closed:
	case w.queue <- entry:
	default:
		w.log.Warn("request_log_dropped", "reason", "queue full", "path", e.Path)
	}
}

func (w *LogWriter) run() {
	defer w.wg.Done()
	ticker := time.NewTicker(w.flush)
	defer ticker.Stop()

	buf := make([]models.RequestLog, 0, w.batch)
	write := func() {
		if len(buf) == 0 {
			return
		}
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := w.repo.SaveRequestLogs(ctx, buf); err != nil {
			w.log.Error("request_log_write_failed", "count", len(buf), "error", err)
		}
		buf = buf[:0]
	}

	for {
		select {
		case e := <-w.queue:
			buf = append(buf, e)
			if len(buf) >= w.batch {
				write()
			}
		case <-ticker.C:
			write()
		case <-w.closed:
			for {
				select {
				case e := <-w.queue:
					buf = append(buf, e)
				default:
					write()
					return
				}
			}
		}
	}
}

// Close flushes pending entries and stops the writer.
func (w *LogWriter) Close() {
	w.once.Do(func() { close(w.closed) })
	w.wg.Wait()
}
