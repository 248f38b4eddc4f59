package middlewares

import (
	"context"
	"net/http"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/senda7/internal/logger"
)

// TxMiddleware runs the handler inside a database transaction. The
// transaction is settled when the handler writes its status line: committed
// for statuses below 400, rolled back otherwise. A failed commit replaces the
// response with a 500.
func TxMiddleware(db *sqlx.DB) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tx, err := db.BeginTxx(r.Context(), nil)
			if err != nil {
				logger.Log.Errorw("failed to begin transaction", "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				return
			}

			tw := &txResponseWriter{ResponseWriter: w, tx: tx}

			defer func() {
				if rec := recover(); rec != nil {
					tw.rollback()
					panic(rec)
				}
			}()

			next.ServeHTTP(tw, r.WithContext(setTxToContext(r.Context(), tx)))

			if !tw.settled {
				tw.WriteHeader(http.StatusOK)
			}
		})
	}
}

type txResponseWriter struct {
	http.ResponseWriter
	tx      *sqlx.Tx
	settled bool
}

func (w *txResponseWriter) WriteHeader(code int) {
	if w.settled {
		w.ResponseWriter.WriteHeader(code)
		return
	}
	w.settled = true

	if code >= http.StatusBadRequest {
		if err := w.tx.Rollback(); err != nil {
			logger.Log.Errorw("failed to rollback transaction", "error", err)
		}
		w.ResponseWriter.WriteHeader(code)
		return
	}

	if err := w.tx.Commit(); err != nil {
		logger.Log.Errorw("failed to commit transaction", "error", err)
		h := w.Header()
		h.Del("Set-Cookie")
		h.Del("Location")
		code = http.StatusInternalServerError
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *txResponseWriter) Write(b []byte) (int, error) {
	if !w.settled {
		w.WriteHeader(http.StatusOK)
	}
	return w.ResponseWriter.Write(b)
}

func (w *txResponseWriter) rollback() {
	if w.settled {
		return
	}
	w.settled = true
	if err := w.tx.Rollback(); err != nil {
		logger.Log.Errorw("failed to rollback transaction", "error", err)
	}
}

type txContextKey struct{}

func setTxToContext(ctx context.Context, tx *sqlx.Tx) context.Context {
	return context.WithValue(ctx, txContextKey{}, tx)
}

// GetTxFromContext retrieves the transaction from the context. Returns nil if not present.
func GetTxFromContext(ctx context.Context) *sqlx.Tx {
	tx, _ := ctx.Value(txContextKey{}).(*sqlx.Tx)
	return tx
}
