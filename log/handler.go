package log

import (
	"io"
	"sync"
	"sync/atomic"
)

// A Handler renders a log record and dispatches it somewhere.
type Handler interface {
	Log(r *Record) error
}

// FuncHandler returns a Handler that logs records with the given function.
func FuncHandler(fn func(r *Record) error) Handler {
	return funcHandler(fn)
}

type funcHandler func(r *Record) error

func (h funcHandler) Log(r *Record) error {
	return h(r)
}

// StreamHandler writes log records to an io.Writer with the given format. It
// serializes writes, so it can be shared between concurrent loggers.
func StreamHandler(wr io.Writer, fmtr Format) Handler {
	var mu sync.Mutex
	return FuncHandler(func(r *Record) error {
		mu.Lock()
		defer mu.Unlock()
		_, err := wr.Write(fmtr.Format(r))
		return err
	})
}

// LvlFilterHandler returns a Handler that only passes records at or above the
// given verbosity to the wrapped Handler.
func LvlFilterHandler(maxLvl Lvl, h Handler) Handler {
	return FuncHandler(func(r *Record) error {
		if r.Lvl > maxLvl {
			return nil
		}
		return h.Log(r)
	})
}

// DiscardHandler drops everything.
func DiscardHandler() Handler {
	return FuncHandler(func(r *Record) error {
		return nil
	})
}

// swapHandler wraps another handler that may be swapped out atomically while
// loggers keep writing.
type swapHandler struct {
	handler atomic.Value
}

func (h *swapHandler) Log(r *Record) error {
	return (*h.handler.Load().(*Handler)).Log(r)
}

func (h *swapHandler) Swap(newHandler Handler) {
	h.handler.Store(&newHandler)
}

func (h *swapHandler) Get() Handler {
	return *h.handler.Load().(*Handler)
}
