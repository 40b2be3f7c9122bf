package notify

import (
	"time"

	"github.com/goodnatureofminers/neuronet-client/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Sink displays notifications.
	Sink interface {
		Show(n model.Notification)
		Remove(id uint64)
	}
	// Metrics records presenter activity.
	Metrics interface {
		ObserveShown(kind string, active int)
		ObserveRemoved(reason string, active int)
	}
)

// stopper is the part of *time.Timer the presenter needs.
type stopper interface {
	Stop() bool
}

type afterFunc func(d time.Duration, f func()) stopper

func realAfterFunc(d time.Duration, f func()) stopper {
	return time.AfterFunc(d, f)
}
