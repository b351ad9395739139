package vislog

import "time"

type timer interface {
	Stop() bool
	Reset(d time.Duration) bool
}

type clock interface {
	AfterFunc(d time.Duration, f func()) timer
}

type realClock struct{}

func (realClock) AfterFunc(d time.Duration, f func()) timer {
	return time.AfterFunc(d, f)
}
