// Package testlog routes logrus output through testing.TB so log lines only
// show up for failing or verbose tests.
package testlog

import (
	"testing"

	"github.com/sirupsen/logrus"
)

type adapter struct {
	t      testing.TB
	prefix string
}

func (a *adapter) Write(d []byte) (int, error) {
	n := len(d)
	if n > 0 && d[n-1] == '\n' {
		d = d[:n-1]
	}
	if a.prefix != "" {
		a.t.Log(a.prefix + ": " + string(d))
		return n, nil
	}
	a.t.Log(string(d))
	return n, nil
}

// New returns a debug-level logger writing to t.
func New(t testing.TB) *logrus.Logger {
	logger := logrus.New()
	logger.Out = &adapter{t: t}
	logger.Level = logrus.DebugLevel
	return logger
}

// Entry returns an entry of New(t) tagged with prefix, matching how services
// receive their loggers in production.
func Entry(t testing.TB, prefix string) *logrus.Entry {
	return New(t).WithField("prefix", prefix)
}
