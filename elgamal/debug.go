package elgamal

import (
	"github.com/davecgh/go-spew/spew"
	"go.dedis.ch/onet/v3/log"
)

// Verbosity follows onet: DEBUG_LVL in the environment or
// log.SetDebugVisible.

type logTopic string

const (
	dKeygen logTopic = "KEYG"
	dSign   logTopic = "SIGN"
	dVerify logTopic = "VRFY"
	dRetry  logTopic = "RTRY"
	dDump   logTopic = "DUMP"
)

// never pass x, k or k^-1 here
func logf(topic logTopic, format string, a ...interface{}) {
	format = string(topic) + " " + format
	switch topic {
	case dKeygen:
		log.Lvlf2(format, a...)
	case dSign, dVerify:
		log.Lvlf3(format, a...)
	case dRetry:
		log.Lvlf4(format, a...)
	default:
		log.Lvlf5(format, a...)
	}
}

// dump prints public values in full at the highest debug level.
func dump(v interface{}) {
	if log.DebugVisible() >= 5 {
		logf(dDump, "%s", spew.Sdump(v))
	}
}
