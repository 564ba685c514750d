package dpll

import log "github.com/sirupsen/logrus"

// logger is the package-level structured logger used by all three solvers
// to trace decide/propagate/conflict/learn events. Callers that want solver
// internals on stderr can raise the level with logrus.SetLevel(logrus.DebugLevel);
// by default logrus only prints Info and above, so a solve over a large
// formula stays quiet.
var logger = log.StandardLogger()
