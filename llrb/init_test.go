package llrb

import "io"

import log "github.com/sirupsen/logrus"

func init() {
	log.SetOutput(io.Discard)
}
