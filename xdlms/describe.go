package xdlms

import (
	"go.uber.org/zap"
)

// Describe writes a one line structured summary of a decoded apdu to the
// logger. Nil loggers are accepted so callers can wire logging in the same
// optional way the rest of the stack does.
func Describe(logger *zap.SugaredLogger, a Apdu) {
	if logger == nil || a == nil {
		return
	}
	switch t := a.(type) {
	case GeneralBlockTransfer:
		logger.Infow("general-block-transfer",
			"block", t.BlockNumber, "ack", t.BlockAck, "window", t.Control.Window,
			"last", t.Control.LastBlock, "streaming", t.Control.Streaming, "bytes", len(t.BlockData))
	case SetRequestNormal:
		logger.Infow("set-request-normal",
			"invoke", t.Invoke.InvokeId, "class", t.Attribute.ClassId,
			"obis", t.Attribute.Obis.String(), "attribute", t.Attribute.Attribute, "bytes", len(t.Data))
	case SetRequestWithFirstDataBlock:
		logger.Infow("set-request-with-first-datablock",
			"invoke", t.Invoke.InvokeId, "class", t.Attribute.ClassId,
			"obis", t.Attribute.Obis.String(), "attribute", t.Attribute.Attribute, "bytes", len(t.Data))
	case SetResponseNormal:
		logger.Infow("set-response-normal", "invoke", t.Invoke.InvokeId, "result", t.Result.String())
	case SetResponseDataBlock:
		logger.Infow("set-response-datablock", "invoke", t.Invoke.InvokeId, "block", t.BlockNumber)
	case SetResponseLastDataBlock:
		logger.Infow("set-response-last-datablock",
			"invoke", t.Invoke.InvokeId, "result", t.Result.String(), "block", t.BlockNumber)
	default:
		logger.Infow("apdu", "tag", byte(a.Tag()))
	}
}
