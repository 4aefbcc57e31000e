// Package invoker sends user-submitted greet commands over the bridge and
// republishes the replies.
package invoker

import (
	"context"
	"sync"

	"orbiter/internal/bridge"
	"orbiter/internal/logger"
)

// Invoker issues one greet call per submission. Submissions are neither
// deduplicated nor ordered: rapid repeats each spawn an independent in-flight
// call, and the published reply reflects whichever call resolves last.
type Invoker struct {
	bridge  bridge.Caller
	onReply func(string)
	log     logger.Logger

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func New(b bridge.Caller, onReply func(string), log logger.Logger) *Invoker {
	ctx, cancel := context.WithCancel(context.Background())
	return &Invoker{
		bridge:  b,
		onReply: onReply,
		log:     log,
		ctx:     ctx,
		cancel:  cancel,
	}
}

// Submit sends exactly one greet call carrying name as captured at
// submission time. It returns immediately; the reply is published through
// the callback when it arrives. Failed calls publish nothing.
func (inv *Invoker) Submit(name string) {
	inv.wg.Add(1)
	go func() {
		defer inv.wg.Done()

		reply, err := inv.bridge.Call(inv.ctx, "greet", name)
		if err != nil {
			inv.log.Debug("invoker", "greet call failed", map[string]interface{}{
				"name":  name,
				"error": err.Error(),
			})
			return
		}

		// Replies landing after Close are dropped.
		if inv.ctx.Err() != nil {
			return
		}
		inv.onReply(reply)
	}()
}

// Close cancels in-flight calls and waits for their goroutines. No replies
// are published after Close returns.
func (inv *Invoker) Close() {
	inv.cancel()
	inv.wg.Wait()
}
