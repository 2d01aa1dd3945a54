package pet

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"
)

// reply is a generated line handed back from a generator goroutine.
type reply struct {
	seq  uint64
	text string
}

type generation struct {
	text string
	err  error
}

// Voice turns reaction requests into speech bubble text. The fallback line is
// returned immediately; with async replies enabled the generated line arrives
// later through Latest. Only the newest request's reply is ever used.
type Voice struct {
	gen     Generator
	timeout time.Duration
	async   bool

	ctx     context.Context
	cancel  context.CancelFunc
	seq     uint64
	replies chan reply
}

// VoiceOption configures a Voice.
type VoiceOption func(*Voice)

// WithTimeout bounds each generator call. Non-positive values are ignored.
func WithTimeout(d time.Duration) VoiceOption {
	return func(v *Voice) {
		if d > 0 {
			v.timeout = d
		}
	}
}

// WithSyncReplies makes Ask wait for the generator (up to the timeout)
// instead of handing the reply back on a later tick.
func WithSyncReplies() VoiceOption {
	return func(v *Voice) {
		v.async = false
	}
}

// NewVoice creates a Voice backed by gen. A nil gen behaves like Silent.
func NewVoice(gen Generator, opts ...VoiceOption) *Voice {
	if gen == nil {
		gen = Silent{}
	}
	ctx, cancel := context.WithCancel(context.Background())
	v := &Voice{
		gen:     gen,
		timeout: DefaultReplyTimeout,
		async:   true,
		ctx:     ctx,
		cancel:  cancel,
		replies: make(chan reply, replyBufferSize),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Ask starts a reaction and returns the text to show right now.
func (v *Voice) Ask(req Request) string {
	v.seq++
	fallback := FallbackMessage(req)

	if _, silent := v.gen.(Silent); silent {
		return fallback
	}

	if !v.async {
		if text, ok := v.generate(req); ok {
			return text
		}
		return fallback
	}

	seq := v.seq
	go func() {
		text, ok := v.generate(req)
		if !ok {
			return
		}
		select {
		case v.replies <- reply{seq: seq, text: text}:
		default:
			slog.Debug("pet: reply buffer full, dropping reply", "seq", seq)
		}
	}()
	return fallback
}

// Latest drains pending replies and returns the one belonging to the newest
// request, if it has arrived. Replies to older requests are discarded.
func (v *Voice) Latest() (string, bool) {
	var text string
	found := false
	for {
		select {
		case r := <-v.replies:
			if r.seq != v.seq {
				slog.Debug("pet: discarding stale reply", "seq", r.seq, "latest", v.seq)
				continue
			}
			text, found = r.text, true
		default:
			return text, found
		}
	}
}

// Close cancels every in-flight generator call.
func (v *Voice) Close() {
	v.cancel()
}

func (v *Voice) generate(req Request) (string, bool) {
	ctx, cancel := context.WithTimeout(v.ctx, v.timeout)
	defer cancel()

	done := make(chan generation, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				done <- generation{err: fmt.Errorf("generator panic: %v", r)}
			}
		}()
		text, err := v.gen.Generate(ctx, req)
		done <- generation{text: text, err: err}
	}()

	select {
	case res := <-done:
		if res.err != nil {
			slog.Debug("pet: message generator failed, using fallback", "mood", req.Mood, "action", req.Action, "err", res.err)
			return "", false
		}
		text := strings.TrimSpace(res.text)
		if text == "" {
			slog.Debug("pet: message generator returned nothing, using fallback", "mood", req.Mood)
			return "", false
		}
		return text, true
	case <-ctx.Done():
		slog.Debug("pet: message generator timed out, using fallback", "mood", req.Mood, "err", ctx.Err())
		return "", false
	}
}
