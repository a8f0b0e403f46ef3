package upstream

import (
	"arogyanetra-service/internal/app/contracts"
	"io"
	"strings"
	"sync"
)

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

type progressCounter struct {
	mu     sync.Mutex
	sent   int64
	total  int64
	report contracts.ProgressFunc
}

func (p *progressCounter) add(n int64) {
	if n <= 0 {
		return
	}
	p.mu.Lock()
	p.sent += n
	sent, total := p.sent, p.total
	p.mu.Unlock()
	if p.report != nil {
		p.report(sent, total)
	}
}

// finish reports completion once upstream accepted the body, even when the
// declared sizes were off.
func (p *progressCounter) finish() {
	p.mu.Lock()
	p.sent = p.total
	total := p.total
	p.mu.Unlock()
	if p.report != nil {
		p.report(total, total)
	}
}

type countingReader struct {
	reader  io.Reader
	counter *progressCounter
}

func (r *countingReader) Read(p []byte) (int, error) {
	n, err := r.reader.Read(p)
	r.counter.add(int64(n))
	return n, err
}
