package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestAnsiToHTML(t *testing.T) {
	t.Run("colored level", func(t *testing.T) {
		out := ansiToHTML("\x1b[32minfo\x1b[0m done")
		assert.Equal(t, `<pre><span style="color: green;">info</span> done</pre>`, out)
	})

	t.Run("unknown code closes span", func(t *testing.T) {
		out := ansiToHTML("\x1b[31merr\x1b[35mx")
		assert.Equal(t, `<pre><span style="color: red;">err</span>x</pre>`, out)
	})

	t.Run("unterminated color", func(t *testing.T) {
		out := ansiToHTML("\x1b[36mdebug")
		assert.Equal(t, `<pre><span style="color: cyan;">debug</span></pre>`, out)
	})

	t.Run("escapes markup", func(t *testing.T) {
		out := ansiToHTML("a < b")
		assert.Equal(t, "<pre>a &lt; b</pre>", out)
	})
}

func TestBufferedLogger(t *testing.T) {
	log := New()
	log.Info("[cp] hello", zap.Int("n", 3))
	log.Debug("[cp] details")

	assert.Contains(t, log.Text(), "[cp] hello")
	assert.Contains(t, log.Text(), "n")
	assert.Contains(t, log.Text(), "[cp] details")
	assert.Contains(t, log.HTML(), `<span style="color: green;">info</span>`)
	assert.Contains(t, log.HTML(), `<span style="color: cyan;">debug</span>`)

	log.ClearLogs()
	assert.Empty(t, log.Text())
	assert.Equal(t, "<pre></pre>", log.HTML())
}

func TestNop(t *testing.T) {
	log := Nop()
	log.Info("ignored")
	log.Error("ignored too")
	assert.Empty(t, log.Text())
}
