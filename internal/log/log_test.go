package log

import (
	"bytes"
	"encoding/json"
	"errors"
	stdlog "log"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func capture(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	oldW, oldFlags := stdlog.Writer(), stdlog.Flags()
	stdlog.SetOutput(&buf)
	stdlog.SetFlags(0)
	t.Cleanup(func() {
		stdlog.SetOutput(oldW)
		stdlog.SetFlags(oldFlags)
	})
	return &buf
}

func TestEventHasNoRequestFields(t *testing.T) {
	buf := capture(t)
	Event("seed.start", map[string]any{"users": 2})

	var e entry
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &e))
	assert.Equal(t, "info", e.Level)
	assert.Equal(t, "seed.start", e.Action)
	assert.Empty(t, e.Method)
	assert.EqualValues(t, 2, e.Fields["users"])
}

func TestRequestEntries(t *testing.T) {
	buf := capture(t)
	app := fiber.New()
	app.Use(Stamp)
	app.Get("/orders/:id", func(c *fiber.Ctx) error {
		Audit(c, "order.pay", map[string]any{"order_id": 2})
		Error(c, "server.error", errors.New("boom"), nil)
		return c.SendStatus(fiber.StatusNoContent)
	})
	_, err := app.Test(httptest.NewRequest("GET", "/orders/2", nil))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	var audit, fail entry
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &audit))
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &fail))

	assert.Equal(t, "audit", audit.Level)
	assert.Equal(t, "GET", audit.Method)
	assert.Equal(t, "/orders/2", audit.Path)
	assert.Equal(t, "/orders/:id", audit.Route)
	assert.Equal(t, "error", fail.Level)
	assert.Equal(t, "boom", fail.Err)
}
