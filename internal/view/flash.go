package view

import (
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
)

const (
	flashSessionName = "flash-session"
	flashKeySuccess  = "success"
	flashKeyError    = "error"
)

// FlashData holds the one-shot messages read from the session.
type FlashData struct {
	Success []string
	Error   []string
}

// setFlash sets a flash message in the session.
func setFlash(c echo.Context, key, message string) {
	sess, err := session.Get(flashSessionName, c)
	if err != nil {
		c.Logger().Warnf("flash session unavailable: %v", err)
		return
	}
	sess.AddFlash(message, key)
	_ = sess.Save(c.Request(), c.Response())
}

// SetFlashSuccess sets a success flash message.
func SetFlashSuccess(c echo.Context, message string) {
	setFlash(c, flashKeySuccess, message)
}

// SetFlashError sets an error flash message.
func SetFlashError(c echo.Context, message string) {
	setFlash(c, flashKeyError, message)
}

// GetFlashData retrieves and clears flash messages from the session.
func GetFlashData(c echo.Context) FlashData {
	var data FlashData

	sess, err := session.Get(flashSessionName, c)
	if err != nil {
		return data
	}

	// Flashes() clears what it returns; the session is saved only when
	// something was read.
	success := sess.Flashes(flashKeySuccess)
	failure := sess.Flashes(flashKeyError)
	if len(success) == 0 && len(failure) == 0 {
		return data
	}
	data.Success = toStrings(success)
	data.Error = toStrings(failure)
	_ = sess.Save(c.Request(), c.Response())
	return data
}

func toStrings(values []interface{}) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
