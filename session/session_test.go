package session

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/Danik911/dublin-accommodation-bot/config"
	"github.com/Danik911/dublin-accommodation-bot/utils"
)

func TestStateStrings(t *testing.T) {
	tests := []struct {
		state State
		want  string
	}{
		{Uninitialized, "Uninitialized"},
		{Launched, "Launched"},
		{AwaitingManualAuth, "AwaitingManualAuth"},
		{Authenticated, "Authenticated"},
		{Failed, "Failed"},
		{Closed, "Closed"},
	}
	for _, tt := range tests {
		if got := tt.state.String(); got != tt.want {
			t.Errorf("State(%d).String() = %q; want %q", tt.state, got, tt.want)
		}
	}
}

func TestNewControllerStartsUninitialized(t *testing.T) {
	c := New(config.Load(), utils.NewLogger(false))
	if c.State() != Uninitialized {
		t.Errorf("new controller state = %s; want Uninitialized", c.State())
	}
}

func TestAwaitLoginRejectsWrongState(t *testing.T) {
	c := New(config.Load(), utils.NewLogger(false))
	if err := c.AwaitLogin(nil); err == nil {
		t.Error("AwaitLogin before Start should fail")
	}
}

func TestCloseIsIdempotent(t *testing.T) {
	c := New(config.Load(), utils.NewLogger(false))
	c.Close()
	c.Close()
	if c.State() != Closed {
		t.Errorf("state after Close = %s; want Closed", c.State())
	}
}

func TestAuthenticationErrorMessage(t *testing.T) {
	err := &AuthenticationError{Waited: 2 * time.Minute}
	if !strings.Contains(err.Error(), "2m0s") {
		t.Errorf("error should report the wait: %q", err.Error())
	}
}

func TestNavigationErrorUnwraps(t *testing.T) {
	cause := errors.New("connection refused")
	err := &NavigationError{URL: "https://example.com", Err: cause}
	if !errors.Is(err, cause) {
		t.Error("NavigationError should unwrap to its cause")
	}
	if !strings.Contains(err.Error(), "example.com") {
		t.Errorf("error should name the URL: %q", err.Error())
	}
}

func TestFilterErrorNamesStep(t *testing.T) {
	err := &FilterError{Step: "price-range", Err: errors.New("control not found")}
	if !strings.Contains(err.Error(), "price-range") {
		t.Errorf("error should name the failed step: %q", err.Error())
	}
}
