package service

import (
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"plate-bot/internal/repository"
)

func newTestBot(t *testing.T) *BotService {
	t.Helper()

	repo := repository.NewRegistryRepository()
	src := &stubSource{rows: [][]string{
		header,
		sheetRow("Иванов Иван Иванович", "А643ЕЕ77", "+7 (915) 123-45-67"),
	}}
	registrySvc := NewRegistryService(repo, src, zerolog.Nop())
	if _, err := registrySvc.Reload(context.Background()); err != nil {
		t.Fatalf("reload: %v", err)
	}
	return NewBotService(registrySvc, repository.NewAuthState(), zerolog.Nop())
}

func TestHandleTextAuthorizationFlow(t *testing.T) {
	bot := newTestBot(t)
	const userID = int64(100500)

	// Anything before phone verification is met with the prompt.
	reply, ok := bot.HandleText(userID, "А643ЕЕ77")
	if !ok || reply != msgPhonePrompt {
		t.Fatalf("plate before auth: got (%q, %v), want phone prompt", reply, ok)
	}

	// Wrong phone keeps the user unauthorized.
	reply, ok = bot.HandleText(userID, "+7 (999) 999-99-99")
	if !ok || reply != msgPhonePrompt {
		t.Fatalf("unknown phone: got (%q, %v), want phone prompt", reply, ok)
	}

	// Known phone authorizes and invites plate entry.
	reply, ok = bot.HandleText(userID, "8 915 123 45 67")
	if !ok || reply != msgWelcome {
		t.Fatalf("known phone: got (%q, %v), want welcome", reply, ok)
	}

	// A known plate now resolves, with the surname masked.
	reply, ok = bot.HandleText(userID, "а643ее77")
	if !ok {
		t.Fatal("plate lookup after auth produced no reply")
	}
	if !strings.Contains(reply, "A643EE77") {
		t.Errorf("reply %q does not contain normalized plate", reply)
	}
	if !strings.Contains(reply, "И***** Иван Иванович") {
		t.Errorf("reply %q does not contain masked owner name", reply)
	}
	if !strings.Contains(reply, "+7 (915) 123-45-67") {
		t.Errorf("reply %q does not contain owner phone", reply)
	}

	// Free-form chatter is silently ignored.
	if reply, ok = bot.HandleText(userID, "спасибо большое!"); ok {
		t.Errorf("chatter produced a reply: %q", reply)
	}
	if reply, ok = bot.HandleText(userID, ""); ok {
		t.Errorf("empty text produced a reply: %q", reply)
	}
}

func TestHandleTextUnknownPlate(t *testing.T) {
	bot := newTestBot(t)
	const userID = int64(42)

	if _, ok := bot.HandleText(userID, "9151234567"); !ok {
		t.Fatal("phone verification failed")
	}

	reply, ok := bot.HandleText(userID, "В999ВВ99")
	if !ok || reply != msgNotFound {
		t.Fatalf("unknown plate: got (%q, %v), want not-found message", reply, ok)
	}

	// Malformed plate shapes are chatter, not errors.
	if reply, ok := bot.HandleText(userID, "А777А77"); ok {
		t.Errorf("malformed plate produced a reply: %q", reply)
	}
}

func TestHandleTextUsersAreIndependent(t *testing.T) {
	bot := newTestBot(t)

	if _, ok := bot.HandleText(1, "9151234567"); !ok {
		t.Fatal("phone verification failed")
	}

	// A different user is still gated.
	reply, ok := bot.HandleText(2, "А643ЕЕ77")
	if !ok || reply != msgPhonePrompt {
		t.Fatalf("second user bypassed authorization: (%q, %v)", reply, ok)
	}
}

func TestHandleTextEmptyDuringPhonePhase(t *testing.T) {
	bot := newTestBot(t)

	// An unauthorized user gets the prompt even for empty text.
	reply, ok := bot.HandleText(7, "   ")
	if !ok || reply != msgPhonePrompt {
		t.Fatalf("empty text before auth: got (%q, %v), want phone prompt", reply, ok)
	}
}
