package session_test

import (
	"testing"

	"rpncalc/internal/session"
)

func TestStoreRoundTrip(t *testing.T) {
	store, err := session.OpenAt(t.TempDir())
	if err != nil {
		t.Fatalf("OpenAt: %v", err)
	}

	// Пустое хранилище — просто "нет сессии", без ошибки.
	if _, ok, err := store.Load(); err != nil || ok {
		t.Fatalf("empty store: ok=%v err=%v, want ok=false err=nil", ok, err)
	}

	saved := &session.Payload{
		Stack:   []float64{1, 2.5, -3},
		Ans:     42,
		History: []string{"1 2.5 -3", "++"},
	}
	if err := store.Save(saved); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, ok, err := store.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !ok {
		t.Fatal("Load: ok=false after Save")
	}
	if loaded.Ans != 42 {
		t.Errorf("Ans = %v, want 42", loaded.Ans)
	}
	if len(loaded.Stack) != 3 || loaded.Stack[1] != 2.5 {
		t.Errorf("Stack = %v, want [1 2.5 -3]", loaded.Stack)
	}
	if len(loaded.History) != 2 || loaded.History[1] != "++" {
		t.Errorf("History = %q", loaded.History)
	}
}

func TestStoreDrop(t *testing.T) {
	store, err := session.OpenAt(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if err := store.Save(&session.Payload{Ans: 1}); err != nil {
		t.Fatal(err)
	}
	if err := store.Drop(); err != nil {
		t.Fatalf("Drop: %v", err)
	}
	if _, ok, _ := store.Load(); ok {
		t.Error("session survived Drop")
	}
	// Повторный Drop не ошибка.
	if err := store.Drop(); err != nil {
		t.Errorf("second Drop: %v", err)
	}
}

func TestStoreOverwrite(t *testing.T) {
	store, err := session.OpenAt(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if err := store.Save(&session.Payload{Ans: 1}); err != nil {
		t.Fatal(err)
	}
	if err := store.Save(&session.Payload{Ans: 2}); err != nil {
		t.Fatal(err)
	}
	loaded, ok, err := store.Load()
	if err != nil || !ok {
		t.Fatalf("Load: ok=%v err=%v", ok, err)
	}
	if loaded.Ans != 2 {
		t.Errorf("Ans = %v, want the newer payload", loaded.Ans)
	}
}
