package session

import (
	"sync"
	"testing"
)

func TestStoreReplaceAndGet(t *testing.T) {
	st := NewStore()

	if _, ok := st.Get(7); ok {
		t.Fatal("empty store returned a session")
	}

	first := New(7, "one", nil)
	st.Replace(7, first)
	second := New(7, "two", nil)
	st.Replace(7, second)

	got, ok := st.Get(7)
	if !ok || got.Query != "two" {
		t.Fatalf("got %+v, want the replacing session", got)
	}
}

func TestStoreRemove(t *testing.T) {
	st := NewStore()
	st.Replace(1, New(1, "q", nil))
	st.Remove(1)
	st.Remove(1) // absent: no-op

	if _, ok := st.Get(1); ok {
		t.Fatal("session survived removal")
	}
}

func TestBindReturnsSameMutexPerChat(t *testing.T) {
	st := NewStore()
	if st.Bind(1) != st.Bind(1) {
		t.Fatal("same chat got different mutexes")
	}
	if st.Bind(1) == st.Bind(2) {
		t.Fatal("different chats share a mutex")
	}
}

func TestStoreConcurrentAccess(t *testing.T) {
	st := NewStore()
	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(chatID int64) {
			defer wg.Done()
			mu := st.Bind(chatID)
			mu.Lock()
			st.Replace(chatID, New(chatID, "q", nil))
			st.Get(chatID)
			st.Remove(chatID)
			mu.Unlock()
		}(int64(i % 4))
	}
	wg.Wait()
}
