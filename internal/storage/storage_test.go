package storage

import (
	"testing"
)

func TestFileKV_MissingKey(t *testing.T) {
	kv := NewFileKV(t.TempDir())
	_, ok, err := kv.Get("absent")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if ok {
		t.Fatalf("expected ok=false for a missing key")
	}
}

func TestFileKV_RoundTrip(t *testing.T) {
	kv := NewFileKV(t.TempDir())
	if err := kv.Set("history", []byte(`[1,2,3]`)); err != nil {
		t.Fatalf("set: %v", err)
	}
	data, ok, err := kv.Get("history")
	if err != nil || !ok {
		t.Fatalf("get: ok=%v err=%v", ok, err)
	}
	if string(data) != `[1,2,3]` {
		t.Fatalf("unexpected value %q", data)
	}
}

func TestFileKV_Overwrite(t *testing.T) {
	kv := NewFileKV(t.TempDir())
	if err := kv.Set("k", []byte("a")); err != nil {
		t.Fatal(err)
	}
	if err := kv.Set("k", []byte("b")); err != nil {
		t.Fatal(err)
	}
	data, _, _ := kv.Get("k")
	if string(data) != "b" {
		t.Fatalf("expected overwrite, got %q", data)
	}
}

func TestFileKV_CreatesDir(t *testing.T) {
	dir := t.TempDir() + "/nested/store"
	kv := NewFileKV(dir)
	if err := kv.Set("k", []byte("v")); err != nil {
		t.Fatalf("set into missing dir: %v", err)
	}
	if _, ok, _ := kv.Get("k"); !ok {
		t.Fatalf("expected value back")
	}
}
