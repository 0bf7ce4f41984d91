// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http/httptest"
	"testing"

	"tippspiel/models"
	"tippspiel/store"
	"tippspiel/testutil"
)

func TestRegister(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	h := NewUserHandler(store.New(conn), testutil.GetTestConfig())

	req := testutil.MakeRequest("POST", "/api/register", models.RegisterRequest{Name: "Anna"}, nil)
	w := httptest.NewRecorder()
	h.Register(w, req)

	testutil.AssertStatus(t, w, 200)

	var user models.User
	testutil.AssertJSON(t, w, &user)
	if user.ID == "" || user.Name != "Anna" || user.Token == "" {
		t.Fatalf("unexpected user: %+v", user)
	}
}

func TestRegisterIdempotent(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	h := NewUserHandler(store.New(conn), testutil.GetTestConfig())

	register := func() models.User {
		req := testutil.MakeRequest("POST", "/api/register", models.RegisterRequest{Name: "Anna"}, nil)
		w := httptest.NewRecorder()
		h.Register(w, req)
		testutil.AssertStatus(t, w, 200)
		var user models.User
		testutil.AssertJSON(t, w, &user)
		return user
	}

	first := register()
	second := register()

	if first.ID != second.ID {
		t.Errorf("expected same id on re-register, got %s and %s", first.ID, second.ID)
	}
	if first.Token != second.Token {
		t.Errorf("expected same token on re-register")
	}

	var count int
	if err := conn.QueryRow(`SELECT COUNT(*) FROM users`).Scan(&count); err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 1 {
		t.Errorf("expected one user row, got %d", count)
	}
}

func TestRegisterNormalizesName(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	h := NewUserHandler(store.New(conn), testutil.GetTestConfig())

	req := testutil.MakeRequest("POST", "/api/register", models.RegisterRequest{Name: "  Max \t  Muster  "}, nil)
	w := httptest.NewRecorder()
	h.Register(w, req)

	testutil.AssertStatus(t, w, 200)

	var user models.User
	testutil.AssertJSON(t, w, &user)
	if user.Name != "Max Muster" {
		t.Errorf("expected normalized name, got %q", user.Name)
	}

	// The padded spelling resolves to the same identity.
	req = testutil.MakeRequest("POST", "/api/register", models.RegisterRequest{Name: "Max Muster"}, nil)
	w = httptest.NewRecorder()
	h.Register(w, req)
	var again models.User
	testutil.AssertJSON(t, w, &again)
	if again.ID != user.ID {
		t.Errorf("expected same identity for normalized duplicate")
	}
}

func TestRegisterRejectsBadNames(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	h := NewUserHandler(store.New(conn), testutil.GetTestConfig())

	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"whitespace only", "   "},
		{"too short", "A"},
		{"too long", "ein viel zu langer Nickname der die Grenze von dreißig Zeichen reißt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.MakeRequest("POST", "/api/register", models.RegisterRequest{Name: tt.input}, nil)
			w := httptest.NewRecorder()
			h.Register(w, req)
			testutil.AssertStatus(t, w, 400)
		})
	}
}
