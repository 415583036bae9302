// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-natours/models"
)

func TestContextKeyString(t *testing.T) {
	key := contextKey("testKey")
	if key.String() != "testKey" {
		t.Errorf("expected 'testKey', got '%s'", key.String())
	}
}

func TestUserFromContext_Success(t *testing.T) {
	ctx := WithUser(context.Background(), models.User{ID: 42, Role: models.RoleAdmin})

	user, ok := UserFromContext(ctx)
	if !ok {
		t.Fatal("expected ok=true, got false")
	}
	if user.ID != 42 || user.Role != models.RoleAdmin {
		t.Errorf("unexpected user %+v", user)
	}

	userID, ok := GetUserIDFromContext(ctx)
	if !ok || userID != 42 {
		t.Errorf("expected userID=42, got %d (ok=%v)", userID, ok)
	}
}

func TestUserFromContext_Missing(t *testing.T) {
	if _, ok := UserFromContext(context.Background()); ok {
		t.Error("expected ok=false for anonymous context")
	}
	if id, ok := GetUserIDFromContext(context.Background()); ok || id != 0 {
		t.Errorf("expected (0, false), got (%d, %v)", id, ok)
	}
}

func TestUserFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), UserCtxKey, int64(42))

	if _, ok := UserFromContext(ctx); ok {
		t.Error("expected ok=false for wrong type")
	}
}

func TestRequestTimeFromContext(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	ctx := WithRequestTime(context.Background(), now)

	got, ok := RequestTimeFromContext(ctx)
	if !ok {
		t.Fatal("expected ok=true, got false")
	}
	if !got.Equal(now) {
		t.Errorf("expected %v, got %v", now, got)
	}

	if _, ok := RequestTimeFromContext(context.Background()); ok {
		t.Error("expected ok=false without timestamp")
	}
}
