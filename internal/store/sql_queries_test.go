// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Sofia Onell

package store

import (
	"errors"
	"strings"
	"testing"

	"github.com/sofyone/go-gig-desk/models"
)

func TestBuildListOrdersQuery(t *testing.T) {
	t.Run("no filter", func(t *testing.T) {
		sql, args, err := buildListOrdersQuery(OrderFilter{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if strings.Contains(sql, "WHERE") {
			t.Errorf("unfiltered query should carry no WHERE clause, got: %s", sql)
		}
		if !strings.Contains(sql, "ORDER BY order_id") {
			t.Errorf("query should order by order_id, got: %s", sql)
		}
		if len(args) != 0 {
			t.Errorf("expected no args, got %v", args)
		}
	})

	t.Run("status filter", func(t *testing.T) {
		sql, args, err := buildListOrdersQuery(OrderFilter{Status: models.OrderStatusDone})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(sql, "status = $1") {
			t.Errorf("expected status placeholder, got: %s", sql)
		}
		if len(args) != 1 || args[0] != models.OrderStatusDone {
			t.Errorf("expected args [done], got %v", args)
		}
	})

	t.Run("status and service filter", func(t *testing.T) {
		sql, args, err := buildListOrdersQuery(OrderFilter{Status: models.OrderStatusInQueue, ServiceID: 3})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(sql, "status = $1") || !strings.Contains(sql, "service_id = $2") {
			t.Errorf("expected both filter placeholders, got: %s", sql)
		}
		if len(args) != 2 {
			t.Fatalf("expected 2 args, got %v", args)
		}
		if args[0] != models.OrderStatusInQueue || args[1] != int64(3) {
			t.Errorf("unexpected args: %v", args)
		}
	})
}

func TestBuildUpdateUserQuery(t *testing.T) {
	t.Run("no fields", func(t *testing.T) {
		_, _, err := buildUpdateUserQuery(models.UserUpdate{UserID: 7})
		if !errors.Is(err, ErrBuildingSQLQuery) {
			t.Fatalf("expected ErrBuildingSQLQuery, got %v", err)
		}
	})

	t.Run("single field", func(t *testing.T) {
		name := "New Name"
		sql, args, err := buildUpdateUserQuery(models.UserUpdate{UserID: 7, Name: &name})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(sql, "SET name = $1") {
			t.Errorf("expected name assignment, got: %s", sql)
		}
		if !strings.Contains(sql, "user_id = $2") {
			t.Errorf("expected user_id predicate after SET args, got: %s", sql)
		}
		if !strings.Contains(sql, "RETURNING user_id, name, email, password_hash, profile_image, created_at") {
			t.Errorf("expected RETURNING suffix, got: %s", sql)
		}
		if len(args) != 2 || args[0] != name || args[1] != int64(7) {
			t.Errorf("unexpected args: %v", args)
		}
	})

	t.Run("all fields keep declaration order", func(t *testing.T) {
		name, email, image, hash := "A", "a@example.com", "https://img.example/a.png", "$2a$10$hash"
		sql, args, err := buildUpdateUserQuery(models.UserUpdate{
			UserID:       7,
			Name:         &name,
			Email:        &email,
			ProfileImage: &image,
			PasswordHash: &hash,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for _, want := range []string{"name = $1", "email = $2", "profile_image = $3", "password_hash = $4", "user_id = $5"} {
			if !strings.Contains(sql, want) {
				t.Errorf("expected %q in query, got: %s", want, sql)
			}
		}
		if len(args) != 5 {
			t.Fatalf("expected 5 args, got %v", args)
		}
	})
}
