package validator

import (
	"errors"
	"strings"
	"testing"

	"news-publisher/internal/domain"
)

func TestValidateRegistration(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name     string
		email    string
		fullName string
		role     string
		wantErr  bool
	}{
		{"valid reader", "reader@example.com", "A Reader", "reader", false},
		{"valid writer", "writer@example.com", "A Writer", "writer", false},
		{"missing email", "", "A Reader", "reader", true},
		{"bad email", "not-an-email", "A Reader", "reader", true},
		{"missing name", "reader@example.com", "", "reader", true},
		{"unknown role", "reader@example.com", "A Reader", "moderator", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateRegistration(tt.email, tt.fullName, tt.role)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateRegistration() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				var valErr *domain.ValidationError
				if !errors.As(err, &valErr) {
					t.Errorf("error type = %T, want *domain.ValidationError", err)
				}
			}
		})
	}
}

func TestValidateSubmission(t *testing.T) {
	v := NewValidator()

	complete := func() *domain.Article {
		return &domain.Article{
			Title:    "Title",
			Content:  "<p>body</p>",
			Excerpt:  "excerpt",
			Category: "politics",
			AuthorID: "a-1",
		}
	}

	t.Run("complete article passes", func(t *testing.T) {
		if err := v.ValidateSubmission(complete()); err != nil {
			t.Errorf("ValidateSubmission() = %v, want nil", err)
		}
	})

	mutations := []struct {
		name   string
		mutate func(*domain.Article)
		field  string
	}{
		{"missing title", func(a *domain.Article) { a.Title = "" }, "Title"},
		{"missing content", func(a *domain.Article) { a.Content = "" }, "Content"},
		{"missing excerpt", func(a *domain.Article) { a.Excerpt = "" }, "Excerpt"},
		{"missing category", func(a *domain.Article) { a.Category = "" }, "Category"},
	}

	for _, tt := range mutations {
		t.Run(tt.name, func(t *testing.T) {
			a := complete()
			tt.mutate(a)
			err := v.ValidateSubmission(a)
			if err == nil {
				t.Fatalf("ValidateSubmission() = nil, want error for %s", tt.field)
			}
			var valErr *domain.ValidationError
			if !errors.As(err, &valErr) {
				t.Errorf("error type = %T, want *domain.ValidationError", err)
			}
		})
	}
}

func TestValidateRejectionReason(t *testing.T) {
	v := NewValidator()

	if err := v.ValidateRejectionReason("Cần dẫn nguồn rõ ràng"); err != nil {
		t.Errorf("ValidateRejectionReason(non-empty) = %v, want nil", err)
	}
	if err := v.ValidateRejectionReason(""); err == nil {
		t.Error("ValidateRejectionReason(\"\") = nil, want error")
	}
	if err := v.ValidateRejectionReason("   "); err == nil {
		t.Error("ValidateRejectionReason(whitespace) = nil, want error")
	}
}

func TestValidateComment(t *testing.T) {
	v := NewValidator()

	valid := &domain.Comment{
		ArticleID: "a-1",
		UserID:    "u-1",
		Body:      "Nice article",
	}
	if err := v.ValidateComment(valid); err != nil {
		t.Errorf("ValidateComment(valid) = %v, want nil", err)
	}

	t.Run("empty body", func(t *testing.T) {
		c := *valid
		c.Body = ""
		if err := v.ValidateComment(&c); err == nil {
			t.Error("ValidateComment(empty body) = nil, want error")
		}
	})

	t.Run("body over 500 words", func(t *testing.T) {
		c := *valid
		c.Body = strings.Repeat("word ", 501)
		if err := v.ValidateComment(&c); err == nil {
			t.Error("ValidateComment(501 words) = nil, want error")
		}
	})

	t.Run("body exactly 500 words", func(t *testing.T) {
		c := *valid
		c.Body = strings.TrimSpace(strings.Repeat("word ", 500))
		if err := v.ValidateComment(&c); err != nil {
			t.Errorf("ValidateComment(500 words) = %v, want nil", err)
		}
	})
}
