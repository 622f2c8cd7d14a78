package validator

import (
	"sort"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"news-publisher/internal/domain"
)

var validRoles = []interface{}{
	string(domain.RoleReader),
	string(domain.RoleWriter),
	string(domain.RoleEditor),
	string(domain.RoleAdmin),
}

// Validator provides validation methods for domain entities.
type Validator struct{}

// NewValidator creates a new Validator instance.
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateRegistration validates a registration request.
func (v *Validator) ValidateRegistration(email, fullName, role string) error {
	err := validation.Errors{
		"email": validation.Validate(email,
			validation.Required.Error("email_required"),
			is.Email.Error("invalid_email_format"),
		),
		"full_name": validation.Validate(fullName,
			validation.Required.Error("full_name_required"),
		),
		"role": validation.Validate(role,
			validation.Required.Error("role_required"),
			validation.In(validRoles...).Error("invalid_role"),
		),
	}.Filter()
	return asDomainError(err)
}

// ValidateDraft validates an article at creation or edit time. Drafts only
// need a title and an author; the remaining required fields are enforced at
// submission.
func (v *Validator) ValidateDraft(a *domain.Article) error {
	err := validation.ValidateStruct(a,
		validation.Field(&a.Title,
			validation.Required.Error("title_required"),
		),
		validation.Field(&a.AuthorID,
			validation.Required.Error("author_id_required"),
		),
	)
	return asDomainError(err)
}

// ValidateSubmission validates that an article is complete enough to enter
// review: title, content, excerpt and category must all be non-empty.
func (v *Validator) ValidateSubmission(a *domain.Article) error {
	err := validation.ValidateStruct(a,
		validation.Field(&a.Title,
			validation.Required.Error("title_required"),
		),
		validation.Field(&a.Content,
			validation.Required.Error("content_required"),
		),
		validation.Field(&a.Excerpt,
			validation.Required.Error("excerpt_required"),
		),
		validation.Field(&a.Category,
			validation.Required.Error("category_required"),
		),
	)
	return asDomainError(err)
}

// ValidateRejectionReason validates that a rejection carries a non-empty
// reason. Checked before anything touches the record.
func (v *Validator) ValidateRejectionReason(reason string) error {
	if strings.TrimSpace(reason) == "" {
		return domain.NewValidationError("reason", "rejection_reason_required")
	}
	return nil
}

// ValidateComment validates a comment on an article.
func (v *Validator) ValidateComment(c *domain.Comment) error {
	err := validation.ValidateStruct(c,
		validation.Field(&c.Body,
			validation.Required.Error("body_required"),
			validation.By(wordCountRule(500)),
		),
		validation.Field(&c.ArticleID,
			validation.Required.Error("article_id_required"),
		),
		validation.Field(&c.UserID,
			validation.Required.Error("user_id_required"),
		),
	)
	return asDomainError(err)
}

// wordCountRule creates a validation rule for max word count.
func wordCountRule(maxWords int) validation.RuleFunc {
	return func(value interface{}) error {
		s, ok := value.(string)
		if !ok {
			return nil
		}
		wordCount := len(strings.Fields(strings.TrimSpace(s)))
		if wordCount > maxWords {
			return validation.NewError("body_exceeds_500_words", "body exceeds 500 words")
		}
		return nil
	}
}

// asDomainError converts an ozzo validation result into the domain error
// taxonomy, keeping the reported field deterministic.
func asDomainError(err error) error {
	if err == nil {
		return nil
	}
	errs, ok := err.(validation.Errors)
	if !ok {
		return domain.NewValidationError("", err.Error())
	}
	fields := make([]string, 0, len(errs))
	for field := range errs {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	for _, field := range fields {
		if errs[field] != nil {
			return domain.NewValidationError(field, errs[field].Error())
		}
	}
	return nil
}
