package forms

import (
	"testing"

	"github.com/greenaire/site/internal/ui/model"
)

func TestValidateContact(t *testing.T) {
	cases := []struct {
		name   string
		fields model.ContactFields
		want   model.FieldErrors
	}{
		{
			name:   "all empty",
			fields: model.ContactFields{},
			want: model.FieldErrors{
				model.FieldName:    MsgNameRequired,
				model.FieldEmail:   MsgEmailRequired,
				model.FieldMessage: MsgMessageRequired,
			},
		},
		{
			name:   "whitespace only counts as empty",
			fields: model.ContactFields{Name: "   ", Email: " \t", Message: "\n"},
			want: model.FieldErrors{
				model.FieldName:    MsgNameRequired,
				model.FieldEmail:   MsgEmailRequired,
				model.FieldMessage: MsgMessageRequired,
			},
		},
		{
			name:   "email without domain dot",
			fields: model.ContactFields{Name: "A", Email: "not-an-email", Message: "hi"},
			want:   model.FieldErrors{model.FieldEmail: MsgEmailInvalid},
		},
		{
			name:   "malformed email",
			fields: model.ContactFields{Name: "A", Email: "a@b", Message: "Hi"},
			want:   model.FieldErrors{model.FieldEmail: MsgEmailInvalid},
		},
		{
			name:   "email with spaces",
			fields: model.ContactFields{Name: "A", Email: " a@b.co", Message: "Hi"},
			want:   model.FieldErrors{model.FieldEmail: MsgEmailInvalid},
		},
		{
			name:   "double at",
			fields: model.ContactFields{Name: "A", Email: "a@@b.co", Message: "Hi"},
			want:   model.FieldErrors{model.FieldEmail: MsgEmailInvalid},
		},
		{
			name:   "valid",
			fields: model.ContactFields{Name: "A", Email: "a@b.co", Message: "Hi"},
			want:   model.FieldErrors{},
		},
	}

	for _, tc := range cases {
		got := ValidateContact(tc.fields)
		if len(got) != len(tc.want) {
			t.Fatalf("%s: expected %v got %v", tc.name, tc.want, got)
		}
		for field, msg := range tc.want {
			if got[field] != msg {
				t.Fatalf("%s: field %s expected %q got %q", tc.name, field, msg, got[field])
			}
		}
	}
}
