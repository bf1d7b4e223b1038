package dto

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

var validate = validator.New()

func TestRecordMessageRequestValidation(t *testing.T) {
	tests := []struct {
		name    string
		req     RecordMessageRequest
		wantErr bool
	}{
		{
			name:    "valid user message",
			req:     RecordMessageRequest{Role: "user", Content: "hi"},
			wantErr: false,
		},
		{
			name:    "valid assistant message with tokens",
			req:     RecordMessageRequest{Role: "assistant", Content: "hello", InputTokens: 10, OutputTokens: 20},
			wantErr: false,
		},
		{
			name:    "unknown role rejected",
			req:     RecordMessageRequest{Role: "bot", Content: "hi"},
			wantErr: true,
		},
		{
			name:    "empty content rejected",
			req:     RecordMessageRequest{Role: "user"},
			wantErr: true,
		},
		{
			name:    "negative tokens rejected",
			req:     RecordMessageRequest{Role: "user", Content: "hi", InputTokens: -1},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validate.Struct(tt.req)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCaptureContactRequestValidation(t *testing.T) {
	assert.NoError(t, validate.Struct(CaptureContactRequest{Email: "a@b.co"}))
	assert.Error(t, validate.Struct(CaptureContactRequest{Email: "not-an-email"}))
	assert.Error(t, validate.Struct(CaptureContactRequest{}))
}

func TestCreateBrandRequestValidation(t *testing.T) {
	valid := CreateBrandRequest{
		BrandKey:    "acme",
		DisplayName: "Acme",
		Recipients:  []string{"sales@acme.test"},
	}
	assert.NoError(t, validate.Struct(valid))

	badRecipient := valid
	badRecipient.Recipients = []string{"sales@acme.test", "nope"}
	assert.Error(t, validate.Struct(badRecipient))

	missingKey := valid
	missingKey.BrandKey = ""
	assert.Error(t, validate.Struct(missingKey))
}
