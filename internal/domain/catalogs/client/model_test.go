package client

import (
	"context"
	"testing"
)

func strPtr(s string) *string { return &s }

func TestClientValidate(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		mutate  func(*Client)
		wantErr bool
	}{
		{"minimal", func(c *Client) {}, false},
		{"missing name", func(c *Client) { c.Name = "" }, true},
		{"cpf", func(c *Client) { c.Document = strPtr("12345678901") }, false},
		{"cnpj", func(c *Client) { c.Document = strPtr("12345678000195") }, false},
		{"cnpj with punctuation", func(c *Client) { c.Document = strPtr("12.345.678/0001-95") }, false},
		{"wrong document length", func(c *Client) { c.Document = strPtr("12345") }, true},
		{"document with letters", func(c *Client) { c.Document = strPtr("1234567890a") }, true},
		{"valid email", func(c *Client) { c.Email = strPtr("contato@acme.com.br") }, false},
		{"invalid email", func(c *Client) { c.Email = strPtr("not-an-email") }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New("CLI-001", "ACME Transportes")
			tt.mutate(c)
			err := c.Validate(ctx)
			if tt.wantErr && err == nil {
				t.Error("expected error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}
