package api

import (
	"net/url"
	"reflect"
	"testing"
)

func ptr(s string) *string { return &s }

func TestSharingParams_Values(t *testing.T) {
	tests := []struct {
		name   string
		params SharingParams
		want   url.Values
	}{
		{
			name:   "no fields",
			params: SharingParams{},
			want:   url.Values{},
		},
		{
			name:   "passphrase only",
			params: SharingParams{Passphrase: ptr("hunter2")},
			want:   url.Values{"passphrase": {"hunter2"}},
		},
		{
			name:   "ttl only",
			params: SharingParams{TTL: ptr("3600")},
			want:   url.Values{"ttl": {"3600"}},
		},
		{
			name:   "recipient only",
			params: SharingParams{Recipient: ptr("bob@example.com")},
			want:   url.Values{"recipient": {"bob@example.com"}},
		},
		{
			name:   "passphrase and recipient",
			params: SharingParams{Passphrase: ptr("p"), Recipient: ptr("bob@example.com")},
			want:   url.Values{"passphrase": {"p"}, "recipient": {"bob@example.com"}},
		},
		{
			name:   "all fields",
			params: SharingParams{Passphrase: ptr("p"), TTL: ptr("60"), Recipient: ptr("r")},
			want:   url.Values{"passphrase": {"p"}, "ttl": {"60"}, "recipient": {"r"}},
		},
		{
			name:   "empty string is still sent",
			params: SharingParams{Passphrase: ptr("")},
			want:   url.Values{"passphrase": {""}},
		},
		{
			name:   "values are not validated",
			params: SharingParams{TTL: ptr("forever"), Recipient: ptr("not-an-email")},
			want:   url.Values{"ttl": {"forever"}, "recipient": {"not-an-email"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.params.Values()
			if err != nil {
				t.Fatalf("Values() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Values() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSharingParams_ValuesEncoding(t *testing.T) {
	got, err := SharingParams{Passphrase: ptr("a&b=c")}.Values()
	if err != nil {
		t.Fatalf("Values() error = %v", err)
	}
	if enc := got.Encode(); enc != "passphrase=a%26b%3Dc" {
		t.Errorf("Encode() = %s, want passphrase=a%%26b%%3Dc", enc)
	}
}
