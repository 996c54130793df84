package wellness_test

import (
	"testing"

	"github.com/ivanpetrovic/brio/internal/client/wellness"
)

func TestHashPassword(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		password string
		want     string
	}{
		{
			name:     "known digest",
			password: "correct horse battery staple",
			want:     "1a0989fbf840c4f497c8b212d7bb3f1b948f563f5f66d8d9b125b5b54cca12fa",
		},
		{
			name:     "empty password still prefixed",
			password: "",
			want:     "5262ea20c805ff5d2ebc484510532a3422116e69fdacdc9a4ca72e00c5cb3b5d",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := wellness.HashPassword(tt.password); got != tt.want {
				t.Errorf("HashPassword(%q) = %q, want %q", tt.password, got, tt.want)
			}
		})
	}
}
