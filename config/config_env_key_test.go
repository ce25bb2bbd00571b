package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"redis": map[string]any{
			"opTimeout": "200ms",
		},
		"mail": map[string]any{
			"activationUrlBase": "",
			"smtp": map[string]any{
				"senderName": "",
			},
		},
		"secretKey": map[string]any{
			"activation": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "REDIS_OPTIMEOUT", want: "redis.opTimeout"},
		{envKey: "MAIL_ACTIVATIONURLBASE", want: "mail.activationUrlBase"},
		{envKey: "MAIL_SMTP_SENDERNAME", want: "mail.smtp.senderName"},
		{envKey: "SECRETKEY_ACTIVATION", want: "secretKey.activation"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}
