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
		"appointment": map[string]any{
			"phonePrefix": "+92",
		},
		"outbox": map[string]any{
			"dispatchInterval": "5s",
		},
		"secretKey": map[string]any{
			"access": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "APPOINTMENT_PHONEPREFIX", want: "appointment.phonePrefix"},
		{envKey: "OUTBOX_DISPATCHINTERVAL", want: "outbox.dispatchInterval"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
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

func TestApplyAppointmentDefaults(t *testing.T) {
	cfg := &Config{}
	applyAppointmentDefaults(cfg)

	if cfg.Appointment.PhonePrefix != "+92" {
		t.Fatalf("PhonePrefix = %q, want +92", cfg.Appointment.PhonePrefix)
	}
	if cfg.Appointment.PhoneLength != 13 {
		t.Fatalf("PhoneLength = %d, want 13", cfg.Appointment.PhoneLength)
	}
	if cfg.Appointment.PreviewSize != 3 {
		t.Fatalf("PreviewSize = %d, want 3", cfg.Appointment.PreviewSize)
	}

	// Configured values must not be overwritten.
	cfg = &Config{Appointment: &AppointmentConfig{PhonePrefix: "+44", PhoneLength: 12}}
	applyAppointmentDefaults(cfg)
	if cfg.Appointment.PhonePrefix != "+44" || cfg.Appointment.PhoneLength != 12 {
		t.Fatalf("configured values overwritten: %+v", cfg.Appointment)
	}
}
