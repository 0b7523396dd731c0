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
		"scheduler": map[string]any{
			"callTimeout":   "10s",
			"dailyGoalHour": 23,
		},
		"gemini": map[string]any{
			"apiKey": "",
		},
		"redis": map[string]any{
			"claimTtl": "26h",
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
		{envKey: "SCHEDULER_CALLTIMEOUT", want: "scheduler.callTimeout"},
		{envKey: "SCHEDULER_DAILYGOALHOUR", want: "scheduler.dailyGoalHour"},
		{envKey: "GEMINI_APIKEY", want: "gemini.apiKey"},
		{envKey: "REDIS_CLAIMTTL", want: "redis.claimTtl"},
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

func TestReplicasFromEnv(t *testing.T) {
	env := map[string]string{
		"POSTGRES_REPLICAS_0_HOST":     "replica-0",
		"POSTGRES_REPLICAS_0_PORT":     "5432",
		"POSTGRES_REPLICAS_0_USERNAME": "reader",
		"POSTGRES_REPLICAS_1_HOST":     "replica-1",
		"POSTGRES_REPLICAS_1_PORT":     "5433",
		// Index 2 has no port, so index 3 is never read.
		"POSTGRES_REPLICAS_2_HOST": "replica-2",
		"POSTGRES_REPLICAS_3_HOST": "replica-3",
		"POSTGRES_REPLICAS_3_PORT": "5435",
	}

	replicas := replicasFromEnv(func(key string) string { return env[key] })

	if len(replicas) != 2 {
		t.Fatalf("replicasFromEnv returned %d replicas, want 2", len(replicas))
	}
	if replicas[0].Host != "replica-0" || replicas[0].UserName != "reader" || replicas[1].Port != "5433" {
		t.Fatalf("unexpected replicas: %+v", replicas)
	}
}
