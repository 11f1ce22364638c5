package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"math/rand"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/markferry/awardwallet"
	"github.com/markferry/awardwallet/cmd"
	"github.com/markferry/awardwallet/testutil"
)

// Fabricates wire payloads for each response shape, pushes them through the
// codec, and logs the validated records. Useful for eyeballing the wire output
// while developing against the API.

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func main() {
	// a missing .env file is fine, the defaults below apply
	_ = godotenv.Load()

	cmd.InitLoggers(slog.LevelInfo)

	iterations := envInt("DEMO_ITERATIONS", 10)

	ctx := cmd.WithTrace(context.Background(), "demo")
	slog.InfoContext(ctx, "starting demo", "iterations", iterations)

	for i := 0; i < iterations; i++ {
		shapeKind := rand.Intn(4)

		var value any
		var err error

		switch shapeKind {
		case 0:
			var payload []byte
			payload, err = json.Marshal(testutil.MakeAccount())
			if err == nil {
				value, err = awardwallet.DecodeAccount(payload)
			}
		case 1:
			var payload []byte
			payload, err = json.Marshal(testutil.MakeMemberListItem())
			if err == nil {
				value, err = awardwallet.DecodeMemberListItem(payload)
			}
		case 2:
			var payload []byte
			payload, err = json.Marshal(testutil.MakeConnectedUserListItem())
			if err == nil {
				value, err = awardwallet.DecodeConnectedUserListItem(payload)
			}
		case 3:
			var payload []byte
			payload, err = json.Marshal(testutil.MakeProviderDetails())
			if err == nil {
				value, err = awardwallet.DecodeProviderDetails(payload)
			}
		}
		if err != nil {
			slog.ErrorContext(ctx, "round trip failed", "iteration", i, "err", err)
			os.Exit(1)
		}

		slog.InfoContext(ctx, "validated record", "iteration", i, "value", value)
	}
}
